package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoapunto/yoapunto-api/models"
)

func TestStatsService_CountsActiveOnly(t *testing.T) {
	clubRepo := newFakeClubRepo()
	gameRepo := newFakeGameRepo()
	accountRepo := newFakeAccountRepo()

	clubSvc := NewClubService(clubRepo, nil)
	gameSvc := NewGameService(gameRepo, nil)
	accountSvc := NewAccountService(accountRepo, clubRepo, nil)

	ctx := context.Background()
	club, err := clubSvc.Create(ctx, CreateClubInput{Nickname: "Acme", Creator: "alice"})
	require.NoError(t, err)
	_, err = clubSvc.Create(ctx, CreateClubInput{Nickname: "Other", Creator: "bob"})
	require.NoError(t, err)

	game, err := gameSvc.Create(ctx, CreateGameInput{
		Name:               "Chess",
		GameComposition:    models.CompositionPlayer,
		MinNumberOfPlayers: 2,
	})
	require.NoError(t, err)
	_, err = gameSvc.Deactivate(ctx, game.ID)
	require.NoError(t, err)

	_, err = accountSvc.Create(ctx, CreateAccountInput{
		EmailAddress: "a@x.com",
		FirstName:    "Ana",
		LastName:     "Lopez",
		Password:     "longenough1",
		ClubID:       club.ID,
	})
	require.NoError(t, err)

	stats, err := NewStatsService(clubRepo, gameRepo, accountRepo).Collect(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ActiveClubs)
	assert.Equal(t, 0, stats.ActiveGames, "deactivated games do not count")
	assert.Equal(t, 1, stats.ActiveAccounts)
}
