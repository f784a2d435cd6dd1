package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoapunto/yoapunto-api/models"
)

type clubGameFixture struct {
	svc      ClubGameService
	clubSvc  ClubService
	gameSvc  GameService
	gameRepo *fakeGameRepo
	club     *models.Club
	game     *models.Game
}

func newClubGameFixture(t *testing.T) *clubGameFixture {
	t.Helper()
	clubRepo := newFakeClubRepo()
	gameRepo := newFakeGameRepo()
	clubGameRepo := newFakeClubGameRepo(clubRepo, gameRepo)

	clubSvc := NewClubService(clubRepo, nil)
	gameSvc := NewGameService(gameRepo, nil)

	ctx := context.Background()
	club, err := clubSvc.Create(ctx, CreateClubInput{Nickname: "Acme", Creator: "alice"})
	require.NoError(t, err)
	game, err := gameSvc.Create(ctx, CreateGameInput{
		Name:               "Chess",
		GameComposition:    models.CompositionPlayer,
		MinNumberOfPlayers: 2,
	})
	require.NoError(t, err)

	return &clubGameFixture{
		svc:      NewClubGameService(clubGameRepo, clubRepo, gameRepo, nil),
		clubSvc:  clubSvc,
		gameSvc:  gameSvc,
		gameRepo: gameRepo,
		club:     club,
		game:     game,
	}
}

func TestClubGameService_AddAndList(t *testing.T) {
	f := newClubGameFixture(t)
	ctx := context.Background()

	link, err := f.svc.Add(ctx, f.club.ID, f.game.ID)
	require.NoError(t, err)
	assert.Equal(t, f.club.ID, link.ClubID)
	assert.Equal(t, f.game.ID, link.GameID)

	games, err := f.svc.ListForClub(ctx, f.club.ID)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, f.game.ID, games[0].ID)
}

func TestClubGameService_AddTwice(t *testing.T) {
	f := newClubGameFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.club.ID, f.game.ID)
	require.NoError(t, err)

	_, err = f.svc.Add(ctx, f.club.ID, f.game.ID)
	assert.ErrorIs(t, err, ErrAlreadyAssociated)
}

func TestClubGameService_AddChecksBothSides(t *testing.T) {
	f := newClubGameFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, 999, f.game.ID)
	assert.ErrorIs(t, err, ErrClubNotFound)

	_, err = f.svc.Add(ctx, f.club.ID, 999)
	assert.ErrorIs(t, err, ErrGameNotFound)

	_, err = f.gameSvc.Deactivate(ctx, f.game.ID)
	require.NoError(t, err)
	_, err = f.svc.Add(ctx, f.club.ID, f.game.ID)
	assert.ErrorIs(t, err, ErrGameNotFound, "a deactivated game cannot be associated")
}

func TestClubGameService_RemoveAbsent(t *testing.T) {
	f := newClubGameFixture(t)

	err := f.svc.Remove(context.Background(), f.club.ID, f.game.ID)
	assert.ErrorIs(t, err, ErrNotAssociated)
}

func TestClubGameService_RemoveThenGone(t *testing.T) {
	f := newClubGameFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.club.ID, f.game.ID)
	require.NoError(t, err)

	require.NoError(t, f.svc.Remove(ctx, f.club.ID, f.game.ID))

	games, err := f.svc.ListForClub(ctx, f.club.ID)
	require.NoError(t, err)
	assert.Empty(t, games)

	_, err = f.svc.GetForClub(ctx, f.club.ID, f.game.ID)
	assert.ErrorIs(t, err, ErrNotAssociated)
}

func TestClubGameService_GameDeactivationHidesFromList(t *testing.T) {
	f := newClubGameFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.club.ID, f.game.ID)
	require.NoError(t, err)

	_, err = f.gameSvc.Deactivate(ctx, f.game.ID)
	require.NoError(t, err)

	games, err := f.svc.ListForClub(ctx, f.club.ID)
	require.NoError(t, err)
	assert.Empty(t, games, "a deactivated game disappears from club listings")

	_, err = f.svc.GetForClub(ctx, f.club.ID, f.game.ID)
	assert.ErrorIs(t, err, ErrNotAssociated)
}

func TestClubGameService_GameReactivationRestoresVisibility(t *testing.T) {
	f := newClubGameFixture(t)
	ctx := context.Background()

	_, err := f.svc.Add(ctx, f.club.ID, f.game.ID)
	require.NoError(t, err)

	_, err = f.gameSvc.Deactivate(ctx, f.game.ID)
	require.NoError(t, err)

	// The link row is untouched by deactivation, so flipping the game back
	// on restores the listing without a new association.
	f.gameRepo.reactivate(f.game.ID)

	games, err := f.svc.ListForClub(ctx, f.club.ID)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, f.game.ID, games[0].ID)
}
