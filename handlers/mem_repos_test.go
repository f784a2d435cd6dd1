package handlers_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/repositories"
)

// In-memory repositories backing the end-to-end tests. They mirror the
// postgres contracts: reads see active rows only, GetByEmail sees every
// row, the club-game pair is unique.

type memClubRepo struct {
	clubs  map[int]*models.Club
	nextID int
}

func newMemClubRepo() *memClubRepo {
	return &memClubRepo{clubs: make(map[int]*models.Club), nextID: 1}
}

func (r *memClubRepo) Create(_ context.Context, club *models.Club) error {
	club.ID = r.nextID
	r.nextID++
	club.Active = true
	club.CreatedAt = time.Now()
	clone := *club
	r.clubs[club.ID] = &clone
	return nil
}

func (r *memClubRepo) GetByID(_ context.Context, id int) (*models.Club, error) {
	club, ok := r.clubs[id]
	if !ok || !club.Active {
		return nil, repositories.ErrClubNotFound
	}
	clone := *club
	return &clone, nil
}

func (r *memClubRepo) List(_ context.Context, skip, limit int) ([]models.Club, error) {
	ids := make([]int, 0, len(r.clubs))
	for id, club := range r.clubs {
		if club.Active {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	clubs := make([]models.Club, 0)
	for i, id := range ids {
		if i < skip || len(clubs) >= limit {
			continue
		}
		clubs = append(clubs, *r.clubs[id])
	}
	return clubs, nil
}

func (r *memClubRepo) Update(_ context.Context, club *models.Club) error {
	existing, ok := r.clubs[club.ID]
	if !ok || !existing.Active {
		return repositories.ErrClubNotFound
	}
	clone := *club
	r.clubs[club.ID] = &clone
	return nil
}

func (r *memClubRepo) Deactivate(_ context.Context, id int, now time.Time) (*models.Club, error) {
	club, ok := r.clubs[id]
	if !ok || !club.Active {
		return nil, repositories.ErrClubNotFound
	}
	club.Active = false
	club.UpdatedAt = &now
	clone := *club
	return &clone, nil
}

func (r *memClubRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, club := range r.clubs {
		if club.Active {
			count++
		}
	}
	return count, nil
}

type memGameRepo struct {
	games  map[int]*models.Game
	nextID int
}

func newMemGameRepo() *memGameRepo {
	return &memGameRepo{games: make(map[int]*models.Game), nextID: 1}
}

func (r *memGameRepo) Create(_ context.Context, game *models.Game) error {
	game.ID = r.nextID
	r.nextID++
	game.Active = true
	game.CreatedAt = time.Now()
	clone := *game
	r.games[game.ID] = &clone
	return nil
}

func (r *memGameRepo) GetByID(_ context.Context, id int) (*models.Game, error) {
	game, ok := r.games[id]
	if !ok || !game.Active {
		return nil, repositories.ErrGameNotFound
	}
	clone := *game
	return &clone, nil
}

func (r *memGameRepo) List(_ context.Context, skip, limit int) ([]models.Game, error) {
	ids := make([]int, 0, len(r.games))
	for id, game := range r.games {
		if game.Active {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	games := make([]models.Game, 0)
	for i, id := range ids {
		if i < skip || len(games) >= limit {
			continue
		}
		games = append(games, *r.games[id])
	}
	return games, nil
}

func (r *memGameRepo) Update(_ context.Context, game *models.Game) error {
	existing, ok := r.games[game.ID]
	if !ok || !existing.Active {
		return repositories.ErrGameNotFound
	}
	clone := *game
	r.games[game.ID] = &clone
	return nil
}

func (r *memGameRepo) Deactivate(_ context.Context, id int, now time.Time) (*models.Game, error) {
	game, ok := r.games[id]
	if !ok || !game.Active {
		return nil, repositories.ErrGameNotFound
	}
	game.Active = false
	game.UpdatedAt = &now
	clone := *game
	return &clone, nil
}

func (r *memGameRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, game := range r.games {
		if game.Active {
			count++
		}
	}
	return count, nil
}

type memAccountRepo struct {
	accounts map[int]*models.Account
	nextID   int
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[int]*models.Account), nextID: 1}
}

func (r *memAccountRepo) Create(_ context.Context, account *models.Account) error {
	for _, existing := range r.accounts {
		if strings.EqualFold(existing.EmailAddress, account.EmailAddress) {
			return repositories.ErrAccountEmailConflict
		}
	}
	account.ID = r.nextID
	r.nextID++
	account.Active = true
	account.CreatedAt = time.Now()
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *memAccountRepo) GetByID(_ context.Context, id int) (*models.Account, error) {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return nil, repositories.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *memAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, account := range r.accounts {
		if strings.EqualFold(account.EmailAddress, email) {
			clone := *account
			return &clone, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *memAccountRepo) List(_ context.Context, skip, limit int) ([]models.Account, error) {
	return r.listWhere(skip, limit, func(*models.Account) bool { return true })
}

func (r *memAccountRepo) ListByClub(_ context.Context, clubID, skip, limit int) ([]models.Account, error) {
	return r.listWhere(skip, limit, func(a *models.Account) bool { return a.ClubID == clubID })
}

func (r *memAccountRepo) listWhere(skip, limit int, keep func(*models.Account) bool) ([]models.Account, error) {
	ids := make([]int, 0, len(r.accounts))
	for id, account := range r.accounts {
		if account.Active && keep(account) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	accounts := make([]models.Account, 0)
	for i, id := range ids {
		if i < skip || len(accounts) >= limit {
			continue
		}
		accounts = append(accounts, *r.accounts[id])
	}
	return accounts, nil
}

func (r *memAccountRepo) Update(_ context.Context, account *models.Account) error {
	existing, ok := r.accounts[account.ID]
	if !ok || !existing.Active {
		return repositories.ErrAccountNotFound
	}
	for id, other := range r.accounts {
		if id != account.ID && strings.EqualFold(other.EmailAddress, account.EmailAddress) {
			return repositories.ErrAccountEmailConflict
		}
	}
	clone := *account
	clone.Club = nil
	r.accounts[account.ID] = &clone
	return nil
}

func (r *memAccountRepo) UpdatePassword(_ context.Context, id int, digest string, now time.Time) error {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return repositories.ErrAccountNotFound
	}
	account.PasswordDigest = digest
	account.UpdatedAt = &now
	return nil
}

func (r *memAccountRepo) UpdateLastLogin(_ context.Context, id int, now time.Time) error {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return repositories.ErrAccountNotFound
	}
	account.LastLoginAt = &now
	return nil
}

func (r *memAccountRepo) Deactivate(_ context.Context, id int, now time.Time) (*models.Account, error) {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return nil, repositories.ErrAccountNotFound
	}
	account.Active = false
	account.UpdatedAt = &now
	clone := *account
	return &clone, nil
}

func (r *memAccountRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, account := range r.accounts {
		if account.Active {
			count++
		}
	}
	return count, nil
}

type memClubGameRepo struct {
	links    []models.ClubGame
	clubRepo *memClubRepo
	gameRepo *memGameRepo
	nextID   int
}

func newMemClubGameRepo(clubRepo *memClubRepo, gameRepo *memGameRepo) *memClubGameRepo {
	return &memClubGameRepo{clubRepo: clubRepo, gameRepo: gameRepo, nextID: 1}
}

func (r *memClubGameRepo) Add(_ context.Context, clubID, gameID int) (*models.ClubGame, error) {
	for _, link := range r.links {
		if link.ClubID == clubID && link.GameID == gameID {
			return nil, repositories.ErrClubGameConflict
		}
	}
	link := models.ClubGame{ID: r.nextID, ClubID: clubID, GameID: gameID, CreatedAt: time.Now()}
	r.nextID++
	r.links = append(r.links, link)
	return &link, nil
}

func (r *memClubGameRepo) Remove(_ context.Context, clubID, gameID int) error {
	for i, link := range r.links {
		if link.ClubID == clubID && link.GameID == gameID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return repositories.ErrClubGameNotFound
}

func (r *memClubGameRepo) Exists(_ context.Context, clubID, gameID int) (bool, error) {
	for _, link := range r.links {
		if link.ClubID == clubID && link.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memClubGameRepo) ListGamesByClub(_ context.Context, clubID int) ([]models.Game, error) {
	games := make([]models.Game, 0)
	for _, link := range r.links {
		if link.ClubID != clubID {
			continue
		}
		if game, ok := r.gameRepo.games[link.GameID]; ok && game.Active {
			games = append(games, *game)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (r *memClubGameRepo) ListClubsByGame(_ context.Context, gameID int) ([]models.Club, error) {
	clubs := make([]models.Club, 0)
	for _, link := range r.links {
		if link.GameID != gameID {
			continue
		}
		if club, ok := r.clubRepo.clubs[link.ClubID]; ok && club.Active {
			clubs = append(clubs, *club)
		}
	}
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].ID < clubs[j].ID })
	return clubs, nil
}

func (r *memClubGameRepo) GetGameForClub(_ context.Context, clubID, gameID int) (*models.Game, error) {
	for _, link := range r.links {
		if link.ClubID == clubID && link.GameID == gameID {
			if game, ok := r.gameRepo.games[gameID]; ok && game.Active {
				clone := *game
				return &clone, nil
			}
		}
	}
	return nil, repositories.ErrClubGameNotFound
}
