package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/yoapunto/yoapunto-api/models"
	"github.com/yoapunto/yoapunto-api/repositories"
)

// In-memory repositories mirroring the postgres implementations' contracts:
// reads and deactivation see active rows only, GetByEmail sees every row,
// the club-game unique pair is enforced on insert.

type fakeClubRepo struct {
	clubs  map[int]*models.Club
	nextID int
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{clubs: make(map[int]*models.Club), nextID: 1}
}

func (r *fakeClubRepo) Create(_ context.Context, club *models.Club) error {
	club.ID = r.nextID
	r.nextID++
	club.Active = true
	club.CreatedAt = time.Now()
	clone := *club
	r.clubs[club.ID] = &clone
	return nil
}

func (r *fakeClubRepo) GetByID(_ context.Context, id int) (*models.Club, error) {
	club, ok := r.clubs[id]
	if !ok || !club.Active {
		return nil, repositories.ErrClubNotFound
	}
	clone := *club
	return &clone, nil
}

func (r *fakeClubRepo) List(_ context.Context, skip, limit int) ([]models.Club, error) {
	ids := make([]int, 0, len(r.clubs))
	for id, club := range r.clubs {
		if club.Active {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	clubs := make([]models.Club, 0)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(clubs) >= limit {
			break
		}
		clubs = append(clubs, *r.clubs[id])
	}
	return clubs, nil
}

func (r *fakeClubRepo) Update(_ context.Context, club *models.Club) error {
	existing, ok := r.clubs[club.ID]
	if !ok || !existing.Active {
		return repositories.ErrClubNotFound
	}
	clone := *club
	r.clubs[club.ID] = &clone
	return nil
}

func (r *fakeClubRepo) Deactivate(_ context.Context, id int, now time.Time) (*models.Club, error) {
	club, ok := r.clubs[id]
	if !ok || !club.Active {
		return nil, repositories.ErrClubNotFound
	}
	club.Active = false
	club.UpdatedAt = &now
	clone := *club
	return &clone, nil
}

func (r *fakeClubRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, club := range r.clubs {
		if club.Active {
			count++
		}
	}
	return count, nil
}

type fakeGameRepo struct {
	games  map[int]*models.Game
	nextID int
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[int]*models.Game), nextID: 1}
}

func (r *fakeGameRepo) Create(_ context.Context, game *models.Game) error {
	game.ID = r.nextID
	r.nextID++
	game.Active = true
	game.CreatedAt = time.Now()
	clone := *game
	r.games[game.ID] = &clone
	return nil
}

func (r *fakeGameRepo) GetByID(_ context.Context, id int) (*models.Game, error) {
	game, ok := r.games[id]
	if !ok || !game.Active {
		return nil, repositories.ErrGameNotFound
	}
	clone := *game
	return &clone, nil
}

func (r *fakeGameRepo) List(_ context.Context, skip, limit int) ([]models.Game, error) {
	ids := make([]int, 0, len(r.games))
	for id, game := range r.games {
		if game.Active {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	games := make([]models.Game, 0)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(games) >= limit {
			break
		}
		games = append(games, *r.games[id])
	}
	return games, nil
}

func (r *fakeGameRepo) Update(_ context.Context, game *models.Game) error {
	existing, ok := r.games[game.ID]
	if !ok || !existing.Active {
		return repositories.ErrGameNotFound
	}
	clone := *game
	r.games[game.ID] = &clone
	return nil
}

func (r *fakeGameRepo) Deactivate(_ context.Context, id int, now time.Time) (*models.Game, error) {
	game, ok := r.games[id]
	if !ok || !game.Active {
		return nil, repositories.ErrGameNotFound
	}
	game.Active = false
	game.UpdatedAt = &now
	clone := *game
	return &clone, nil
}

func (r *fakeGameRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, game := range r.games {
		if game.Active {
			count++
		}
	}
	return count, nil
}

// reactivate flips a soft-deleted game back on, the way a manual SQL fix
// would in production.
func (r *fakeGameRepo) reactivate(id int) {
	if game, ok := r.games[id]; ok {
		game.Active = true
	}
}

type fakeAccountRepo struct {
	accounts map[int]*models.Account
	nextID   int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int]*models.Account), nextID: 1}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *models.Account) error {
	for _, existing := range r.accounts {
		if strings.EqualFold(existing.EmailAddress, account.EmailAddress) {
			return repositories.ErrAccountEmailConflict
		}
	}
	account.ID = r.nextID
	r.nextID++
	account.Active = true
	account.EmailVerified = false
	account.CreatedAt = time.Now()
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id int) (*models.Account, error) {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return nil, repositories.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, account := range r.accounts {
		if strings.EqualFold(account.EmailAddress, email) {
			clone := *account
			return &clone, nil
		}
	}
	return nil, repositories.ErrAccountNotFound
}

func (r *fakeAccountRepo) List(_ context.Context, skip, limit int) ([]models.Account, error) {
	return r.listWhere(skip, limit, func(*models.Account) bool { return true })
}

func (r *fakeAccountRepo) ListByClub(_ context.Context, clubID, skip, limit int) ([]models.Account, error) {
	return r.listWhere(skip, limit, func(a *models.Account) bool { return a.ClubID == clubID })
}

func (r *fakeAccountRepo) listWhere(skip, limit int, keep func(*models.Account) bool) ([]models.Account, error) {
	ids := make([]int, 0, len(r.accounts))
	for id, account := range r.accounts {
		if account.Active && keep(account) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	accounts := make([]models.Account, 0)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(accounts) >= limit {
			break
		}
		accounts = append(accounts, *r.accounts[id])
	}
	return accounts, nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *models.Account) error {
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

func (r *fakeAccountRepo) UpdatePassword(_ context.Context, id int, digest string, now time.Time) error {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return repositories.ErrAccountNotFound
	}
	account.PasswordDigest = digest
	account.UpdatedAt = &now
	return nil
}

func (r *fakeAccountRepo) UpdateLastLogin(_ context.Context, id int, now time.Time) error {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return repositories.ErrAccountNotFound
	}
	account.LastLoginAt = &now
	return nil
}

func (r *fakeAccountRepo) Deactivate(_ context.Context, id int, now time.Time) (*models.Account, error) {
	account, ok := r.accounts[id]
	if !ok || !account.Active {
		return nil, repositories.ErrAccountNotFound
	}
	account.Active = false
	account.UpdatedAt = &now
	clone := *account
	return &clone, nil
}

func (r *fakeAccountRepo) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, account := range r.accounts {
		if account.Active {
			count++
		}
	}
	return count, nil
}

type fakeClubGameRepo struct {
	links    []models.ClubGame
	gameRepo *fakeGameRepo
	clubRepo *fakeClubRepo
	nextID   int
}

func newFakeClubGameRepo(clubRepo *fakeClubRepo, gameRepo *fakeGameRepo) *fakeClubGameRepo {
	return &fakeClubGameRepo{clubRepo: clubRepo, gameRepo: gameRepo, nextID: 1}
}

func (r *fakeClubGameRepo) Add(_ context.Context, clubID, gameID int) (*models.ClubGame, error) {
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

func (r *fakeClubGameRepo) Remove(_ context.Context, clubID, gameID int) error {
	for i, link := range r.links {
		if link.ClubID == clubID && link.GameID == gameID {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return repositories.ErrClubGameNotFound
}

func (r *fakeClubGameRepo) Exists(_ context.Context, clubID, gameID int) (bool, error) {
	for _, link := range r.links {
		if link.ClubID == clubID && link.GameID == gameID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeClubGameRepo) ListGamesByClub(_ context.Context, clubID int) ([]models.Game, error) {
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

func (r *fakeClubGameRepo) ListClubsByGame(_ context.Context, gameID int) ([]models.Club, error) {
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

func (r *fakeClubGameRepo) GetGameForClub(_ context.Context, clubID, gameID int) (*models.Game, error) {
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
