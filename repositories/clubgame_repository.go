package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/yoapunto/yoapunto-api/models"
)

var (
	ErrClubGameNotFound = errors.New("club-game association not found")
	ErrClubGameConflict = errors.New("club-game association already exists")
)

type ClubGameRepository interface {
	Add(ctx context.Context, clubID, gameID int) (*models.ClubGame, error)
	Remove(ctx context.Context, clubID, gameID int) error
	Exists(ctx context.Context, clubID, gameID int) (bool, error)
	// ListGamesByClub returns only active games; the link rows themselves
	// carry no active flag, so a deactivated game disappears from every
	// club's list without its links being touched.
	ListGamesByClub(ctx context.Context, clubID int) ([]models.Game, error)
	ListClubsByGame(ctx context.Context, gameID int) ([]models.Club, error)
	GetGameForClub(ctx context.Context, clubID, gameID int) (*models.Game, error)
}

type postgresClubGameRepository struct {
	db *sql.DB
}

func NewPostgresClubGameRepository(db *sql.DB) ClubGameRepository {
	return &postgresClubGameRepository{db: db}
}

func (r *postgresClubGameRepository) Add(ctx context.Context, clubID, gameID int) (*models.ClubGame, error) {
	query := `
		INSERT INTO club_games (club_id, game_id)
		VALUES ($1, $2)
		RETURNING id, club_id, game_id, created_at`

	link := &models.ClubGame{}
	err := r.db.QueryRowContext(ctx, query, clubID, gameID).Scan(
		&link.ID,
		&link.ClubID,
		&link.GameID,
		&link.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" &&
			pqErr.Constraint == "club_games_club_id_game_id_key" {
			return nil, ErrClubGameConflict
		}
		return nil, err
	}
	return link, nil
}

func (r *postgresClubGameRepository) Remove(ctx context.Context, clubID, gameID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM club_games WHERE club_id = $1 AND game_id = $2`, clubID, gameID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrClubGameNotFound)
}

func (r *postgresClubGameRepository) Exists(ctx context.Context, clubID, gameID int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM club_games WHERE club_id = $1 AND game_id = $2)`,
		clubID, gameID,
	).Scan(&exists)
	return exists, err
}

func (r *postgresClubGameRepository) ListGamesByClub(ctx context.Context, clubID int) ([]models.Game, error) {
	query := `
		SELECT g.id, g.name, g.description, g.game_composition,
			g.min_number_of_teams, g.max_number_of_teams,
			g.min_number_of_players, g.max_number_of_players,
			g.min_number_of_players_per_teams, g.max_number_of_players_per_teams,
			g.thumbnail, g.active, g.created_at, g.updated_at
		FROM club_games cg
		JOIN games g ON cg.game_id = g.id
		WHERE cg.club_id = $1 AND g.active = TRUE
		ORDER BY cg.id`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGames(rows)
}

func (r *postgresClubGameRepository) ListClubsByGame(ctx context.Context, gameID int) ([]models.Club, error) {
	query := `
		SELECT c.id, c.nickname, c.creator, c.thumbnail_url, c.active, c.created_at, c.updated_at
		FROM club_games cg
		JOIN clubs c ON cg.club_id = c.id
		WHERE cg.game_id = $1 AND c.active = TRUE
		ORDER BY cg.id`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := make([]models.Club, 0)
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(
			&club.ID,
			&club.Nickname,
			&club.Creator,
			&club.ThumbnailURL,
			&club.Active,
			&club.CreatedAt,
			&club.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, rows.Err()
}

func (r *postgresClubGameRepository) GetGameForClub(ctx context.Context, clubID, gameID int) (*models.Game, error) {
	query := `
		SELECT g.id, g.name, g.description, g.game_composition,
			g.min_number_of_teams, g.max_number_of_teams,
			g.min_number_of_players, g.max_number_of_players,
			g.min_number_of_players_per_teams, g.max_number_of_players_per_teams,
			g.thumbnail, g.active, g.created_at, g.updated_at
		FROM club_games cg
		JOIN games g ON cg.game_id = g.id
		WHERE cg.club_id = $1 AND cg.game_id = $2 AND g.active = TRUE`

	game, err := scanGameRow(r.db.QueryRowContext(ctx, query, clubID, gameID))
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil, ErrClubGameNotFound
		}
		return nil, err
	}
	return game, nil
}
