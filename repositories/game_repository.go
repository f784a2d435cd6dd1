package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yoapunto/yoapunto-api/models"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	List(ctx context.Context, skip, limit int) ([]models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	Deactivate(ctx context.Context, id int, now time.Time) (*models.Game, error)
	CountActive(ctx context.Context) (int, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

const gameColumns = `id, name, description, game_composition,
	min_number_of_teams, max_number_of_teams,
	min_number_of_players, max_number_of_players,
	min_number_of_players_per_teams, max_number_of_players_per_teams,
	thumbnail, active, created_at, updated_at`

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (name, description, game_composition,
			min_number_of_teams, max_number_of_teams,
			min_number_of_players, max_number_of_players,
			min_number_of_players_per_teams, max_number_of_players_per_teams,
			thumbnail)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, active, created_at`

	return r.db.QueryRowContext(ctx, query,
		game.Name,
		game.Description,
		game.GameComposition,
		game.MinNumberOfTeams,
		game.MaxNumberOfTeams,
		game.MinNumberOfPlayers,
		game.MaxNumberOfPlayers,
		game.MinNumberOfPlayersPerTeams,
		game.MaxNumberOfPlayersPerTeams,
		game.Thumbnail,
	).Scan(&game.ID, &game.Active, &game.CreatedAt)
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1 AND active = TRUE`
	return scanGameRow(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresGameRepository) List(ctx context.Context, skip, limit int) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + `
		FROM games
		WHERE active = TRUE
		ORDER BY id
		OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGames(rows)
}

func (r *postgresGameRepository) Update(ctx context.Context, game *models.Game) error {
	query := `
		UPDATE games SET
			name = $1,
			description = $2,
			game_composition = $3,
			min_number_of_teams = $4,
			max_number_of_teams = $5,
			min_number_of_players = $6,
			max_number_of_players = $7,
			min_number_of_players_per_teams = $8,
			max_number_of_players_per_teams = $9,
			thumbnail = $10,
			updated_at = $11
		WHERE id = $12 AND active = TRUE`

	result, err := r.db.ExecContext(ctx, query,
		game.Name,
		game.Description,
		game.GameComposition,
		game.MinNumberOfTeams,
		game.MaxNumberOfTeams,
		game.MinNumberOfPlayers,
		game.MaxNumberOfPlayers,
		game.MinNumberOfPlayersPerTeams,
		game.MaxNumberOfPlayersPerTeams,
		game.Thumbnail,
		game.UpdatedAt,
		game.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) Deactivate(ctx context.Context, id int, now time.Time) (*models.Game, error) {
	query := `
		UPDATE games SET active = FALSE, updated_at = $2
		WHERE id = $1 AND active = TRUE
		RETURNING ` + gameColumns

	return scanGameRow(r.db.QueryRowContext(ctx, query, id, now))
}

func (r *postgresGameRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM games WHERE active = TRUE`).Scan(&count)
	return count, err
}

func scanGameRow(row *sql.Row) (*models.Game, error) {
	game := &models.Game{}
	err := row.Scan(
		&game.ID,
		&game.Name,
		&game.Description,
		&game.GameComposition,
		&game.MinNumberOfTeams,
		&game.MaxNumberOfTeams,
		&game.MinNumberOfPlayers,
		&game.MaxNumberOfPlayers,
		&game.MinNumberOfPlayersPerTeams,
		&game.MaxNumberOfPlayersPerTeams,
		&game.Thumbnail,
		&game.Active,
		&game.CreatedAt,
		&game.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func collectGames(rows *sql.Rows) ([]models.Game, error) {
	games := make([]models.Game, 0)
	for rows.Next() {
		var game models.Game
		if err := rows.Scan(
			&game.ID,
			&game.Name,
			&game.Description,
			&game.GameComposition,
			&game.MinNumberOfTeams,
			&game.MaxNumberOfTeams,
			&game.MinNumberOfPlayers,
			&game.MaxNumberOfPlayers,
			&game.MinNumberOfPlayersPerTeams,
			&game.MaxNumberOfPlayersPerTeams,
			&game.Thumbnail,
			&game.Active,
			&game.CreatedAt,
			&game.UpdatedAt,
		); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
