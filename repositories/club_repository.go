package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/yoapunto/yoapunto-api/models"
)

var ErrClubNotFound = errors.New("club not found")

type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id int) (*models.Club, error)
	List(ctx context.Context, skip, limit int) ([]models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	Deactivate(ctx context.Context, id int, now time.Time) (*models.Club, error)
	CountActive(ctx context.Context) (int, error)
}

type postgresClubRepository struct {
	db *sql.DB
}

func NewPostgresClubRepository(db *sql.DB) ClubRepository {
	return &postgresClubRepository{db: db}
}

func (r *postgresClubRepository) Create(ctx context.Context, club *models.Club) error {
	query := `
		INSERT INTO clubs (nickname, creator, thumbnail_url)
		VALUES ($1, $2, $3)
		RETURNING id, active, created_at`

	return r.db.QueryRowContext(ctx, query,
		club.Nickname,
		club.Creator,
		club.ThumbnailURL,
	).Scan(&club.ID, &club.Active, &club.CreatedAt)
}

func (r *postgresClubRepository) GetByID(ctx context.Context, id int) (*models.Club, error) {
	query := `
		SELECT id, nickname, creator, thumbnail_url, active, created_at, updated_at
		FROM clubs
		WHERE id = $1 AND active = TRUE`

	return r.scanClub(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresClubRepository) List(ctx context.Context, skip, limit int) ([]models.Club, error) {
	query := `
		SELECT id, nickname, creator, thumbnail_url, active, created_at, updated_at
		FROM clubs
		WHERE active = TRUE
		ORDER BY id
		OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
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

func (r *postgresClubRepository) Update(ctx context.Context, club *models.Club) error {
	query := `
		UPDATE clubs SET
			nickname = $1,
			creator = $2,
			thumbnail_url = $3,
			updated_at = $4
		WHERE id = $5 AND active = TRUE`

	result, err := r.db.ExecContext(ctx, query,
		club.Nickname,
		club.Creator,
		club.ThumbnailURL,
		club.UpdatedAt,
		club.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrClubNotFound)
}

func (r *postgresClubRepository) Deactivate(ctx context.Context, id int, now time.Time) (*models.Club, error) {
	query := `
		UPDATE clubs SET active = FALSE, updated_at = $2
		WHERE id = $1 AND active = TRUE
		RETURNING id, nickname, creator, thumbnail_url, active, created_at, updated_at`

	return r.scanClub(r.db.QueryRowContext(ctx, query, id, now))
}

func (r *postgresClubRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM clubs WHERE active = TRUE`).Scan(&count)
	return count, err
}

func (r *postgresClubRepository) scanClub(row *sql.Row) (*models.Club, error) {
	club := &models.Club{}
	err := row.Scan(
		&club.ID,
		&club.Nickname,
		&club.Creator,
		&club.ThumbnailURL,
		&club.Active,
		&club.CreatedAt,
		&club.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return club, nil
}
