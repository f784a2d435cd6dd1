package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/yoapunto/yoapunto-api/models"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountEmailConflict = errors.New("account email conflict")
	ErrAccountClubInvalid   = errors.New("account club missing or invalid")
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int) (*models.Account, error)
	// GetByEmail matches case-insensitively and ignores the active flag:
	// a soft-deleted account keeps its address reserved.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	List(ctx context.Context, skip, limit int) ([]models.Account, error)
	ListByClub(ctx context.Context, clubID, skip, limit int) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	UpdatePassword(ctx context.Context, id int, digest string, now time.Time) error
	UpdateLastLogin(ctx context.Context, id int, now time.Time) error
	Deactivate(ctx context.Context, id int, now time.Time) (*models.Account, error)
	CountActive(ctx context.Context) (int, error)
}

type postgresAccountRepository struct {
	db *sql.DB
}

func NewPostgresAccountRepository(db *sql.DB) AccountRepository {
	return &postgresAccountRepository{db: db}
}

const accountColumns = `id, email_address, first_name, last_name, password_digest,
	club_id, active, email_verified, last_login_at, created_at, updated_at`

func (r *postgresAccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (email_address, first_name, last_name, password_digest, club_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, active, email_verified, created_at`

	err := r.db.QueryRowContext(ctx, query,
		account.EmailAddress,
		account.FirstName,
		account.LastName,
		account.PasswordDigest,
		account.ClubID,
	).Scan(&account.ID, &account.Active, &account.EmailVerified, &account.CreatedAt)

	if err != nil {
		return mapAccountConstraintError(err)
	}
	return nil
}

func (r *postgresAccountRepository) GetByID(ctx context.Context, id int) (*models.Account, error) {
	// Joins the owning club so GET /accounts/{id} can nest it.
	query := `
		SELECT
			a.id, a.email_address, a.first_name, a.last_name, a.password_digest,
			a.club_id, a.active, a.email_verified, a.last_login_at, a.created_at, a.updated_at,
			c.id, c.nickname, c.creator, c.thumbnail_url, c.active, c.created_at, c.updated_at
		FROM accounts a
		JOIN clubs c ON a.club_id = c.id
		WHERE a.id = $1 AND a.active = TRUE`

	row := r.db.QueryRowContext(ctx, query, id)

	var account models.Account
	var club models.Club

	err := row.Scan(
		&account.ID,
		&account.EmailAddress,
		&account.FirstName,
		&account.LastName,
		&account.PasswordDigest,
		&account.ClubID,
		&account.Active,
		&account.EmailVerified,
		&account.LastLoginAt,
		&account.CreatedAt,
		&account.UpdatedAt,
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
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan account with club: %w", err)
	}

	account.Club = &club
	return &account, nil
}

func (r *postgresAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE lower(email_address) = lower($1)`

	return r.scanAccount(ctx, query, email)
}

func (r *postgresAccountRepository) List(ctx context.Context, skip, limit int) ([]models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE active = TRUE
		ORDER BY id
		OFFSET $1 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *postgresAccountRepository) ListByClub(ctx context.Context, clubID, skip, limit int) ([]models.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE club_id = $1 AND active = TRUE
		ORDER BY id
		OFFSET $2 LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, clubID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *postgresAccountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts SET
			email_address = $1,
			first_name = $2,
			last_name = $3,
			club_id = $4,
			email_verified = $5,
			updated_at = $6
		WHERE id = $7 AND active = TRUE`

	result, err := r.db.ExecContext(ctx, query,
		account.EmailAddress,
		account.FirstName,
		account.LastName,
		account.ClubID,
		account.EmailVerified,
		account.UpdatedAt,
		account.ID,
	)
	if err != nil {
		return mapAccountConstraintError(err)
	}
	return checkAffectedRows(result, ErrAccountNotFound)
}

func (r *postgresAccountRepository) UpdatePassword(ctx context.Context, id int, digest string, now time.Time) error {
	query := `
		UPDATE accounts SET password_digest = $2, updated_at = $3
		WHERE id = $1 AND active = TRUE`

	result, err := r.db.ExecContext(ctx, query, id, digest, now)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAccountNotFound)
}

func (r *postgresAccountRepository) UpdateLastLogin(ctx context.Context, id int, now time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET last_login_at = $2 WHERE id = $1`, id, now)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrAccountNotFound)
}

func (r *postgresAccountRepository) Deactivate(ctx context.Context, id int, now time.Time) (*models.Account, error) {
	query := `
		UPDATE accounts SET active = FALSE, updated_at = $2
		WHERE id = $1 AND active = TRUE
		RETURNING ` + accountColumns

	return r.scanAccount(ctx, query, id, now)
}

func (r *postgresAccountRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM accounts WHERE active = TRUE`).Scan(&count)
	return count, err
}

func (r *postgresAccountRepository) scanAccount(ctx context.Context, query string, args ...interface{}) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.EmailAddress,
		&account.FirstName,
		&account.LastName,
		&account.PasswordDigest,
		&account.ClubID,
		&account.Active,
		&account.EmailVerified,
		&account.LastLoginAt,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func collectAccounts(rows *sql.Rows) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID,
			&account.EmailAddress,
			&account.FirstName,
			&account.LastName,
			&account.PasswordDigest,
			&account.ClubID,
			&account.Active,
			&account.EmailVerified,
			&account.LastLoginAt,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// mapAccountConstraintError translates postgres constraint violations into
// the repository sentinels; the unique index is the source of truth for the
// duplicate-email policy, the service pre-check only shortcuts the common
// path.
func mapAccountConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			if pqErr.Constraint == "accounts_email_address_lower_key" {
				return ErrAccountEmailConflict
			}
		case "23503": // foreign_key_violation
			if pqErr.Constraint == "accounts_club_id_fkey" {
				return ErrAccountClubInvalid
			}
		}
	}
	return err
}
