package repositories

import (
	"database/sql"
	"fmt"
)

// checkAffectedRows maps "zero rows touched" onto the caller's not-found
// sentinel so soft-delete and update paths stay idempotent.
func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}
