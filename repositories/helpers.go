package repositories

import (
	"database/sql"
	"fmt"

	"github.com/AldereteMatias1/Asistencia-Futbol/db"
)

// SQLExecutor is the executor repositories receive from the service layer's
// unit of work: *sql.DB for pooled reads, *sql.Tx inside a transaction.
type SQLExecutor = db.Executor

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
