package booking

import (
	"context"
	"database/sql"

	"github.com/voyagecrest/charter-booking-service/pkg/dbmetrics"
)

// Database access goes through the dbmetrics interfaces so the repository
// works both with an instrumented pool and a plain *sql.DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
