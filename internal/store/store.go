// Package store provides focused, single-concern data access stores
// for the orgatlas directory.
//
// Each store owns one entity (buildings, organizations, phone numbers,
// business categories) and embeds shared helpers (Pool, logger) via the
// Base struct. Stores never import each other; shared logic lives in
// this file or in dedicated helper files (geo.go, scan.go, relations.go).
//
// Every mutation runs inside a single transaction: existence and
// uniqueness checks, relation-set replacement and the write itself
// either all commit or all roll back. Uniqueness and referential
// failures that slip past the proactive checks (concurrent writers) are
// translated from Postgres constraint violations into the sentinel
// errors in internal/models, never surfaced raw.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/orgatlas/orgatlas/internal/dbpool"
)

const defaultQueryTimeout = 30 * time.Second

// Base contains shared dependencies for all stores.
// Embed this in each store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// beginTx starts a read-write transaction.
func (b *Base) beginTx(ctx context.Context) (pgx.Tx, error) {
	return b.Pool.Begin(ctx)
}

// beginReadTx starts a read-only transaction.
func (b *Base) beginReadTx(ctx context.Context) (pgx.Tx, error) {
	return b.Pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Used to translate lost races on unique keys (the proactive
// checks cannot see uncommitted concurrent inserts).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// isForeignKeyViolation reports whether err is a Postgres FK violation.
// This is the one failure detected by attempting the write rather than
// by a prior lookup: deleting a building that organizations still
// reference.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
