// Package sqlcap declares capability interfaces over database/sql.
//
// Each interface names a single capability and carries the exact method
// signature of *sql.DB and *sql.Tx, so both satisfy them structurally,
// without adapters. Production code states the capabilities it consumes
// in its parameter types, nothing more.
package sqlcap

import "database/sql"

// Execer is the capability to execute a statement without returning rows.
// It is implemented by *sql.DB and *sql.Tx.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Querier is the capability to execute a statement that returns rows.
// It is implemented by *sql.DB and *sql.Tx.
type Querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// RowQuerier is the capability to execute a statement expected to return
// at most one row. It is implemented by *sql.DB and *sql.Tx.
type RowQuerier interface {
	QueryRow(query string, args ...any) *sql.Row
}

// Committer is the capability to commit the work done so far.
// It is implemented by *sql.Tx.
type Committer interface {
	Commit() error
}

// Rollbacker is the capability to abort the work done so far.
// It is implemented by *sql.Tx.
type Rollbacker interface {
	Rollback() error
}

// Conn unions the statement capabilities.
//
// Composed interfaces such as Conn belong in parameter position only.
// A function that hands back a connection should return the concrete type
// it has, and let the consumer state the capability set it needs.
type Conn interface {
	Execer
	Querier
	RowQuerier
}

// ExecCommitter unions statement execution with commit,
// for code that writes and then finalises in one unit of work.
type ExecCommitter interface {
	Execer
	Committer
}

// CommitRollbacker unions the two transaction finalisation capabilities.
// Finish consumes it from a deferred context.
type CommitRollbacker interface {
	Committer
	Rollbacker
}

// Tx unions every capability a transaction-scoped unit of work may use.
// It is implemented by *sql.Tx.
type Tx interface {
	Conn
	CommitRollbacker
}
