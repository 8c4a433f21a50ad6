package sqlcap

import "database/sql"

// One adapter exists per single-method capability. A single function value
// cannot stand in for a multi-method interface; code that needs Conn or Tx
// behaviour from closures should reach for the field-backed stubs in the
// doubles package instead.

// ExecerFunc enables standalone functions to be used as an Execer.
type ExecerFunc func(query string, args ...any) (sql.Result, error)

// Exec proxies the call to the wrapped function.
func (fn ExecerFunc) Exec(query string, args ...any) (sql.Result, error) {
	return fn(query, args...)
}

// QuerierFunc enables standalone functions to be used as a Querier.
type QuerierFunc func(query string, args ...any) (*sql.Rows, error)

// Query proxies the call to the wrapped function.
func (fn QuerierFunc) Query(query string, args ...any) (*sql.Rows, error) {
	return fn(query, args...)
}

// RowQuerierFunc enables standalone functions to be used as a RowQuerier.
type RowQuerierFunc func(query string, args ...any) *sql.Row

// QueryRow proxies the call to the wrapped function.
func (fn RowQuerierFunc) QueryRow(query string, args ...any) *sql.Row {
	return fn(query, args...)
}

// CommitterFunc enables standalone functions to be used as a Committer.
type CommitterFunc func() error

// Commit proxies the call to the wrapped function.
func (fn CommitterFunc) Commit() error {
	return fn()
}

// RollbackerFunc enables standalone functions to be used as a Rollbacker.
type RollbackerFunc func() error

// Rollback proxies the call to the wrapped function.
func (fn RollbackerFunc) Rollback() error {
	return fn()
}
