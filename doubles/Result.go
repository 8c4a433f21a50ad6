package doubles

import "database/sql"

var _ sql.Result = Result{}

// Result is a configurable sql.Result,
// so stubbed Exec returns need no driver behind them.
type Result struct {
	LastID    int64
	Rows      int64
	LastIDErr error
	RowsErr   error
}

func (r Result) LastInsertId() (int64, error) { return r.LastID, r.LastIDErr }

func (r Result) RowsAffected() (int64, error) { return r.Rows, r.RowsErr }
