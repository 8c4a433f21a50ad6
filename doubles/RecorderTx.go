package doubles

import "github.com/GeorgeMac/mockless"

// RecorderTx extends RecorderConn with the transaction finalisation
// capabilities. Commit and Rollback calls land in the same ordered log
// as the statement calls, so interleavings can be asserted on.
type RecorderTx struct {
	RecorderConn

	CommitErr   error
	RollbackErr error
}

func (rec *RecorderTx) Commit() error {
	rec.record(`Commit`, ``, nil)
	return rec.CommitErr
}

func (rec *RecorderTx) Rollback() error {
	rec.record(`Rollback`, ``, nil)
	return rec.RollbackErr
}

// CommitCalls returns the recorded Commit calls in order.
func (rec *RecorderTx) CommitCalls() []Call { return rec.callsTo(`Commit`) }

// RollbackCalls returns the recorded Rollback calls in order.
func (rec *RecorderTx) RollbackCalls() []Call { return rec.callsTo(`Rollback`) }

// ExpectCommits verifies that Commit was recorded exactly n times,
// each time without a statement or arguments.
func (rec *RecorderTx) ExpectCommits(tb mockless.T, n int) {
	tb.Helper()
	calls := rec.CommitCalls()
	if len(calls) != n {
		tb.Errorf(`RecorderTx: expected %d Commit call(s), got %d`, n, len(calls))
		return
	}
	for i, call := range calls {
		if call.Query != `` || len(call.Args) != 0 {
			tb.Errorf(`RecorderTx: Commit call %d carried payload: %q %v`, i, call.Query, call.Args)
		}
	}
}

// ExpectRollbacks verifies that Rollback was recorded exactly n times.
func (rec *RecorderTx) ExpectRollbacks(tb mockless.T, n int) {
	tb.Helper()
	if calls := rec.RollbackCalls(); len(calls) != n {
		tb.Errorf(`RecorderTx: expected %d Rollback call(s), got %d`, n, len(calls))
	}
}
