package doubles

import (
	"database/sql"
	"reflect"

	"github.com/GeorgeMac/mockless"
)

// Call is a single recorded capability method invocation,
// with the statement and arguments exactly as they were received.
type Call struct {
	Method string
	Query  string
	Args   []any
}

// RecorderConn is a recording test double for the statement capabilities.
// Every call is appended to Calls in the order received, then the
// pre-configured result fields are returned as they are,
// without wrapping or logging, so tests can assert on error identity.
//
// The zero value records and returns zero results;
// assign the result fields the subject under test should receive.
type RecorderConn struct {
	Calls []Call

	ExecResult sql.Result
	ExecErr    error
	QueryRows  *sql.Rows
	QueryErr   error
	Row        *sql.Row
}

func (rec *RecorderConn) Exec(query string, args ...any) (sql.Result, error) {
	rec.record(`Exec`, query, args)
	return rec.ExecResult, rec.ExecErr
}

func (rec *RecorderConn) Query(query string, args ...any) (*sql.Rows, error) {
	rec.record(`Query`, query, args)
	return rec.QueryRows, rec.QueryErr
}

func (rec *RecorderConn) QueryRow(query string, args ...any) *sql.Row {
	rec.record(`QueryRow`, query, args)
	return rec.Row
}

func (rec *RecorderConn) record(method, query string, args []any) {
	rec.Calls = append(rec.Calls, Call{Method: method, Query: query, Args: args})
}

// LastCall returns the most recent recorded call.
func (rec *RecorderConn) LastCall() Call {
	return rec.Calls[len(rec.Calls)-1]
}

// ExecCalls returns the recorded Exec calls in order.
func (rec *RecorderConn) ExecCalls() []Call { return rec.callsTo(`Exec`) }

// QueryCalls returns the recorded Query calls in order.
func (rec *RecorderConn) QueryCalls() []Call { return rec.callsTo(`Query`) }

// QueryRowCalls returns the recorded QueryRow calls in order.
func (rec *RecorderConn) QueryRowCalls() []Call { return rec.callsTo(`QueryRow`) }

func (rec *RecorderConn) callsTo(method string) []Call {
	var calls []Call
	for _, call := range rec.Calls {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

// ExpectExec verifies that exactly one Exec call was recorded,
// and that it carried the given statement and argument sequence.
// Mismatches are reported through the given test reporter
// as expected-vs-actual failures.
func (rec *RecorderConn) ExpectExec(tb mockless.T, query string, args ...any) {
	tb.Helper()
	calls := rec.ExecCalls()
	if len(calls) != 1 {
		tb.Errorf(`RecorderConn: expected exactly one Exec call, got %d`, len(calls))
		return
	}
	expectCall(tb, `RecorderConn.Exec`, calls[0], query, args)
}

func expectCall(tb mockless.T, subject string, got Call, query string, args []any) {
	tb.Helper()
	if got.Query != query {
		tb.Errorf("%s: statement mismatch\nexpected: %q\nactual:   %q", subject, query, got.Query)
	}
	if len(got.Args) != len(args) {
		tb.Errorf("%s: expected %d arguments, got %d\nexpected: %v\nactual:   %v",
			subject, len(args), len(got.Args), args, got.Args)
		return
	}
	for i := range args {
		if !reflect.DeepEqual(got.Args[i], args[i]) {
			tb.Errorf("%s: argument %d mismatch\nexpected: %v\nactual:   %v",
				subject, i, args[i], got.Args[i])
		}
	}
}
