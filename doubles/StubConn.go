package doubles

import (
	"database/sql"

	"github.com/GeorgeMac/mockless"
	"github.com/GeorgeMac/mockless/sqlcap"
)

// StubConn is a field-backed test double for the statement capabilities.
// Assign behaviour to the Func field of each method the subject is expected
// to reach. A method whose field is unset delegates to the embedded fallback
// when one is present, and otherwise panics with mockless.ErrUnset,
// since an unconfigured stub call is a bug in the test's own setup.
type StubConn struct {
	sqlcap.Conn
	ExecFunc     func(query string, args ...any) (sql.Result, error)
	QueryFunc    func(query string, args ...any) (*sql.Rows, error)
	QueryRowFunc func(query string, args ...any) *sql.Row
}

func (stub *StubConn) Exec(query string, args ...any) (sql.Result, error) {
	if stub.ExecFunc != nil {
		return stub.ExecFunc(query, args...)
	}
	if stub.Conn != nil {
		return stub.Conn.Exec(query, args...)
	}
	panic(mockless.ErrUnset.F(`StubConn.Exec`))
}

func (stub *StubConn) Query(query string, args ...any) (*sql.Rows, error) {
	if stub.QueryFunc != nil {
		return stub.QueryFunc(query, args...)
	}
	if stub.Conn != nil {
		return stub.Conn.Query(query, args...)
	}
	panic(mockless.ErrUnset.F(`StubConn.Query`))
}

func (stub *StubConn) QueryRow(query string, args ...any) *sql.Row {
	if stub.QueryRowFunc != nil {
		return stub.QueryRowFunc(query, args...)
	}
	if stub.Conn != nil {
		return stub.Conn.QueryRow(query, args...)
	}
	panic(mockless.ErrUnset.F(`StubConn.QueryRow`))
}
