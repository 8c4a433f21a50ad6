package doubles

import (
	"database/sql"

	"github.com/GeorgeMac/mockless"
	"github.com/GeorgeMac/mockless/sqlcap"
)

// StubTx is a field-backed test double for the full transaction capability set.
// It follows the same rules as StubConn: configured fields win, then the
// embedded fallback, then a panic with mockless.ErrUnset.
type StubTx struct {
	sqlcap.Tx
	ExecFunc     func(query string, args ...any) (sql.Result, error)
	QueryFunc    func(query string, args ...any) (*sql.Rows, error)
	QueryRowFunc func(query string, args ...any) *sql.Row
	CommitFunc   func() error
	RollbackFunc func() error
}

func (stub *StubTx) Exec(query string, args ...any) (sql.Result, error) {
	if stub.ExecFunc != nil {
		return stub.ExecFunc(query, args...)
	}
	if stub.Tx != nil {
		return stub.Tx.Exec(query, args...)
	}
	panic(mockless.ErrUnset.F(`StubTx.Exec`))
}

func (stub *StubTx) Query(query string, args ...any) (*sql.Rows, error) {
	if stub.QueryFunc != nil {
		return stub.QueryFunc(query, args...)
	}
	if stub.Tx != nil {
		return stub.Tx.Query(query, args...)
	}
	panic(mockless.ErrUnset.F(`StubTx.Query`))
}

func (stub *StubTx) QueryRow(query string, args ...any) *sql.Row {
	if stub.QueryRowFunc != nil {
		return stub.QueryRowFunc(query, args...)
	}
	if stub.Tx != nil {
		return stub.Tx.QueryRow(query, args...)
	}
	panic(mockless.ErrUnset.F(`StubTx.QueryRow`))
}

func (stub *StubTx) Commit() error {
	if stub.CommitFunc != nil {
		return stub.CommitFunc()
	}
	if stub.Tx != nil {
		return stub.Tx.Commit()
	}
	panic(mockless.ErrUnset.F(`StubTx.Commit`))
}

func (stub *StubTx) Rollback() error {
	if stub.RollbackFunc != nil {
		return stub.RollbackFunc()
	}
	if stub.Tx != nil {
		return stub.Tx.Rollback()
	}
	panic(mockless.ErrUnset.F(`StubTx.Rollback`))
}
