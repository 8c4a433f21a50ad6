package doubles_test

import (
	"fmt"
	"testing"

	"github.com/GeorgeMac/mockless/doubles"
	"github.com/GeorgeMac/mockless/sqlcap"
	"github.com/stretchr/testify/require"
)

var (
	_ sqlcap.Conn             = &doubles.RecorderTx{}
	_ sqlcap.ExecCommitter    = &doubles.RecorderTx{}
	_ sqlcap.CommitRollbacker = &doubles.RecorderTx{}
	_ sqlcap.Tx               = &doubles.RecorderTx{}
)

func ExampleRecorderTx() {
	saveAll := func(tx sqlcap.ExecCommitter, values ...int) error {
		for _, v := range values {
			if _, err := tx.Exec(`INSERT INTO samples (v) VALUES (?)`, v); err != nil {
				return err
			}
		}
		return tx.Commit()
	}

	rec := &doubles.RecorderTx{}
	if err := saveAll(rec, 1, 2, 3); err != nil {
		panic(err)
	}

	fmt.Println(len(rec.ExecCalls()), len(rec.CommitCalls()))
	// Output: 3 1
}

func TestRecorderTx_smoke(t *testing.T) {
	var (
		commitErr   = fmt.Errorf(`CommitErr`)
		rollbackErr = fmt.Errorf(`RollbackErr`)
	)
	rec := &doubles.RecorderTx{CommitErr: commitErr, RollbackErr: rollbackErr}

	require.Equal(t, commitErr, rec.Commit())
	require.Equal(t, rollbackErr, rec.Rollback())
	require.Len(t, rec.CommitCalls(), 1)
	require.Len(t, rec.RollbackCalls(), 1)
}

func TestRecorderTx_ordersStatementAndFinalisationCalls(t *testing.T) {
	rec := &doubles.RecorderTx{}

	_, _ = rec.Exec(`INSERT INTO t (c) VALUES (?)`, 1)
	_, _ = rec.Exec(`INSERT INTO t (c) VALUES (?)`, 2)
	_ = rec.Commit()

	var methods []string
	for _, call := range rec.Calls {
		methods = append(methods, call.Method)
	}
	require.Equal(t, []string{`Exec`, `Exec`, `Commit`}, methods)
}

func TestRecorderTx_commitCallsCarryNoPayload(t *testing.T) {
	rec := &doubles.RecorderTx{}
	_ = rec.Commit()

	call := rec.LastCall()
	require.Equal(t, `Commit`, call.Method)
	require.Empty(t, call.Query)
	require.Empty(t, call.Args)
}

func TestRecorderTx_ExpectCommits(t *testing.T) {
	t.Run(`matching count reports nothing`, func(t *testing.T) {
		rec := &doubles.RecorderTx{}
		_ = rec.Commit()

		r := &recordingT{}
		rec.ExpectCommits(r, 1)
		require.Empty(t, r.failures)
	})

	t.Run(`count mismatch is reported`, func(t *testing.T) {
		rec := &doubles.RecorderTx{}
		_ = rec.Commit()
		_ = rec.Commit()

		r := &recordingT{}
		rec.ExpectCommits(r, 1)
		require.Len(t, r.failures, 1)
		require.Contains(t, r.failures[0], `1`)
		require.Contains(t, r.failures[0], `2`)
	})

	t.Run(`a hand-seeded commit entry with payload is flagged`, func(t *testing.T) {
		rec := &doubles.RecorderTx{}
		rec.Calls = append(rec.Calls, doubles.Call{Method: `Commit`, Query: `oops`})

		r := &recordingT{}
		rec.ExpectCommits(r, 1)
		require.Len(t, r.failures, 1)
		require.Contains(t, r.failures[0], `oops`)
	})
}

func TestRecorderTx_ExpectRollbacks(t *testing.T) {
	rec := &doubles.RecorderTx{}
	_ = rec.Rollback()

	r := &recordingT{}
	rec.ExpectRollbacks(r, 1)
	require.Empty(t, r.failures)

	rec.ExpectRollbacks(r, 2)
	require.Len(t, r.failures, 1)
}
