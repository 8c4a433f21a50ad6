/*
Package doubles provides hand-rolled test doubles for the sqlcap capability
interfaces.

# Summary

Two families cover most testing needs. The field-backed stubs (StubConn,
StubTx) hold one function field per capability method, so each test injects
exactly the behaviour its scenario needs, as a closure, without declaring a
new type per scenario. The recording stubs (RecorderConn, RecorderTx) capture
every call in an ordered log and hand back pre-configured results, so tests
can assert afterwards on what the subject actually sent to its dependency.

A third, smaller family scripts sequences: ExecScript and CommitScript replay
a prepared list of outcomes call by call, which suits retry and
fail-then-recover scenarios. Their methods are ordinary method values, so
they slot straight into a stub's function fields:

	tx := &doubles.StubTx{
		ExecFunc:   script.Exec,
		CommitFunc: commits.Commit,
	}

All doubles here are owned by the test that constructs them. Construct a
fresh one per test, do not share instances between parallel tests; none of
them lock internally.
*/
package doubles
