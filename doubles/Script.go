package doubles

import (
	"database/sql"

	"github.com/GeorgeMac/mockless"
	"github.com/eapache/queue"
)

// ExecScript replays a prepared sequence of Exec outcomes in FIFO order.
// Each call pops the next outcome; running past the end of the script
// panics with mockless.ErrUnset, the same way an unset stub field does.
type ExecScript struct {
	steps *queue.Queue
}

func NewExecScript() *ExecScript {
	return &ExecScript{}
}

type execStep struct {
	result sql.Result
	err    error
}

// OnExec appends the outcome of the next Exec call to the script.
func (script *ExecScript) OnExec(result sql.Result, err error) *ExecScript {
	if script.steps == nil {
		script.steps = queue.New()
	}
	script.steps.Add(execStep{result: result, err: err})
	return script
}

func (script *ExecScript) Exec(query string, args ...any) (sql.Result, error) {
	if script.steps == nil || script.steps.Length() == 0 {
		panic(mockless.ErrUnset.F(`ExecScript.Exec`))
	}
	step := script.steps.Remove().(execStep)
	return step.result, step.err
}

// Remaining tells how many scripted outcomes are left unconsumed,
// so tests can verify the whole script was played.
func (script *ExecScript) Remaining() int {
	if script.steps == nil {
		return 0
	}
	return script.steps.Length()
}

// CommitScript replays a prepared sequence of Commit outcomes in FIFO order,
// following the same rules as ExecScript.
type CommitScript struct {
	steps *queue.Queue
}

func NewCommitScript() *CommitScript {
	return &CommitScript{}
}

// OnCommit appends the outcome of the next Commit call to the script.
func (script *CommitScript) OnCommit(err error) *CommitScript {
	if script.steps == nil {
		script.steps = queue.New()
	}
	script.steps.Add(err)
	return script
}

func (script *CommitScript) Commit() error {
	if script.steps == nil || script.steps.Length() == 0 {
		panic(mockless.ErrUnset.F(`CommitScript.Commit`))
	}
	err, _ := script.steps.Remove().(error)
	return err
}

// Remaining tells how many scripted outcomes are left unconsumed.
func (script *CommitScript) Remaining() int {
	if script.steps == nil {
		return 0
	}
	return script.steps.Length()
}
