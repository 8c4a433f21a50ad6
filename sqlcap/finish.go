package sqlcap

import (
	"fmt"

	"github.com/GeorgeMac/mockless"
)

// Finish finalises a transaction from a deferred context.
// When the function's error result is nil, Finish commits and records the
// commit error in it; otherwise it rolls back, keeping the original error
// value so the root cause is not obscured.
//
// Usage:
//
//	func (s Service) Update(db *sql.DB) (returnErr error) {
//		tx, err := db.Begin()
//		if err != nil {
//			return err
//		}
//		defer sqlcap.Finish(&returnErr, tx)
//		...
//	}
func Finish(returnErr *error, tx CommitRollbacker) {
	if returnErr == nil {
		panic(fmt.Errorf(`error pointer cannot be nil for Finish`))
	}
	if *returnErr != nil {
		*returnErr = mockless.Merge(*returnErr, tx.Rollback())
		return
	}
	*returnErr = tx.Commit()
}
