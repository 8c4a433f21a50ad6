package doubles

import (
	"database/sql"
	"reflect"
	"unsafe"
)

// ErrRow returns a *sql.Row that yields err from both Scan and Err,
// so a stubbed QueryRow can report failures such as sql.ErrNoRows
// without a live driver. err must not be nil.
func ErrRow(err error) *sql.Row {
	var row sql.Row
	field := reflect.ValueOf(&row).Elem().FieldByName("err")
	reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).
		Elem().
		Set(reflect.ValueOf(err))
	return &row
}
