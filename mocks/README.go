// Package mocks provides pregenerated gomock files for the sqlcap interfaces.
// The primary goal for this pkg is to test rainy paths in your interactors
// with strict call expectations, which is more ceremony than the doubles
// package asks for; reach for these when a test must fail on any
// interaction it did not explicitly expect.
// For everything else the hand-rolled doubles read better and need no
// controller lifecycle.
package mocks

//go:generate mockgen -package mocks -destination MockConn.go github.com/GeorgeMac/mockless/sqlcap Conn
//go:generate mockgen -package mocks -destination MockTx.go github.com/GeorgeMac/mockless/sqlcap Tx
