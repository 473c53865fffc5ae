package domain

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
)

// TxnRunner is the all-or-nothing boundary for state transitions. Every
// usecase operation runs inside exactly one transaction, any error
// unwinds all record, balance and event writes issued within it.
// query.Mongo satisfies this interface.
type TxnRunner interface {
	RunWithTransaction(c bCtx.Ctx, run func(bCtx.Ctx) error) error
}
