package ledger

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
)

// Account is one ledger entry. Free is the total balance, Locks reduce
// the transferable part without reducing Free.
type Account struct {
	Account domain.AccountId `json:"account" bson:"account"`
	Free    string           `json:"free" bson:"free"`
	Locks   map[string]string `json:"locks" bson:"locks"`
}

// Currency is the escrow bridge to the balance ledger. SetLock
// idempotently replaces any lock held under id for the account,
// RemoveLock is a no-op when absent. Transfer with keepAlive fails with
// ErrBelowExistential instead of reducing the source below the
// existential deposit, and that failure aborts the enclosing
// transaction.
type Currency interface {
	SetLock(c bCtx.Ctx, id domain.LockId, account domain.AccountId, amount string) error
	RemoveLock(c bCtx.Ctx, id domain.LockId, account domain.AccountId) error
	Transfer(c bCtx.Ctx, from, to domain.AccountId, amount string, keepAlive bool) error
	FreeBalance(c bCtx.Ctx, account domain.AccountId) (string, error)
}

type Repo interface {
	Currency

	// Deposit mints amount into the account, used to fund farm pots
	Deposit(c bCtx.Ctx, account domain.AccountId, amount string) error
}
