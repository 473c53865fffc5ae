package repository

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/ledger"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

type ledgerRepoImpl struct {
	q           query.Mongo
	existential decimal.Decimal
}

// NewLedgerRepo builds the balances repository. existentialDeposit is
// the smallest total balance an account must keep when a KeepAlive
// transfer debits it.
func NewLedgerRepo(q query.Mongo, existentialDeposit string) ledger.Repo {
	return &ledgerRepoImpl{q, decimal.RequireFromString(existentialDeposit)}
}

func (im *ledgerRepoImpl) load(c ctx.Ctx, account domain.AccountId) (*ledger.Account, error) {
	res := &ledger.Account{}
	err := im.q.FindOne(c, domain.TableBalances, bson.M{"account": account}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": account,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *ledgerRepoImpl) store(c ctx.Ctx, a *ledger.Account) error {
	err := im.q.Upsert(c, domain.TableBalances, bson.M{"account": a.Account}, a)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"account": a.Account,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

// parseStored guards against corrupted balance cells. Amounts written
// through this repository always round-trip, so a failure here means
// someone edited the collection by hand.
func parseStored(amount string) (decimal.Decimal, error) {
	amt, err := domain.ParseAmount(amount)
	if err != nil {
		return decimal.Decimal{}, xerrors.Errorf("invalid stored balance %q: %w", amount, err)
	}
	return amt, nil
}

// lockedOf is the account's strongest lock. Locks overlay, they do not
// stack: the frozen amount is the maximum, not the sum.
func lockedOf(a *ledger.Account) decimal.Decimal {
	max := decimal.Zero
	for _, amount := range a.Locks {
		amt, err := decimal.NewFromString(amount)
		if err != nil {
			continue
		}
		if amt.GreaterThan(max) {
			max = amt
		}
	}
	return max
}

func (im *ledgerRepoImpl) SetLock(c ctx.Ctx, id domain.LockId, account domain.AccountId, amount string) error {
	amt, err := domain.ParseAmount(amount)
	if err != nil {
		return err
	}

	a, err := im.load(c, account)
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		return err
	}

	free, err := parseStored(a.Free)
	if err != nil {
		return err
	}
	if amt.GreaterThan(free) {
		return domain.ErrInsufficientBalance
	}

	if a.Locks == nil {
		a.Locks = map[string]string{}
	}
	a.Locks[string(id)] = amount
	return im.store(c, a)
}

func (im *ledgerRepoImpl) RemoveLock(c ctx.Ctx, id domain.LockId, account domain.AccountId) error {
	a, err := im.load(c, account)
	if err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		return err
	}

	if _, ok := a.Locks[string(id)]; !ok {
		return nil
	}
	delete(a.Locks, string(id))
	return im.store(c, a)
}

func (im *ledgerRepoImpl) Transfer(c ctx.Ctx, from, to domain.AccountId, amount string, keepAlive bool) error {
	amt, err := domain.ParseAmount(amount)
	if err != nil {
		return err
	}
	if !amt.IsPositive() {
		return domain.ErrBadParamInput
	}

	src, err := im.load(c, from)
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		return err
	}

	free, err := parseStored(src.Free)
	if err != nil {
		return err
	}
	usable := free.Sub(lockedOf(src))
	if amt.GreaterThan(usable) {
		return domain.ErrInsufficientBalance
	}

	remaining := free.Sub(amt)
	if keepAlive && remaining.LessThan(im.existential) {
		return domain.ErrBelowExistential
	}

	dst, err := im.load(c, to)
	if err == domain.ErrNotFound {
		dst = &ledger.Account{Account: to, Free: "0"}
	} else if err != nil {
		return err
	}
	dstFree, err := parseStored(dst.Free)
	if err != nil {
		return err
	}

	src.Free = remaining.String()
	dst.Free = dstFree.Add(amt).String()

	if err := im.store(c, src); err != nil {
		return err
	}
	return im.store(c, dst)
}

func (im *ledgerRepoImpl) FreeBalance(c ctx.Ctx, account domain.AccountId) (string, error) {
	a, err := im.load(c, account)
	if err == domain.ErrNotFound {
		return "0", nil
	} else if err != nil {
		return "", err
	}
	return a.Free, nil
}

func (im *ledgerRepoImpl) Deposit(c ctx.Ctx, account domain.AccountId, amount string) error {
	amt, err := domain.ParseAmount(amount)
	if err != nil {
		return err
	}
	if !amt.IsPositive() {
		return domain.ErrBadParamInput
	}

	a, err := im.load(c, account)
	if err == domain.ErrNotFound {
		a = &ledger.Account{Account: account, Free: "0"}
	} else if err != nil {
		return err
	}

	free, err := parseStored(a.Free)
	if err != nil {
		return err
	}
	a.Free = free.Add(amt).String()
	return im.store(c, a)
}
