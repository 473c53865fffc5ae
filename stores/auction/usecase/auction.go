package usecase

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/auction"
	"github.com/1xGiraffe/basilisk-core/domain/chain"
	"github.com/1xGiraffe/basilisk-core/domain/event"
	"github.com/1xGiraffe/basilisk-core/domain/ledger"
	"github.com/1xGiraffe/basilisk-core/domain/nft"
)

const closeExpiredBatch = 100

type auctionUseCase struct {
	txn      domain.TxnRunner
	repo     auction.Repo
	currency ledger.Currency
	nft      nft.Registry
	events   event.Repo
	clock    chain.Clock
	cfg      auction.Config
}

func New(
	txn domain.TxnRunner,
	repo auction.Repo,
	currency ledger.Currency,
	nftRegistry nft.Registry,
	events event.Repo,
	clock chain.Clock,
	cfg auction.Config,
) auction.UseCase {
	return &auctionUseCase{
		txn:      txn,
		repo:     repo,
		currency: currency,
		nft:      nftRegistry,
		events:   events,
		clock:    clock,
		cfg:      cfg,
	}
}

func (u *auctionUseCase) Create(c bCtx.Ctx, caller domain.AccountId, spec *auction.Spec) (domain.AuctionId, error) {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return 0, err
	}
	if !spec.Owner.Equals(caller) {
		return 0, domain.ErrNotATokenOwner
	}
	if err := auction.ValidateSpec(u.cfg, spec, now); err != nil {
		return 0, err
	}

	var id domain.AuctionId
	err = u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		isOwner, err := u.nft.IsOwner(c, caller, spec.Token)
		if err != nil {
			return err
		}
		if !isOwner {
			return domain.ErrNotATokenOwner
		}

		// at most one open auction may freeze a token
		if _, err := u.repo.FindOpenByToken(c, spec.Token); err == nil {
			return domain.ErrAuctionExistForToken
		} else if err != domain.ErrNotFound {
			return err
		}

		if err := u.nft.Freeze(c, spec.Token); err != nil {
			return err
		}

		id, err = u.repo.NextId(c)
		if err != nil {
			return err
		}

		a := &auction.Auction{
			Id:           id,
			Name:         spec.Name,
			Start:        spec.Start,
			End:          spec.End,
			Owner:        spec.Owner,
			Type:         spec.Type,
			Token:        spec.Token,
			NextBidMin:   spec.NextBidMin,
			ReservePrice: spec.ReservePrice,
			MinimalBid:   spec.MinimalBid,
		}
		if err := u.repo.Insert(c, a); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindAuctionCreated, now, map[string]interface{}{
			"owner":     spec.Owner,
			"auctionId": id,
		})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (u *auctionUseCase) Update(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId, spec *auction.Spec) error {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return err
	}

	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		a, err := u.load(c, id)
		if err != nil {
			return err
		}
		if !a.Owner.Equals(caller) {
			return domain.ErrNotAuctionOwner
		}
		if a.HasBid() {
			return domain.ErrAuctionAlreadyStarted
		}
		if spec.Type != a.Type {
			return domain.ErrNoChangeOfAuctionType
		}
		if !spec.Owner.Equals(a.Owner) {
			return domain.ErrNotAuctionOwner
		}
		if spec.Token != a.Token {
			return domain.ErrBadParamInput
		}
		if err := auction.ValidateSpec(u.cfg, spec, now); err != nil {
			return err
		}

		a.Name = spec.Name
		a.Start = spec.Start
		a.End = spec.End
		a.NextBidMin = spec.NextBidMin
		a.ReservePrice = spec.ReservePrice
		a.MinimalBid = spec.MinimalBid
		return u.repo.Update(c, a)
	})
}

func (u *auctionUseCase) Bid(c bCtx.Ctx, bidder domain.AccountId, id domain.AuctionId, amount string) error {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return err
	}

	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		a, err := u.load(c, id)
		if err != nil {
			return err
		}
		if a.Closed {
			return domain.ErrAuctionAlreadyClosed
		}
		if now < a.Start {
			return domain.ErrAuctionNotStarted
		}
		if now >= a.End {
			return domain.ErrAuctionEndTimeReached
		}
		if a.Owner.Equals(bidder) {
			return domain.ErrForbidden
		}

		switch a.Type {
		case auction.TypeEnglish:
			return u.bidEnglish(c, a, bidder, amount, now)
		default:
			return domain.ErrBadParamInput
		}
	})
}

// bidEnglish replaces the leading escrow lock, advances the minimum for
// the next bid and applies the anti-sniping extension. The caller runs
// it inside a transaction, a failed lock leaves no partial state.
func (u *auctionUseCase) bidEnglish(c bCtx.Ctx, a *auction.Auction, bidder domain.AccountId, amount string, now domain.BlockNumber) error {
	amt, err := domain.ParseAmount(amount)
	if err != nil {
		return domain.ErrInvalidBidPrice
	}
	nextBidMin, err := domain.ParseAmount(a.NextBidMin)
	if err != nil {
		return err
	}
	if amt.LessThan(nextBidMin) {
		return domain.ErrInvalidBidPrice
	}

	lockId := domain.AuctionLockId(a.Id)
	if a.LastBid != nil {
		if err := u.currency.RemoveLock(c, lockId, a.LastBid.Bidder); err != nil {
			return err
		}
	}
	if err := u.currency.SetLock(c, lockId, bidder, amount); err != nil {
		return err
	}

	a.LastBid = &auction.Bid{Bidder: bidder, Amount: amount, Block: now}
	a.NextBidMin = auction.NextBidMinAfter(u.cfg, amt).String()
	a.End = auction.ExtendEnd(u.cfg, now, a.End)

	if err := u.repo.Update(c, a); err != nil {
		return err
	}
	return u.recordEvent(c, event.KindBidPlaced, now, map[string]interface{}{
		"auctionId": a.Id,
		"bidder":    bidder,
		"amount":    amount,
	})
}

func (u *auctionUseCase) Close(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId) error {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return err
	}

	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		a, err := u.load(c, id)
		if err != nil {
			return err
		}
		if a.Closed {
			return domain.ErrAuctionAlreadyClosed
		}
		if now < a.End {
			return domain.ErrAuctionEndTimeNotReached
		}

		switch a.Type {
		case auction.TypeEnglish:
			return u.closeEnglish(c, a, now)
		default:
			return domain.ErrBadParamInput
		}
	})
}

// closeEnglish settles the auction: the token is unfrozen, and with a
// winning bid the escrow is released and paid to the owner while the
// token moves to the winner. The payment transfer keeps the bidder
// alive, an existential-deposit violation fails the whole close.
func (u *auctionUseCase) closeEnglish(c bCtx.Ctx, a *auction.Auction, now domain.BlockNumber) error {
	if err := u.nft.Unfreeze(c, a.Token); err != nil {
		return err
	}

	if a.LastBid != nil {
		winner := a.LastBid.Bidder
		lockId := domain.AuctionLockId(a.Id)
		if err := u.currency.RemoveLock(c, lockId, winner); err != nil {
			return err
		}
		if err := u.currency.Transfer(c, winner, a.Owner, a.LastBid.Amount, true); err != nil {
			c.WithFields(log.Fields{
				"auctionId": a.Id,
				"winner":    winner,
				"err":       err,
			}).Error("winning bid transfer failed")
			return err
		}
		if err := u.nft.Transfer(c, a.Owner, a.Token, winner); err != nil {
			return err
		}
	}

	a.Closed = true
	if err := u.repo.Update(c, a); err != nil {
		return err
	}

	payload := map[string]interface{}{"auctionId": a.Id}
	if a.LastBid != nil {
		payload["winner"] = a.LastBid.Bidder
		payload["amount"] = a.LastBid.Amount
	}
	return u.recordEvent(c, event.KindAuctionClosed, now, payload)
}

// Claim is reserved for auction variants with reserve-price claim
// semantics. The English variant settles everything in Close.
func (u *auctionUseCase) Claim(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId) error {
	a, err := u.Get(c, id)
	if err != nil {
		return err
	}
	switch a.Type {
	case auction.TypeEnglish:
		return domain.ErrClaimsNotSupportedForThisAuctionType
	default:
		return domain.ErrBadParamInput
	}
}

func (u *auctionUseCase) Delete(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId) error {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return err
	}

	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		a, err := u.load(c, id)
		if err != nil {
			return err
		}
		if !a.Owner.Equals(caller) {
			return domain.ErrNotAuctionOwner
		}
		if a.HasBid() || now >= a.Start {
			return domain.ErrAuctionAlreadyStarted
		}

		if err := u.nft.Unfreeze(c, a.Token); err != nil {
			return err
		}
		if err := u.repo.Delete(c, a.Id); err != nil {
			return err
		}
		return u.recordEvent(c, event.KindAuctionRemoved, now, map[string]interface{}{
			"auctionId": a.Id,
		})
	})
}

func (u *auctionUseCase) Get(c bCtx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	return u.load(c, id)
}

func (u *auctionUseCase) ListByOwner(c bCtx.Ctx, owner domain.AccountId, offset, limit int) ([]*auction.Auction, error) {
	return u.repo.ListByOwner(c, owner, offset, limit)
}

func (u *auctionUseCase) CloseExpired(c bCtx.Ctx) (int, error) {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return 0, err
	}

	expired, err := u.repo.FindExpired(c, now, closeExpiredBatch)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, a := range expired {
		// each settlement is its own transaction, one stuck auction must
		// not block the rest of the batch
		if err := u.Close(c, a.Owner, a.Id); err != nil {
			c.WithFields(log.Fields{"auctionId": a.Id, "err": err}).Error("close expired auction failed")
			continue
		}
		closed++
	}
	return closed, nil
}

func (u *auctionUseCase) load(c bCtx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	a, err := u.repo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrAuctionNotExist
	} else if err != nil {
		return nil, err
	}
	return a, nil
}

func (u *auctionUseCase) recordEvent(c bCtx.Ctx, kind event.Kind, now domain.BlockNumber, payload map[string]interface{}) error {
	return u.events.Insert(c, event.New(kind, now, payload))
}
