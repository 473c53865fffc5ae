package usecase

import (
	"fmt"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/auction"
	"github.com/1xGiraffe/basilisk-core/domain/event"
	"github.com/1xGiraffe/basilisk-core/domain/nft"
)

type fakeTxn struct{}

func (fakeTxn) RunWithTransaction(c bCtx.Ctx, run func(bCtx.Ctx) error) error {
	return run(c)
}

type fakeClock struct {
	block domain.BlockNumber
}

func (f *fakeClock) CurrentBlock(c bCtx.Ctx) (domain.BlockNumber, error) {
	return f.block, nil
}

type fakeAuctionRepo struct {
	lastId   uint64
	auctions map[domain.AuctionId]*auction.Auction
}

func newFakeAuctionRepo() *fakeAuctionRepo {
	return &fakeAuctionRepo{auctions: map[domain.AuctionId]*auction.Auction{}}
}

func (r *fakeAuctionRepo) NextId(c bCtx.Ctx) (domain.AuctionId, error) {
	r.lastId++
	return domain.AuctionId(r.lastId), nil
}

func (r *fakeAuctionRepo) FindOne(c bCtx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	a, ok := r.auctions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAuctionRepo) FindOpenByToken(c bCtx.Ctx, token domain.TokenId) (*auction.Auction, error) {
	for _, a := range r.auctions {
		if a.Token == token && !a.Closed {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeAuctionRepo) ListByOwner(c bCtx.Ctx, owner domain.AccountId, offset, limit int) ([]*auction.Auction, error) {
	res := []*auction.Auction{}
	for _, a := range r.auctions {
		if a.Owner.Equals(owner) {
			cp := *a
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	if offset >= len(res) {
		return []*auction.Auction{}, nil
	}
	res = res[offset:]
	if limit > 0 && limit < len(res) {
		res = res[:limit]
	}
	return res, nil
}

func (r *fakeAuctionRepo) FindExpired(c bCtx.Ctx, now domain.BlockNumber, limit int) ([]*auction.Auction, error) {
	res := []*auction.Auction{}
	for _, a := range r.auctions {
		if !a.Closed && a.End <= now {
			cp := *a
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Id < res[j].Id })
	if limit > 0 && limit < len(res) {
		res = res[:limit]
	}
	return res, nil
}

func (r *fakeAuctionRepo) Insert(c bCtx.Ctx, a *auction.Auction) error {
	cp := *a
	r.auctions[a.Id] = &cp
	return nil
}

func (r *fakeAuctionRepo) Update(c bCtx.Ctx, a *auction.Auction) error {
	if _, ok := r.auctions[a.Id]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	r.auctions[a.Id] = &cp
	return nil
}

func (r *fakeAuctionRepo) Delete(c bCtx.Ctx, id domain.AuctionId) error {
	delete(r.auctions, id)
	return nil
}

type fakeLedger struct {
	existential decimal.Decimal
	free        map[domain.AccountId]decimal.Decimal
	locks       map[domain.AccountId]map[domain.LockId]decimal.Decimal
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		existential: decimal.NewFromInt(1),
		free:        map[domain.AccountId]decimal.Decimal{},
		locks:       map[domain.AccountId]map[domain.LockId]decimal.Decimal{},
	}
}

func (l *fakeLedger) fund(account domain.AccountId, amount string) {
	l.free[account] = decimal.RequireFromString(amount)
}

func (l *fakeLedger) lockedOf(account domain.AccountId) decimal.Decimal {
	max := decimal.Zero
	for _, amt := range l.locks[account] {
		if amt.GreaterThan(max) {
			max = amt
		}
	}
	return max
}

func (l *fakeLedger) SetLock(c bCtx.Ctx, id domain.LockId, account domain.AccountId, amount string) error {
	amt := decimal.RequireFromString(amount)
	if amt.GreaterThan(l.free[account]) {
		return domain.ErrInsufficientBalance
	}
	if l.locks[account] == nil {
		l.locks[account] = map[domain.LockId]decimal.Decimal{}
	}
	l.locks[account][id] = amt
	return nil
}

func (l *fakeLedger) RemoveLock(c bCtx.Ctx, id domain.LockId, account domain.AccountId) error {
	delete(l.locks[account], id)
	return nil
}

func (l *fakeLedger) Transfer(c bCtx.Ctx, from, to domain.AccountId, amount string, keepAlive bool) error {
	amt := decimal.RequireFromString(amount)
	usable := l.free[from].Sub(l.lockedOf(from))
	if amt.GreaterThan(usable) {
		return domain.ErrInsufficientBalance
	}
	remaining := l.free[from].Sub(amt)
	if keepAlive && remaining.LessThan(l.existential) {
		return domain.ErrBelowExistential
	}
	l.free[from] = remaining
	l.free[to] = l.free[to].Add(amt)
	return nil
}

func (l *fakeLedger) FreeBalance(c bCtx.Ctx, account domain.AccountId) (string, error) {
	return l.free[account].String(), nil
}

type fakeNftRegistry struct {
	items map[domain.TokenId]*nft.Item
}

func newFakeNftRegistry() *fakeNftRegistry {
	return &fakeNftRegistry{items: map[domain.TokenId]*nft.Item{}}
}

func (r *fakeNftRegistry) mint(token domain.TokenId, owner domain.AccountId) {
	r.items[token] = &nft.Item{CollectionId: token.CollectionId, ItemId: token.ItemId, Owner: owner}
}

func (r *fakeNftRegistry) Get(c bCtx.Ctx, token domain.TokenId) (*nft.Item, error) {
	item, ok := r.items[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *fakeNftRegistry) IsOwner(c bCtx.Ctx, account domain.AccountId, token domain.TokenId) (bool, error) {
	item, ok := r.items[token]
	if !ok {
		return false, nil
	}
	return item.Owner.Equals(account), nil
}

func (r *fakeNftRegistry) Transfer(c bCtx.Ctx, origin domain.AccountId, token domain.TokenId, destination domain.AccountId) error {
	item, ok := r.items[token]
	if !ok {
		return domain.ErrNotFound
	}
	if item.Frozen {
		return domain.ErrTokenFrozen
	}
	if !item.Owner.Equals(origin) {
		return domain.ErrNotATokenOwner
	}
	item.Owner = destination
	return nil
}

func (r *fakeNftRegistry) Freeze(c bCtx.Ctx, token domain.TokenId) error {
	item, ok := r.items[token]
	if !ok {
		return domain.ErrNotFound
	}
	item.Frozen = true
	return nil
}

func (r *fakeNftRegistry) Unfreeze(c bCtx.Ctx, token domain.TokenId) error {
	item, ok := r.items[token]
	if !ok {
		return domain.ErrNotFound
	}
	item.Frozen = false
	return nil
}

type fakeEventRepo struct {
	events []*event.Event
}

func (r *fakeEventRepo) Insert(c bCtx.Ctx, e *event.Event) error {
	r.events = append(r.events, e)
	return nil
}

func (r *fakeEventRepo) Search(c bCtx.Ctx, kind event.Kind, offset, limit int) ([]*event.Event, error) {
	res := []*event.Event{}
	for _, e := range r.events {
		if e.Kind == kind {
			res = append(res, e)
		}
	}
	return res, nil
}

func (r *fakeEventRepo) kinds() []event.Kind {
	res := []event.Kind{}
	for _, e := range r.events {
		res = append(res, e.Kind)
	}
	return res
}

type auctionUseCaseTestSuite struct {
	suite.Suite
	ctx    bCtx.Ctx
	clock  *fakeClock
	repo   *fakeAuctionRepo
	ledger *fakeLedger
	nft    *fakeNftRegistry
	events *fakeEventRepo
	uc     auction.UseCase

	seller  domain.AccountId
	bidder1 domain.AccountId
	bidder2 domain.AccountId
	token   domain.TokenId
}

func TestAuctionUseCase(t *testing.T) {
	suite.Run(t, new(auctionUseCaseTestSuite))
}

func (s *auctionUseCaseTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.clock = &fakeClock{block: 1}
	s.repo = newFakeAuctionRepo()
	s.ledger = newFakeLedger()
	s.nft = newFakeNftRegistry()
	s.events = &fakeEventRepo{}
	s.uc = New(fakeTxn{}, s.repo, s.ledger, s.nft, s.events, s.clock, auction.DefaultConfig())

	s.seller = "alice"
	s.bidder1 = "bob"
	s.bidder2 = "charlie"
	s.token = domain.TokenId{CollectionId: 1, ItemId: 7}

	s.nft.mint(s.token, s.seller)
	s.ledger.fund(s.seller, "50")
	s.ledger.fund(s.bidder1, "1000")
	s.ledger.fund(s.bidder2, "1000")
}

func (s *auctionUseCaseTestSuite) spec() *auction.Spec {
	return &auction.Spec{
		Name:       "genesis drop",
		Start:      10,
		End:        30,
		Owner:      s.seller,
		Type:       auction.TypeEnglish,
		Token:      s.token,
		NextBidMin: "100",
		MinimalBid: "100",
	}
}

func (s *auctionUseCaseTestSuite) create() domain.AuctionId {
	id, err := s.uc.Create(s.ctx, s.seller, s.spec())
	s.Require().NoError(err)
	return id
}

func (s *auctionUseCaseTestSuite) TestCreate() {
	id := s.create()
	s.Require().Equal(domain.AuctionId(1), id)

	a, err := s.uc.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("genesis drop", a.Name)
	s.Equal(s.seller, a.Owner)
	s.False(a.Closed)
	s.Nil(a.LastBid)

	item, err := s.nft.Get(s.ctx, s.token)
	s.Require().NoError(err)
	s.True(item.Frozen)

	s.Equal([]event.Kind{event.KindAuctionCreated}, s.events.kinds())
}

func (s *auctionUseCaseTestSuite) TestCreateRejectsSecondAuctionForToken() {
	s.create()
	_, err := s.uc.Create(s.ctx, s.seller, s.spec())
	s.Equal(domain.ErrAuctionExistForToken, err)
}

func (s *auctionUseCaseTestSuite) TestCreateRejectsNonOwner() {
	_, err := s.uc.Create(s.ctx, s.bidder1, s.spec())
	s.Equal(domain.ErrNotATokenOwner, err)

	spec := s.spec()
	spec.Owner = s.bidder1
	_, err = s.uc.Create(s.ctx, s.bidder1, spec)
	s.Equal(domain.ErrNotATokenOwner, err)
}

func (s *auctionUseCaseTestSuite) TestCreateValidation() {
	testcases := []struct {
		name   string
		mutate func(spec *auction.Spec)
		err    error
	}{
		{
			name:   "empty name",
			mutate: func(spec *auction.Spec) { spec.Name = "" },
			err:    domain.ErrEmptyAuctionName,
		},
		{
			name:   "start already passed",
			mutate: func(spec *auction.Spec) { spec.Start = 1 },
			err:    domain.ErrAuctionStartTimeAlreadyPassed,
		},
		{
			name:   "too short",
			mutate: func(spec *auction.Spec) { spec.End = 15 },
			err:    domain.ErrInvalidTimeConfiguration,
		},
		{
			name:   "zero end",
			mutate: func(spec *auction.Spec) { spec.End = 0 },
			err:    domain.ErrInvalidTimeConfiguration,
		},
		{
			name: "next bid min must match minimal bid",
			mutate: func(spec *auction.Spec) {
				spec.NextBidMin = "150"
			},
			err: domain.ErrInvalidNextBidMin,
		},
		{
			name: "next bid min must match reserve price",
			mutate: func(spec *auction.Spec) {
				reserve := "500"
				spec.ReservePrice = &reserve
			},
			err: domain.ErrInvalidNextBidMin,
		},
	}
	for _, t := range testcases {
		spec := s.spec()
		t.mutate(spec)
		_, err := s.uc.Create(s.ctx, s.seller, spec)
		s.Equal(t.err, err, t.name)
	}
}

func (s *auctionUseCaseTestSuite) TestUpdate() {
	id := s.create()

	spec := s.spec()
	spec.Name = "renamed drop"
	s.Require().NoError(s.uc.Update(s.ctx, s.seller, id, spec))

	a, err := s.uc.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("renamed drop", a.Name)
}

func (s *auctionUseCaseTestSuite) TestUpdateGuards() {
	id := s.create()

	s.Equal(domain.ErrNotAuctionOwner, s.uc.Update(s.ctx, s.bidder1, id, s.spec()))

	spec := s.spec()
	spec.Type = auction.Type("Candle")
	s.Equal(domain.ErrNoChangeOfAuctionType, s.uc.Update(s.ctx, s.seller, id, spec))

	s.clock.block = 12
	s.Require().NoError(s.uc.Bid(s.ctx, s.bidder1, id, "100"))
	s.Equal(domain.ErrAuctionAlreadyStarted, s.uc.Update(s.ctx, s.seller, id, s.spec()))
}

func (s *auctionUseCaseTestSuite) TestBidFlow() {
	id := s.create()
	lockId := domain.AuctionLockId(id)

	s.clock.block = 5
	s.Equal(domain.ErrAuctionNotStarted, s.uc.Bid(s.ctx, s.bidder1, id, "100"))

	s.clock.block = 12
	s.Equal(domain.ErrInvalidBidPrice, s.uc.Bid(s.ctx, s.bidder1, id, "99"))
	s.Equal(domain.ErrForbidden, s.uc.Bid(s.ctx, s.seller, id, "100"))

	s.Require().NoError(s.uc.Bid(s.ctx, s.bidder1, id, "100"))
	a, err := s.uc.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Require().NotNil(a.LastBid)
	s.Equal(s.bidder1, a.LastBid.Bidder)
	s.Equal("110", a.NextBidMin)
	s.Equal(domain.BlockNumber(30), a.End)
	s.True(s.ledger.locks[s.bidder1][lockId].Equal(decimal.NewFromInt(100)))

	// below the advanced minimum
	s.Equal(domain.ErrInvalidBidPrice, s.uc.Bid(s.ctx, s.bidder2, id, "105"))

	// outbidding releases the previous escrow
	s.Require().NoError(s.uc.Bid(s.ctx, s.bidder2, id, "110"))
	a, err = s.uc.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(s.bidder2, a.LastBid.Bidder)
	s.Equal("121", a.NextBidMin)
	_, held := s.ledger.locks[s.bidder1][lockId]
	s.False(held)
	s.True(s.ledger.locks[s.bidder2][lockId].Equal(decimal.NewFromInt(110)))
}

func (s *auctionUseCaseTestSuite) TestBidExtendsEndInsideSnipingWindow() {
	id := s.create()

	s.clock.block = 25
	s.Require().NoError(s.uc.Bid(s.ctx, s.bidder1, id, "100"))

	a, err := s.uc.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.BlockNumber(35), a.End)

	// boundary: exactly the sniping window left keeps the end
	s.Require().NoError(s.uc.Bid(s.ctx, s.bidder2, id, "110"))
	a, err = s.uc.Get(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(domain.BlockNumber(35), a.End)
}

func (s *auctionUseCaseTestSuite) TestBidRejectsAfterEnd() {
	id := s.create()
	s.clock.block = 30
	s.Equal(domain.ErrAuctionEndTimeReached, s.uc.Bid(s.ctx, s.bidder1, id, "100"))
}

func (s *auctionUseCaseTestSuite) TestCloseWithWinner() {
	id := s.create()
	lockId := domain.AuctionLockId(id)

	s.clock.block = 12
	s.Require().NoError(s.uc.Bid(s.ctx, s.bidder1, id, "100"))

	s.clock.block = 29
	s.Equal(domain.ErrAuctionEndTimeNotReached, s.uc.Close(s.ctx, s.seller, id))

	s.clock.block = 30
	s.Require().NoError(s.uc.Close(s.ctx, s.seller, id))

	a, err := s.uc.Get(s.ctx, id)
	s.Require().NoError(err)
	s.True(a.Closed)

	_, held := s.ledger.locks[s.bidder1][lockId]
	s.False(held)

	sellerFree, err := s.ledger.FreeBalance(s.ctx, s.seller)
	s.Require().NoError(err)
	s.Equal("150", sellerFree)
	bidderFree, err := s.ledger.FreeBalance(s.ctx, s.bidder1)
	s.Require().NoError(err)
	s.Equal("900", bidderFree)

	item, err := s.nft.Get(s.ctx, s.token)
	s.Require().NoError(err)
	s.Equal(s.bidder1, item.Owner)
	s.False(item.Frozen)

	s.Equal(domain.ErrAuctionAlreadyClosed, s.uc.Close(s.ctx, s.seller, id))
	s.Equal(domain.ErrAuctionAlreadyClosed, s.uc.Bid(s.ctx, s.bidder2, id, "200"))
}

func (s *auctionUseCaseTestSuite) TestCloseWithoutBids() {
	id := s.create()

	s.clock.block = 30
	s.Require().NoError(s.uc.Close(s.ctx, s.seller, id))

	item, err := s.nft.Get(s.ctx, s.token)
	s.Require().NoError(err)
	s.Equal(s.seller, item.Owner)
	s.False(item.Frozen)
}

func (s *auctionUseCaseTestSuite) TestClaimUnsupportedForEnglish() {
	id := s.create()
	s.Equal(domain.ErrClaimsNotSupportedForThisAuctionType, s.uc.Claim(s.ctx, s.bidder1, id))
	s.Equal(domain.ErrAuctionNotExist, s.uc.Claim(s.ctx, s.bidder1, domain.AuctionId(42)))
}

func (s *auctionUseCaseTestSuite) TestDelete() {
	id := s.create()

	s.Equal(domain.ErrNotAuctionOwner, s.uc.Delete(s.ctx, s.bidder1, id))

	s.Require().NoError(s.uc.Delete(s.ctx, s.seller, id))
	_, err := s.uc.Get(s.ctx, id)
	s.Equal(domain.ErrAuctionNotExist, err)

	item, err := s.nft.Get(s.ctx, s.token)
	s.Require().NoError(err)
	s.False(item.Frozen)
}

func (s *auctionUseCaseTestSuite) TestDeleteRejectsAfterStart() {
	id := s.create()
	s.clock.block = 10
	s.Equal(domain.ErrAuctionAlreadyStarted, s.uc.Delete(s.ctx, s.seller, id))
}

func (s *auctionUseCaseTestSuite) TestListByOwner() {
	s.create()

	token2 := domain.TokenId{CollectionId: 1, ItemId: 8}
	s.nft.mint(token2, s.seller)
	spec := s.spec()
	spec.Token = token2
	_, err := s.uc.Create(s.ctx, s.seller, spec)
	s.Require().NoError(err)

	res, err := s.uc.ListByOwner(s.ctx, s.seller, 0, 10)
	s.Require().NoError(err)
	s.Len(res, 2)

	res, err = s.uc.ListByOwner(s.ctx, s.seller, 1, 10)
	s.Require().NoError(err)
	s.Len(res, 1)
	s.Equal(domain.AuctionId(2), res[0].Id)
}

func (s *auctionUseCaseTestSuite) TestCloseExpired() {
	for i := 0; i < 3; i++ {
		token := domain.TokenId{CollectionId: 2, ItemId: domain.ItemId(i)}
		owner := domain.AccountId(fmt.Sprintf("seller-%d", i))
		s.nft.mint(token, owner)
		s.ledger.fund(owner, "10")
		spec := s.spec()
		spec.Owner = owner
		spec.Token = token
		if i == 2 {
			spec.End = 100
		}
		_, err := s.uc.Create(s.ctx, owner, spec)
		s.Require().NoError(err)
	}

	s.clock.block = 40
	closed, err := s.uc.CloseExpired(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, closed)

	a, err := s.uc.Get(s.ctx, domain.AuctionId(3))
	s.Require().NoError(err)
	s.False(a.Closed)
}
