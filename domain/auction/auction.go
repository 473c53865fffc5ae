package auction

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
)

// Type tags the auction variant. The set is closed per deployment,
// English is the only variant today.
type Type string

const (
	TypeEnglish Type = "English"
)

func (t Type) IsValid() bool {
	return t == TypeEnglish
}

// Bid is the current highest bid. Amount is escrowed in the bidder's
// account under the auction's lock for as long as the bid is leading.
type Bid struct {
	Bidder domain.AccountId   `json:"bidder" bson:"bidder"`
	Amount string             `json:"amount" bson:"amount"`
	Block  domain.BlockNumber `json:"block" bson:"block"`
}

type Auction struct {
	Id           domain.AuctionId   `json:"id" bson:"id"`
	Name         string             `json:"name" bson:"name"`
	Start        domain.BlockNumber `json:"start" bson:"start"`
	End          domain.BlockNumber `json:"end" bson:"end"`
	Owner        domain.AccountId   `json:"owner" bson:"owner"`
	Type         Type               `json:"auctionType" bson:"auctionType"`
	Token        domain.TokenId     `json:"token" bson:"token"`
	LastBid      *Bid               `json:"lastBid,omitempty" bson:"lastBid,omitempty"`
	NextBidMin   string             `json:"nextBidMin" bson:"nextBidMin"`
	ReservePrice *string            `json:"reservePrice,omitempty" bson:"reservePrice,omitempty"`
	MinimalBid   string             `json:"minimalBid" bson:"minimalBid"`
	Closed       bool               `json:"closed" bson:"closed"`
}

func (a *Auction) HasBid() bool {
	return a.LastBid != nil
}

// Spec carries the caller-provided fields of a create or update
type Spec struct {
	Name         string             `json:"name" validate:"required"`
	Start        domain.BlockNumber `json:"start"`
	End          domain.BlockNumber `json:"end"`
	Owner        domain.AccountId   `json:"owner" validate:"required"`
	Type         Type               `json:"auctionType" validate:"required"`
	Token        domain.TokenId     `json:"token"`
	NextBidMin   string             `json:"nextBidMin"`
	ReservePrice *string            `json:"reservePrice,omitempty"`
	MinimalBid   string             `json:"minimalBid"`
}

// Config holds the deployment constants of the auction state machine
type Config struct {
	// MinAuctionDuration is the smallest allowed end-start window
	MinAuctionDuration domain.BlockNumber
	// BidAddBlocks is the sniping window, every accepted bid leaves at
	// least this many blocks until end
	BidAddBlocks domain.BlockNumber
	// BidStepPerc is the minimum percentage increment of the next bid
	BidStepPerc int64
	// MaxNameLength bounds the auction name
	MaxNameLength int
}

func DefaultConfig() Config {
	return Config{
		MinAuctionDuration: 10,
		BidAddBlocks:       10,
		BidStepPerc:        10,
		MaxNameLength:      64,
	}
}

type Repo interface {
	// NextId assigns a monotonically increasing auction id from the
	// counter cell, inside the caller's transaction
	NextId(c bCtx.Ctx) (domain.AuctionId, error)
	FindOne(c bCtx.Ctx, id domain.AuctionId) (*Auction, error)
	// FindOpenByToken returns the non-closed auction freezing the token,
	// domain.ErrNotFound when there is none
	FindOpenByToken(c bCtx.Ctx, token domain.TokenId) (*Auction, error)
	ListByOwner(c bCtx.Ctx, owner domain.AccountId, offset, limit int) ([]*Auction, error)
	// FindExpired returns open auctions whose end has passed
	FindExpired(c bCtx.Ctx, now domain.BlockNumber, limit int) ([]*Auction, error)
	Insert(c bCtx.Ctx, a *Auction) error
	Update(c bCtx.Ctx, a *Auction) error
	Delete(c bCtx.Ctx, id domain.AuctionId) error
}

type UseCase interface {
	Create(c bCtx.Ctx, caller domain.AccountId, spec *Spec) (domain.AuctionId, error)
	Update(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId, spec *Spec) error
	Bid(c bCtx.Ctx, bidder domain.AccountId, id domain.AuctionId, amount string) error
	Close(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId) error
	Claim(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId) error
	Delete(c bCtx.Ctx, caller domain.AccountId, id domain.AuctionId) error
	Get(c bCtx.Ctx, id domain.AuctionId) (*Auction, error)
	ListByOwner(c bCtx.Ctx, owner domain.AccountId, offset, limit int) ([]*Auction, error)
	// CloseExpired closes every open auction whose end has passed,
	// returning the number of auctions settled
	CloseExpired(c bCtx.Ctx) (int, error)
}
