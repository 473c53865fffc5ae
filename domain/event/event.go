package event

import (
	"time"

	"github.com/google/uuid"

	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
)

type Kind string

const (
	KindAuctionCreated          Kind = "AuctionCreated"
	KindBidPlaced               Kind = "BidPlaced"
	KindAuctionClosed           Kind = "AuctionClosed"
	KindAuctionRemoved          Kind = "AuctionRemoved"
	KindGlobalFarmCreated       Kind = "GlobalFarmCreated"
	KindGlobalFarmUpdated       Kind = "GlobalFarmUpdated"
	KindYieldFarmCreated        Kind = "YieldFarmCreated"
	KindLiquidityMiningCanceled Kind = "LiquidityMiningCanceled"
	KindYieldFarmResumed        Kind = "YieldFarmResumed"
	KindYieldFarmDestroyed      Kind = "YieldFarmDestroyed"
	KindSharesDeposited         Kind = "SharesDeposited"
	KindRewardsClaimed          Kind = "RewardsClaimed"
	KindSharesWithdrawn         Kind = "SharesWithdrawn"
)

// Event is one observable side effect of a successful state-changing
// operation, recorded in the same transaction as the mutation.
type Event struct {
	Id        string                 `json:"id" bson:"id"`
	Kind      Kind                   `json:"kind" bson:"kind"`
	Block     domain.BlockNumber     `json:"block" bson:"block"`
	Payload   map[string]interface{} `json:"payload" bson:"payload"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
}

func New(kind Kind, block domain.BlockNumber, payload map[string]interface{}) *Event {
	return &Event{
		Id:        uuid.NewString(),
		Kind:      kind,
		Block:     block,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
}

type Repo interface {
	Insert(c bCtx.Ctx, e *Event) error
	Search(c bCtx.Ctx, kind Kind, offset, limit int) ([]*Event, error)
}
