package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Table is a mongo collection name
type Table string

const (
	TableAuctions        Table = "auctions"
	TableCounters        Table = "counters"
	TableBalances        Table = "balances"
	TableNftItems        Table = "nft_items"
	TableGlobalFarms     Table = "global_farms"
	TableYieldFarms      Table = "yield_farms"
	TableDeposits        Table = "deposits"
	TableStableswapPools Table = "stableswap_pools"
	TableEvents          Table = "events"
	TableChainState      Table = "chain_state"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// AccountId is a chain-native account identifier
type AccountId string

func (a AccountId) ToLower() AccountId {
	return AccountId(strings.ToLower(string(a)))
}

func (a AccountId) IsEmpty() bool {
	return len(a) == 0
}

func (a AccountId) Equals(b AccountId) bool {
	return a.ToLower() == b.ToLower()
}

func (a AccountId) String() string {
	return string(a)
}

// BlockNumber is chain time. All auction and farm windows are expressed
// in block heights, not wall clock.
type BlockNumber uint64

type AuctionId uint64

func (id AuctionId) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

type GlobalFarmId uint32

type YieldFarmId uint32

type DepositId uint64

type PoolId string

type CollectionId uint64

type ItemId uint64

// TokenId identifies one NFT as a (collection, item) pair
type TokenId struct {
	CollectionId CollectionId `json:"collectionId" bson:"collectionId"`
	ItemId       ItemId       `json:"itemId" bson:"itemId"`
}

func (t TokenId) String() string {
	return fmt.Sprintf("%d-%d", t.CollectionId, t.ItemId)
}

// LockId identifies one balance lock. Locks reduce an account's
// transferable balance without reducing its total balance.
type LockId string

// AuctionLockId derives the escrow lock id for one auction
func AuctionLockId(id AuctionId) LockId {
	return LockId(fmt.Sprintf("auction:%d", uint64(id)))
}

// DepositLockId derives the share lock id for one farming deposit
func DepositLockId(id DepositId) LockId {
	return LockId(fmt.Sprintf("deposit:%d", uint64(id)))
}

// GlobalFarmAccount derives the pot account holding a global farm's
// undistributed rewards
func GlobalFarmAccount(id GlobalFarmId) AccountId {
	return AccountId(fmt.Sprintf("farm:g:%d", uint32(id)))
}

// YieldFarmAccount derives the pot account holding a yield farm's
// claimed-but-unpaid rewards
func YieldFarmAccount(gid GlobalFarmId, yid YieldFarmId) AccountId {
	return AccountId(fmt.Sprintf("farm:y:%d:%d", uint32(gid), uint32(yid)))
}

// Amounts are persisted as decimal strings, the precision is preserved
// exactly. Use ParseAmount before doing arithmetic on them.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidNumberFormat
	}
	return d, nil
}
