package farming

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
)

type YieldFarmState string

const (
	YieldFarmStateActive    YieldFarmState = "Active"
	YieldFarmStateStopped   YieldFarmState = "Stopped"
	YieldFarmStateDestroyed YieldFarmState = "Destroyed"
)

// GlobalFarmData is the top-level reward program. TotalSharesZ
// aggregates multiplier-weighted stake across all of its yield farms,
// AccumulatedRPZ is the reward-per-z-share checkpoint advanced lazily
// whenever the farm is touched.
type GlobalFarmData struct {
	Id    domain.GlobalFarmId `json:"id" bson:"id"`
	Owner domain.AccountId    `json:"owner" bson:"owner"`

	TotalSharesZ           string `json:"totalSharesZ" bson:"totalSharesZ"`
	AccumulatedRPZ         string `json:"accumulatedRpz" bson:"accumulatedRpz"`
	AccumulatedRewards     string `json:"accumulatedRewards" bson:"accumulatedRewards"`
	PaidAccumulatedRewards string `json:"paidAccumulatedRewards" bson:"paidAccumulatedRewards"`

	// UpdatedAt is the period of the last accrual, not a block height
	UpdatedAt uint64 `json:"updatedAt" bson:"updatedAt"`

	// reward curve, immutable after creation
	TotalRewards       string `json:"totalRewards" bson:"totalRewards"`
	YieldPerPeriod     string `json:"yieldPerPeriod" bson:"yieldPerPeriod"`
	MaxRewardPerPeriod string `json:"maxRewardPerPeriod" bson:"maxRewardPerPeriod"`
	BlocksPerPeriod    uint64 `json:"blocksPerPeriod" bson:"blocksPerPeriod"`

	LiveYieldFarmsCount uint32 `json:"liveYieldFarmsCount" bson:"liveYieldFarmsCount"`
}

// YieldFarmData incentivizes one trading pool within a global farm.
// AccumulatedRPVS is the reward-per-valued-share checkpoint inside this
// farm, AccumulatedRPZ is the global farm's rpz seen at the last sync.
type YieldFarmData struct {
	Id           domain.YieldFarmId  `json:"id" bson:"id"`
	GlobalFarmId domain.GlobalFarmId `json:"globalFarmId" bson:"globalFarmId"`
	PoolId       domain.PoolId       `json:"poolId" bson:"poolId"`

	State      YieldFarmState `json:"state" bson:"state"`
	Multiplier string         `json:"multiplier" bson:"multiplier"`

	TotalValuedShares string `json:"totalValuedShares" bson:"totalValuedShares"`
	AccumulatedRPVS   string `json:"accumulatedRpvs" bson:"accumulatedRpvs"`
	AccumulatedRPZ    string `json:"accumulatedRpz" bson:"accumulatedRpz"`

	UpdatedAt uint64 `json:"updatedAt" bson:"updatedAt"`
}

// DepositData is one staker's position, carrying the rpvs snapshot the
// checkpoint pattern settles against.
type DepositData struct {
	Id           domain.DepositId    `json:"id" bson:"id"`
	Owner        domain.AccountId    `json:"owner" bson:"owner"`
	GlobalFarmId domain.GlobalFarmId `json:"globalFarmId" bson:"globalFarmId"`
	YieldFarmId  domain.YieldFarmId  `json:"yieldFarmId" bson:"yieldFarmId"`
	PoolId       domain.PoolId       `json:"poolId" bson:"poolId"`

	Shares       string `json:"shares" bson:"shares"`
	ValuedShares string `json:"valuedShares" bson:"valuedShares"`

	AccumulatedRPVS           string `json:"accumulatedRpvs" bson:"accumulatedRpvs"`
	AccumulatedClaimedRewards string `json:"accumulatedClaimedRewards" bson:"accumulatedClaimedRewards"`
}

// GlobalFarmSpec carries the caller-provided fields of a farm creation
type GlobalFarmSpec struct {
	TotalRewards    string `json:"totalRewards" validate:"required"`
	PlannedPeriods  uint64 `json:"plannedPeriods" validate:"required"`
	BlocksPerPeriod uint64 `json:"blocksPerPeriod" validate:"required"`
	YieldPerPeriod  string `json:"yieldPerPeriod" validate:"required"`
}

type YieldFarmSpec struct {
	PoolId     domain.PoolId `json:"poolId" validate:"required"`
	Multiplier string        `json:"multiplier" validate:"required"`
}

type GlobalFarmRepo interface {
	NextId(c bCtx.Ctx) (domain.GlobalFarmId, error)
	FindOne(c bCtx.Ctx, id domain.GlobalFarmId) (*GlobalFarmData, error)
	Insert(c bCtx.Ctx, g *GlobalFarmData) error
	Update(c bCtx.Ctx, g *GlobalFarmData) error
}

type YieldFarmRepo interface {
	NextId(c bCtx.Ctx) (domain.YieldFarmId, error)
	// FindOne resolves the composite key (pool, global farm, yield farm)
	FindOne(c bCtx.Ctx, poolId domain.PoolId, globalFarmId domain.GlobalFarmId, id domain.YieldFarmId) (*YieldFarmData, error)
	// FindActiveByPool returns the Active yield farm of the pool within
	// the global farm, domain.ErrNotFound when there is none
	FindActiveByPool(c bCtx.Ctx, poolId domain.PoolId, globalFarmId domain.GlobalFarmId) (*YieldFarmData, error)
	Insert(c bCtx.Ctx, y *YieldFarmData) error
	Update(c bCtx.Ctx, y *YieldFarmData) error
}

type DepositRepo interface {
	NextId(c bCtx.Ctx) (domain.DepositId, error)
	FindOne(c bCtx.Ctx, id domain.DepositId) (*DepositData, error)
	Insert(c bCtx.Ctx, d *DepositData) error
	Update(c bCtx.Ctx, d *DepositData) error
	Delete(c bCtx.Ctx, id domain.DepositId) error
}

type UseCase interface {
	CreateGlobalFarm(c bCtx.Ctx, owner domain.AccountId, spec *GlobalFarmSpec) (*GlobalFarmData, error)
	CreateYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, spec *YieldFarmSpec) (*YieldFarmData, error)
	StopYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, poolId domain.PoolId) error
	ResumeYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, yieldFarmId domain.YieldFarmId, poolId domain.PoolId, multiplier string) error
	DestroyYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, yieldFarmId domain.YieldFarmId, poolId domain.PoolId) error
	DepositShares(c bCtx.Ctx, owner domain.AccountId, globalFarmId domain.GlobalFarmId, yieldFarmId domain.YieldFarmId, poolId domain.PoolId, shares string) (domain.DepositId, error)
	ClaimRewards(c bCtx.Ctx, caller domain.AccountId, depositId domain.DepositId) (string, error)
	WithdrawShares(c bCtx.Ctx, caller domain.AccountId, depositId domain.DepositId) error
	GetGlobalFarm(c bCtx.Ctx, id domain.GlobalFarmId) (*GlobalFarmData, error)
}
