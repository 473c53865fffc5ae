package usecase

import (
	"github.com/shopspring/decimal"

	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/chain"
	"github.com/1xGiraffe/basilisk-core/domain/event"
	"github.com/1xGiraffe/basilisk-core/domain/farming"
	"github.com/1xGiraffe/basilisk-core/domain/ledger"
	"github.com/1xGiraffe/basilisk-core/domain/stableswap"
)

// minPlannedPeriods keeps reward programs from concentrating the whole
// budget into a few periods
const minPlannedPeriods = 100

type farmingUseCase struct {
	txn      domain.TxnRunner
	globals  farming.GlobalFarmRepo
	yields   farming.YieldFarmRepo
	deposits farming.DepositRepo
	currency ledger.Currency
	pools    stableswap.Registry
	events   event.Repo
	clock    chain.Clock
}

type FarmingUseCaseCfg struct {
	Txn         domain.TxnRunner
	GlobalRepo  farming.GlobalFarmRepo
	YieldRepo   farming.YieldFarmRepo
	DepositRepo farming.DepositRepo
	Currency    ledger.Currency
	Pools       stableswap.Registry
	Events      event.Repo
	Clock       chain.Clock
}

func New(cfg *FarmingUseCaseCfg) farming.UseCase {
	return &farmingUseCase{
		txn:      cfg.Txn,
		globals:  cfg.GlobalRepo,
		yields:   cfg.YieldRepo,
		deposits: cfg.DepositRepo,
		currency: cfg.Currency,
		pools:    cfg.Pools,
		events:   cfg.Events,
		clock:    cfg.Clock,
	}
}

func (u *farmingUseCase) CreateGlobalFarm(c bCtx.Ctx, owner domain.AccountId, spec *farming.GlobalFarmSpec) (*farming.GlobalFarmData, error) {
	period, err := u.currentPeriodFor(c, spec.BlocksPerPeriod)
	if err != nil {
		return nil, err
	}

	totalRewards, err := domain.ParseAmount(spec.TotalRewards)
	if err != nil {
		return nil, err
	}
	yieldPerPeriod, err := domain.ParseAmount(spec.YieldPerPeriod)
	if err != nil {
		return nil, err
	}
	if !totalRewards.IsPositive() ||
		spec.BlocksPerPeriod == 0 ||
		spec.PlannedPeriods < minPlannedPeriods ||
		!yieldPerPeriod.IsPositive() ||
		yieldPerPeriod.GreaterThan(decimal.NewFromInt(1)) {
		return nil, domain.ErrInvalidFarmConfiguration
	}

	maxRewardPerPeriod := totalRewards.Div(decimal.NewFromInt(int64(spec.PlannedPeriods)))

	var g *farming.GlobalFarmData
	err = u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		id, err := u.globals.NextId(c)
		if err != nil {
			return err
		}

		// the whole budget moves into the farm's pot up front
		pot := domain.GlobalFarmAccount(id)
		if err := u.currency.Transfer(c, owner, pot, spec.TotalRewards, true); err != nil {
			return err
		}

		g = &farming.GlobalFarmData{
			Id:                     id,
			Owner:                  owner,
			TotalSharesZ:           "0",
			AccumulatedRPZ:         "0",
			AccumulatedRewards:     "0",
			PaidAccumulatedRewards: "0",
			UpdatedAt:              period,
			TotalRewards:           spec.TotalRewards,
			YieldPerPeriod:         spec.YieldPerPeriod,
			MaxRewardPerPeriod:     maxRewardPerPeriod.String(),
			BlocksPerPeriod:        spec.BlocksPerPeriod,
			LiveYieldFarmsCount:    0,
		}
		if err := u.globals.Insert(c, g); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindGlobalFarmCreated, map[string]interface{}{
			"globalFarmId": id,
			"owner":        owner,
		})
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (u *farmingUseCase) CreateYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, spec *farming.YieldFarmSpec) (*farming.YieldFarmData, error) {
	multiplier, err := domain.ParseAmount(spec.Multiplier)
	if err != nil || !multiplier.IsPositive() {
		return nil, domain.ErrInvalidMultiplier
	}

	var y *farming.YieldFarmData
	err = u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		g, err := u.loadGlobalFarm(c, globalFarmId)
		if err != nil {
			return err
		}
		if !g.Owner.Equals(caller) {
			return domain.ErrForbidden
		}

		exists, err := u.pools.PoolExists(c, spec.PoolId)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrStableswapPoolNotFound
		}

		if _, err := u.yields.FindActiveByPool(c, spec.PoolId, globalFarmId); err == nil {
			return domain.ErrYieldFarmAlreadyExists
		} else if err != domain.ErrNotFound {
			return err
		}

		period, err := u.currentPeriodFor(c, g.BlocksPerPeriod)
		if err != nil {
			return err
		}
		if err := u.syncGlobalFarm(c, g, period); err != nil {
			return err
		}

		id, err := u.yields.NextId(c)
		if err != nil {
			return err
		}
		y = &farming.YieldFarmData{
			Id:                id,
			GlobalFarmId:      globalFarmId,
			PoolId:            spec.PoolId,
			State:             farming.YieldFarmStateActive,
			Multiplier:        spec.Multiplier,
			TotalValuedShares: "0",
			AccumulatedRPVS:   "0",
			AccumulatedRPZ:    g.AccumulatedRPZ,
			UpdatedAt:         period,
		}
		if err := u.yields.Insert(c, y); err != nil {
			return err
		}

		g.LiveYieldFarmsCount++
		if err := u.globals.Update(c, g); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindYieldFarmCreated, map[string]interface{}{
			"globalFarmId": globalFarmId,
			"yieldFarmId":  id,
			"poolId":       spec.PoolId,
		})
	})
	if err != nil {
		return nil, err
	}
	return y, nil
}

func (u *farmingUseCase) StopYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, poolId domain.PoolId) error {
	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		g, err := u.loadGlobalFarm(c, globalFarmId)
		if err != nil {
			return err
		}
		if !g.Owner.Equals(caller) {
			return domain.ErrForbidden
		}

		y, err := u.yields.FindActiveByPool(c, poolId, globalFarmId)
		if err == domain.ErrNotFound {
			return domain.ErrYieldFarmNotFound
		} else if err != nil {
			return err
		}

		period, err := u.currentPeriodFor(c, g.BlocksPerPeriod)
		if err != nil {
			return err
		}
		if err := u.syncGlobalFarm(c, g, period); err != nil {
			return err
		}
		if err := u.syncYieldFarm(c, g, y, period); err != nil {
			return err
		}

		// the farm's weighted stake leaves the global farm, it stops
		// earning from this period on
		multiplier := decimal.RequireFromString(y.Multiplier)
		totalValuedShares := decimal.RequireFromString(y.TotalValuedShares)
		totalSharesZ := decimal.RequireFromString(g.TotalSharesZ)
		stake := farming.StakeInGlobalFarm(multiplier, totalValuedShares)
		g.TotalSharesZ = totalSharesZ.Sub(stake).String()

		y.State = farming.YieldFarmStateStopped
		y.Multiplier = "0"
		g.LiveYieldFarmsCount--

		if err := u.yields.Update(c, y); err != nil {
			return err
		}
		if err := u.globals.Update(c, g); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindLiquidityMiningCanceled, map[string]interface{}{
			"globalFarmId": globalFarmId,
			"yieldFarmId":  y.Id,
			"poolId":       poolId,
		})
	})
}

func (u *farmingUseCase) ResumeYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, yieldFarmId domain.YieldFarmId, poolId domain.PoolId, multiplier string) error {
	mul, err := domain.ParseAmount(multiplier)
	if err != nil || !mul.IsPositive() {
		return domain.ErrInvalidMultiplier
	}

	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		g, err := u.loadGlobalFarm(c, globalFarmId)
		if err != nil {
			return err
		}
		if !g.Owner.Equals(caller) {
			return domain.ErrForbidden
		}

		exists, err := u.pools.PoolExists(c, poolId)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrStableswapPoolNotFound
		}

		y, err := u.loadYieldFarm(c, poolId, globalFarmId, yieldFarmId)
		if err != nil {
			return err
		}
		if y.State != farming.YieldFarmStateStopped {
			return domain.ErrInvalidFarmConfiguration
		}

		period, err := u.currentPeriodFor(c, g.BlocksPerPeriod)
		if err != nil {
			return err
		}
		if err := u.syncGlobalFarm(c, g, period); err != nil {
			return err
		}

		// re-enter at the current checkpoint, the stopped span earns
		// nothing
		totalValuedShares := decimal.RequireFromString(y.TotalValuedShares)
		totalSharesZ := decimal.RequireFromString(g.TotalSharesZ)
		stake := farming.StakeInGlobalFarm(mul, totalValuedShares)
		g.TotalSharesZ = totalSharesZ.Add(stake).String()
		g.LiveYieldFarmsCount++

		y.State = farming.YieldFarmStateActive
		y.Multiplier = multiplier
		y.AccumulatedRPZ = g.AccumulatedRPZ
		y.UpdatedAt = period

		if err := u.yields.Update(c, y); err != nil {
			return err
		}
		if err := u.globals.Update(c, g); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindYieldFarmResumed, map[string]interface{}{
			"globalFarmId": globalFarmId,
			"yieldFarmId":  yieldFarmId,
			"poolId":       poolId,
			"multiplier":   multiplier,
		})
	})
}

func (u *farmingUseCase) DestroyYieldFarm(c bCtx.Ctx, caller domain.AccountId, globalFarmId domain.GlobalFarmId, yieldFarmId domain.YieldFarmId, poolId domain.PoolId) error {
	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		g, err := u.loadGlobalFarm(c, globalFarmId)
		if err != nil {
			return err
		}
		if !g.Owner.Equals(caller) {
			return domain.ErrForbidden
		}

		y, err := u.loadYieldFarm(c, poolId, globalFarmId, yieldFarmId)
		if err != nil {
			return err
		}
		if y.State != farming.YieldFarmStateStopped {
			return domain.ErrInvalidFarmConfiguration
		}

		y.State = farming.YieldFarmStateDestroyed
		if err := u.yields.Update(c, y); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindYieldFarmDestroyed, map[string]interface{}{
			"globalFarmId": globalFarmId,
			"yieldFarmId":  yieldFarmId,
		})
	})
}

func (u *farmingUseCase) DepositShares(c bCtx.Ctx, owner domain.AccountId, globalFarmId domain.GlobalFarmId, yieldFarmId domain.YieldFarmId, poolId domain.PoolId, shares string) (domain.DepositId, error) {
	amt, err := domain.ParseAmount(shares)
	if err != nil || !amt.IsPositive() {
		return 0, domain.ErrInvalidDepositAmount
	}

	var id domain.DepositId
	err = u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		g, err := u.loadGlobalFarm(c, globalFarmId)
		if err != nil {
			return err
		}
		y, err := u.loadYieldFarm(c, poolId, globalFarmId, yieldFarmId)
		if err != nil {
			return err
		}
		if y.State != farming.YieldFarmStateActive {
			return domain.ErrInvalidFarmConfiguration
		}

		pool, err := u.pools.Get(c, poolId)
		if err == domain.ErrNotFound {
			return domain.ErrStableswapPoolNotFound
		} else if err != nil {
			return err
		}

		period, err := u.currentPeriodFor(c, g.BlocksPerPeriod)
		if err != nil {
			return err
		}
		if err := u.syncGlobalFarm(c, g, period); err != nil {
			return err
		}
		if err := u.syncYieldFarm(c, g, y, period); err != nil {
			return err
		}

		id, err = u.deposits.NextId(c)
		if err != nil {
			return err
		}

		// the shares stay in the owner's account, escrowed under the
		// deposit's lock
		if err := u.currency.SetLock(c, domain.DepositLockId(id), owner, shares); err != nil {
			return err
		}

		shareValue := decimal.RequireFromString(pool.ShareValue)
		valuedShares := amt.Mul(shareValue)

		d := &farming.DepositData{
			Id:                        id,
			Owner:                     owner,
			GlobalFarmId:              globalFarmId,
			YieldFarmId:               yieldFarmId,
			PoolId:                    poolId,
			Shares:                    shares,
			ValuedShares:              valuedShares.String(),
			AccumulatedRPVS:           y.AccumulatedRPVS,
			AccumulatedClaimedRewards: "0",
		}
		if err := u.deposits.Insert(c, d); err != nil {
			return err
		}

		multiplier := decimal.RequireFromString(y.Multiplier)
		y.TotalValuedShares = decimal.RequireFromString(y.TotalValuedShares).Add(valuedShares).String()
		g.TotalSharesZ = decimal.RequireFromString(g.TotalSharesZ).
			Add(farming.StakeInGlobalFarm(multiplier, valuedShares)).String()

		if err := u.yields.Update(c, y); err != nil {
			return err
		}
		if err := u.globals.Update(c, g); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindSharesDeposited, map[string]interface{}{
			"depositId":    id,
			"owner":        owner,
			"globalFarmId": globalFarmId,
			"yieldFarmId":  yieldFarmId,
			"shares":       shares,
		})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (u *farmingUseCase) ClaimRewards(c bCtx.Ctx, caller domain.AccountId, depositId domain.DepositId) (string, error) {
	claimed := "0"
	err := u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		d, err := u.loadDeposit(c, depositId)
		if err != nil {
			return err
		}
		if !d.Owner.Equals(caller) {
			return domain.ErrForbidden
		}

		amount, err := u.settleDeposit(c, d)
		if err != nil {
			return err
		}
		claimed = amount.String()

		if err := u.deposits.Update(c, d); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindRewardsClaimed, map[string]interface{}{
			"depositId": depositId,
			"owner":     caller,
			"amount":    claimed,
		})
	})
	if err != nil {
		return "", err
	}
	return claimed, nil
}

func (u *farmingUseCase) WithdrawShares(c bCtx.Ctx, caller domain.AccountId, depositId domain.DepositId) error {
	return u.txn.RunWithTransaction(c, func(c bCtx.Ctx) error {
		d, err := u.loadDeposit(c, depositId)
		if err != nil {
			return err
		}
		if !d.Owner.Equals(caller) {
			return domain.ErrForbidden
		}

		// outstanding rewards settle before the position unwinds
		claimed, err := u.settleDeposit(c, d)
		if err != nil {
			return err
		}

		g, err := u.loadGlobalFarm(c, d.GlobalFarmId)
		if err != nil {
			return err
		}
		y, err := u.loadYieldFarm(c, d.PoolId, d.GlobalFarmId, d.YieldFarmId)
		if err != nil {
			return err
		}

		valuedShares := decimal.RequireFromString(d.ValuedShares)
		y.TotalValuedShares = decimal.RequireFromString(y.TotalValuedShares).Sub(valuedShares).String()
		if y.State == farming.YieldFarmStateActive {
			multiplier := decimal.RequireFromString(y.Multiplier)
			g.TotalSharesZ = decimal.RequireFromString(g.TotalSharesZ).
				Sub(farming.StakeInGlobalFarm(multiplier, valuedShares)).String()
			if err := u.globals.Update(c, g); err != nil {
				return err
			}
		}
		if err := u.yields.Update(c, y); err != nil {
			return err
		}

		if err := u.currency.RemoveLock(c, domain.DepositLockId(d.Id), d.Owner); err != nil {
			return err
		}
		if err := u.deposits.Delete(c, d.Id); err != nil {
			return err
		}

		return u.recordEvent(c, event.KindSharesWithdrawn, map[string]interface{}{
			"depositId": depositId,
			"owner":     caller,
			"shares":    d.Shares,
			"claimed":   claimed.String(),
		})
	})
}

func (u *farmingUseCase) GetGlobalFarm(c bCtx.Ctx, id domain.GlobalFarmId) (*farming.GlobalFarmData, error) {
	return u.loadGlobalFarm(c, id)
}

// settleDeposit syncs the deposit's farms to the current period, pays
// everything owed since the deposit's snapshot out of the yield farm's
// pot and advances the snapshot. It mutates d but leaves persisting it
// to the caller.
func (u *farmingUseCase) settleDeposit(c bCtx.Ctx, d *farming.DepositData) (decimal.Decimal, error) {
	g, err := u.loadGlobalFarm(c, d.GlobalFarmId)
	if err != nil {
		return decimal.Zero, err
	}
	y, err := u.loadYieldFarm(c, d.PoolId, d.GlobalFarmId, d.YieldFarmId)
	if err != nil {
		return decimal.Zero, err
	}

	period, err := u.currentPeriodFor(c, g.BlocksPerPeriod)
	if err != nil {
		return decimal.Zero, err
	}
	if err := u.syncGlobalFarm(c, g, period); err != nil {
		return decimal.Zero, err
	}
	if err := u.syncYieldFarm(c, g, y, period); err != nil {
		return decimal.Zero, err
	}
	if err := u.yields.Update(c, y); err != nil {
		return decimal.Zero, err
	}
	if err := u.globals.Update(c, g); err != nil {
		return decimal.Zero, err
	}

	currentRpvs := decimal.RequireFromString(y.AccumulatedRPVS)
	snapshotRpvs := decimal.RequireFromString(d.AccumulatedRPVS)
	valuedShares := decimal.RequireFromString(d.ValuedShares)
	owed := farming.Owed(currentRpvs, snapshotRpvs, valuedShares)
	if owed.IsZero() {
		return decimal.Zero, nil
	}

	pot := domain.YieldFarmAccount(d.GlobalFarmId, d.YieldFarmId)
	if err := u.currency.Transfer(c, pot, d.Owner, owed.String(), false); err != nil {
		c.WithFields(log.Fields{
			"depositId": d.Id,
			"owed":      owed,
			"err":       err,
		}).Error("reward payout failed")
		return decimal.Zero, err
	}

	d.AccumulatedRPVS = y.AccumulatedRPVS
	d.AccumulatedClaimedRewards = decimal.RequireFromString(d.AccumulatedClaimedRewards).Add(owed).String()
	return owed, nil
}

// syncGlobalFarm accrues the global farm's emission up to period and
// advances rpz. Periods with no stake forfeit their emission. The
// caller persists g.
func (u *farmingUseCase) syncGlobalFarm(c bCtx.Ctx, g *farming.GlobalFarmData, period uint64) error {
	if period <= g.UpdatedAt {
		return nil
	}

	totalSharesZ := decimal.RequireFromString(g.TotalSharesZ)
	if totalSharesZ.IsZero() {
		g.UpdatedAt = period
		return nil
	}

	periods := period - g.UpdatedAt
	yieldPerPeriod := decimal.RequireFromString(g.YieldPerPeriod)
	maxRewardPerPeriod := decimal.RequireFromString(g.MaxRewardPerPeriod)
	accumulated := decimal.RequireFromString(g.AccumulatedRewards)
	paid := decimal.RequireFromString(g.PaidAccumulatedRewards)
	totalRewards := decimal.RequireFromString(g.TotalRewards)

	rewardPerPeriod := farming.RewardPerPeriod(yieldPerPeriod, totalSharesZ, maxRewardPerPeriod)
	left := farming.LeftToDistribute(totalRewards, accumulated, paid)
	reward := farming.AccruedReward(rewardPerPeriod, periods, left)

	rpz := decimal.RequireFromString(g.AccumulatedRPZ)
	g.AccumulatedRPZ = farming.AdvanceRps(rpz, reward, totalSharesZ).String()
	g.AccumulatedRewards = accumulated.Add(reward).String()
	g.UpdatedAt = period

	return u.recordEvent(c, event.KindGlobalFarmUpdated, map[string]interface{}{
		"globalFarmId":   g.Id,
		"accumulatedRPZ": g.AccumulatedRPZ,
		"totalSharesZ":   g.TotalSharesZ,
		"updatedAt":      g.UpdatedAt,
	})
}

// syncYieldFarm claims the yield farm's cut of the global farm's
// accrual since its last sync, moves it from the global pot to the
// yield farm pot and folds it into rpvs. The caller persists both
// records.
func (u *farmingUseCase) syncYieldFarm(c bCtx.Ctx, g *farming.GlobalFarmData, y *farming.YieldFarmData, period uint64) error {
	if y.State != farming.YieldFarmStateActive {
		return nil
	}

	globalRpz := decimal.RequireFromString(g.AccumulatedRPZ)
	farmRpz := decimal.RequireFromString(y.AccumulatedRPZ)
	multiplier := decimal.RequireFromString(y.Multiplier)
	totalValuedShares := decimal.RequireFromString(y.TotalValuedShares)

	stake := farming.StakeInGlobalFarm(multiplier, totalValuedShares)
	reward := farming.Owed(globalRpz, farmRpz, stake)

	if reward.IsPositive() {
		from := domain.GlobalFarmAccount(g.Id)
		to := domain.YieldFarmAccount(g.Id, y.Id)
		if err := u.currency.Transfer(c, from, to, reward.String(), false); err != nil {
			c.WithFields(log.Fields{
				"globalFarmId": g.Id,
				"yieldFarmId":  y.Id,
				"reward":       reward,
				"err":          err,
			}).Error("farm reward transfer failed")
			return err
		}

		accumulated := decimal.RequireFromString(g.AccumulatedRewards)
		paid := decimal.RequireFromString(g.PaidAccumulatedRewards)
		g.AccumulatedRewards = accumulated.Sub(reward).String()
		g.PaidAccumulatedRewards = paid.Add(reward).String()

		rpvs := decimal.RequireFromString(y.AccumulatedRPVS)
		y.AccumulatedRPVS = farming.AdvanceRps(rpvs, reward, totalValuedShares).String()
	}

	y.AccumulatedRPZ = g.AccumulatedRPZ
	y.UpdatedAt = period
	return nil
}

func (u *farmingUseCase) currentPeriodFor(c bCtx.Ctx, blocksPerPeriod uint64) (uint64, error) {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return 0, err
	}
	return farming.PeriodOf(now, blocksPerPeriod), nil
}

func (u *farmingUseCase) loadGlobalFarm(c bCtx.Ctx, id domain.GlobalFarmId) (*farming.GlobalFarmData, error) {
	g, err := u.globals.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrGlobalFarmNotFound
	} else if err != nil {
		return nil, err
	}
	return g, nil
}

func (u *farmingUseCase) loadYieldFarm(c bCtx.Ctx, poolId domain.PoolId, globalFarmId domain.GlobalFarmId, id domain.YieldFarmId) (*farming.YieldFarmData, error) {
	y, err := u.yields.FindOne(c, poolId, globalFarmId, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrYieldFarmNotFound
	} else if err != nil {
		return nil, err
	}
	return y, nil
}

func (u *farmingUseCase) loadDeposit(c bCtx.Ctx, id domain.DepositId) (*farming.DepositData, error) {
	d, err := u.deposits.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrDepositNotFound
	} else if err != nil {
		return nil, err
	}
	return d, nil
}

func (u *farmingUseCase) recordEvent(c bCtx.Ctx, kind event.Kind, payload map[string]interface{}) error {
	now, err := u.clock.CurrentBlock(c)
	if err != nil {
		return err
	}
	return u.events.Insert(c, event.New(kind, now, payload))
}
