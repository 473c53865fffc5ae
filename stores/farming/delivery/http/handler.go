package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/delivery"
	"github.com/1xGiraffe/basilisk-core/base/metrics"
	"github.com/1xGiraffe/basilisk-core/base/validator"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/farming"
	"github.com/1xGiraffe/basilisk-core/middleware"
)

var met metrics.Service

type handler struct {
	farming farming.UseCase
}

func New(e *echo.Echo, farmingUC farming.UseCase) {
	met = metrics.New("farming")

	h := &handler{farmingUC}

	e.POST("/farms", h.createGlobalFarm)

	g := e.Group("/farm/:globalFarmId")

	g.GET("", h.getGlobalFarm, middleware.CacheHttp(5*time.Second))

	g.POST("/yield-farms", h.createYieldFarm)

	g.POST("/yield-farms/stop", h.stopYieldFarm)

	y := g.Group("/yield-farm/:yieldFarmId")

	y.POST("/resume", h.resumeYieldFarm)

	y.POST("/destroy", h.destroyYieldFarm)

	y.POST("/deposit", h.depositShares)

	d := e.Group("/deposit/:depositId")

	d.POST("/claim", h.claimRewards)

	d.POST("/withdraw", h.withdrawShares)
}

func caller(c echo.Context) (domain.AccountId, error) {
	account := c.Request().Header.Get("X-Account-Id")
	if !validator.IsValidAccountId(account) {
		return "", domain.ErrBadParamInput
	}
	return domain.AccountId(account), nil
}

func globalFarmId(c echo.Context) (domain.GlobalFarmId, error) {
	id, err := strconv.ParseUint(c.Param("globalFarmId"), 10, 32)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return domain.GlobalFarmId(id), nil
}

func yieldFarmId(c echo.Context) (domain.YieldFarmId, error) {
	id, err := strconv.ParseUint(c.Param("yieldFarmId"), 10, 32)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return domain.YieldFarmId(id), nil
}

func depositId(c echo.Context) (domain.DepositId, error) {
	id, err := strconv.ParseUint(c.Param("depositId"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return domain.DepositId(id), nil
}

func statusOf(err error) int {
	switch err {
	case domain.ErrNotFound,
		domain.ErrGlobalFarmNotFound,
		domain.ErrYieldFarmNotFound,
		domain.ErrDepositNotFound,
		domain.ErrStableswapPoolNotFound:
		return http.StatusNotFound
	case domain.ErrForbidden:
		return http.StatusForbidden
	case domain.ErrYieldFarmAlreadyExists:
		return http.StatusConflict
	case domain.ErrInvalidFarmConfiguration,
		domain.ErrInvalidMultiplier,
		domain.ErrInvalidDepositAmount,
		domain.ErrInvalidNumberFormat,
		domain.ErrInsufficientBalance,
		domain.ErrBelowExistential,
		domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) createGlobalFarm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	p := &farming.GlobalFarmSpec{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.farming.CreateGlobalFarm(ctx, account, p)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("global_farm.create.count", 1)

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) getGlobalFarm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	gid, err := globalFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid farm id")
	}

	res, err := h.farming.GetGlobalFarm(ctx, gid)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) createYieldFarm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	gid, err := globalFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid farm id")
	}

	p := &farming.YieldFarmSpec{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.farming.CreateYieldFarm(ctx, account, gid, p)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("yield_farm.create.count", 1, "globalFarmId", fmt.Sprint(gid))

	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) stopYieldFarm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	gid, err := globalFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid farm id")
	}

	type params struct {
		PoolId domain.PoolId `json:"poolId"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.farming.StopYieldFarm(ctx, account, gid, p.PoolId); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) resumeYieldFarm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	gid, err := globalFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid farm id")
	}

	yid, err := yieldFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid yield farm id")
	}

	type params struct {
		PoolId     domain.PoolId `json:"poolId"`
		Multiplier string        `json:"multiplier"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.farming.ResumeYieldFarm(ctx, account, gid, yid, p.PoolId, p.Multiplier); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) destroyYieldFarm(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	gid, err := globalFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid farm id")
	}

	yid, err := yieldFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid yield farm id")
	}

	type params struct {
		PoolId domain.PoolId `json:"poolId"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.farming.DestroyYieldFarm(ctx, account, gid, yid, p.PoolId); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) depositShares(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	gid, err := globalFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid farm id")
	}

	yid, err := yieldFarmId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid yield farm id")
	}

	type params struct {
		PoolId domain.PoolId `json:"poolId"`
		Shares string        `json:"shares"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	id, err := h.farming.DepositShares(ctx, account, gid, yid, p.PoolId, p.Shares)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("deposit.count", 1, "globalFarmId", fmt.Sprint(gid))

	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]interface{}{"id": id})
}

func (h *handler) claimRewards(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	id, err := depositId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid deposit id")
	}

	claimed, err := h.farming.ClaimRewards(ctx, account, id)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("claim.count", 1)

	return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{"claimed": claimed})
}

func (h *handler) withdrawShares(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	id, err := depositId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid deposit id")
	}

	if err := h.farming.WithdrawShares(ctx, account, id); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("withdraw.count", 1)

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
