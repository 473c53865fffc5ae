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
	"github.com/1xGiraffe/basilisk-core/domain/auction"
	"github.com/1xGiraffe/basilisk-core/middleware"
)

var met metrics.Service

type handler struct {
	auction auction.UseCase
}

func New(e *echo.Echo, auctionUC auction.UseCase) {
	met = metrics.New("auction")

	h := &handler{auctionUC}

	gs := e.Group("/auctions")

	gs.POST("", h.create)

	gs.GET("", h.list, middleware.CacheHttp(5*time.Second))

	g := e.Group("/auction/:auctionId")

	g.GET("", h.get, middleware.CacheHttp(5*time.Second))

	g.PUT("", h.update)

	g.DELETE("", h.delete)

	g.POST("/bid", h.bid)

	g.POST("/close", h.close)

	g.POST("/claim", h.claim)
}

func caller(c echo.Context) (domain.AccountId, error) {
	account := c.Request().Header.Get("X-Account-Id")
	if !validator.IsValidAccountId(account) {
		return "", domain.ErrBadParamInput
	}
	return domain.AccountId(account), nil
}

func auctionId(c echo.Context) (domain.AuctionId, error) {
	id, err := strconv.ParseUint(c.Param("auctionId"), 10, 64)
	if err != nil {
		return 0, domain.ErrBadParamInput
	}
	return domain.AuctionId(id), nil
}

func statusOf(err error) int {
	switch err {
	case domain.ErrNotFound, domain.ErrAuctionNotExist:
		return http.StatusNotFound
	case domain.ErrForbidden, domain.ErrNotAuctionOwner, domain.ErrNotATokenOwner:
		return http.StatusForbidden
	case domain.ErrAuctionExistForToken,
		domain.ErrAuctionAlreadyClosed,
		domain.ErrAuctionAlreadyStarted,
		domain.ErrNoChangeOfAuctionType:
		return http.StatusConflict
	case domain.ErrEmptyAuctionName,
		domain.ErrAuctionStartTimeAlreadyPassed,
		domain.ErrInvalidTimeConfiguration,
		domain.ErrInvalidNextBidMin,
		domain.ErrInvalidBidPrice,
		domain.ErrAuctionNotStarted,
		domain.ErrAuctionEndTimeReached,
		domain.ErrAuctionEndTimeNotReached,
		domain.ErrClaimsNotSupportedForThisAuctionType,
		domain.ErrInvalidNumberFormat,
		domain.ErrInsufficientBalance,
		domain.ErrBelowExistential,
		domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	p := &auction.Spec{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	id, err := h.auction.Create(ctx, account, p)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("create.count", 1)

	return delivery.MakeJsonResp(c, http.StatusCreated, map[string]interface{}{"id": id})
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner  string `query:"owner"`
		Offset int    `query:"offset"`
		Limit  int    `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if !validator.IsValidAccountId(p.Owner) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid owner")
	}
	if p.Limit == 0 {
		p.Limit = 50
	}

	res, err := h.auction.ListByOwner(ctx, domain.AccountId(p.Owner), p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	res, err := h.auction.Get(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("get.count", 1, "auctionId", fmt.Sprint(id))

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	p := &auction.Spec{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.auction.Update(ctx, account, id, p); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	if err := h.auction.Delete(ctx, account, id); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	type params struct {
		Amount string `json:"amount"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.auction.Bid(ctx, account, id, p.Amount); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}

	met.BumpSum("bid.count", 1, "auctionId", fmt.Sprint(id))

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) close(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	if err := h.auction.Close(ctx, account, id); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) claim(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	account, err := caller(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid account id")
	}

	id, err := auctionId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid auction id")
	}

	if err := h.auction.Claim(ctx, account, id); err != nil {
		return delivery.MakeJsonResp(c, statusOf(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
