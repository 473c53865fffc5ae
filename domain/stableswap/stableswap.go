package stableswap

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
)

type Pool struct {
	PoolId domain.PoolId `json:"poolId" bson:"poolId"`
	// ShareValue is the price of one LP share in the incentivized asset,
	// decimal string
	ShareValue string `json:"shareValue" bson:"shareValue"`
}

// Registry resolves trading pools referenced by yield farms. Resume and
// deposit operations consult it, a missing pool fails them with
// ErrStableswapPoolNotFound.
type Registry interface {
	PoolExists(c bCtx.Ctx, poolId domain.PoolId) (bool, error)
	Get(c bCtx.Ctx, poolId domain.PoolId) (*Pool, error)
}
