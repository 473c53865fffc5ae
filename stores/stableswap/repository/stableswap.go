package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/stableswap"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

type stableswapRepoImpl struct {
	q query.Mongo
}

func NewRegistry(q query.Mongo) stableswap.Registry {
	return &stableswapRepoImpl{q}
}

func (im *stableswapRepoImpl) Get(c ctx.Ctx, poolId domain.PoolId) (*stableswap.Pool, error) {
	res := &stableswap.Pool{}
	err := im.q.FindOne(c, domain.TableStableswapPools, bson.M{"poolId": poolId}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"poolId": poolId,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *stableswapRepoImpl) PoolExists(c ctx.Ctx, poolId domain.PoolId) (bool, error) {
	cnt, err := im.q.Count(c, domain.TableStableswapPools, bson.M{"poolId": poolId})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"poolId": poolId,
		}).Error("q.Count failed")
		return false, err
	}
	return cnt > 0, nil
}
