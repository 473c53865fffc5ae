package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/farming"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

const yieldFarmIdCounter = "yieldFarms"

type yieldFarmRepoImpl struct {
	q query.Mongo
}

func NewYieldFarmRepo(q query.Mongo) farming.YieldFarmRepo {
	return &yieldFarmRepoImpl{q}
}

func (im *yieldFarmRepoImpl) NextId(c ctx.Ctx) (domain.YieldFarmId, error) {
	cell := counterCell{}
	err := im.q.Increment(c, domain.TableCounters, bson.M{"name": yieldFarmIdCounter}, &cell, "seq", 1)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return domain.YieldFarmId(cell.Seq), nil
}

func (im *yieldFarmRepoImpl) FindOne(c ctx.Ctx, poolId domain.PoolId, globalFarmId domain.GlobalFarmId, id domain.YieldFarmId) (*farming.YieldFarmData, error) {
	res := &farming.YieldFarmData{}
	qry := bson.M{
		"poolId":       poolId,
		"globalFarmId": globalFarmId,
		"id":           id,
	}
	err := im.q.FindOne(c, domain.TableYieldFarms, qry, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *yieldFarmRepoImpl) FindActiveByPool(c ctx.Ctx, poolId domain.PoolId, globalFarmId domain.GlobalFarmId) (*farming.YieldFarmData, error) {
	res := &farming.YieldFarmData{}
	qry := bson.M{
		"poolId":       poolId,
		"globalFarmId": globalFarmId,
		"state":        farming.YieldFarmStateActive,
	}
	err := im.q.FindOne(c, domain.TableYieldFarms, qry, res)
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

func (im *yieldFarmRepoImpl) Insert(c ctx.Ctx, y *farming.YieldFarmData) error {
	if err := im.q.Insert(c, domain.TableYieldFarms, y); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"farm": y,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *yieldFarmRepoImpl) Update(c ctx.Ctx, y *farming.YieldFarmData) error {
	qry := bson.M{
		"poolId":       y.PoolId,
		"globalFarmId": y.GlobalFarmId,
		"id":           y.Id,
	}
	err := im.q.Upsert(c, domain.TableYieldFarms, qry, y)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  y.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
