package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/farming"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

const globalFarmIdCounter = "globalFarms"

type counterCell struct {
	Name string `bson:"name"`
	Seq  uint64 `bson:"seq"`
}

type globalFarmRepoImpl struct {
	q query.Mongo
}

func NewGlobalFarmRepo(q query.Mongo) farming.GlobalFarmRepo {
	return &globalFarmRepoImpl{q}
}

func (im *globalFarmRepoImpl) NextId(c ctx.Ctx) (domain.GlobalFarmId, error) {
	cell := counterCell{}
	err := im.q.Increment(c, domain.TableCounters, bson.M{"name": globalFarmIdCounter}, &cell, "seq", 1)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return domain.GlobalFarmId(cell.Seq), nil
}

func (im *globalFarmRepoImpl) FindOne(c ctx.Ctx, id domain.GlobalFarmId) (*farming.GlobalFarmData, error) {
	res := &farming.GlobalFarmData{}
	err := im.q.FindOne(c, domain.TableGlobalFarms, bson.M{"id": id}, res)
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

func (im *globalFarmRepoImpl) Insert(c ctx.Ctx, g *farming.GlobalFarmData) error {
	if err := im.q.Insert(c, domain.TableGlobalFarms, g); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"farm": g,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *globalFarmRepoImpl) Update(c ctx.Ctx, g *farming.GlobalFarmData) error {
	err := im.q.Upsert(c, domain.TableGlobalFarms, bson.M{"id": g.Id}, g)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  g.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
