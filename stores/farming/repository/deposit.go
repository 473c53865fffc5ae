package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/farming"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

const depositIdCounter = "deposits"

type depositRepoImpl struct {
	q query.Mongo
}

func NewDepositRepo(q query.Mongo) farming.DepositRepo {
	return &depositRepoImpl{q}
}

func (im *depositRepoImpl) NextId(c ctx.Ctx) (domain.DepositId, error) {
	cell := counterCell{}
	err := im.q.Increment(c, domain.TableCounters, bson.M{"name": depositIdCounter}, &cell, "seq", 1)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return domain.DepositId(cell.Seq), nil
}

func (im *depositRepoImpl) FindOne(c ctx.Ctx, id domain.DepositId) (*farming.DepositData, error) {
	res := &farming.DepositData{}
	err := im.q.FindOne(c, domain.TableDeposits, bson.M{"id": id}, res)
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

func (im *depositRepoImpl) Insert(c ctx.Ctx, d *farming.DepositData) error {
	if err := im.q.Insert(c, domain.TableDeposits, d); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"deposit": d,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *depositRepoImpl) Update(c ctx.Ctx, d *farming.DepositData) error {
	err := im.q.Upsert(c, domain.TableDeposits, bson.M{"id": d.Id}, d)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  d.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *depositRepoImpl) Delete(c ctx.Ctx, id domain.DepositId) error {
	err := im.q.Remove(c, domain.TableDeposits, bson.M{"id": id})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
