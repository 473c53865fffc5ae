package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/chain"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

const headStateName = "head"

type headState struct {
	Name  string             `bson:"name"`
	Block domain.BlockNumber `bson:"block"`
}

type chainRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) chain.Repo {
	return &chainRepoImpl{q}
}

func (im *chainRepoImpl) CurrentBlock(c ctx.Ctx) (domain.BlockNumber, error) {
	res := &headState{}
	err := im.q.FindOne(c, domain.TableChainState, bson.M{"name": headStateName}, res)
	if err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.FindOne failed")
		return 0, err
	}
	return res.Block, nil
}

func (im *chainRepoImpl) SetBlock(c ctx.Ctx, height domain.BlockNumber) error {
	err := im.q.Upsert(c, domain.TableChainState, bson.M{"name": headStateName}, &headState{
		Name:  headStateName,
		Block: height,
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"height": height,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
