package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/event"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

type eventRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) Insert(c ctx.Ctx, e *event.Event) error {
	if err := im.q.Insert(c, domain.TableEvents, e); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"event": e,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *eventRepoImpl) Search(c ctx.Ctx, kind event.Kind, offset, limit int) ([]*event.Event, error) {
	res := []*event.Event{}
	qry := bson.M{}
	if kind != "" {
		qry["kind"] = kind
	}
	err := im.q.Search(c, domain.TableEvents, offset, limit, "-createdAt", qry, &res)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"kind": kind,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
