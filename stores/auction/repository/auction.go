package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/auction"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

const auctionIdCounter = "auctions"

type counterCell struct {
	Name string `bson:"name"`
	Seq  uint64 `bson:"seq"`
}

type auctionRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) auction.Repo {
	return &auctionRepoImpl{q}
}

func (im *auctionRepoImpl) NextId(c ctx.Ctx) (domain.AuctionId, error) {
	cell := counterCell{}
	err := im.q.Increment(c, domain.TableCounters, bson.M{"name": auctionIdCounter}, &cell, "seq", 1)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return domain.AuctionId(cell.Seq), nil
}

func (im *auctionRepoImpl) FindOne(c ctx.Ctx, id domain.AuctionId) (*auction.Auction, error) {
	res := &auction.Auction{}
	err := im.q.FindOne(c, domain.TableAuctions, bson.M{"id": id}, res)
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

func (im *auctionRepoImpl) FindOpenByToken(c ctx.Ctx, token domain.TokenId) (*auction.Auction, error) {
	res := &auction.Auction{}
	qry := bson.M{
		"token.collectionId": token.CollectionId,
		"token.itemId":       token.ItemId,
		"closed":             false,
	}
	err := im.q.FindOne(c, domain.TableAuctions, qry, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) ListByOwner(c ctx.Ctx, owner domain.AccountId, offset, limit int) ([]*auction.Auction, error) {
	res := []*auction.Auction{}
	err := im.q.Search(c, domain.TableAuctions, offset, limit, "id", bson.M{"owner": owner}, &res)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) FindExpired(c ctx.Ctx, now domain.BlockNumber, limit int) ([]*auction.Auction, error) {
	res := []*auction.Auction{}
	qry := bson.M{
		"closed": false,
		"end":    bson.M{"$lte": now},
	}
	err := im.q.Search(c, domain.TableAuctions, 0, limit, "id", qry, &res)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"now": now,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionRepoImpl) Insert(c ctx.Ctx, a *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, a); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"auction": a,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Update(c ctx.Ctx, a *auction.Auction) error {
	err := im.q.Upsert(c, domain.TableAuctions, bson.M{"id": a.Id}, a)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  a.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *auctionRepoImpl) Delete(c ctx.Ctx, id domain.AuctionId) error {
	err := im.q.Remove(c, domain.TableAuctions, bson.M{"id": id})
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
