package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/nft"
	"github.com/1xGiraffe/basilisk-core/service/query"
)

type nftRepoImpl struct {
	q query.Mongo
}

func NewRegistry(q query.Mongo) nft.Registry {
	return &nftRepoImpl{q}
}

func tokenQuery(token domain.TokenId) bson.M {
	return bson.M{
		"collectionId": token.CollectionId,
		"itemId":       token.ItemId,
	}
}

func (im *nftRepoImpl) Get(c ctx.Ctx, token domain.TokenId) (*nft.Item, error) {
	res := &nft.Item{}
	err := im.q.FindOne(c, domain.TableNftItems, tokenQuery(token), res)
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

func (im *nftRepoImpl) IsOwner(c ctx.Ctx, account domain.AccountId, token domain.TokenId) (bool, error) {
	item, err := im.Get(c, token)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return item.Owner.Equals(account), nil
}

func (im *nftRepoImpl) Transfer(c ctx.Ctx, origin domain.AccountId, token domain.TokenId, destination domain.AccountId) error {
	item, err := im.Get(c, token)
	if err != nil {
		return err
	}
	if item.Frozen {
		return domain.ErrTokenFrozen
	}
	if !item.Owner.Equals(origin) {
		return domain.ErrNotATokenOwner
	}

	err = im.q.Patch(c, domain.TableNftItems, tokenQuery(token), bson.M{"owner": destination})
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"token": token,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *nftRepoImpl) Freeze(c ctx.Ctx, token domain.TokenId) error {
	return im.setFrozen(c, token, true)
}

func (im *nftRepoImpl) Unfreeze(c ctx.Ctx, token domain.TokenId) error {
	return im.setFrozen(c, token, false)
}

func (im *nftRepoImpl) setFrozen(c ctx.Ctx, token domain.TokenId, frozen bool) error {
	err := im.q.Patch(c, domain.TableNftItems, tokenQuery(token), bson.M{"frozen": frozen})
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"token":  token,
			"frozen": frozen,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
