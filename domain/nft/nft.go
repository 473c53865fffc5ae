package nft

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
)

type Item struct {
	CollectionId domain.CollectionId `json:"collectionId" bson:"collectionId"`
	ItemId       domain.ItemId       `json:"itemId" bson:"itemId"`
	Owner        domain.AccountId    `json:"owner" bson:"owner"`
	Frozen       bool                `json:"frozen" bson:"frozen"`
}

// Registry is the NFT ownership registry. Transfer fails when the token
// is frozen or the origin is not the owner, Freeze/Unfreeze toggle
// transferability for an auction's active lifetime.
type Registry interface {
	Get(c bCtx.Ctx, token domain.TokenId) (*Item, error)
	IsOwner(c bCtx.Ctx, account domain.AccountId, token domain.TokenId) (bool, error)
	Transfer(c bCtx.Ctx, origin domain.AccountId, token domain.TokenId, destination domain.AccountId) error
	Freeze(c bCtx.Ctx, token domain.TokenId) error
	Unfreeze(c bCtx.Ctx, token domain.TokenId) error
}
