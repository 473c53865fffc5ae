package chain

import (
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/domain"
)

// Clock reports chain time. Auctions and farms measure all windows in
// block heights, wall clock never enters the state machine.
type Clock interface {
	CurrentBlock(c bCtx.Ctx) (domain.BlockNumber, error)
}

type Repo interface {
	Clock
	SetBlock(c bCtx.Ctx, height domain.BlockNumber) error
}
