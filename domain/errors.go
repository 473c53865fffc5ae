package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")

	// auction validation errors
	ErrAuctionStartTimeAlreadyPassed = errors.New("auction start time already passed")
	ErrInvalidTimeConfiguration      = errors.New("invalid auction time configuration")
	ErrEmptyAuctionName              = errors.New("auction name cannot be empty")
	ErrNotATokenOwner                = errors.New("not a token owner")
	ErrNotAuctionOwner               = errors.New("not an auction owner")
	ErrAuctionNotExist               = errors.New("auction does not exist")
	ErrNoChangeOfAuctionType         = errors.New("auction type cannot be changed")
	ErrInvalidNextBidMin             = errors.New("invalid next bid min")
	ErrInvalidBidPrice               = errors.New("invalid bid price")
	ErrAuctionNotStarted             = errors.New("auction has not started")
	ErrAuctionEndTimeReached         = errors.New("auction end time reached")
	ErrAuctionEndTimeNotReached      = errors.New("auction end time not reached")
	ErrAuctionAlreadyClosed          = errors.New("auction is already closed")
	ErrAuctionAlreadyStarted         = errors.New("auction already started")
	ErrAuctionExistForToken          = errors.New("an open auction already exists for this token")
	ErrTokenFrozen                   = errors.New("token is frozen")

	// unsupported operation for the auction variant
	ErrClaimsNotSupportedForThisAuctionType = errors.New("claims are not supported for this auction type")

	// liquidity mining errors
	ErrGlobalFarmNotFound       = errors.New("global farm not found")
	ErrYieldFarmNotFound        = errors.New("yield farm not found")
	ErrYieldFarmAlreadyExists   = errors.New("yield farm already exists for this pool")
	ErrDepositNotFound          = errors.New("deposit not found")
	ErrForbidden                = errors.New("forbidden")
	ErrStableswapPoolNotFound   = errors.New("stableswap pool not found")
	ErrInvalidMultiplier        = errors.New("multiplier must be greater than zero")
	ErrInvalidFarmConfiguration = errors.New("invalid farm configuration")
	ErrInvalidDepositAmount     = errors.New("invalid deposit amount")

	// ledger errors, these abort the enclosing operation
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowExistential    = errors.New("transfer would kill the source account")
)
