package domain

import "errors"

// Bid rejection errors. Every validation failure surfaces as one of these,
// wrapped with call-site context; callers match with errors.Is.
var (
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrAuctionNotFound           = errors.New("auction not found")
	ErrAuctionExpired            = errors.New("auction expired")
	ErrHighestBidderNotPermitted = errors.New("highest bidder may not outbid themselves")
	ErrLockNotAcquired           = errors.New("auction lock held by another bidder")
	ErrBelowMinimumBid           = errors.New("bid does not exceed current highest bid")
	ErrTransferFailed            = errors.New("ledger transfer failed")
)

// ErrInvalidAuction covers malformed create requests.
var ErrInvalidAuction = errors.New("invalid auction")
