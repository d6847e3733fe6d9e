package bridge

import "errors"

var (
	ErrNoViableRoute    = errors.New("no provider returned a viable route")
	ErrQuoteExpired     = errors.New("quote has expired")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrProviderMismatch = errors.New("quote does not belong to this provider")
	ErrUnknownProvider  = errors.New("unknown bridge provider")
	ErrRouteUnsupported = errors.New("route not supported by provider")
	ErrTransferNotFound = errors.New("transfer not found")
)
