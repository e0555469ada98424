package ledger

import "errors"

var (
	ErrUnknownEventKind = errors.New("unknown ledger event kind")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrMissingSink      = errors.New("event requires a sink entity")
)
