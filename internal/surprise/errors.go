package surprise

import "errors"

var (
	ErrInvalidDraft  = errors.New("invalid draft")
	ErrUnknownPlan   = errors.New("unknown plan")
	ErrUnknownStatus = errors.New("unknown status")
	ErrExpired       = errors.New("surprise access expired")
)
