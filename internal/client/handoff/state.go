package handoff

import "errors"

type State string

const (
	StateStart           State = "start"
	StateAwaitingSession State = "awaiting_session"
	StateResolvingFiles  State = "resolving_files"
	StateSubmitting      State = "submitting"
	StateVerifying       State = "verifying"
	StateCleanup         State = "cleanup"
	StateDone            State = "done"
	StateFailed          State = "failed"
)

var (
	ErrSessionNotEstablished = errors.New("session not established")
	ErrFileResolution        = errors.New("staged file resolution failed")
	ErrSubmission            = errors.New("surprise submission failed")
	ErrVerification          = errors.New("surprise verification failed")
)
