package surprise

import "fmt"

type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusActive:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// CanTransition reports whether a record may move from one status to another.
// Only draft -> active is allowed.
func CanTransition(from, to Status) bool {
	return from == StatusDraft && to == StatusActive
}
