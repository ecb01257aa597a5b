package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies rule rejections. All rejections are synchronous and
// non-retryable: the caller must re-read state and issue a corrected action.
type ErrorKind string

const (
	ErrNotFound     ErrorKind = "not_found"
	ErrInvalidPhase ErrorKind = "invalid_phase"
	ErrInvalidTurn  ErrorKind = "invalid_turn"
	ErrIllegalBid   ErrorKind = "illegal_bid"
	ErrIllegalCard  ErrorKind = "illegal_card"
	ErrIllegalClaim ErrorKind = "illegal_claim"
)

// RuleError is a typed rejection of a game action. No state is mutated when
// a RuleError is returned.
type RuleError struct {
	Kind ErrorKind
	Msg  string
}

func (e *RuleError) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Msg) }

func ruleErrorf(kind ErrorKind, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind from a rule error, or "" for other errors.
func KindOf(err error) ErrorKind {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}
