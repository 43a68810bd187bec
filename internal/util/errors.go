package util

import "errors"

var (
	ErrNoProfile           = errors.New("no user profile; take the assessment first")
	ErrNoQuestions         = errors.New("no assessment in progress")
	ErrMalformedResults    = errors.New("assessment results missing or malformed")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
	ErrIndexOutOfRange     = errors.New("week, day or resource index out of range")
	ErrNotFound            = errors.New("record not found")
	ErrInvalidStatus       = errors.New("invalid project status")
)
