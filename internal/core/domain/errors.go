package domain

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoChoiceSelected = errors.New("no choice selected")
	ErrInvalidQuestion  = errors.New("invalid question")
	ErrInternal         = errors.New("internal server error")
)
