package service

import "errors"

var (
	ErrNotSynced          = errors.New("nothing synced yet")
	ErrUnexpectedItemType = errors.New("unexpected item type")
	ErrInvalidExpression  = errors.New("invalid search expression")
)
