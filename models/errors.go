package models

import "errors"

var (
	ErrAreaNotFound    = errors.New("area not found")
	ErrUnknownContract = errors.New("unknown contract")
)
