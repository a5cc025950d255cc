package service

import "errors"

var (
	ErrPosNotFound = errors.New("pos not found")
)
