package commands

import (
	"stay-admin/internal/pkg/errs"
)

var (
	ErrValidation          = errs.ErrValidation
	ErrUpstreamWrite       = errs.ErrUpstreamWrite
	ErrBlockedDateNotFound = errs.ErrBlockedDateNotFound
	ErrNoDates             = errs.Mark(errs.New("select at least one date"), errs.ErrValidation)
)
