package models

import (
	"errors"
)

var (
	ErrProposalNotFound   = errors.New("models: proposal not found")
	ErrEventNotFound      = errors.New("models: event not found")
	ErrTierNotFound       = errors.New("models: sponsorship tier not found")
	ErrInvoiceNotFound    = errors.New("models: invoice not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrMessageNotFound    = errors.New("models: message not found")
	ErrDuplicateID        = errors.New("models: duplicate id")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrAlreadyPaid        = errors.New("models: invoice already paid")
)
