package settings

import "errors"

var (
	ErrMonthlyConfigNotFound = errors.New("monthly config not found")
	ErrInvalidMonth          = errors.New("invalid month key")
)
