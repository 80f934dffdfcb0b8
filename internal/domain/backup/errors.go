package backup

import "errors"

var ErrInvalidSnapshot = errors.New("invalid snapshot")
