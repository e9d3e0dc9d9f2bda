package domain

import "errors"

// ErrProRequired is returned when a free-tier caller uses a Pro feature
var ErrProRequired = errors.New("feature requires a Pro subscription")
