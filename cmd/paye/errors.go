package main

import "errors"

var errNegativeAmount = errors.New("amounts cannot be negative")
