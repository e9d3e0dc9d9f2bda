package payroll

import (
	"errors"

	"github.com/naijatax/paye-calculator/internal/domain"
)

var (
	ErrProRequired      = domain.ErrProRequired
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrOwnerRequired    = errors.New("owner id is required")
)
