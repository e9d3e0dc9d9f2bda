package payroll

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/naijatax/paye-calculator/internal/calculation"
	"github.com/naijatax/paye-calculator/internal/domain"
)

// Service runs payroll over stored rosters
type Service struct {
	store  Store
	engine *calculation.TaxEngine
}

// NewService creates a payroll service. A nil engine uses the statutory defaults.
func NewService(store Store, engine *calculation.TaxEngine) *Service {
	if engine == nil {
		engine = calculation.NewTaxEngine()
	}
	return &Service{store: store, engine: engine}
}

// Import stores a batch of employees for an owner. Bulk import is a Pro feature.
// Employees without an ID are assigned a new uuid.
func (s *Service) Import(ctx context.Context, ownerID string, isPro bool, employees []domain.Employee) ([]domain.Employee, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if !isPro {
		return nil, fmt.Errorf("bulk import: %w", ErrProRequired)
	}

	imported := make([]domain.Employee, len(employees))
	for i, e := range employees {
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		imported[i] = e
	}

	if err := s.store.Save(ctx, ownerID, imported); err != nil {
		return nil, fmt.Errorf("bulk import: %w", err)
	}
	s.engine.Logger.Infof("payroll: imported %d employees for owner=%s", len(imported), ownerID)
	return imported, nil
}

// Add stores a single employee; available on every tier
func (s *Service) Add(ctx context.Context, ownerID string, e domain.Employee) (domain.Employee, error) {
	if ownerID == "" {
		return domain.Employee{}, ErrOwnerRequired
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := s.store.Save(ctx, ownerID, []domain.Employee{e}); err != nil {
		return domain.Employee{}, fmt.Errorf("add employee: %w", err)
	}
	return e, nil
}

// Employees lists the owner's roster
func (s *Service) Employees(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	return s.store.List(ctx, ownerID)
}

// Remove deletes one employee from the owner's roster
func (s *Service) Remove(ctx context.Context, ownerID, employeeID string) error {
	if ownerID == "" {
		return ErrOwnerRequired
	}
	return s.store.Delete(ctx, ownerID, employeeID)
}

// Run evaluates the owner's full roster
func (s *Service) Run(ctx context.Context, ownerID string) (domain.PayrollRun, error) {
	employees, err := s.Employees(ctx, ownerID)
	if err != nil {
		return domain.PayrollRun{}, fmt.Errorf("payroll run: %w", err)
	}
	return s.engine.RunPayroll(ownerID, employees), nil
}
