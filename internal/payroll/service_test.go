package payroll

import (
	"context"
	"testing"

	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportRequiresPro(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)

	_, err := svc.Import(context.Background(), "owner", false, []domain.Employee{employee("1", 100000)})
	assert.ErrorIs(t, err, ErrProRequired)

	got, err := svc.Employees(context.Background(), "owner")
	require.NoError(t, err)
	assert.Empty(t, got, "rejected import stores nothing")
}

func TestImportAssignsIDs(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)

	imported, err := svc.Import(context.Background(), "owner", true, []domain.Employee{
		{Name: "Ngozi", MonthlyGross: decimal.NewFromInt(250000)},
		employee("fixed", 100000),
	})
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Len(t, imported[0].ID, 36)
	assert.Equal(t, "fixed", imported[1].ID)
}

func TestOwnerRequired(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.Import(ctx, "", true, nil)
	assert.ErrorIs(t, err, ErrOwnerRequired)
	_, err = svc.Add(ctx, "", employee("1", 1))
	assert.ErrorIs(t, err, ErrOwnerRequired)
	_, err = svc.Run(ctx, "")
	assert.ErrorIs(t, err, ErrOwnerRequired)
	assert.ErrorIs(t, svc.Remove(ctx, "", "1"), ErrOwnerRequired)
}

func TestAddAndRemove(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)
	ctx := context.Background()

	added, err := svc.Add(ctx, "owner", domain.Employee{Name: "Solo", MonthlyGross: decimal.NewFromInt(90000)})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	require.NoError(t, svc.Remove(ctx, "owner", added.ID))
	assert.ErrorIs(t, svc.Remove(ctx, "owner", added.ID), ErrEmployeeNotFound)
}

func TestRunEvaluatesRoster(t *testing.T) {
	svc := NewService(NewMemoryStore(), nil)
	ctx := context.Background()

	_, err := svc.Import(ctx, "owner", true, []domain.Employee{
		employee("a", 500000),
		employee("b", 0),
	})
	require.NoError(t, err)

	run, err := svc.Run(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, run.Lines, 2)
	assert.Equal(t, "owner", run.OwnerID)
	assert.True(t, run.Lines[0].PAYETax.Equal(decimal.NewFromInt(63050)), "got %s", run.Lines[0].PAYETax)
	assert.True(t, run.Lines[0].NetPay.Equal(decimal.NewFromInt(384450)), "got %s", run.Lines[0].NetPay)
	assert.True(t, run.Lines[1].NetPay.IsZero())
	assert.True(t, run.Totals.Gross.Equal(decimal.NewFromInt(500000)))
	assert.True(t, run.Totals.Net.Equal(run.Lines[0].NetPay))
}
