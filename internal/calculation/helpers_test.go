package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// assertDecimal compares two decimals exactly, printing both on failure
func assertDecimal(t *testing.T, want, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !want.Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want.String(), got.String()), msgAndArgs...)
	}
}

// assertNear allows a tolerance for values that pass through repeating divisions
func assertNear(t *testing.T, want, got, tolerance decimal.Decimal, description string) {
	t.Helper()
	diff := got.Sub(want).Abs()
	assert.True(t, diff.LessThanOrEqual(tolerance),
		"%s: expected %s, got %s (difference: %s)", description, want.StringFixed(2), got.StringFixed(2), diff.StringFixed(2))
}

// recordingLogger counts calls per level
type recordingLogger struct {
	debug, info, warn, errs int
}

func (r *recordingLogger) Debugf(string, ...any) { r.debug++ }
func (r *recordingLogger) Infof(string, ...any)  { r.info++ }
func (r *recordingLogger) Warnf(string, ...any)  { r.warn++ }
func (r *recordingLogger) Errorf(string, ...any) { r.errs++ }
