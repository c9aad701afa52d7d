package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOverride_CapturesOriginals(t *testing.T) {
	t.Parallel()

	item := sampleItem("3000", "2398.54")

	out := ApplyOverride(item, dec("2500"), nil, "court order", "admin")

	assert.True(t, out.Overridden)
	assert.Equal(t, "court order", out.OverrideReason)
	assert.Equal(t, "admin", out.OverrideBy)
	eq(t, "2500", out.NetPay)
	eq(t, "3000", out.GrossPay) // untouched without a gross override
	eq(t, "2398.54", out.OriginalNetPay)
	eq(t, "3000", out.OriginalGrossPay)
}

func TestApplyOverride_SecondOverrideKeepsFirstOriginals(t *testing.T) {
	t.Parallel()

	item := sampleItem("3000", "2398.54")

	first := ApplyOverride(item, dec("2500"), nil, "first", "admin")
	second := ApplyOverride(first, dec("2600"), decPtr("3100"), "second", "admin")

	eq(t, "2600", second.NetPay)
	eq(t, "3100", second.GrossPay)
	eq(t, "2398.54", second.OriginalNetPay)
	eq(t, "3000", second.OriginalGrossPay)
	assert.Equal(t, "second", second.OverrideReason)
}

func TestApplyOverride_RoundsSuppliedValues(t *testing.T) {
	t.Parallel()

	item := sampleItem("3000", "2398.54")

	out := ApplyOverride(item, dec("2500.005"), decPtr("3100.004"), "rounding", "admin")

	eq(t, "2500.01", out.NetPay)
	eq(t, "3100", out.GrossPay)
}
