package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("value"))
	assert.False(t, IsEmpty(" value "))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("15-06-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("not a date")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	t.Parallel()

	frequencies := []string{"Monthly", "Bi-Weekly", "Semi-Monthly"}

	assert.True(t, IsInSlice("Monthly", frequencies))
	assert.False(t, IsInSlice("Weekly", frequencies))
	assert.False(t, IsInSlice("monthly", frequencies))
}

func TestValidationErrors_ErrorAndToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "period_start", Message: "must be YYYY-MM-DD"},
		{Field: "frequency", Message: "is required"},
	}

	assert.Equal(t, "period_start: must be YYYY-MM-DD; frequency: is required", errs.Error())
	assert.Equal(t, map[string]string{
		"period_start": "must be YYYY-MM-DD",
		"frequency":    "is required",
	}, errs.ToMap())
}
