package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() []Rule {
	return []Rule{
		{Field: "customer_id", Kind: Integer, Required: true},
		{Field: "volume", Kind: Numeric, Required: true, Min: Min(0)},
		{Field: "status", Kind: Boolean, Required: true},
		{Field: "date_of_entry", Kind: Date, Required: true},
		{Field: "remark", Kind: String},
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	_, report := Validate(map[string]any{
		"volume": -5,
		"status": "maybe",
	}, testRules(), false)

	require.NotNil(t, report)
	assert.Equal(t, []string{"required"}, report.Fields["customer_id"])
	assert.Equal(t, []string{"min:0"}, report.Fields["volume"])
	assert.Equal(t, []string{"boolean"}, report.Fields["status"])
	assert.Equal(t, []string{"required"}, report.Fields["date_of_entry"])
}

func TestValidate_CoercesTypes(t *testing.T) {
	out, report := Validate(map[string]any{
		"customer_id":   "42",
		"volume":        float64(12),
		"status":        "true",
		"date_of_entry": "2026-08-01",
		"remark":        "steady",
	}, testRules(), false)

	require.Nil(t, report)
	assert.Equal(t, int64(42), out["customer_id"])
	assert.Equal(t, float64(12), out["volume"])
	assert.Equal(t, true, out["status"])
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), out["date_of_entry"])
	assert.Equal(t, "steady", out["remark"])
}

func TestValidate_UpdateModeSkipsMissingRequired(t *testing.T) {
	out, report := Validate(map[string]any{
		"volume": 30,
	}, testRules(), true)

	require.Nil(t, report)
	assert.Equal(t, map[string]any{"volume": float64(30)}, out)
}

func TestValidate_UpdateModeStillChecksSuppliedFields(t *testing.T) {
	_, report := Validate(map[string]any{
		"volume": -1,
	}, testRules(), true)

	require.NotNil(t, report)
	assert.Equal(t, []string{"min:0"}, report.Fields["volume"])
}

func TestValidate_DropsUnknownKeys(t *testing.T) {
	out, report := Validate(map[string]any{
		"volume":        10,
		"customer_id":   1,
		"status":        true,
		"unknown":       "x",
		"date_of_entry": "2026-08-01",
	}, testRules(), false)

	require.Nil(t, report)
	_, present := out["unknown"]
	assert.False(t, present)
}

func TestValidate_RejectsFractionalInteger(t *testing.T) {
	_, report := Validate(map[string]any{
		"customer_id": 1.5,
	}, testRules(), true)

	require.NotNil(t, report)
	assert.Equal(t, []string{"integer"}, report.Fields["customer_id"])
}
