package assessment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"meansassess/internal/threshold"
)

// stubThresholds resolves names from a map and fails like the real table for
// anything missing.
type stubThresholds map[string]decimal.Decimal

func (s stubThresholds) Value(name string) (decimal.Decimal, error) {
	v, ok := s[name]
	if !ok {
		return decimal.Zero, &threshold.NotFoundError{Name: name}
	}
	return v, nil
}

func defaultStub() stubThresholds {
	return stubThresholds{
		threshold.CapitalLower:                 dec("3000"),
		threshold.CapitalUpper:                 dec("8000"),
		threshold.PropertyDisregard:            dec("100000"),
		threshold.VehicleDisregard:             dec("750"),
		threshold.VehicleOutOfScopeMonths:      dec("36"),
		threshold.PensionerMinimumAge:          dec("60"),
		threshold.PensionerDisregardPassported: dec("100000"),
		threshold.PensionerDisregardOther:      dec("30000"),
		threshold.IncomeLower:                  dec("315"),
		threshold.IncomeUpper:                  dec("733"),
		threshold.HousingCostCapSingle:         dec("545"),
		threshold.ChildcareMaxDependantAge:     dec("15"),
		threshold.DependantChildUnder16:        dec("291.49"),
		threshold.DependantChild16AndOver:      dec("296.65"),
		threshold.DependantAdult:               dec("296.65"),
	}
}

func (s stubThresholds) without(name string) stubThresholds {
	out := make(stubThresholds, len(s))
	for k, v := range s {
		if k != name {
			out[k] = v
		}
	}
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ymd(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func assertDecimal(t *testing.T, field string, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("expected %s %s, got %s", field, want, got.String())
	}
}
