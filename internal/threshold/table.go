// Package threshold resolves statutory monetary thresholds that vary by date.
// A Table is loaded once per process and never mutated afterwards.
package threshold

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout used for effective dates in threshold files.
const DateLayout = "2006-01-02"

// Threshold names resolved by the assessment core.
const (
	CapitalLower                 = "capital_lower"
	CapitalUpper                 = "capital_upper"
	PropertyDisregard            = "property_disregard"
	VehicleDisregard             = "vehicle_disregard"
	VehicleOutOfScopeMonths      = "vehicle_out_of_scope_months"
	PensionerMinimumAge          = "pensioner_minimum_age"
	PensionerDisregardPassported = "pensioner_capital_disregard_passported"
	PensionerDisregardOther      = "pensioner_capital_disregard_non_passported"
	IncomeLower                  = "income_lower"
	IncomeUpper                  = "income_upper"
	HousingCostCapSingle         = "housing_cost_cap_single"
	ChildcareMaxDependantAge     = "childcare_max_dependant_age"
	DependantChildUnder16        = "dependant_allowance_child_under_16"
	DependantChild16AndOver      = "dependant_allowance_child_16_and_over"
	DependantAdult               = "dependant_allowance_adult"
)

// Required lists every name the assessment core resolves.
var Required = []string{
	CapitalLower, CapitalUpper, PropertyDisregard, VehicleDisregard, VehicleOutOfScopeMonths,
	PensionerMinimumAge, PensionerDisregardPassported, PensionerDisregardOther,
	IncomeLower, IncomeUpper, HousingCostCapSingle, ChildcareMaxDependantAge,
	DependantChildUnder16, DependantChild16AndOver, DependantAdult,
}

var (
	// ErrNotFound is matched by every lookup failure.
	ErrNotFound = errors.New("threshold not found")
	// ErrOverlap is returned when two entries for the same name share a date.
	ErrOverlap = errors.New("threshold ranges overlap")
)

// NotFoundError reports which threshold could not be resolved and for which date.
type NotFoundError struct {
	Name string
	At   time.Time
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s threshold in force on %s", e.Name, e.At.Format(DateLayout))
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Entry is one threshold value in force over [From, To). A zero To is open-ended.
type Entry struct {
	Name  string
	From  time.Time
	To    time.Time
	Value decimal.Decimal
}

func (e Entry) covers(at time.Time) bool {
	if at.Before(e.From) {
		return false
	}
	return e.To.IsZero() || at.Before(e.To)
}

// Table is an immutable, date-ranged set of threshold values.
type Table struct {
	byName map[string][]Entry
}

// New validates entries and builds a Table. Entries for the same name may leave
// gaps between them but must not overlap.
func New(entries []Entry) (*Table, error) {
	byName := make(map[string][]Entry)
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("threshold entry without a name")
		}
		e.From = truncateDay(e.From)
		if !e.To.IsZero() {
			e.To = truncateDay(e.To)
			if !e.To.After(e.From) {
				return nil, fmt.Errorf("threshold %s: range ends on or before it starts (%s)", e.Name, e.From.Format(DateLayout))
			}
		}
		byName[e.Name] = append(byName[e.Name], e)
	}

	for name, list := range byName {
		sort.Slice(list, func(i, j int) bool { return list[i].From.Before(list[j].From) })
		for i := 1; i < len(list); i++ {
			prev := list[i-1]
			if prev.To.IsZero() || list[i].From.Before(prev.To) {
				return nil, fmt.Errorf("%w: %s from %s", ErrOverlap, name, list[i].From.Format(DateLayout))
			}
		}
		byName[name] = list
	}

	return &Table{byName: byName}, nil
}

// ValueFor returns the value of the named threshold in force on the given date.
func (t *Table) ValueFor(name string, at time.Time) (decimal.Decimal, error) {
	day := truncateDay(at)
	for _, e := range t.byName[name] {
		if e.covers(day) {
			return e.Value, nil
		}
	}
	return decimal.Zero, &NotFoundError{Name: name, At: day}
}

// At binds the table to a single date.
func (t *Table) At(date time.Time) Dated {
	return Dated{table: t, date: truncateDay(date)}
}

// Names lists the threshold names the table knows about, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Missing returns the Required names with no entry at all, sorted.
// A name that is present but does not cover some date is not reported.
func (t *Table) Missing() []string {
	known := make(map[string]bool, len(t.byName))
	for _, name := range t.Names() {
		known[name] = true
	}
	var missing []string
	for _, name := range Required {
		if !known[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Dated is a Table view fixed to one date; every lookup resolves against that date.
type Dated struct {
	table *Table
	date  time.Time
}

// Date returns the date the view is bound to.
func (d Dated) Date() time.Time { return d.date }

// Value resolves the named threshold at the bound date.
func (d Dated) Value(name string) (decimal.Decimal, error) {
	if d.table == nil {
		return decimal.Zero, &NotFoundError{Name: name, At: d.date}
	}
	return d.table.ValueFor(name, d.date)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
