package prodcal

import (
	"strconv"
	"time"

	"github.com/username/production-calendar/pkg/dateutil"
)

// SpecKind tells which period selection a PeriodSpec holds
type SpecKind int

const (
	SpecUnset SpecKind = iota
	SpecYear
	SpecQuarter
	SpecMonth
	SpecRange
)

// PeriodSpec is the period path segment of a get-period request.
// The zero value is unset.
type PeriodSpec struct {
	kind  SpecKind
	value string
}

// YearSpec selects a whole year: "2025"
func YearSpec(year int) PeriodSpec {
	return PeriodSpec{kind: SpecYear, value: strconv.Itoa(year)}
}

// QuarterSpec selects a quarter: "Q22025"
func QuarterSpec(year, quarter int) (PeriodSpec, error) {
	if quarter < 1 || quarter > 4 {
		return PeriodSpec{}, newError(KindValidation, "quarter", "quarter must be between 1 and 4, got %d", quarter)
	}
	return PeriodSpec{kind: SpecQuarter, value: "Q" + strconv.Itoa(quarter) + strconv.Itoa(year)}, nil
}

// MonthSpec selects a month: "03.2025"
func MonthSpec(year, month int) (PeriodSpec, error) {
	if month < 1 || month > 12 {
		return PeriodSpec{}, newError(KindValidation, "month", "month must be between 1 and 12, got %d", month)
	}
	return PeriodSpec{kind: SpecMonth, value: dateutil.FormatMonth(year, time.Month(month))}, nil
}

// RangeSpec selects an explicit date range: "01.01.2025-15.01.2025"
func RangeSpec(from, to time.Time) PeriodSpec {
	return PeriodSpec{kind: SpecRange, value: dateutil.FormatDay(from) + "-" + dateutil.FormatDay(to)}
}

// Kind returns the selection kind
func (s PeriodSpec) Kind() SpecKind { return s.kind }

// IsSet reports whether a period was selected
func (s PeriodSpec) IsSet() bool { return s.kind != SpecUnset }

// String returns the wire path segment, empty when unset
func (s PeriodSpec) String() string { return s.value }
