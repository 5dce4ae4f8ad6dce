package prodcal

import "strconv"

// Query parameter names understood by the get-period operation
const (
	ParamRegion       = "region"
	ParamCompact      = "compact"
	ParamWeekType     = "week_type"
	ParamWsch         = "wsch"
	ParamDaysAsObject = "days_as_object"
)

// Param is a single query parameter
type Param struct {
	Key   string
	Value string
}

// PeriodParams holds the optional get-period parameters. A nil field is unset
// and never serialized.
type PeriodParams struct {
	Region       *int
	Compact      *bool
	WeekType     *WeekType
	IncludeWsch  *bool
	AsDictionary *bool
}

// Pairs serializes the set fields in the order
// region, compact, week_type, wsch, days_as_object
func (p PeriodParams) Pairs() []Param {
	var pairs []Param
	if p.Region != nil {
		pairs = append(pairs, Param{ParamRegion, strconv.Itoa(*p.Region)})
	}
	if p.Compact != nil {
		pairs = append(pairs, Param{ParamCompact, strconv.FormatBool(*p.Compact)})
	}
	if p.WeekType != nil {
		pairs = append(pairs, Param{ParamWeekType, p.WeekType.String()})
	}
	if p.IncludeWsch != nil {
		pairs = append(pairs, Param{ParamWsch, strconv.FormatBool(*p.IncludeWsch)})
	}
	if p.AsDictionary != nil {
		pairs = append(pairs, Param{ParamDaysAsObject, strconv.FormatBool(*p.AsDictionary)})
	}
	return pairs
}

func ptr[T any](v T) *T { return &v }
