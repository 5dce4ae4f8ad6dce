package prodcal

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PeriodQuery configures a get-period request. It is a value: every setter
// returns a modified copy and leaves the receiver untouched.
type PeriodQuery struct {
	client  *Client
	country string
	spec    PeriodSpec
	params  PeriodParams
}

// Country overrides the client's default country code
func (q PeriodQuery) Country(code string) PeriodQuery {
	q.country = code
	return q
}

// Region restricts the calendar to a region of the country
func (q PeriodQuery) Region(id int) PeriodQuery {
	q.params.Region = ptr(id)
	return q
}

// CompactView asks only for days that differ from the default calendar
func (q PeriodQuery) CompactView() PeriodQuery {
	q.params.Compact = ptr(true)
	return q
}

// WeekType selects the week length used for working hours
func (q PeriodQuery) WeekType(wt WeekType) PeriodQuery {
	q.params.WeekType = ptr(wt)
	return q
}

// IncludeWschDays includes the 2020 paid non-working days
func (q PeriodQuery) IncludeWschDays() PeriodQuery {
	q.params.IncludeWsch = ptr(true)
	return q
}

// ForYear selects a whole year
func (q PeriodQuery) ForYear(year int) (PeriodQuery, error) {
	return q.ForSpec(YearSpec(year))
}

// ForQuarter selects quarter 1..4 of a year
func (q PeriodQuery) ForQuarter(year, quarter int) (PeriodQuery, error) {
	if err := q.ensurePeriodNotSet(); err != nil {
		return q, err
	}
	spec, err := QuarterSpec(year, quarter)
	if err != nil {
		return q, err
	}
	return q.ForSpec(spec)
}

// ForMonth selects month 1..12 of a year
func (q PeriodQuery) ForMonth(year, month int) (PeriodQuery, error) {
	if err := q.ensurePeriodNotSet(); err != nil {
		return q, err
	}
	spec, err := MonthSpec(year, month)
	if err != nil {
		return q, err
	}
	return q.ForSpec(spec)
}

// ForDateRange selects the days from..to inclusive
func (q PeriodQuery) ForDateRange(from, to time.Time) (PeriodQuery, error) {
	return q.ForSpec(RangeSpec(from, to))
}

// ForSpec sets an already built period. A query takes exactly one period.
func (q PeriodQuery) ForSpec(spec PeriodSpec) (PeriodQuery, error) {
	if err := q.ensurePeriodNotSet(); err != nil {
		return q, err
	}
	if !spec.IsSet() {
		return q, newError(KindValidation, "set period", "period is empty")
	}
	q.spec = spec
	return q, nil
}

// Specifier returns the period path segment, empty when no period is set
func (q PeriodQuery) Specifier() string {
	return q.spec.String()
}

// Params returns the serialized optional parameters
func (q PeriodQuery) Params() []Param {
	return q.params.Pairs()
}

// List performs the request and decodes days as a list
func (q PeriodQuery) List(ctx context.Context) (*PeriodList, error) {
	const op = "get period list"

	body, err := q.send(ctx, op, q.params)
	if err != nil {
		return nil, err
	}

	period, err := DecodePeriodList(body)
	if err != nil {
		return nil, err
	}

	q.client.logger.Info("Period fetched",
		zap.String("country", q.country),
		zap.String("period", q.spec.String()),
		zap.Int("days", len(period.Days)),
		zap.Int("working_hours", period.Statistic.WorkingHours))

	return period, nil
}

// Dictionary performs the request with days_as_object=true and decodes days
// keyed by date
func (q PeriodQuery) Dictionary(ctx context.Context) (*PeriodMap, error) {
	const op = "get period dictionary"

	params := q.params
	params.AsDictionary = ptr(true)

	body, err := q.send(ctx, op, params)
	if err != nil {
		return nil, err
	}

	period, err := DecodePeriodMap(body)
	if err != nil {
		return nil, err
	}

	q.client.logger.Info("Period fetched",
		zap.String("country", q.country),
		zap.String("period", q.spec.String()),
		zap.Int("days", len(period.Days)),
		zap.Int("working_hours", period.Statistic.WorkingHours))

	return period, nil
}

// send validates the query and fetches the raw body. Nothing reaches the
// transport unless country and period are set.
func (q PeriodQuery) send(ctx context.Context, op string, params PeriodParams) ([]byte, error) {
	if q.client == nil {
		return nil, newError(KindConfiguration, op, "query is not bound to a client")
	}
	if strings.TrimSpace(q.country) == "" {
		return nil, newError(KindPrecondition, op, "country code is required")
	}
	if !q.spec.IsSet() {
		return nil, newError(KindPrecondition, op, "period must be set before the request")
	}
	if params.WeekType != nil && !params.WeekType.Valid() {
		return nil, newError(KindValidation, op, "week type must be 5 or 6, got %d", int(*params.WeekType))
	}

	url := q.client.url(OpGetPeriod, q.country, q.spec.String(), params.Pairs())
	return q.client.fetch(ctx, op, url)
}

func (q PeriodQuery) ensurePeriodNotSet() error {
	if q.spec.IsSet() {
		return newError(KindState, "set period", "period already set to %q", q.spec.String())
	}
	return nil
}
