package calendar

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/username/production-calendar/pkg/prodcal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultCompareWorkers = 4

// ProductionCalendar implements Calendar using production-calendar.ru API
type ProductionCalendar struct {
	client   *prodcal.Client
	region   int
	weekType prodcal.WeekType
	logger   *zap.Logger
}

// CountryStatistic is one row of a multi-country comparison
type CountryStatistic struct {
	CountryCode string
	CountryName string
	Statistic   prodcal.PeriodStatistic
}

// NewProductionCalendar creates a new ProductionCalendar instance. region 0
// means the whole country.
func NewProductionCalendar(client *prodcal.Client, region int, weekType prodcal.WeekType, logger *zap.Logger) *ProductionCalendar {
	if !weekType.Valid() {
		weekType = prodcal.FiveDayWeek
	}
	return &ProductionCalendar{
		client:   client,
		region:   region,
		weekType: weekType,
		logger:   logger,
	}
}

// IsWorkday checks if the given date is a working day
func (pc *ProductionCalendar) IsWorkday(ctx context.Context, date time.Time) (bool, int, error) {
	dayInfo, err := pc.GetDayInfo(ctx, date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetMonthInfo returns calendar info for the entire month
func (pc *ProductionCalendar) GetMonthInfo(ctx context.Context, year int, month time.Month) (*MonthInfo, error) {
	q, err := pc.query().ForMonth(year, int(month))
	if err != nil {
		return nil, err
	}

	period, err := q.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month %02d.%d: %w", month, year, err)
	}

	monthInfo := &MonthInfo{
		Year:         year,
		Month:        month,
		WorkingHours: period.Statistic.WorkingHours,
		WorkDays:     period.Statistic.WorkDays,
		Weekends:     period.Statistic.Weekends,
		Holidays:     period.Statistic.Holidays,
		Days:         make([]DayInfo, 0, len(period.Days)),
	}
	for _, day := range period.Days {
		monthInfo.Days = append(monthInfo.Days, dayInfoFrom(day))
	}

	pc.logger.Debug("Month info fetched",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("working_hours", monthInfo.WorkingHours))

	return monthInfo, nil
}

// GetDayInfo returns detailed info for a specific day
func (pc *ProductionCalendar) GetDayInfo(ctx context.Context, date time.Time) (*DayInfo, error) {
	monthInfo, err := pc.GetMonthInfo(ctx, date.Year(), date.Month())
	if err != nil {
		return nil, err
	}

	day, ok := findDay(monthInfo, date)
	if !ok {
		return nil, fmt.Errorf("day not found in calendar data: %s", date.Format("2006-01-02"))
	}
	return day, nil
}

// GetYear returns every day of a year as a list
func (pc *ProductionCalendar) GetYear(ctx context.Context, year int) (*prodcal.PeriodList, error) {
	q, err := pc.query().ForYear(year)
	if err != nil {
		return nil, err
	}

	period, err := q.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch year %d: %w", year, err)
	}
	return period, nil
}

// Compare fetches statistics of the same period for several countries. Requests
// run concurrently, at most workers at a time; the first failure cancels the rest.
// Rows come back sorted by country code.
func (pc *ProductionCalendar) Compare(ctx context.Context, spec prodcal.PeriodSpec, countries []string, workers int) ([]CountryStatistic, error) {
	if workers <= 0 {
		workers = defaultCompareWorkers
	}

	results := make([]CountryStatistic, len(countries))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, country := range countries {
		i, country := i, strings.TrimSpace(country)
		group.Go(func() error {
			q, err := pc.query().Country(country).ForSpec(spec)
			if err != nil {
				return err
			}

			period, err := q.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch %s for %s: %w", spec, country, err)
			}

			results[i] = CountryStatistic{
				CountryCode: period.CountryCode,
				CountryName: period.CountryName,
				Statistic:   period.Statistic,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool {
		return results[a].CountryCode < results[b].CountryCode
	})

	pc.logger.Info("Countries compared",
		zap.String("period", spec.String()),
		zap.Int("countries", len(results)))

	return results, nil
}

// query starts a period query carrying region and week type
func (pc *ProductionCalendar) query() prodcal.PeriodQuery {
	q := pc.client.Period().WeekType(pc.weekType)
	if pc.region > 0 {
		q = q.Region(pc.region)
	}
	return q
}
