package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/username/production-calendar/pkg/dateutil"
	"github.com/username/production-calendar/pkg/prodcal"
)

// parsePeriod turns command arguments into a period:
//
//	(none)                    current year
//	2025                      year
//	Q1 2025 | Q1 | Q1.2025    quarter (current year when omitted)
//	2025-03                   month
//	01.03.2025..15.03.2025    date range
func parsePeriod(args []string, now time.Time) (prodcal.PeriodSpec, error) {
	switch len(args) {
	case 0:
		return prodcal.YearSpec(now.Year()), nil
	case 1:
		arg := strings.TrimSpace(args[0])
		if strings.HasPrefix(strings.ToUpper(arg), "Q") {
			if q, y, ok := strings.Cut(arg, "."); ok {
				return parseQuarter(q, y)
			}
			return parseQuarter(arg, strconv.Itoa(now.Year()))
		}
		if from, to, ok := strings.Cut(arg, ".."); ok {
			return parseRange(from, to)
		}
		if y, m, ok := strings.Cut(arg, "-"); ok {
			return parseMonth(y, m)
		}
		year, err := parseYear(arg)
		if err != nil {
			return prodcal.PeriodSpec{}, err
		}
		return prodcal.YearSpec(year), nil
	case 2:
		return parseQuarter(args[0], args[1])
	default:
		return prodcal.PeriodSpec{}, fmt.Errorf("too many arguments: %v", args)
	}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

func parseQuarter(q, y string) (prodcal.PeriodSpec, error) {
	if !strings.HasPrefix(strings.ToUpper(q), "Q") {
		return prodcal.PeriodSpec{}, fmt.Errorf("invalid quarter %q: want Q1..Q4", q)
	}
	quarter, err := strconv.Atoi(q[1:])
	if err != nil {
		return prodcal.PeriodSpec{}, fmt.Errorf("invalid quarter %q: want Q1..Q4", q)
	}
	year, err := parseYear(y)
	if err != nil {
		return prodcal.PeriodSpec{}, err
	}
	return prodcal.QuarterSpec(year, quarter)
}

func parseMonth(y, m string) (prodcal.PeriodSpec, error) {
	year, err := parseYear(y)
	if err != nil {
		return prodcal.PeriodSpec{}, err
	}
	month, err := strconv.Atoi(m)
	if err != nil {
		return prodcal.PeriodSpec{}, fmt.Errorf("invalid month %q", m)
	}
	return prodcal.MonthSpec(year, month)
}

func parseRange(from, to string) (prodcal.PeriodSpec, error) {
	start, err := dateutil.ParseDay(from)
	if err != nil {
		return prodcal.PeriodSpec{}, err
	}
	end, err := dateutil.ParseDay(to)
	if err != nil {
		return prodcal.PeriodSpec{}, err
	}
	if end.Before(start) {
		return prodcal.PeriodSpec{}, fmt.Errorf("range end %s is before start %s", to, from)
	}
	return prodcal.RangeSpec(start, end), nil
}

// parseDate parses an optional dd.MM.yyyy argument, defaulting to today
func parseDate(args []string, now time.Time) (time.Time, error) {
	if len(args) == 0 {
		return dateutil.Date(now.Year(), now.Month(), now.Day()), nil
	}
	return dateutil.ParseDay(strings.TrimSpace(args[0]))
}

// splitCountries splits a comma separated country list, dropping blanks
func splitCountries(s string) []string {
	var countries []string
	for _, c := range strings.Split(s, ",") {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			countries = append(countries, c)
		}
	}
	return countries
}
