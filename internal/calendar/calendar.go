package calendar

import (
	"context"
	"time"

	"github.com/username/production-calendar/pkg/prodcal"
)

// Sources a DayInfo can come from
const (
	SourceAPI  = "api"
	SourceFile = "file"
)

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         time.Time
	Type         prodcal.DayType
	WorkingHours int
	IsWorkday    bool
	Note         string
	Source       string // SourceAPI or SourceFile
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	Weekends     int
	Holidays     int
	Days         []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(ctx context.Context, date time.Time) (bool, int, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(ctx context.Context, year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(ctx context.Context, date time.Time) (*DayInfo, error)
}

// dayInfoFrom converts a decoded API day
func dayInfoFrom(day prodcal.Day) DayInfo {
	return DayInfo{
		Date:         day.Date.Time,
		Type:         day.Type,
		WorkingHours: day.WorkingHours,
		IsWorkday:    day.Type.IsWorking(),
		Note:         day.TypeText,
		Source:       SourceAPI,
	}
}

// findDay returns the day matching date
func findDay(month *MonthInfo, date time.Time) (*DayInfo, bool) {
	for i := range month.Days {
		d := month.Days[i].Date
		if d.Year() == date.Year() && d.Month() == date.Month() && d.Day() == date.Day() {
			return &month.Days[i], true
		}
	}
	return nil, false
}
