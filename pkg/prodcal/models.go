package prodcal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/username/production-calendar/pkg/dateutil"
)

// Date is a calendar day transported as dd.MM.yyyy
type Date struct {
	time.Time
}

// NewDate returns the Date for the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: dateutil.Date(year, month, day)}
}

// UnmarshalJSON implements json.Unmarshaler for Date
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, err := dateutil.ParseDay(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler for Date
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// String returns the dd.MM.yyyy representation
func (d Date) String() string {
	return dateutil.FormatDay(d.Time)
}

// DayType is the kind of a calendar day as reported by the service (type_id)
type DayType int

const (
	WorkingDay DayType = iota + 1
	DayOff
	PublicHoliday
	RegionalHoliday
	ShortenedWorkingDay
	AdditionalDayOff
)

var dayTypeNames = map[DayType]string{
	WorkingDay:          "working",
	DayOff:              "day-off",
	PublicHoliday:       "public-holiday",
	RegionalHoliday:     "regional-holiday",
	ShortenedWorkingDay: "shortened",
	AdditionalDayOff:    "additional-day-off",
}

// String returns a stable lowercase name of the day type
func (t DayType) String() string {
	if name, ok := dayTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DayType(%d)", int(t))
}

// IsWorking reports whether people work on this kind of day
func (t DayType) IsWorking() bool {
	return t == WorkingDay || t == ShortenedWorkingDay
}

// UnmarshalJSON rejects type ids outside the known set
func (t *DayType) UnmarshalJSON(b []byte) error {
	var id int
	if err := json.Unmarshal(b, &id); err != nil {
		return fmt.Errorf("type_id must be an integer: %w", err)
	}
	if _, ok := dayTypeNames[DayType(id)]; !ok {
		return fmt.Errorf("unknown type_id %d", id)
	}
	*t = DayType(id)
	return nil
}

// WeekType is the working week length used for hour calculations
type WeekType int

const (
	FiveDayWeek WeekType = 5
	SixDayWeek  WeekType = 6
)

// String returns the wire value (5 or 6)
func (w WeekType) String() string {
	return fmt.Sprintf("%d", int(w))
}

// Valid reports whether w is one of the supported week types
func (w WeekType) Valid() bool {
	return w == FiveDayWeek || w == SixDayWeek
}

// Day is a single classified calendar day
type Day struct {
	Date         Date    `json:"date"`
	Type         DayType `json:"type_id"`
	TypeText     string  `json:"type_text"`
	WeekDay      string  `json:"week_day"`
	WorkingHours int     `json:"working_hours"` // for a 40-hour week
	IsProject    bool    `json:"is_project"`
	IsWsch       bool    `json:"is_wsch"` // paid non-working day of the 2020 pandemic period
}

// PeriodStatistic holds the server-side counters for a period
type PeriodStatistic struct {
	CalendarDays                int `json:"calendar_days"`
	CalendarDaysWithoutHolidays int `json:"calendar_days_without_holidays"`
	WorkDays                    int `json:"work_days"`
	Weekends                    int `json:"weekends"`
	Holidays                    int `json:"holidays"`
	ShortenedWorkingDays        int `json:"shortened_working_days"`
	WorkingHours                int `json:"working_hours"`
}

// PeriodInfo is the part of a period response shared by both day shapes
type PeriodInfo struct {
	CountryCode  string          `json:"country_code"`
	CountryName  string          `json:"country_text"`
	RegionCode   int             `json:"region_id"`
	Start        Date            `json:"dt_start"`
	End          Date            `json:"dt_end"`
	WorkWeekType string          `json:"work_week_type"`
	PeriodType   string          `json:"period"`
	Statistic    PeriodStatistic `json:"statistic"`
}

// PeriodList is a period whose days come as an ordered list
type PeriodList struct {
	PeriodInfo
	Days []Day `json:"days"`
}

// Day returns the day matching date, if present
func (p *PeriodList) Day(date time.Time) (Day, bool) {
	for _, day := range p.Days {
		if dateutil.IsSameDay(day.Date.Time, date) {
			return day, true
		}
	}
	return Day{}, false
}

// PeriodMap is a period whose days are keyed by their dd.MM.yyyy date
type PeriodMap struct {
	PeriodInfo
	Days map[string]Day `json:"days"`
}

// Day returns the day matching date, if present
func (p *PeriodMap) Day(date time.Time) (Day, bool) {
	day, ok := p.Days[dateutil.FormatDay(date)]
	return day, ok
}

// WorkWeek describes the work week containing a queried date
type WorkWeek struct {
	CountryCode  string `json:"country_code"`
	CountryName  string `json:"country_text"`
	WorkWeekType string `json:"work_week_type"`
	Start        Date   `json:"work_week_start"`
	End          Date   `json:"work_week_end"`
}
