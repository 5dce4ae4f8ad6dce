package calendar

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/username/production-calendar/pkg/prodcal"
	"go.uber.org/zap"
)

// File line format: YYYY-MM-DD type working_hours [note]
// Example: 2025-01-01 holiday 0 Государственный праздник
const fileDateLayout = "2006-01-02"

var fileDayTypes = map[string]prodcal.DayType{
	"workday":    prodcal.WorkingDay,
	"weekend":    prodcal.DayOff,
	"holiday":    prodcal.PublicHoliday,
	"regional":   prodcal.RegionalHoliday,
	"shortened":  prodcal.ShortenedWorkingDay,
	"additional": prodcal.AdditionalDayOff,
}

func fileTypeName(t prodcal.DayType) string {
	for name, dt := range fileDayTypes {
		if dt == t {
			return name
		}
	}
	return ""
}

// FileCalendar implements Calendar interface using a local text file
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string]*MonthInfo // key: "YYYY-MM"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]*MonthInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	return fc.read(file)
}

func (fc *FileCalendar) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		day, err := parseLine(line)
		if err != nil {
			fc.logger.Warn("Skipping calendar line",
				zap.Int("line", lineNo),
				zap.String("content", line),
				zap.Error(err))
			continue
		}

		monthKey := fmt.Sprintf("%d-%02d", day.Date.Year(), day.Date.Month())
		month, ok := fc.data[monthKey]
		if !ok {
			month = &MonthInfo{Year: day.Date.Year(), Month: day.Date.Month()}
			fc.data[monthKey] = month
		}
		month.Days = append(month.Days, day)

		// Update statistics
		switch {
		case day.IsWorkday:
			month.WorkDays++
			month.WorkingHours += day.WorkingHours
		case day.Type == prodcal.DayOff:
			month.Weekends++
		default:
			month.Holidays++
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("months", len(fc.data)))

	return nil
}

func parseLine(line string) (DayInfo, error) {
	parts := strings.SplitN(line, " ", 4)
	if len(parts) < 3 {
		return DayInfo{}, fmt.Errorf("expected at least 3 fields, got %d", len(parts))
	}

	date, err := time.Parse(fileDateLayout, parts[0])
	if err != nil {
		return DayInfo{}, fmt.Errorf("failed to parse date: %w", err)
	}

	dayType, ok := fileDayTypes[parts[1]]
	if !ok {
		return DayInfo{}, fmt.Errorf("unknown day type %q", parts[1])
	}

	hours, err := strconv.Atoi(parts[2])
	if err != nil {
		return DayInfo{}, fmt.Errorf("failed to parse hours: %w", err)
	}

	note := ""
	if len(parts) == 4 {
		note = parts[3]
	}

	return DayInfo{
		Date:         date,
		Type:         dayType,
		WorkingHours: hours,
		IsWorkday:    dayType.IsWorking(),
		Note:         note,
		Source:       SourceFile,
	}, nil
}

// WriteDays writes days in the file calendar format
func WriteDays(w io.Writer, days []prodcal.Day) error {
	bw := bufio.NewWriter(w)
	for _, day := range days {
		name := fileTypeName(day.Type)
		if name == "" {
			return fmt.Errorf("unknown day type %d on %s", int(day.Type), day.Date)
		}

		line := fmt.Sprintf("%s %s %d", day.Date.Format(fileDateLayout), name, day.WorkingHours)
		if note := strings.TrimSpace(day.TypeText); note != "" {
			line += " " + note
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return fmt.Errorf("failed to write calendar line: %w", err)
		}
	}
	return bw.Flush()
}

// IsWorkday checks if the given date is a working day
func (fc *FileCalendar) IsWorkday(ctx context.Context, date time.Time) (bool, int, error) {
	dayInfo, err := fc.GetDayInfo(ctx, date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetMonthInfo returns calendar info for the entire month
func (fc *FileCalendar) GetMonthInfo(_ context.Context, year int, month time.Month) (*MonthInfo, error) {
	monthKey := fmt.Sprintf("%d-%02d", year, month)

	monthInfo, ok := fc.data[monthKey]
	if !ok {
		return nil, fmt.Errorf("month not found in calendar: %s", monthKey)
	}

	return monthInfo, nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(ctx context.Context, date time.Time) (*DayInfo, error) {
	monthInfo, err := fc.GetMonthInfo(ctx, date.Year(), date.Month())
	if err != nil {
		return nil, err
	}

	day, ok := findDay(monthInfo, date)
	if !ok {
		return nil, fmt.Errorf("day not found in calendar: %s", date.Format(fileDateLayout))
	}
	return day, nil
}
