package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/production-calendar/internal/calendar"
	"github.com/username/production-calendar/pkg/dateutil"
	"github.com/username/production-calendar/pkg/prodcal"
	"go.uber.org/zap"
)

func periodCmd() *cobra.Command {
	var region int
	var compact bool
	var weekType int
	var wsch bool
	var dict bool

	cmd := &cobra.Command{
		Use:   "period [YEAR | Qn YEAR | YEAR-MM | dd.MM.yyyy..dd.MM.yyyy]",
		Short: "Show days and statistics for a period",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := parsePeriod(args, dateutil.Today())
			if err != nil {
				return err
			}

			cfg, client, err := initializeClient()
			if err != nil {
				return err
			}

			q, err := client.Period().ForSpec(spec)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("region") {
				region = cfg.Calendar.Region
			}
			if region > 0 {
				q = q.Region(region)
			}
			if !cmd.Flags().Changed("week-type") {
				weekType = cfg.Calendar.WeekType
			}
			q = q.WeekType(prodcal.WeekType(weekType))
			if compact {
				q = q.CompactView()
			}
			if wsch {
				q = q.IncludeWschDays()
			}

			logger.Debug("Querying period",
				zap.String("period", spec.String()),
				zap.Int("region", region),
				zap.Int("week_type", weekType))

			out := cmd.OutOrStdout()
			if dict {
				period, err := q.Dictionary(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return printJSON(out, period)
				}
				printPeriodHeader(out, period.PeriodInfo)
				printDays(out, sortedDays(period.Days))
				return nil
			}

			period, err := q.List(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(out, period)
			}
			printPeriodHeader(out, period.PeriodInfo)
			printDays(out, period.Days)
			return nil
		},
	}

	cmd.Flags().IntVar(&region, "region", 0, "Region id (0 = whole country)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Ask for the compact view")
	cmd.Flags().IntVar(&weekType, "week-type", 5, "Work week type: 5 or 6")
	cmd.Flags().BoolVar(&wsch, "wsch", false, "Include non-working days declared for the pandemic")
	cmd.Flags().BoolVar(&dict, "dict", false, "Request days keyed by date")

	return cmd
}

func workWeekCmd() *cobra.Command {
	var weekType int

	cmd := &cobra.Command{
		Use:   "workweek [dd.MM.yyyy]",
		Short: "Show the work week containing a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args, dateutil.Today())
			if err != nil {
				return err
			}

			cfg, client, err := initializeClient()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("week-type") {
				weekType = cfg.Calendar.WeekType
			}

			week, err := client.WorkWeek().On(date).WeekType(prodcal.WeekType(weekType)).Get(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, week)
			}

			fmt.Fprintf(out, "📅 Work week of %s (%s)\n", dateutil.FormatDay(date), week.CountryName)
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			fmt.Fprintf(out, "  Type:   %s\n", week.WorkWeekType)
			fmt.Fprintf(out, "  Start:  %s\n", week.Start)
			fmt.Fprintf(out, "  End:    %s\n", week.End)
			return nil
		},
	}

	cmd.Flags().IntVar(&weekType, "week-type", 5, "Work week type: 5 or 6")

	return cmd
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [dd.MM.yyyy]",
		Short: "Show day type and working hours for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args, dateutil.Today())
			if err != nil {
				return err
			}

			cfg, client, err := initializeClient()
			if err != nil {
				return err
			}
			cal, _ := initializeCalendar(cfg, client)

			day, err := cal.GetDayInfo(cmd.Context(), date)
			if err != nil {
				return fmt.Errorf("failed to get day info: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, day)
			}

			icon := "🏖"
			if day.IsWorkday {
				icon = "💼"
			}
			fmt.Fprintf(out, "%s %s  %-18s %dh  %s\n",
				icon, dateutil.FormatDay(day.Date), day.Type, day.WorkingHours, day.Note)
			if day.Source == calendar.SourceFile {
				fmt.Fprintf(out, "⚠️  API unavailable, answered from %s\n", cfg.Calendar.FallbackFile)
			}
			return nil
		},
	}
}

func compareCmd() *cobra.Command {
	var countries string
	var workers int

	cmd := &cobra.Command{
		Use:   "compare --countries RU,BY,KZ [PERIOD]",
		Short: "Compare period statistics across countries",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := parsePeriod(args, dateutil.Today())
			if err != nil {
				return err
			}
			codes := splitCountries(countries)
			if len(codes) == 0 {
				return fmt.Errorf("no countries given")
			}

			cfg, client, err := initializeClient()
			if err != nil {
				return err
			}
			_, pc := initializeCalendar(cfg, client)

			rows, err := pc.Compare(cmd.Context(), spec, codes, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(out, rows)
			}

			fmt.Fprintf(out, "📊 Period %s\n", spec)
			fmt.Fprintln(out, "═══════════════════════════════════════════════════════")
			fmt.Fprintln(out, "  Country            | Work days | Days off | Holidays | Hours")
			fmt.Fprintln(out, "---------------------+-----------+----------+----------+-------")
			for _, row := range rows {
				fmt.Fprintf(out, "  %-18s | %9d | %8d | %8d | %5d\n",
					row.CountryCode+" "+row.CountryName,
					row.Statistic.WorkDays,
					row.Statistic.Weekends,
					row.Statistic.Holidays,
					row.Statistic.WorkingHours)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&countries, "countries", "RU,BY,KZ", "Comma separated country codes")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent requests")

	return cmd
}

func exportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export YEAR",
		Short: "Export a year to the text calendar format used as fallback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}

			cfg, client, err := initializeClient()
			if err != nil {
				return err
			}
			_, pc := initializeCalendar(cfg, client)

			period, err := pc.GetYear(cmd.Context(), year)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return fmt.Errorf("failed to create output path: %w", err)
				}
				f, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
				if err != nil {
					return fmt.Errorf("failed to open output file: %w", err)
				}
				defer f.Close()
				w = f
			}

			if err := calendar.WriteDays(w, period.Days); err != nil {
				return err
			}

			logger.Info("Calendar exported",
				zap.Int("year", year),
				zap.Int("days", len(period.Days)),
				zap.String("file", outPath))

			if outPath != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "✅ Exported %d day(s) of %d to %s\n", len(period.Days), year, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")

	return cmd
}

func printPeriodHeader(w io.Writer, info prodcal.PeriodInfo) {
	fmt.Fprintf(w, "📅 %s: %s .. %s (%s)\n", info.CountryName, info.Start, info.End, info.WorkWeekType)
	if info.RegionCode != 0 {
		fmt.Fprintf(w, "  Region:         %d\n", info.RegionCode)
	}
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Calendar days:  %d (%d without holidays)\n", info.Statistic.CalendarDays, info.Statistic.CalendarDaysWithoutHolidays)
	fmt.Fprintf(w, "  Working days:   %d (%d shortened)\n", info.Statistic.WorkDays, info.Statistic.ShortenedWorkingDays)
	fmt.Fprintf(w, "  Days off:       %d\n", info.Statistic.Weekends)
	fmt.Fprintf(w, "  Holidays:       %d\n", info.Statistic.Holidays)
	fmt.Fprintf(w, "  Working hours:  %d\n", info.Statistic.WorkingHours)
}

func printDays(w io.Writer, days []prodcal.Day) {
	if len(days) == 0 {
		return
	}
	fmt.Fprintln(w, "\n  Date       | Day | Type               | Hours | Note")
	fmt.Fprintln(w, "-------------+-----+--------------------+-------+----------------")
	for _, day := range days {
		fmt.Fprintf(w, "  %s | %-3s | %-18s | %5d | %s\n",
			day.Date, day.WeekDay, day.Type, day.WorkingHours, day.TypeText)
	}
}

// sortedDays flattens a date-keyed day map into chronological order
func sortedDays(m map[string]prodcal.Day) []prodcal.Day {
	days := make([]prodcal.Day, 0, len(m))
	for _, day := range m {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date.Time)
	})
	return days
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
