package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/production-calendar/internal/calendar"
	"github.com/username/production-calendar/internal/config"
	"github.com/username/production-calendar/pkg/prodcal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	country    string
	jsonOutput bool
	logger     *zap.Logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prodcal",
		Short:         "production-calendar.ru client",
		Long:          "Query working days, holidays and work weeks from production-calendar.ru",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					logger = initLogger(cfg.Log.Level) // Fallback to console
				}
			} else if err == nil {
				logger = initLogger(cfg.Log.Level)
			} else {
				logger = initLogger("") // Default console logger
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml, $HOME/.prodcal, /etc/prodcal)")
	rootCmd.PersistentFlags().StringVar(&country, "country", "", "Country code, overrides calendar.country")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON instead of a table")

	rootCmd.AddCommand(periodCmd())
	rootCmd.AddCommand(workWeekCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(exportCmd())

	return rootCmd
}

// initializeClient loads config and builds the API client
func initializeClient() (*config.Config, *prodcal.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	code := cfg.Calendar.Country
	if country != "" {
		code = country
	}

	opts := []prodcal.Option{
		prodcal.WithBaseURL(cfg.Calendar.APIURL),
		prodcal.WithTransport(prodcal.NewHTTPTransport(cfg.Calendar.GetTimeout())),
		prodcal.WithLogger(logger),
	}
	if strings.TrimSpace(code) != "" {
		opts = append(opts, prodcal.WithCountry(strings.ToUpper(code)))
	}

	client, err := prodcal.NewClient(cfg.Calendar.APIToken, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	return cfg, client, nil
}

// initializeCalendar wires the API calendar, falling back to the exported file when configured
func initializeCalendar(cfg *config.Config, client *prodcal.Client) (calendar.Calendar, *calendar.ProductionCalendar) {
	primaryCal := calendar.NewProductionCalendar(
		client,
		cfg.Calendar.Region,
		prodcal.WeekType(cfg.Calendar.WeekType),
		logger,
	)

	if cfg.Calendar.FallbackFile == "" {
		return primaryCal, primaryCal
	}

	fallbackCal := calendar.NewFileCalendar(cfg.Calendar.FallbackFile, logger)
	compositeCal := calendar.NewCompositeCalendar(primaryCal, fallbackCal, logger)

	// Load fallback calendar
	if err := compositeCal.LoadFallback(); err != nil {
		logger.Warn("Failed to load fallback calendar, continuing with API only",
			zap.Error(err))
		return primaryCal, primaryCal
	}

	return compositeCal, primaryCal
}

// initLogger builds the console logger. An empty or unknown level keeps the
// console quiet at warn.
func initLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level, zapcore.WarnLevel))

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

// parseLevel maps a configured level name, falling back to def
func parseLevel(level string, def zapcore.Level) zapcore.Level {
	var zapLevel zapcore.Level
	if level == "" || zapLevel.UnmarshalText([]byte(level)) != nil {
		return def
	}
	return zapLevel
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,   // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zapLevel := parseLevel(level, zapcore.InfoLevel)

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
