package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/GuilhermeDReis/finch/internal/config"
	"github.com/GuilhermeDReis/finch/internal/server"
	"github.com/GuilhermeDReis/finch/pkg/constants"
	"github.com/GuilhermeDReis/finch/pkg/finance"
	"github.com/GuilhermeDReis/finch/pkg/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	listen := flag.String("listen", "", "serve the JSON API on this address instead of printing the demonstration")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	calc := finance.NewCalculator(conf.Calculator.Precision)

	if *listen != "" {
		handler := server.NewHandler(logger, calc, constants.DefaultMaxBodySizeBytes, version)
		logger.Info("serving calculator API",
			zap.String("op", "main"),
			zap.String("address", *listen),
		)
		if err := http.ListenAndServe(*listen, handler); err != nil {
			logger.Fatal("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	runDemo(logger, calc, conf, conf.OutputFormat(*outputFormatFlag))
}

// runDemo prints the demonstration computations configured in the demo
// section of the config file.
func runDemo(logger *zap.Logger, calc finance.Calculator, conf *config.Configuration, outputFormat string) {
	fmt.Printf("=== finch financial calculator ===\n\n")

	savings := conf.Demo.Savings
	amount := calc.CompoundInterest(savings.Principal, savings.Rate, savings.Periods)
	fmt.Printf("%.2f at %.2f%% per period for %d periods: %.2f\n",
		savings.Principal, savings.Rate*constants.PercentageMultiplier, savings.Periods, amount)

	loan := conf.Demo.Loan
	payment, err := calc.InstallmentAmount(loan.Total, loan.MonthlyRate, loan.Installments)
	if err != nil {
		logger.Fatal("failed to compute installment",
			zap.String("op", "main.runDemo"),
			zap.Error(err),
		)
	}
	fmt.Printf("financing %.2f over %d installments at %.2f%% monthly: %.2f per installment\n",
		loan.Total, loan.Installments, loan.MonthlyRate*constants.PercentageMultiplier, payment)

	investment := conf.Demo.Investment
	roi, err := calc.ROI(investment.Initial, investment.Final)
	if err != nil {
		logger.Fatal("failed to compute ROI",
			zap.String("op", "main.runDemo"),
			zap.Error(err),
		)
	}
	fmt.Printf("ROI on investment (%.2f -> %.2f): %.2f%%\n",
		investment.Initial, investment.Final, roi)

	if len(conf.Demo.InflationRates) > 0 {
		fmt.Printf("cumulative inflation over %d months: %.2f%%\n",
			len(conf.Demo.InflationRates), finance.CumulativeInflation(conf.Demo.InflationRates))
	}

	schedule, err := calc.AmortizationTable(loan.Total, loan.MonthlyRate, loan.Installments)
	if err != nil {
		logger.Fatal("failed to compute amortization schedule",
			zap.String("op", "main.runDemo"),
			zap.Error(err),
		)
	}

	fmt.Printf("\n")
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(schedule)
	case constants.OutputFormatCSV:
		output.CsvFormat(schedule)
	}
}
