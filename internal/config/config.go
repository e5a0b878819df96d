// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/GuilhermeDReis/finch/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finch.
type Configuration struct {
	Calculator CalculatorConfig `yaml:"calculator,omitempty"`
	Demo       DemoConfig       `yaml:"demo,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// CalculatorConfig holds the rounding precision applied to monetary results.
type CalculatorConfig struct {
	Precision int `yaml:"precision,omitempty"` // decimal places, default 2
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// DemoConfig holds the inputs for the demonstration computations printed by
// the CLI. The demonstration is data-driven so the core packages stay free of
// presentation concerns.
type DemoConfig struct {
	Savings        SavingsDemo    `yaml:"savings,omitempty"`
	Loan           LoanDemo       `yaml:"loan,omitempty"`
	Investment     InvestmentDemo `yaml:"investment,omitempty"`
	InflationRates []float64      `yaml:"inflationRates,omitempty"` // monthly percentages
}

// SavingsDemo describes a compound interest example.
type SavingsDemo struct {
	Principal float64 `yaml:"principal,omitempty"`
	Rate      float64 `yaml:"rate,omitempty"` // fractional per-period rate
	Periods   int     `yaml:"periods,omitempty"`
}

// LoanDemo describes a Price-system financing example.
type LoanDemo struct {
	Total        float64 `yaml:"total,omitempty"`
	MonthlyRate  float64 `yaml:"monthlyRate,omitempty"` // fractional monthly rate
	Installments int     `yaml:"installments,omitempty"`
}

// InvestmentDemo describes an ROI example.
type InvestmentDemo struct {
	Initial float64 `yaml:"initial,omitempty"`
	Final   float64 `yaml:"final,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration checks the configuration for suspicious values and
// returns human-readable warnings. Warnings do not prevent execution; hard
// validation failures surface later from the calculator itself.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Calculator.Precision < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"calculator precision %d is negative - falling back to default of %d",
			conf.Calculator.Precision, constants.DefaultPrecision))
	}

	if conf.Output.Format != "" &&
		conf.Output.Format != constants.OutputFormatPretty &&
		conf.Output.Format != constants.OutputFormatCSV {
		warnings = append(warnings, fmt.Sprintf(
			"expected output format of %s or %s, got %s - falling back to %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV,
			conf.Output.Format, constants.OutputFormatPretty))
	}

	if conf.Demo.Loan.MonthlyRate <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"demo loan monthly rate %v is not positive - the amortization demonstration will fail validation",
			conf.Demo.Loan.MonthlyRate))
	}

	if conf.Demo.Loan.Installments <= 0 {
		warnings = append(warnings, fmt.Sprintf(
			"demo loan installment count %d is not positive - the amortization demonstration will fail validation",
			conf.Demo.Loan.Installments))
	}

	return warnings
}

// OutputFormat resolves the effective output format, applying the override
// (CLI flag) over the configured value and defaulting to pretty.
func (conf *Configuration) OutputFormat(override string) string {
	format := conf.Output.Format
	if override != "" {
		format = override
	}
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		format = constants.OutputFormatPretty
	}
	return format
}
