package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 20 * 1024 * 1024 // 20MB

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Business is the static identity block printed on every invoice. It is
// configuration, never derived from the uploaded document.
type Business struct {
	Name    string
	Address string
	ABN     string
	Email   string
}

// Color is the brand color used for the invoice table header.
type Color struct {
	R int
	G int
	B int
}

// BilledTo is the optional billing block supplied by the operator.
type BilledTo struct {
	CompanyName string
	ContactName string
	Email       string
}

// Config holds all configuration for the invoice generator.
type Config struct {
	// Input/output
	InputPath   string
	OutputDir   string
	MaxFileSize int64 // Maximum order PDF size in bytes

	// Invoice identity
	Business   Business
	BrandColor Color
	BilledTo   BilledTo

	// Extraction defaults
	DefaultDate        string
	DefaultDescription string
	ProductPhrase      string
	CarrierPhrase      string
	ShippingFlatRate   string
	PickupLabel        string
	DeliveryLabel      string
	EmailFallback      string

	// Application configuration
	Version  string
	LogLevel string
}

// DefaultConfig returns a configuration with the shop's defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		InputPath:   "",
		OutputDir:   currentDir,
		MaxFileSize: DefaultMaxFileSize,
		Business: Business{
			Name:    "Lime Tree Bower",
			Address: "395 Sailors Bay Road, Northbridge NSW 2063",
			ABN:     "52 639 712 922",
			Email:   "shop@limetreebower.com",
		},
		BrandColor:         Color{R: 93, G: 124, B: 121},
		DefaultDate:        "13 November 2024",
		DefaultDescription: "Buongiorno Positano! Large / Clear Glass Vase",
		ProductPhrase:      "Buongiorno Positano! Large / Clear Glass Vase",
		CarrierPhrase:      "Shipping Fresh Courier Delivery",
		ShippingFlatRate:   "19.00",
		PickupLabel:        "Pick up Northbridge",
		DeliveryLabel:      "Fresh Courier Delivery",
		EmailFallback:      "No email provided",
		Version:            "1.0.0",
		LogLevel:           DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.OutputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.OutputDir); err == nil {
			cfg.OutputDir = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("INVOICEGEN")
	viper.AutomaticEnv()

	viper.SetDefault("in", cfg.InputPath)
	viper.SetDefault("outdir", cfg.OutputDir)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("businessname", cfg.Business.Name)
	viper.SetDefault("businessaddress", cfg.Business.Address)
	viper.SetDefault("businessabn", cfg.Business.ABN)
	viper.SetDefault("businessemail", cfg.Business.Email)
	viper.SetDefault("flatrate", cfg.ShippingFlatRate)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("in", cfg.InputPath, "Path to the Shopify order confirmation PDF")
	pflag.String("outdir", cfg.OutputDir, "Directory the generated invoice is written to")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum order PDF size in bytes")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.String("businessname", cfg.Business.Name, "Business name printed on the invoice")
	pflag.String("businessaddress", cfg.Business.Address, "Business address printed on the invoice")
	pflag.String("businessabn", cfg.Business.ABN, "Business registration (ABN) printed on the invoice")
	pflag.String("businessemail", cfg.Business.Email, "Business contact email printed on the invoice")
	pflag.String("flatrate", cfg.ShippingFlatRate, "Carrier flat rate used as the shipping fallback amount")
	pflag.String("billcompany", "", "Billed-to company name (optional)")
	pflag.String("billcontact", "", "Billed-to contact name (optional)")
	pflag.String("billemail", "", "Billed-to email (optional)")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	for _, name := range []string{
		"in", "outdir", "maxfilesize", "loglevel",
		"businessname", "businessaddress", "businessabn", "businessemail",
		"flatrate", "billcompany", "billcontact", "billemail",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nInvoice Generator - turns a Shopify order confirmation PDF into a tax invoice\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --in order.pdf                          # invoice into the current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --in order.pdf --outdir /tmp/invoices   # custom output directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --in order.pdf --billcompany \"Acme Pty\" --billemail ap@acme.example\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  INVOICEGEN_IN              Order PDF path\n")
		fmt.Fprintf(os.Stderr, "  INVOICEGEN_OUTDIR          Output directory\n")
		fmt.Fprintf(os.Stderr, "  INVOICEGEN_LOGLEVEL        Log level\n")
		fmt.Fprintf(os.Stderr, "  INVOICEGEN_BUSINESSNAME    Business name\n")
		fmt.Fprintf(os.Stderr, "  INVOICEGEN_FLATRATE        Shipping flat-rate fallback\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.InputPath = viper.GetString("in")
	cfg.OutputDir = viper.GetString("outdir")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.Business.Name = viper.GetString("businessname")
	cfg.Business.Address = viper.GetString("businessaddress")
	cfg.Business.ABN = viper.GetString("businessabn")
	cfg.Business.Email = viper.GetString("businessemail")
	cfg.ShippingFlatRate = viper.GetString("flatrate")
	cfg.BilledTo.CompanyName = viper.GetString("billcompany")
	cfg.BilledTo.ContactName = viper.GetString("billcontact")
	cfg.BilledTo.Email = viper.GetString("billemail")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Business.Name == "" {
		return errors.New("business name cannot be empty")
	}

	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	// Create the output directory if it doesn't exist yet
	if _, err := os.Stat(c.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.OutputDir, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create output directory %s: %w", c.OutputDir, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", c.OutputDir, err)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	rate, err := decimal.NewFromString(c.ShippingFlatRate)
	if err != nil {
		return fmt.Errorf("invalid shipping flat rate %q: %w", c.ShippingFlatRate, err)
	}
	if rate.IsNegative() {
		return errors.New("shipping flat rate cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputPath: %s, OutputDir: %s, Business: %s, LogLevel: %s, MaxFileSize: %d}",
		c.InputPath, c.OutputDir, c.Business.Name, c.LogLevel, c.MaxFileSize)
}
