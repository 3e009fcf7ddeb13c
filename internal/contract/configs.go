package contract

import (
	"strconv"
	"time"

	"github.com/jordanopensource/topcontrib/schema"
)

// Default values for configuration.
const (
	DefaultPort            = 8080
	DefaultPageLimit       = 100
	MaxPageLimit           = 1000
	DefaultRefreshInterval = time.Hour
	DefaultResultLimit     = 25
)

// DateFormat is the bare date representation accepted in period ranges.
const DateFormat = "2006-01-02"

// Config holds the validated runtime configuration.
type Config struct {
	Port            int
	Backend         schema.DatabaseBackend
	DBConnect       string
	RefreshInterval time.Duration
	PageLimit       int

	// CLI leaderboard options.
	Period      string
	SortBy      schema.SortKey
	Type        schema.ContributionType
	MembersOnly bool
	Search      string
	ResultLimit int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct; ProcessAndValidate
// turns it into a Config.
type ConfigRawInput struct {
	Port            int    `mapstructure:"port"`
	Backend         string `mapstructure:"backend"`
	DBConnect       string `mapstructure:"db-connect"`
	RefreshInterval string `mapstructure:"refresh-interval"`
	PageLimit       int    `mapstructure:"page-limit"`

	Period      string `mapstructure:"period"`
	SortBy      string `mapstructure:"sort-by"`
	Type        string `mapstructure:"type"`
	MembersOnly bool   `mapstructure:"members"`
	Search      string `mapstructure:"search"`
	ResultLimit int    `mapstructure:"limit"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	Color       string `mapstructure:"color"`
}

// ProcessAndValidate populates cfg from the raw input, rejecting any
// unrecognized enum value instead of defaulting past it.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Port <= 0 || input.Port > 65535 {
		return InvalidParameter("port", strconv.Itoa(input.Port))
	}
	cfg.Port = input.Port

	backend := schema.DatabaseBackend(input.Backend)
	if _, ok := schema.ValidBackends[backend]; !ok {
		return InvalidParameter("backend", input.Backend)
	}
	cfg.Backend = backend
	cfg.DBConnect = input.DBConnect

	interval, err := time.ParseDuration(input.RefreshInterval)
	if err != nil || interval <= 0 {
		return InvalidParameter("refresh-interval", input.RefreshInterval)
	}
	cfg.RefreshInterval = interval

	cfg.PageLimit = input.PageLimit
	if cfg.PageLimit <= 0 || cfg.PageLimit > MaxPageLimit {
		cfg.PageLimit = DefaultPageLimit
	}

	sortBy := schema.SortKey(input.SortBy)
	if _, ok := schema.ValidSortKeys[sortBy]; !ok {
		return InvalidParameter("sort-by", input.SortBy)
	}
	cfg.SortBy = sortBy

	cType := schema.ContributionType(input.Type)
	if _, ok := schema.ValidContributionTypes[cType]; !ok {
		return InvalidParameter("type", input.Type)
	}
	cfg.Type = cType

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return InvalidParameter("output", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.Period = input.Period
	cfg.MembersOnly = input.MembersOnly
	cfg.Search = input.Search

	cfg.ResultLimit = input.ResultLimit
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = DefaultResultLimit
	}

	cfg.UseColors = input.Color != "no"
	return nil
}
