package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riskibarqy/draft-prospects/internal/platform/logging"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultDBPath      = "data/nba_db.sqlite"
	DefaultDataDir     = "data"
	DefaultCSVFileName = "nba_draft.csv"
	DefaultSourceURL   = "https://raw.githubusercontent.com/fivethirtyeight/data/refs/heads/master/nba-draft-2015/historical_projections.csv"
)

// Config stores runtime configuration for the CLI and the seed pipeline.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	LogLevel       logging.Level
	LogFormat      logging.Format
	DB             DBConfig
	SourceURL      string
	DataDir        string
	CSVFileName    string
	UptraceEnabled bool
	UptraceDSN     string
}

// DBConfig selects the backing store. Path is used by sqlite, URL by postgres.
type DBConfig struct {
	Driver string
	Path   string
	URL    string
}

// DSN returns the data source name for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return c.URL
	}
	return c.Path
}

// CSVPath is where the pipeline writes and then reads the fetched dataset.
func (c Config) CSVPath() string {
	return filepath.Join(c.DataDir, c.CSVFileName)
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormat, err := parseLogFormat(getEnv("LOG_FORMAT", string(logging.FormatConsole)))
	if err != nil {
		return Config{}, err
	}

	driver, err := parseDriver(getEnv("DB_DRIVER", DriverSQLite))
	if err != nil {
		return Config{}, err
	}
	dbPath := strings.TrimSpace(getEnv("DB_PATH", DefaultDBPath))
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if driver == DriverPostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when DB_DRIVER=%s", DriverPostgres)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	dataDir := strings.TrimSpace(getEnv("DATA_DIR", DefaultDataDir))
	csvFileName := strings.TrimSpace(getEnv("CSV_FILE_NAME", DefaultCSVFileName))
	if strings.ContainsAny(csvFileName, `/\`) {
		return Config{}, fmt.Errorf("CSV_FILE_NAME must be a bare file name, got %q", csvFileName)
	}

	cfg := Config{
		AppEnv:         appEnv,
		ServiceName:    getEnv("APP_SERVICE_NAME", "draft-prospects"),
		ServiceVersion: getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:       logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:      logFormat,
		DB: DBConfig{
			Driver: driver,
			Path:   dbPath,
			URL:    dbURL,
		},
		SourceURL:      strings.TrimSpace(getEnv("SOURCE_URL", DefaultSourceURL)),
		DataDir:        dataDir,
		CSVFileName:    csvFileName,
		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case DriverSQLite, DriverPostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid DB_DRIVER %q: valid values are %s, %s", v, DriverSQLite, DriverPostgres)
	}
}

func parseLogFormat(v string) (logging.Format, error) {
	value := logging.Format(strings.ToLower(strings.TrimSpace(v)))
	switch value {
	case logging.FormatJSON, logging.FormatConsole:
		return value, nil
	default:
		return "", fmt.Errorf("invalid LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
}
