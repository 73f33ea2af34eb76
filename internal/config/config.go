package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
	Telegram *telegramConfig
	Sheets   *sheetsConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"tracker"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	LogLevel         string        `envconfig:"TRACKER_LOG_LEVEL" default:"info"`
	MetricsAddress   string        `envconfig:"TRACKER_METRICS_ADDRESS" default:":8080"`
	MigrationFolder  string        `envconfig:"TRACKER_MIGRATIONS_FOLDER" default:""`
	VerboseErrors    bool          `envconfig:"TRACKER_VERBOSE_ERRORS" default:"true"`
	LookupTimeout    time.Duration `envconfig:"TRACKER_LOOKUP_TIMEOUT" default:"20s"`
	BroadcastWorkers int           `envconfig:"TRACKER_BROADCAST_WORKERS" default:"8"`
	AdminIDs         []int64       `envconfig:"TRACKER_ADMIN_IDS" default:""`
	TranslationsFile string        `envconfig:"TRACKER_TRANSLATIONS_FILE" default:""`
	StatsInterval    time.Duration `envconfig:"TRACKER_STATS_INTERVAL" default:"5m"`
	// AuditSink is either "store" (logs table) or "stdout".
	AuditSink string `envconfig:"TRACKER_AUDIT_SINK" default:"store"`
}

type telegramConfig struct {
	Token       string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
	Debug       bool   `envconfig:"TELEGRAM_DEBUG" default:"false"`
	PollTimeout int    `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"60"`
}

type sheetsConfig struct {
	// Provider is either "google" or "workbook".
	Provider    string       `envconfig:"SHEETS_PROVIDER" default:"google"`
	Credentials string       `envconfig:"GOOGLE_CREDENTIALS" default:""`
	WorkbookDir string       `envconfig:"SHEETS_WORKBOOK_DIR" default:"."`
	Routes      []RouteSheet `ignored:"true"`
}

// RouteSheet locates the table of a route.
type RouteSheet struct {
	Route         string
	SpreadsheetID string
	SheetName     string
}

func defaultRouteSheets() []RouteSheet {
	return []RouteSheet{
		{
			Route:         "Air AM to USA",
			SpreadsheetID: envOr("SHEETS_AIR_OUTBOUND_ID", "1V8foxDTTOXzzw0dnJ3TIIjWrQHSU-oGOD0nRrDn3By8"),
			SheetName:     envOr("SHEETS_AIR_OUTBOUND_SHEET", "List"),
		},
		{
			Route:         "Air USA to AM",
			SpreadsheetID: envOr("SHEETS_AIR_INBOUND_ID", "181OmCbyhfun3SdmQe7KPvlKpNnnLcl1aVzP7A2eYgSc"),
			SheetName:     envOr("SHEETS_AIR_INBOUND_SHEET", "Sheet1"),
		},
		{
			Route:         "Ocean USA to AM",
			SpreadsheetID: envOr("SHEETS_OCEAN_INBOUND_ID", "1svNBQ6UtvR5jLsJJNDCx1YpCMfL4YB70sXz9lz9rJ18"),
			SheetName:     envOr("SHEETS_OCEAN_INBOUND_SHEET", "Data"),
		},
	}
}

func New() (*Config, error) {
	if singleConfig == nil {
		cfg := new(Config)
		if err := envconfig.Process("", cfg); err != nil {
			return nil, err
		}
		cfg.Sheets.Routes = defaultRouteSheets()
		singleConfig = cfg
	}
	return singleConfig, nil
}

// NewDefault returns a configuration backed by an in-memory sqlite database,
// ignoring the environment. It is meant for tests and local runs.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type: "sqlite",
			Name: "file::memory:?cache=shared",
		},
		Service: &svcConfig{
			LogLevel:         "info",
			MetricsAddress:   ":8080",
			VerboseErrors:    true,
			LookupTimeout:    20 * time.Second,
			BroadcastWorkers: 8,
			StatsInterval:    5 * time.Minute,
			AuditSink:        "store",
		},
		Telegram: &telegramConfig{PollTimeout: 60},
		Sheets: &sheetsConfig{
			Provider:    "workbook",
			WorkbookDir: ".",
			Routes:      defaultRouteSheets(),
		},
	}
}

// LoadEnvFile exports the variables of the dotenv file at path into the
// process environment. Variables already set win over the file.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("db=%s@%s:%s/%s sheets=%s metrics=%s log=%s",
		c.Database.Type, c.Database.Hostname, c.Database.Port, c.Database.Name,
		c.Sheets.Provider, c.Service.MetricsAddress, c.Service.LogLevel)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
