package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "LOG_LEVEL", "DB_DRIVER", "DB_DSN", "JWT_SECRET",
		"REPORT_CRON_SCHEDULE", "TIMEZONE", "CURRENCY_PREFIX",
		"MONGODB_URI", "MONGODB_DB_NAME",
		"GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_DATABASE_ID", "GOOGLE_SHEET_REPORT_RANGE",
		"WHATSAPP_TOKEN", "WHATSAPP_PHONE_NUMBER_ID", "WHATSAPP_BASE_URL", "WHATSAPP_API_VERSION", "WHATSAPP_REPORT_RECIPIENT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Database.Driver != DriverSQLite || cfg.Database.DSN != "poultry_farm.db" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Reporting.CurrencyPrefix != "Ksh" || cfg.Reporting.CronSchedule != "0 20 * * *" {
		t.Fatalf("reporting = %+v", cfg.Reporting)
	}
	if cfg.MongoDB.Enabled() || cfg.Sheets.Enabled() || cfg.WhatsApp.Enabled() {
		t.Fatal("optional integrations should be disabled by default")
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "Africa/Nairobi" {
		t.Fatalf("location = %v, %v", loc, err)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nDB_DRIVER=postgres\nDB_DSN=postgres://farm@localhost/farm\nMONGODB_URI=mongodb://localhost:27017\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		for _, key := range []string{"JWT_SECRET", "DB_DRIVER", "DB_DSN", "MONGODB_URI"} {
			os.Unsetenv(key)
		}
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Auth.JWTSecret != "from-file" || cfg.Database.Driver != DriverPostgres {
		t.Fatalf("cfg = %+v", cfg)
	}
	if !cfg.MongoDB.Enabled() || cfg.MongoDB.DBName != "poultry_farm" {
		t.Fatalf("mongodb = %+v", cfg.MongoDB)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080"},
			Database:  DatabaseConfig{Driver: DriverSQLite, DSN: "farm.db"},
			Auth:      AuthConfig{JWTSecret: "x"},
			Reporting: ReportingConfig{CronSchedule: "0 20 * * *", Timezone: "UTC"},
		}
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := map[string]func(*Config){
		"missing secret":  func(c *Config) { c.Auth.JWTSecret = "" },
		"unknown driver":  func(c *Config) { c.Database.Driver = "oracle" },
		"missing dsn":     func(c *Config) { c.Database.DSN = "" },
		"bad timezone":    func(c *Config) { c.Reporting.Timezone = "Mars/Olympus" },
		"missing port":    func(c *Config) { c.Server.Port = "" },
		"empty cron spec": func(c *Config) { c.Reporting.CronSchedule = "" },
	}
	for name, mutate := range cases {
		cfg := valid()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	var nilCfg *Config
	if err := nilCfg.Validate(); err == nil {
		t.Fatal("nil config should fail validation")
	}
}
