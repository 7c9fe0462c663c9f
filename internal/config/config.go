package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultLocale         = "en"
	defaultMigrationsPath = "migrations"
)

type Config struct {
	// Catalogs lists .ts files (or go-i18n .toml message files) loaded at startup.
	Catalogs []string `toml:"catalogs"`
	// StoredCatalogs names catalogs loaded from the database at startup.
	StoredCatalogs []string `toml:"stored_catalogs"`
	DefaultLocale  string   `toml:"default_locale"`
	// Strict rejects catalogs with duplicate keys instead of keeping the last one.
	Strict bool `toml:"strict"`
	// Unfinished serves non-empty unfinished translations.
	Unfinished bool `toml:"unfinished"`

	DatabaseURL    string `toml:"database_url"`
	MigrationsPath string `toml:"migrations_path"`

	Token   string `toml:"token"`
	GuildID string `toml:"guild_id"`
}

// Load reads the optional TOML file at path, then applies environment
// overrides (a .env file is honoured when present) and validates the result.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("TSCAT_CATALOGS"); ok {
		c.Catalogs = splitList(v)
	}
	if v, ok := os.LookupEnv("TSCAT_STORED_CATALOGS"); ok {
		c.StoredCatalogs = splitList(v)
	}
	if v, ok := os.LookupEnv("TSCAT_DEFAULT_LOCALE"); ok {
		c.DefaultLocale = v
	}
	for name, dst := range map[string]*bool{"TSCAT_STRICT": &c.Strict, "TSCAT_UNFINISHED": &c.Unfinished} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean, got %q", name, v)
		}
		*dst = b
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		c.DatabaseURL = v
	}
	if v, ok := os.LookupEnv("MIGRATIONS_PATH"); ok {
		c.MigrationsPath = v
	}
	if v, ok := os.LookupEnv("TOKEN"); ok {
		c.Token = v
	}
	if v, ok := os.LookupEnv("GUILD_ID"); ok {
		c.GuildID = v
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// validate applies defaults and checks the values that are always required.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = defaultLocale
	}
	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = defaultMigrationsPath
	}

	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}
	return nil
}

// RequireDatabase reports an error when no database is configured.
func (c *Config) RequireDatabase() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL is required")
	}
	return nil
}

// ValidateBot checks the settings the Discord adapter needs.
func (c *Config) ValidateBot() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}
	if len(c.Catalogs) == 0 && len(c.StoredCatalogs) == 0 {
		return fmt.Errorf("config: at least one catalog is required (TSCAT_CATALOGS or TSCAT_STORED_CATALOGS)")
	}
	if len(c.StoredCatalogs) > 0 {
		return c.RequireDatabase()
	}
	return nil
}
