package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	TokenTTL                 time.Duration `yaml:"token_ttl"`                  // bearer token validity window
	AllowedOrigin            string        `yaml:"allowed_origin"`             // frontend origin for CORS
	LogLevel                 string        `yaml:"log_level"`                  // debug|info|warn|error
	LogJSON                  bool          `yaml:"log_json"`                   // structured JSON logs in production
	DefaultPageSize          int           `yaml:"default_page_size"`          // admin listing pagination
	DashboardRefreshInterval time.Duration `yaml:"dashboard_refresh_interval"` // stats cache refresh period
	SecureHeaders            bool          `yaml:"secure_headers"`             // enable HSTS (behind TLS)
}

type Private struct {
	JwtSecret string `yaml:"jwt_secret"`
	Pg        Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func (c *Config) JwtSecret() string {
	return c.Private.JwtSecret
}

func (c *Config) TokenTTL() time.Duration {
	return c.Public.TokenTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder. The
// signing secret must come from the JWT_SECRET environment variable in
// production; the private.yaml value is a development fallback. Startup
// fails hard without a secret since no token could ever be trusted.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	applyDefaults(cfg)
	applyEnv(cfg)

	if cfg.Private.JwtSecret == "" {
		panic("jwt secret is not configured: set JWT_SECRET or private.yaml jwt_secret")
	}
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Public.TokenTTL == 0 {
		cfg.Public.TokenTTL = 30 * 24 * time.Hour
	}
	if cfg.Public.DefaultPageSize == 0 {
		cfg.Public.DefaultPageSize = 10
	}
	if cfg.Public.DashboardRefreshInterval == 0 {
		cfg.Public.DashboardRefreshInterval = 5 * time.Minute
	}
	if cfg.Public.LogLevel == "" {
		cfg.Public.LogLevel = "info"
	}
}

func applyEnv(cfg *Config) {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Private.JwtSecret = secret
	}
	if host := os.Getenv("PG_HOST"); host != "" {
		cfg.Private.Pg.Host = host
	}
	if password := os.Getenv("PG_PASSWORD"); password != "" {
		cfg.Private.Pg.Password = password
	}
}
