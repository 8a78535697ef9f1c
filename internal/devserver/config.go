package devserver

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/hacksnooze/hacksnooze-go/internal/flagx"
	"github.com/hacksnooze/hacksnooze-go/internal/timex"
)

// Config holds runtime settings for the development server.
//
// Fields:
//   - Addr: listen address (host:port).
//   - JWTSecret: HMAC key for login tokens; empty means "generate one at
//     startup", which invalidates tokens across restarts.
//   - TokenTTL: validity duration of issued login tokens.
type Config struct {
	Addr      string
	JWTSecret string
	TokenTTL  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "127.0.0.1:8080"
	c.TokenTTL = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. TokenTTL can
// be given as a string like "24h" or as integer nanoseconds.
type JsonConfig struct {
	Addr      string         `json:"addr"`
	JWTSecret string         `json:"jwt_secret"`
	TokenTTL  timex.Duration `json:"token_ttl"`
}

func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Addr != "" {
		cfg.Addr = jc.Addr
	}
	if jc.JWTSecret != "" {
		cfg.JWTSecret = jc.JWTSecret
	}
	if jc.TokenTTL.Duration != 0 {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   listen address (default from Config)
//	-k string   JWT secret (default from Config)
//	-t int      token TTL in seconds (default from Config)
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-t"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.JWTSecret, "k", cfg.JWTSecret, "JWT signing secret")
	tokenTTL := fs.Int("t", int(cfg.TokenTTL.Seconds()), "token TTL (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*tokenTTL) * time.Second
}
