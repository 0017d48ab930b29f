package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is the environment prefix for every flag, e.g. COLLBENCH_WORKERS.
const envPrefix = "COLLBENCH"

// config is the resolved benchmark configuration.
type config struct {
	Capacity  int           `mapstructure:"cap"`
	Policy    string        `mapstructure:"policy"`
	Workers   int           `mapstructure:"workers"`
	Duration  time.Duration `mapstructure:"duration"`
	PushPct   int           `mapstructure:"push"`
	EnqPct    int           `mapstructure:"enqueue"`
	Shared    bool          `mapstructure:"shared"`
	Seed      int64         `mapstructure:"seed"`
	HTTPAddr  string        `mapstructure:"http"`
	PprofAddr string        `mapstructure:"pprof"`
	LogLevel  string        `mapstructure:"log_level"`
}

// registerFlags declares the command flags and their defaults.
func registerFlags(fs *pflag.FlagSet) {
	fs.Int("cap", 1024, "ring buffer capacity per worker")
	fs.String("policy", "oldest", "overflow policy: oldest | newest")
	fs.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
	fs.Duration("duration", 10*time.Second, "benchmark duration")
	fs.Int("push", 60, "ring push percentage among ring ops [0..100]")
	fs.Int("enqueue", 55, "priority enqueue percentage among queue ops [0..100]")
	fs.Bool("shared", false, "share one mutex-guarded buffer and queue across workers")
	fs.Int64("seed", time.Now().UnixNano(), "random seed")
	fs.String("http", ":8080", "serve Prometheus metrics at addr; empty = disabled")
	fs.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
	fs.String("log_level", "info", "log level: debug | info | warn | error")
}

// loadConfig binds flags and COLLBENCH_* environment variables through viper.
// Flags set on the command line win over the environment.
func loadConfig(fs *pflag.FlagSet) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("cap must be >= 0, got %d", c.Capacity)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be > 0, got %d", c.Workers)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be > 0, got %v", c.Duration)
	}
	if c.PushPct < 0 || c.PushPct > 100 {
		return fmt.Errorf("push must be in [0..100], got %d", c.PushPct)
	}
	if c.EnqPct < 0 || c.EnqPct > 100 {
		return fmt.Errorf("enqueue must be in [0..100], got %d", c.EnqPct)
	}
	switch c.Policy {
	case "oldest", "newest":
	default:
		return fmt.Errorf("unknown policy %q (use oldest or newest)", c.Policy)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
