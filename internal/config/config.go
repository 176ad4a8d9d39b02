// Package config loads the settings of the example programs from flags,
// GUTTT_ prefixed environment variables and an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/IlikeChooros/go-guttt/pkg/mcts"
	"github.com/IlikeChooros/go-guttt/pkg/xo"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "GUTTT"

type Config struct {
	// Game variant, see variant.Names
	Variant string `mapstructure:"variant"`
	// Mark that moves first, x or o
	First string `mapstructure:"first"`
	// Evaluator budget chain, like "time:300" or "count:20,count:1"
	Budget string `mapstructure:"budget"`
	// Pause between two matches
	IdleDelay time.Duration `mapstructure:"idle-delay"`
	// Redraw interval of the board
	Frame time.Duration `mapstructure:"frame"`
	// Matches to play, 0 for no limit
	Games    int    `mapstructure:"games"`
	LogLevel string `mapstructure:"log-level"`

	// Second contender of the arena
	Opponent string `mapstructure:"opponent"`
	Threads  int    `mapstructure:"threads"`
}

func flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path of a config file (yaml, toml or json)")
	fs.String("variant", "super-quantum", "game variant")
	fs.String("first", "x", "mark moving first")
	fs.String("budget", "time:300", "evaluator budget")
	fs.Duration("idle-delay", 10*time.Second, "pause between matches")
	fs.Duration("frame", 30*time.Millisecond, "board redraw interval")
	fs.Int("games", 0, "number of matches, 0 for no limit")
	fs.String("log-level", "info", "zerolog level")
	fs.String("opponent", "count:1", "budget of the second arena contender")
	fs.Int("threads", 2, "arena workers")
	return fs
}

// Load the config for the program 'name' from its arguments, without the program name
func Load(name string, args []string) (*Config, error) {
	fs := flags(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if _, err := c.ParsedBudget(); err != nil {
		return err
	}
	if _, err := mcts.ParseBudget(c.Opponent); err != nil {
		return fmt.Errorf("opponent: %w", err)
	}
	if _, ok := xo.Parse(c.First); !ok {
		return fmt.Errorf("first: unknown mark %q", c.First)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Games < 0 || c.Threads < 1 {
		return fmt.Errorf("games must not be negative and threads must be positive")
	}
	return nil
}

func (c *Config) ParsedBudget() (mcts.Budget, error) {
	return mcts.ParseBudget(c.Budget)
}

func (c *Config) OpponentBudget() (mcts.Budget, error) {
	return mcts.ParseBudget(c.Opponent)
}

func (c *Config) FirstMark() xo.Mark {
	m, _ := xo.Parse(c.First)
	return m
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
