package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// RunConfig holds settings for the run command, loaded from flags,
// env, or config file.
type RunConfig struct {
	Script          string
	Journal         string
	PGDSN           string
	LedgerName      string
	Price           uint64
	MinFee          uint64
	MaxFee          uint64
	LiquidityTarget uint64
	LogLevel        string
}

// ReplayConfig holds settings for the replay command.
type ReplayConfig struct {
	Journal    string
	PGDSN      string
	LedgerName string
	LogLevel   string
}

// LoadRun merges config file, environment variables, and flags into a
// RunConfig.
func LoadRun(cfgFile string, flags *pflag.FlagSet) (RunConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return RunConfig{}, err
	}

	cfg := RunConfig{
		Script:          v.GetString("script"),
		Journal:         v.GetString("journal"),
		PGDSN:           v.GetString("pg-dsn"),
		LedgerName:      v.GetString("ledger-name"),
		Price:           v.GetUint64("price"),
		MinFee:          v.GetUint64("min-fee"),
		MaxFee:          v.GetUint64("max-fee"),
		LiquidityTarget: v.GetUint64("liquidity-target"),
		LogLevel:        v.GetString("log-level"),
	}

	return cfg, nil
}

// LoadReplay merges config file, environment variables, and flags into
// a ReplayConfig.
func LoadReplay(cfgFile string, flags *pflag.FlagSet) (ReplayConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ReplayConfig{}, err
	}

	cfg := ReplayConfig{
		Journal:    v.GetString("journal"),
		PGDSN:      v.GetString("pg-dsn"),
		LedgerName: v.GetString("ledger-name"),
		LogLevel:   v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("STAKESWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("journal", "./data/journal.jsonl")
	v.SetDefault("ledger-name", "default")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}
