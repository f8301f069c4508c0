// Package config loads the relay's settings from file, environment, and
// defaults (§6 "Codec options"), the same precedence order and Viper
// wiring dittofs's own configuration layer uses, scoped down to what a
// single-purpose relay actually needs: heartbeat timing, the delta
// engine's bandwidth/completeness bias, and the two listen addresses.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/distsim/cdis-codec/cdis"
	"github.com/distsim/cdis-codec/dis"
	"github.com/distsim/cdis-codec/state"
)

// Config is the relay's static configuration.
//
// Precedence, highest to lowest:
//  1. Environment variables (CDIS_RELAY_*)
//  2. Configuration file (YAML)
//  3. Defaults
type Config struct {
	// ListenLegacy is the UDP address the relay receives legacy DIS
	// datagrams on.
	ListenLegacy string `mapstructure:"listen_legacy" yaml:"listen_legacy"`

	// ListenCompressed is the UDP address the relay receives C-DIS
	// datagrams on.
	ListenCompressed string `mapstructure:"listen_compressed" yaml:"listen_compressed"`

	// ForwardCompressed is the UDP address legacy-to-compressed output
	// is sent to.
	ForwardCompressed string `mapstructure:"forward_compressed" yaml:"forward_compressed"`

	// ForwardLegacy is the UDP address compressed-to-legacy output is
	// sent to.
	ForwardLegacy string `mapstructure:"forward_legacy" yaml:"forward_legacy"`

	// MetricsAddr is the address the Prometheus /metrics endpoint
	// listens on.
	MetricsAddr string `mapstructure:"metrics_addr" yaml:"metrics_addr"`

	// RecorderPath is the SQLite database path the recorder captures
	// every relayed PDU to. Empty disables recording.
	RecorderPath string `mapstructure:"recorder_path" yaml:"recorder_path"`

	// UpdateMode forces full updates ("full") or lets the delta engine
	// decide ("auto").
	UpdateMode string `mapstructure:"update_mode" yaml:"update_mode"`

	// OptimizeMode biases class selection ("bandwidth" or
	// "completeness", §6 "optimize_mode").
	OptimizeMode string `mapstructure:"optimize_mode" yaml:"optimize_mode"`

	// UseGuise forces Entity State's alternate entity type present on
	// every partial update (§6 "use_guise").
	UseGuise bool `mapstructure:"use_guise" yaml:"use_guise"`

	// HeartbeatMultiplier scales each kind's heartbeat interval into its
	// staleness threshold (§5 "Default heartbeat multiplier: 2.4").
	HeartbeatMultiplier float64 `mapstructure:"heartbeat_multiplier" yaml:"heartbeat_multiplier"`

	// Heartbeats overrides individual PDU kinds' heartbeat intervals,
	// keyed by the kind's name (e.g. "EntityState").
	Heartbeats map[string]time.Duration `mapstructure:"heartbeats" yaml:"heartbeats"`
}

// Default returns the configuration dis/cdis use when nothing overrides
// them: cdis.DefaultOptions()'s update/optimize mode and guise, and
// state.DefaultConfig()'s heartbeat table and multiplier.
func Default() *Config {
	defaults := cdis.DefaultOptions()
	hbCfg := state.DefaultConfig()

	heartbeats := make(map[string]time.Duration, len(hbCfg.Heartbeats))
	for kind, d := range hbCfg.Heartbeats {
		heartbeats[kind.String()] = d
	}

	return &Config{
		ListenLegacy:        ":3000",
		ListenCompressed:    ":3001",
		ForwardCompressed:   ":3011",
		ForwardLegacy:       ":3010",
		MetricsAddr:         ":9090",
		UpdateMode:          updateModeString(defaults.UpdateMode),
		OptimizeMode:        optimizeModeString(defaults.OptimizeMode),
		UseGuise:            defaults.UseGuise,
		HeartbeatMultiplier: hbCfg.Multiplier,
		Heartbeats:          heartbeats,
	}
}

// Load reads configPath (or the default search path, if empty),
// environment variables, then falls back to Default() for anything
// left unset. A missing config file is not an error — the same
// "config file not found is acceptable, use defaults" treatment
// dittofs's readConfigFile applies.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if _, err := readConfigFile(v); err != nil {
		return nil, err
	}
	for _, key := range []string{
		"listen_legacy", "listen_compressed", "forward_compressed", "forward_legacy",
		"metrics_addr", "recorder_path", "update_mode", "optimize_mode",
		"use_guise", "heartbeat_multiplier",
	} {
		_ = v.BindEnv(key)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return cfg, nil
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("CDIS_RELAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)

		return
	}
	v.AddConfigPath(".")
	v.SetConfigName("relay")
	v.SetConfigType("yaml")
}

func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if os.IsNotExist(err) {
			return false, nil
		}
		if ok := asConfigFileNotFound(err, &notFound); ok {
			return false, nil
		}

		return false, fmt.Errorf("config: read config file: %w", err)
	}

	return true, nil
}

func asConfigFileNotFound(err error, target *viper.ConfigFileNotFoundError) bool {
	if e, ok := err.(viper.ConfigFileNotFoundError); ok {
		*target = e

		return true
	}

	return false
}

// CdisOptions converts the loaded UpdateMode/OptimizeMode/UseGuise and
// Heartbeats table into cdis.Options, resolving each Heartbeats key
// against dis.PduKind's known names and skipping anything unrecognized.
func (c *Config) CdisOptions() cdis.Options {
	opts := cdis.DefaultOptions()

	switch c.UpdateMode {
	case "full":
		opts.UpdateMode = cdis.UpdateModeFull
	default:
		opts.UpdateMode = cdis.UpdateModeAuto
	}

	switch c.OptimizeMode {
	case "completeness":
		opts.OptimizeMode = cdis.OptimizeCompleteness
	default:
		opts.OptimizeMode = cdis.OptimizeBandwidth
	}

	opts.UseGuise = c.UseGuise
	opts.Heartbeats.Multiplier = c.HeartbeatMultiplier

	for name, d := range c.Heartbeats {
		if kind, ok := kindByName(name); ok {
			opts.Heartbeats.Heartbeats[kind] = d
		}
	}

	return opts
}

func kindByName(name string) (dis.PduKind, bool) {
	for k := range uint16(256) {
		kind := dis.PduKind(k)
		if kind.String() == name {
			return kind, true
		}
	}

	return 0, false
}

func updateModeString(m cdis.UpdateMode) string {
	if m == cdis.UpdateModeFull {
		return "full"
	}

	return "auto"
}

func optimizeModeString(m cdis.OptimizeMode) string {
	if m == cdis.OptimizeCompleteness {
		return "completeness"
	}

	return "bandwidth"
}
