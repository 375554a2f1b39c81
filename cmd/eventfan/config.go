// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	applicationName = "eventfan"

	FileFlag        = "file"
	NameFlag        = "name"
	SubscribersFlag = "subscribers"
	FailFlag        = "fail"
	PanicFlag       = "panic"
	DelayFlag       = "delay"
	TimeoutFlag     = "timeout"
	PayloadFlag     = "payload"
	LogLevelFlag    = "log-level"
	MetricsFlag     = "metrics"
	NamespaceFlag   = "namespace"
	SubsystemFlag   = "subsystem"
)

var errNoSubscribers = errors.New("at least one subscriber is required")

// Config is the fully resolved configuration of a single run
type Config struct {
	Subscribers int           `mapstructure:"subscribers"`
	Fail        []string      `mapstructure:"fail"`
	Panic       []string      `mapstructure:"panic"`
	Delay       time.Duration `mapstructure:"delay"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Payload     string        `mapstructure:"payload"`
	LogLevel    string        `mapstructure:"log-level"`
	Metrics     bool          `mapstructure:"metrics"`
	Namespace   string        `mapstructure:"namespace"`
	Subsystem   string        `mapstructure:"subsystem"`
}

// indexSet parses subscriber indices, rejecting any that don't identify a configured subscriber
func (c Config) indexSet(values []string) (map[int]bool, error) {
	indices, err := cast.ToIntSliceE(values)
	if err != nil {
		return nil, err
	}

	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= c.Subscribers {
			return nil, fmt.Errorf("subscriber index %d is out of range [0, %d)", i, c.Subscribers)
		}

		set[i] = true
	}

	return set, nil
}

// Defaults are the configuration values used when neither flags, environment, nor files supply one
type Defaults map[string]interface{}

func applyDefaults(v *viper.Viper, d Defaults) {
	for key, value := range d {
		v.SetDefault(key, value)
	}
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.StringP(FileFlag, "f", "", "the fully qualified path of the configuration file")
	fs.StringP(NameFlag, "n", applicationName, "the name of the configuration file, searched for in the standard locations")
	fs.Int(SubscribersFlag, 3, "the number of subscribers to fan out to")
	fs.StringSlice(FailFlag, nil, "indices of subscribers whose results fail")
	fs.StringSlice(PanicFlag, nil, "indices of subscribers that panic while doing their work")
	fs.Duration(DelayFlag, 10*time.Millisecond, "the base delay of each subscriber, multiplied by its position")
	fs.Duration(TimeoutFlag, 5*time.Second, "the maximum time to wait on all subscribers")
	fs.String(PayloadFlag, "ping", "the argument passed to every subscriber")
	fs.String(LogLevelFlag, "info", "the logging level: debug, info, warn, or error")
	fs.Bool(MetricsFlag, false, "write the collected metrics to stdout after the run")
	fs.String(NamespaceFlag, applicationName, "the metrics namespace")
	fs.String(SubsystemFlag, "fanout", "the metrics subsystem")
	return fs
}

// bindConfig points viper at the configuration file named by the command line.  An explicit file
// wins over a configuration name.  This function returns true if an explicit file was given.
func bindConfig(v *viper.Viper, fs *pflag.FlagSet) bool {
	if f := fs.Lookup(FileFlag); f != nil && len(f.Value.String()) > 0 {
		v.SetConfigFile(f.Value.String())
		return true
	}

	if f := fs.Lookup(NameFlag); f != nil && len(f.Value.String()) > 0 {
		v.SetConfigName(f.Value.String())
	}

	return false
}

// newViper produces the viper instance for a run, using the standard *nix configuration locations
// and EVENTFAN_ prefixed environment variables.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	v.AddConfigPath(".")
	v.SetEnvPrefix(applicationName)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	applyDefaults(v, Defaults{
		SubscribersFlag: 3,
		TimeoutFlag:     5 * time.Second,
	})

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	explicit := bindConfig(v, fs)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return v, nil
}

// loadConfig parses the command line and resolves the Config for a run
func loadConfig(arguments []string) (Config, error) {
	var (
		c  Config
		fs = newFlagSet()
	)

	if err := fs.Parse(arguments); err != nil {
		return c, err
	}

	v, err := newViper(fs)
	if err != nil {
		return c, err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	if c.Subscribers < 1 {
		return c, errNoSubscribers
	}

	return c, nil
}
