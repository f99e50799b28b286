// Copyright (C) 2024 The async-timers Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package demo

import (
	"time"

	"github.com/pkg/errors"
	std_viper "github.com/spf13/viper"
)

const (
	// DefaultStartDelay is the default Config.StartDelay value.
	DefaultStartDelay = "2s"

	// DefaultStopDelay is the default Config.StopDelay value.
	DefaultStopDelay = "3s"

	// DefaultExitDelay is the default Config.ExitDelay value.
	DefaultExitDelay = "3s"

	// DefaultPeriod is the default Config.Period value.
	DefaultPeriod = "500ms"
)

// Config defines the structure of a demo config file.
//
// All fields are time.Duration compatible strings so config files can say
// "500ms" or "2s" directly.
type Config struct {
	// StartDelay selects how long after launch the heartbeat is started.
	StartDelay string

	// StopDelay selects how long after the start the heartbeat is stopped.
	StopDelay string

	// ExitDelay selects how long after the stop the loop exits.
	ExitDelay string

	// Period selects the heartbeat interval while it runs.
	Period string

	// converted from the string fields by FinalizeConfig.
	startDelay time.Duration
	stopDelay  time.Duration
	exitDelay  time.Duration
	period     time.Duration
}

// GetStartDelay returns the converted value of StartDelay.
func (c Config) GetStartDelay() time.Duration { return c.startDelay }

// GetStopDelay returns the converted value of StopDelay.
func (c Config) GetStopDelay() time.Duration { return c.stopDelay }

// GetExitDelay returns the converted value of ExitDelay.
func (c Config) GetExitDelay() time.Duration { return c.exitDelay }

// GetPeriod returns the converted value of Period.
func (c Config) GetPeriod() time.Duration { return c.period }

// ReadConfigFile converts a file to a Config value.
func ReadConfigFile(name string) (c Config, err error) {
	file := std_viper.New()
	file.SetConfigFile(name)

	if err = file.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file [%s]", name)
	}

	if err = file.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrapf(err, "failed to unmarshal config from file [%s]", name)
	}

	if err = FinalizeConfig(&c); err != nil {
		return Config{}, errors.WithStack(err)
	}

	return c, nil
}

// DefaultConfig returns a finalized Config with every field at its default.
func DefaultConfig() Config {
	c := Config{}
	if err := FinalizeConfig(&c); err != nil {
		panic(errors.Wrap(err, "failed to finalize default config"))
	}
	return c
}

// FinalizeConfig validates and finalizes Config fields, applying defaults to
// fields left empty.
func FinalizeConfig(c *Config) error {
	var err error

	if c.StartDelay == "" {
		c.StartDelay = DefaultStartDelay
	}
	if c.startDelay, err = time.ParseDuration(c.StartDelay); err != nil {
		return errors.Wrapf(err, "failed to parse StartDelay [%s]", c.StartDelay)
	}

	if c.StopDelay == "" {
		c.StopDelay = DefaultStopDelay
	}
	if c.stopDelay, err = time.ParseDuration(c.StopDelay); err != nil {
		return errors.Wrapf(err, "failed to parse StopDelay [%s]", c.StopDelay)
	}

	if c.ExitDelay == "" {
		c.ExitDelay = DefaultExitDelay
	}
	if c.exitDelay, err = time.ParseDuration(c.ExitDelay); err != nil {
		return errors.Wrapf(err, "failed to parse ExitDelay [%s]", c.ExitDelay)
	}

	if c.Period == "" {
		c.Period = DefaultPeriod
	}
	if c.period, err = time.ParseDuration(c.Period); err != nil {
		return errors.Wrapf(err, "failed to parse Period [%s]", c.Period)
	}
	if c.period <= 0 {
		return errors.Errorf("Period [%s] must be positive", c.Period)
	}

	return nil
}
