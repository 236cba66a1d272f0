// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagAddress             = "address"
	FlagConfig              = "config"
	FlagLogLevel            = "log-level"
	FlagValidateAtBuildStep = "validate-at-build-step"
	FlagDynamicRendering    = "dynamic-rendering"
	FlagStaticDir           = "static-dir"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

var _ pflag.Value = (*NetAddress)(nil)

// RegisterFlags defines the configuration flags on fs.
//
// Flags:
//
//	-a/--address server address in format [host]:[port]
//	-c/--config config file path (.json, .jsonc, .yaml, .yml)
//	--log-level zerolog level
//	--validate-at-build-step validate public values during the build phase
//	--dynamic-rendering auto or manual
//	--static-dir directory served under /static/
func RegisterFlags(fs *pflag.FlagSet) {
	fs.VarP(new(NetAddress), FlagAddress, "a", "Net address host:port")
	fs.StringP(FlagConfig, "c", "", "Config file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.Bool(FlagValidateAtBuildStep, false, "Validate public values during the build phase")
	fs.String(FlagDynamicRendering, "", "Dynamic rendering mode (auto, manual)")
	fs.String(FlagStaticDir, "", "Directory served under /static/")
}

// parseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs. Unregistered flags are left at their zero value.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var errs []error
	str := func(name string) string {
		if fs.Lookup(name) == nil {
			return ""
		}
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:         str(FlagLogLevel),
			DynamicRendering: str(FlagDynamicRendering),
		},
		Server: Server{
			StaticDir: str(FlagStaticDir),
		},
		FilePath: str(FlagConfig),
	}

	if fs.Lookup(FlagValidateAtBuildStep) != nil {
		v, err := fs.GetBool(FlagValidateAtBuildStep)
		errs = append(errs, err)
		cfg.App.ValidateAtBuildStep = v
	}

	if f := fs.Lookup(FlagAddress); f != nil {
		cfg.Server.HTTPAddress = f.Value.String()
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
