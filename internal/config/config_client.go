package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Client defaults.
const (
	DefaultClientAddress        = "localhost:8080"
	DefaultClientRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the address of the key service, with or without scheme.
	// Env: FWKEY_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`

	// RequestTimeout bounds a single lookup.
	// Env: FWKEY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"FWKEY_"`

	// Firmware is the identifier to look up. It may also be passed as the
	// first positional argument.
	// Env: FWKEY_FW
	Firmware string `env:"FWKEY_FW"`

	// Copy puts the secret on the system clipboard instead of printing it.
	Copy bool

	// ServerInfo prints the service build info instead of looking up a key.
	ServerInfo bool
}

// GetClientConfig merges environment variables with the command-line
// arguments in args (flags win), applies defaults and validates the result.
//
// Flags:
//
//	-a key service address
//	-fw firmware identifier
//	-copy copy the secret to the clipboard
//	-request-timeout lookup timeout (e.g., "5s")
//	-server-info print the build info of the key service and exit
func GetClientConfig(args []string) (*ClientConfig, error) {
	envCfg, err := env.ParseAs[ClientConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, err := parseClientFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{&envCfg, flagCfg} {
		if err = mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}

	return cfg, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, error) {
	cfg := new(ClientConfig)

	fs := flag.NewFlagSet("fwkey-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Key service address")
	fs.StringVar(&cfg.Firmware, "fw", "", "Firmware identifier")
	fs.BoolVar(&cfg.Copy, "copy", false, "Copy the secret to the clipboard")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Lookup timeout (e.g., 5s)")
	fs.BoolVar(&cfg.ServerInfo, "server-info", false, "Print the key service build info")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	if cfg.Firmware == "" && fs.NArg() > 0 {
		cfg.Firmware = fs.Arg(0)
	}

	return cfg, nil
}

func (cfg *ClientConfig) validate() error {
	var errs []error

	if !cfg.ServerInfo && strings.TrimSpace(cfg.Firmware) == "" {
		errs = append(errs, errors.New("firmware identifier is required"))
	}
	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, errors.New("negative request timeout"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, errors.Join(errs...))
	}
	return nil
}
