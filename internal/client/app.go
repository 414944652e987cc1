package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rouaze/fwkey-service/internal/adapter"
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/logger"
)

var errNoAdapter = errors.New("no key service adapter provided")

type App struct {
	adapter   adapter.KeyServiceAdapter
	clipboard Clipboard
	out       io.Writer

	cfg    config.ClientConfig
	logger *logger.Logger
}

func NewApp(keyAdapter adapter.KeyServiceAdapter, clipboard Clipboard, out io.Writer, cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	if keyAdapter == nil {
		return nil, errNoAdapter
	}

	return &App{
		adapter:   keyAdapter,
		clipboard: clipboard,
		out:       out,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// Run looks up cfg.Firmware. With cfg.Copy the secret goes to the clipboard
// and only a confirmation is printed. With cfg.ServerInfo it prints the
// service build info instead.
func (a *App) Run(ctx context.Context) error {
	if timeout := a.cfg.Adapter.RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if a.cfg.ServerInfo {
		info, err := a.adapter.GetServerBuildInfo(ctx)
		if err != nil {
			return fmt.Errorf("server build info: %w", err)
		}
		_, err = fmt.Fprint(a.out, info)
		return err
	}

	lookup, err := a.adapter.GetKey(ctx, a.cfg.Firmware)
	if err != nil {
		return fmt.Errorf("lookup %q: %w", a.cfg.Firmware, err)
	}

	if lookup.Secret == "" {
		a.logger.Warn().Str("fw", a.cfg.Firmware).Str("field", lookup.Field).Msg("firmware has no manufacturing secret")
	}

	if !a.cfg.Copy {
		_, err = fmt.Fprintln(a.out, lookup.Secret)
		return err
	}

	if a.clipboard == nil {
		return errClipboardUnsupported
	}
	if err = a.clipboard.WriteAll(lookup.Secret); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "secret for %s copied to clipboard\n", a.cfg.Firmware)
	return err
}
