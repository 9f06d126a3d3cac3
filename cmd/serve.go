package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/wis/internal/server"
	"github.com/desertthunder/wis/internal/shared"
	"github.com/desertthunder/wis/internal/web"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// Serve loads the collection once and serves the HTML viewer until ctx is cancelled.
//
// A failed load does not stop the server: every view answers with the error panel.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	conf := r.config.Server
	if cmd.IsSet("host") {
		conf.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		conf.Port = int(cmd.Int("port"))
	}

	base := basePath(cmd.String("base-path"))
	app, err := web.NewApp(r.sheetSource(cmd), r.logger, base)
	if err != nil {
		return fmt.Errorf("failed to build viewer: %w", err)
	}
	if err := app.Load(ctx); err != nil {
		r.logger.Warn("serving error panel", "error", err)
	}

	handler := server.CORS(conf.AllowedOrigins)(
		app.Handler(server.RequestLogger(r.logger), server.RateLimit(conf.RateLimit, conf.Burst)),
	)
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", conf.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", conf.Addr(), err)
	}

	target := "http://" + ln.Addr().String() + base
	r.logger.Info("serving work instruction sheets", "addr", ln.Addr().String())
	r.writePlain("Serving work instruction sheets at %s\n", target)

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(target); err != nil {
			r.logger.Warn("failed to open browser", "url", target, "error", err)
		}
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

func basePath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}
