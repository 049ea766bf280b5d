package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mdedit "github.com/Birphon/markdown-editor"
	"github.com/Birphon/markdown-editor/internal/httpserver"
)

// shutdownGrace bounds graceful shutdown after an interrupt.
const shutdownGrace = 5 * time.Second

// runServe starts the browser editor server.
func runServe(args []string) error {
	flags, err := parseServeFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	opts, err := serviceOptions(cfg, &flags.preview)
	if err != nil {
		return err
	}

	service, err := mdedit.NewService(opts...)
	if err != nil {
		return err
	}
	defer service.Close()

	initial := ""
	if flags.file != "" {
		data, err := os.ReadFile(flags.file) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}
		initial = string(data)
	}

	addr := cfg.Server.Addr
	if flags.addr != "" {
		addr = flags.addr
	}

	logger := log.New(io.Discard, "", 0)
	if flags.common.verbose && !flags.common.quiet {
		logger = log.New(os.Stderr, "mdedit: ", log.LstdFlags)
	}

	srv := httpserver.New(addr, service, initial, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	if !flags.common.quiet {
		fmt.Fprintf(os.Stderr, "Editor running at %s\n", displayURL(addr))
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// displayURL turns a listen address into a clickable URL for the startup
// message.
func displayURL(addr string) string {
	if addr == "" {
		addr = ":7350"
	}
	if addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
