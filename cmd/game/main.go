package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/skyfall/internal/config"
	"github.com/tomz197/skyfall/internal/loop"
	"github.com/tomz197/skyfall/internal/loop/client"
	"github.com/tomz197/skyfall/internal/loop/server"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	variant, err := loop.ParseVariant(cfg.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game; only errors are worth printing.
	logger, err := config.NewLogger(io.Discard, "game", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	runErr := run(ctx, variant, logger)
	stop()
	_ = term.Restore(fd, oldState)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", runErr)
		os.Exit(1)
	}
}

func run(ctx context.Context, variant loop.Variant, logger *log.Logger) error {
	gameServer := server.NewServer(logger)

	c, err := client.NewClient(gameServer, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: config.GetEnv("USER", "player"),
		Variant:  variant,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	return c.Run(ctx)
}
