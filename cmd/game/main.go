package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/starshooter/internal/config"
	"github.com/tomz197/starshooter/internal/loop/client"
	"github.com/tomz197/starshooter/internal/loop/server"
)

func main() {
	// The terminal belongs to the game; logs only go to a file when asked.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv("STARSHOOTER_LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "game")

	// Detect colors before raw mode
	profile := termenv.EnvColorProfile()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := server.NewHub(logger)
	go hub.Run(ctx)

	reader := bufio.NewReader(os.Stdin)
	c := client.NewClient(hub, reader, os.Stdout, client.ClientOptions{
		Username: config.GetEnv("USER", "player"),
		Profile:  profile,
		Logger:   logger,
		Seed:     config.Seed(),
	})
	if err := c.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
