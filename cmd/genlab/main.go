// Command genlab runs the lesson catalogue and prints each demonstration.
//
// Usage:
//
//	genlab              run every lesson
//	genlab -lesson api  run one lesson
//	genlab -list        list lesson names
//
// Settings come from config.Load (GENLAB_* variables, an optional YAML file
// named by GENLAB_CONFIG, and a .env file in the working directory). When no
// API base URL is configured, lessons that need one run against a local mock
// API started on a loopback port.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/sghaida/genlab/config"
	"github.com/sghaida/genlab/internal/mockapi"
	"github.com/sghaida/genlab/lessons"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "genlab:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("genlab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	lessonName := fs.String("lesson", "all", "lesson to run, or \"all\"")
	list := fs.Bool("list", false, "list lesson names and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		for _, l := range lessons.All() {
			fmt.Fprintf(stdout, "%-12s %s\n", l.Name, l.Title)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("env", cfg.Env)

	selected, err := selectLessons(*lessonName)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := lessons.Env{
		Out:         stdout,
		Log:         logger,
		APIBaseURL:  cfg.APIBaseURL,
		Timeout:     cfg.Timeout(),
		Concurrency: cfg.FetchConcurrency,
	}

	if env.APIBaseURL == "" && needsAPI(selected) {
		srv, err := mockapi.New()
		if err != nil {
			return err
		}
		baseURL, err := srv.Start("127.0.0.1:0")
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("mock api shutdown failed", "error", err)
			}
		}()
		logger.Debug("mock api started", "url", baseURL)
		env.APIBaseURL = baseURL
	}

	return lessons.Run(ctx, env, selected...)
}

func selectLessons(name string) ([]lessons.Lesson, error) {
	if name == "" || name == "all" {
		return lessons.All(), nil
	}
	l, err := lessons.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []lessons.Lesson{l}, nil
}

func needsAPI(ls []lessons.Lesson) bool {
	for _, l := range ls {
		if l.NeedsAPI {
			return true
		}
	}
	return false
}
