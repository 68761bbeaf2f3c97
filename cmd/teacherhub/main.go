package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/teacherhub/internal/catalog"
	"github.com/idilsaglam/teacherhub/internal/cli"
	"github.com/idilsaglam/teacherhub/internal/config"
	"github.com/idilsaglam/teacherhub/internal/portal"
	"github.com/idilsaglam/teacherhub/internal/store"
	"github.com/idilsaglam/teacherhub/internal/store/jsonstore"
	"github.com/idilsaglam/teacherhub/internal/store/memstore"
	"github.com/idilsaglam/teacherhub/internal/store/sqlitestore"
	"github.com/idilsaglam/teacherhub/internal/tui"
	"github.com/idilsaglam/teacherhub/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand). Parsing stops at the first
	// subcommand so its own flags reach it untouched.
	flags := pflag.CommandLine
	flags.SetInterspersed(false)
	configFile := flags.String("config", "", "config file (yaml, toml or json)")
	flags.String("data", "", "data file (json backend) or database (sqlite backend)")
	flags.String("backend", "", "storage backend: json, sqlite or memory")
	flags.String("content", "", "YAML file replacing the demo announcements/resources/schedule")
	flags.String("log-level", "", "debug, info, warn or error")
	forceColor := flags.Bool("color", false, "force colored output")
	noColor := flags.Bool("no-color", false, "disable colored output")
	pflag.Parse()

	ui.SetColorForcing(*forceColor, *noColor)

	// Hand the remaining args to the CLI runner.
	args := pflag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		return 2
	}

	cfg, err := config.Load(*configFile, flags)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	st, err := openStore(cfg, logger)
	if err != nil {
		ui.Fail("store: " + err.Error())
		return 1
	}
	defer st.Close()

	content := catalog.Demo()
	if cfg.ContentFile != "" {
		if content, err = catalog.LoadFile(cfg.ContentFile); err != nil {
			ui.Fail(err.Error())
			return 1
		}
	}

	p := portal.New(st, content, portal.WithLogger(logger))
	if mode, err := p.Theme(); err != nil {
		logger.Warn("theme unavailable, using default", "error", err)
	} else {
		ui.SetTheme(mode)
	}

	code := cli.Run(args, cli.Options{Portal: p, Interactive: tui.Run})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}

func openStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		path := cfg.DataPath
		if path == "" {
			path = "teacherhub.db"
		}
		return sqlitestore.Open(path, logger)
	case config.BackendMemory:
		return memstore.New(), nil
	default:
		return jsonstore.Open(cfg.DataPath)
	}
}
