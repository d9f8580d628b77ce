// Media Sort is a command-line tool that relocates finished downloads
// into movie and TV libraries. It renames recognized media files into a
// scraper-friendly dotted layout, moves them into place, and cleans up
// the directories they leave behind.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/litescript/ls-media-sort/internal/config"
	"github.com/litescript/ls-media-sort/internal/logging"
	"github.com/litescript/ls-media-sort/internal/sorter"
	"github.com/litescript/ls-media-sort/internal/tui"
	"github.com/litescript/ls-media-sort/internal/version"
)

type CLI struct {
	Config string `help:"Path to the config file" type:"path" placeholder:"FILE"`

	Run     RunCmd     `cmd:"" help:"Sort the incoming directory once and exit"`
	Watch   WatchCmd   `cmd:"" help:"Keep running and sort whenever new files arrive"`
	Review  ReviewCmd  `cmd:"" help:"Review every planned move in a TUI before applying"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

type RunCmd struct {
	DryRun bool `help:"Log planned moves without touching any file"`
}

type WatchCmd struct{}

type ReviewCmd struct{}

type VersionCmd struct {
	Check bool `help:"Check GitHub for a newer release"`
}

// setup loads and validates the config, creates the library roots, and
// builds the logger. Interactive commands tee logs to stderr; the review
// TUI keeps them file-only so they don't garble the alternate screen.
func setup(path string, console bool) (config.Config, *zap.SugaredLogger, func(), error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrNoConfig) {
			target := path
			if target == "" {
				target = config.ConfigPath()
			}
			return cfg, nil, nil, fmt.Errorf("wrote a default config, edit %s and run again", target)
		}
		return cfg, nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, nil, nil, fmt.Errorf("config: %w", err)
	}
	if err := config.EnsureLibraryDirs(cfg); err != nil {
		return cfg, nil, nil, err
	}

	log, closer, err := logging.New(cfg, console)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, log, closer, nil
}

func (c *RunCmd) Run(cli *CLI) error {
	cfg, log, closer, err := setup(cli.Config, true)
	if err != nil {
		return err
	}
	defer closer()

	runner := sorter.New(cfg, log)
	runner.DryRun = c.DryRun

	stats, err := runner.Run()
	if err != nil {
		return err
	}

	log.Infof("done: %d moved (%d tv, %d movies), %d skipped, %d failed, %d directories removed",
		stats.Moved(), stats.MovedTV, stats.MovedMovies,
		stats.Skipped, stats.Failures, stats.DirsRemoved)
	return nil
}

func (c *WatchCmd) Run(cli *CLI) error {
	cfg, log, closer, err := setup(cli.Config, true)
	if err != nil {
		return err
	}
	defer closer()

	runner := sorter.New(cfg, log)

	// Sort whatever is already sitting there before waiting for arrivals.
	if _, err := runner.Run(); err != nil {
		return err
	}

	watcher, err := sorter.NewWatcher(cfg.Folders.Incoming, cfg.Options.DebounceInterval(), log, func() {
		if _, err := runner.Run(); err != nil {
			log.Errorf("sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	defer watcher.Stop()

	log.Infof("watching %s", cfg.Folders.Incoming)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Infof("shutting down")
	return nil
}

func (c *ReviewCmd) Run(cli *CLI) error {
	cfg, log, closer, err := setup(cli.Config, false)
	if err != nil {
		return err
	}
	defer closer()

	runner := sorter.New(cfg, log)
	p := tea.NewProgram(tui.NewModel(cfg, runner), tea.WithAltScreen())

	_, err = p.Run()
	return err
}

func (c *VersionCmd) Run(cli *CLI) error {
	fmt.Printf("media-sort v%s\n", version.Version)
	if !c.Check {
		return nil
	}

	info := version.CheckForUpdate()
	if info.Error != nil {
		return info.Error
	}
	if info.UpdateAvailable {
		fmt.Printf("update available: v%s\n", info.LatestVersion)
		fmt.Printf("  %s\n", version.InstallCommand())
	} else {
		fmt.Println("up to date")
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
