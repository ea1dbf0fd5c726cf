package main

import (
	"flag"
	"fmt"
	"errors"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/ascii-wars/internal/config"
	"github.com/appengine-ltd/ascii-wars/internal/gui"
	"github.com/appengine-ltd/ascii-wars/internal/ui"
)

// version, commit, date are injected at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	configPath  string
	startScreen string
	logPath     string
	window      bool
	writeConfig bool
	screenSet   bool
}

var errScreenWithWindow = errors.New("--screen applies to the terminal frontend; the window always opens on the armoury")

func (o options) validate() error {
	if o.window && o.screenSet {
		return errScreenWithWindow
	}
	if o.window {
		return nil
	}
	return ui.ValidateScreen(o.startScreen)
}

func main() {
	var (
		showVersion bool
		opts        options
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&opts.configPath, "config", "", "path to config.yaml (default: user config dir)")
	flag.StringVar(&opts.startScreen, "screen", "menu", "terminal start screen: menu, multiplayer or armoury (not with --window)")
	flag.StringVar(&opts.logPath, "log", "", "write debug log to this file")
	flag.BoolVar(&opts.window, "window", false, "open the armoury in a raylib window instead of the terminal")
	flag.BoolVar(&opts.writeConfig, "write-config", false, "write the effective config to the config path and exit")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "screen" {
			opts.screenSet = true
		}
	})

	if showVersion {
		fmt.Printf("ASCII WARS %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, "ascii-wars")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil && opts.writeConfig {
			return err
		}
		path = p
	}
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	log.Printf("config: %s max_decks=%d deck_size_limit=%d", path, cfg.MaxDecks, cfg.DeckSizeLimit)

	if opts.writeConfig {
		if err := config.Save(path, cfg); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	if opts.window {
		return gui.NewApp(gui.AppConfig{
			Version:   version,
			Commit:    commit,
			BuildDate: date,
			Options:   cfg.ArmouryOptions(),
		}).Run()
	}

	return ui.NewApp(ui.AppConfig{
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Options:     cfg.ArmouryOptions(),
		StartScreen: opts.startScreen,
	}).Run()
}
