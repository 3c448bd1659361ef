// Package app wires configuration, the people directory, the event bus and
// the terminal UI together. Both entrypoints call Run.
package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"peoplepicker/internal/config"
	"peoplepicker/internal/eventbus"
	"peoplepicker/internal/logic"
	"peoplepicker/internal/people"
	"peoplepicker/internal/ui"
)

// Options are the command line settings
type Options struct {
	ConfigPath  string
	DataFile    string
	LogFile     string
	Select      string
	Delay       time.Duration
	DelaySet    bool
	NoMouse     bool
	WriteConfig bool
}

// ParseArgs parses command line arguments (without the program name)
func ParseArgs(args []string, stderr io.Writer) (Options, error) {
	var opts Options

	fs := flag.NewFlagSet("peoplepicker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.ConfigPath, "config", "c", "", "Config file (default "+config.DefaultPath()+")")
	fs.DurationVarP(&opts.Delay, "delay", "d", 0, "Debounce delay before the list is filtered, e.g. 300ms")
	fs.StringVar(&opts.DataFile, "data", "", "People file (.json, .jsonc, .yaml); built-in list when empty")
	fs.StringVar(&opts.LogFile, "log", "peoplepicker.log", "Log file")
	fs.BoolVar(&opts.NoMouse, "no-mouse", false, "Disable mouse support")
	fs.StringVarP(&opts.Select, "select", "s", "", "Start with this person selected (slug or exact name)")
	fs.BoolVar(&opts.WriteConfig, "write-config", false, "Write the effective config to the config file and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts.DelaySet = fs.Changed("delay")
	if opts.DelaySet && opts.Delay < 0 {
		return opts, fmt.Errorf("%w: delay must not be negative", config.ErrInvalidConfig)
	}
	return opts, nil
}

// ApplyOverrides merges command line settings over the loaded config
func ApplyOverrides(cfg *config.Config, opts Options) {
	if opts.DelaySet {
		cfg.UISettings.DelayMs = int(opts.Delay / time.Millisecond)
	}
	if opts.DataFile != "" {
		cfg.DataFile = opts.DataFile
	}
	if opts.NoMouse {
		cfg.UISettings.Mouse = false
	}
}

// Run starts the picker and blocks until it exits
func Run(args []string) error {
	opts, err := ParseArgs(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// Set up logging
	logFile, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	configSvc := config.NewConfigServiceWithBus(opts.ConfigPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	ApplyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.WriteConfig {
		if err := configSvc.Save(cfg); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		log.Printf("Config written to %s", configSvc.Path())
		fmt.Println(configSvc.Path())
		return nil
	}

	list, err := people.Load(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("loading people: %w", err)
	}
	bus.Publish(eventbus.DataLoadedEvent{Source: cfg.DataFile, Count: len(list)})

	store := logic.NewMemoryPersonStore(list)
	uiModel := ui.NewModel(bus, cfg, store)
	if opts.Select != "" {
		if err := uiModel.Preselect(opts.Select); err != nil {
			return err
		}
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(p)

	log.Printf("Starting UI with %d people, delay %s", store.Len(), cfg.Delay())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally")

	if sel := uiModel.Selected(); sel != nil {
		fmt.Println(sel.Lifespan())
	}
	return nil
}

// subscribeLogging records picker activity in the log file
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventPersonSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PersonSelectedEvent); ok {
			log.Printf("Person selected: %s", event.Person.Lifespan())
		}
	})
	bus.Subscribe(eventbus.EventQueryApplied, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.QueryAppliedEvent); ok {
			log.Printf("Filter applied: %q (%d matches)", event.Query, event.Matches)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventDataLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.DataLoadedEvent); ok {
			source := event.Source
			if source == "" {
				source = "built-in list"
			}
			log.Printf("Loaded %d people from %s", event.Count, source)
		}
	})
}
