package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake/config"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/terminal"
)

// Exit codes
const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

var debugFlag = flag.Bool("debug", false, "verbose logging to ./logs")

func main() {
	config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	os.Exit(run())
}

func run() int {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			glog.Errorf("panic: %v", r)
			glog.Flush()
			core.HandleCrash(r)
		}
	}()

	if err := setupLogging(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return exitError
	}
	defer glog.Flush()

	cfg, err := config.FromFlags(flag.CommandLine)
	if err != nil {
		glog.Errorf("config: %v", err)
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return exitError
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	glog.Infof("starting: tick=%v poll=%v growth=%s food=%s seed=%d",
		cfg.TickInterval, cfg.PollTimeout, cfg.Growth, cfg.Food, seed)

	term := terminal.New(input.DefaultKeyTable())
	if err := term.Init(); err != nil {
		glog.Errorf("terminal: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return exitError
	}
	core.SetCrashTerminal(term)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashTerminal(nil)
		term.Fini()
	}()

	state := game.NewGameState(game.Options{
		Grid:     term.Size(),
		Growth:   cfg.Growth,
		FoodMode: cfg.Food,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	ctrl := engine.NewController(state, term, engine.NewTimeProvider(), engine.Timing{
		TickInterval: cfg.TickInterval.Duration,
		PollTimeout:  cfg.PollTimeout.Duration,
	})

	switch err := ctrl.Run(); {
	case err == nil:
		return exitOK
	case errors.Is(err, engine.ErrInterrupted):
		return exitInterrupted
	default:
		glog.Errorf("run: %v", err)
		return exitError
	}
}
