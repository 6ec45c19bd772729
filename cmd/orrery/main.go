package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/render"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	session := uuid.New().String()
	log.SetPrefix("[" + session[:8] + "] ")
	log.Printf("session %s starting, seed=%d speed=%.1f fps=%d", session, cfg.Seed, cfg.TimeScale, cfg.FPS)
	if cfg.EnvLoaded {
		log.Printf("Loaded configuration from %s", cfg.EnvFile)
	} else {
		log.Println("No .env file found, using environment variables")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.TcellColor(render.Background)))

	sounds := audio.NewSoundManager()
	if cfg.Audio {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sounds.Cleanup()
		}
	}

	sim := engine.NewSimulation(engine.NewMonotonicTimeProvider(), engine.Options{
		Seed:               cfg.Seed,
		TimeScale:          cfg.TimeScale,
		TransitionDuration: cfg.Transition,
	})
	sim.Nav.SetListener(audio.NewCues(sounds))

	a := newApp(screen, sim, render.NewRenderer(cfg.Seed), sounds)
	run(a, cfg.FrameInterval())
	log.Println("session ended")
}

// run drives the frame loop until an intent asks to quit
func run(a *app, interval time.Duration) {
	eventChan := make(chan tcell.Event, constant.EventChannelSize)
	// Input polling uses raw goroutine as it interacts directly with the screen
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := a.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	last := time.Now()
	a.frame(0)

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case now := <-frameTicker.C:
			a.frame(now.Sub(last))
			last = now
		}
	}
}
