// Package config resolves runtime settings from defaults, an optional .env
// file, ORRERY_* environment variables and command-line flags, in that order
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/orrery/constant"
)

// Environment keys
const (
	EnvDebug      = "ORRERY_DEBUG"
	EnvAudio      = "ORRERY_AUDIO"
	EnvTimeScale  = "ORRERY_TIME_SCALE"
	EnvFPS        = "ORRERY_FPS"
	EnvSeed       = "ORRERY_SEED"
	EnvTransition = "ORRERY_TRANSITION_MS"
)

const (
	defaultEnvFile = ".env"
	minFPS         = 1
	maxFPS         = 240
)

var ErrInvalid = errors.New("invalid setting")

// Config is the resolved runtime configuration
type Config struct {
	Debug      bool
	Audio      bool
	TimeScale  float64
	FPS        int
	Seed       uint64
	Transition time.Duration

	// EnvFile is the dotenv path; EnvLoaded reports whether it was read
	EnvFile   string
	EnvLoaded bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Debug:      false,
		Audio:      true,
		TimeScale:  constant.TimeScaleDefault,
		FPS:        int(time.Second / constant.FrameUpdateInterval),
		Seed:       uint64(time.Now().UnixNano()),
		Transition: constant.TransitionDuration,
		EnvFile:    defaultEnvFile,
	}
}

// FrameInterval is the ticker period for the configured FPS
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constant.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// Validate checks ranges
func (c Config) Validate() error {
	if c.TimeScale < constant.TimeScaleMin || c.TimeScale > constant.TimeScaleMax {
		return fmt.Errorf("%w: time scale %v outside [%v, %v]", ErrInvalid, c.TimeScale, constant.TimeScaleMin, constant.TimeScaleMax)
	}
	if c.FPS < minFPS || c.FPS > maxFPS {
		return fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalid, c.FPS, minFPS, maxFPS)
	}
	if c.Transition < 0 {
		return fmt.Errorf("%w: negative transition %v", ErrInvalid, c.Transition)
	}
	return nil
}

// Load resolves configuration for the given command-line arguments
// A missing dotenv file is not an error
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("orrery", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		debug      = fs.Bool("debug", cfg.Debug, "write debug logs to logs/orrery.log")
		audio      = fs.Bool("audio", cfg.Audio, "play interface chimes")
		speed      = fs.Float64("speed", cfg.TimeScale, "initial time scale")
		fps        = fs.Int("fps", cfg.FPS, "frames per second")
		seed       = fs.Uint64("seed", 0, "seed for initial planet phases (0 = time based)")
		transition = fs.Duration("transition", cfg.Transition, "camera transition duration")
		envFile    = fs.String("env", cfg.EnvFile, "dotenv file path")
	)
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("config: flags: %w", err)
	}

	cfg.EnvFile = *envFile
	if err := godotenv.Load(cfg.EnvFile); err == nil {
		cfg.EnvLoaded = true
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	// Explicit flags win over the environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "audio":
			cfg.Audio = *audio
		case "speed":
			cfg.TimeScale = *speed
		case "fps":
			cfg.FPS = *fps
		case "seed":
			if *seed != 0 {
				cfg.Seed = *seed
			}
		case "transition":
			cfg.Transition = *transition
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvDebug, v, err)
		}
		cfg.Debug = b
	}
	if v, ok := os.LookupEnv(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(EnvAudio, v, err)
		}
		cfg.Audio = b
	}
	if v, ok := os.LookupEnv(EnvTimeScale); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError(EnvTimeScale, v, err)
		}
		cfg.TimeScale = f
	}
	if v, ok := os.LookupEnv(EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvFPS, v, err)
		}
		cfg.FPS = n
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return envError(EnvSeed, v, err)
		}
		if n != 0 {
			cfg.Seed = n
		}
	}
	if v, ok := os.LookupEnv(EnvTransition); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return envError(EnvTransition, v, err)
		}
		cfg.Transition = time.Duration(ms) * time.Millisecond
	}
	return nil
}

func envError(key, value string, err error) error {
	return fmt.Errorf("config: %s=%q: %w", key, value, err)
}
