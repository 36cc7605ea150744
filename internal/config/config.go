package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	EnvStage      = "STAGE"
	EnvMode       = "BATTLESHIP_MODE"
	EnvDifficulty = "BATTLESHIP_DIFFICULTY"
	EnvSeed       = "BATTLESHIP_SEED"
	EnvLogLevel   = "LOG_LEVEL"
	EnvPlacement  = "BATTLESHIP_PLACEMENT"
	EnvUI         = "BATTLESHIP_UI"
)

type Placement string

const (
	PlacementRandom Placement = "random"
	PlacementManual Placement = "manual"
)

func ParsePlacement(s string) (Placement, error) {
	switch Placement(strings.ToLower(strings.TrimSpace(s))) {
	case "", PlacementRandom:
		return PlacementRandom, nil
	case PlacementManual:
		return PlacementManual, nil
	default:
		return "", fmt.Errorf("placement must be either random or manual, got: %q", s)
	}
}

type UI string

const (
	// line based text console, any board size
	UIConsole UI = "console"
	// clickable terminal grid, fixed to the 10x10 pve game
	UIGrid UI = "grid"
)

func ParseUI(s string) (UI, error) {
	switch UI(strings.ToLower(strings.TrimSpace(s))) {
	case "", UIConsole:
		return UIConsole, nil
	case UIGrid:
		return UIGrid, nil
	default:
		return "", fmt.Errorf("ui must be either console or grid, got: %q", s)
	}
}

type Config struct {
	Stage      string
	Mode       mb.Mode
	Difficulty mb.Difficulty
	// 0 means seed from the clock
	Seed      uint64
	LogLevel  log.Level
	Placement Placement
	UI        UI

	// no value was configured, so the console asks at startup
	AskMode       bool
	AskDifficulty bool
}

// Load reads the configuration from the environment. Outside prod the
// variables in envFile are loaded first; a missing file is fine.
func Load(envFile string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Stage:    getenv(EnvStage),
		LogLevel: log.InfoLevel,
	}

	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %q", cfg.Stage)
	}

	rawMode := getenv(EnvMode)
	mode, err := mb.ParseMode(rawMode)
	if err != nil {
		return Config{}, err
	}
	cfg.Mode = mode
	cfg.AskMode = rawMode == ""

	rawDifficulty := getenv(EnvDifficulty)
	difficulty, err := mb.ParseDifficulty(rawDifficulty)
	if err != nil {
		return Config{}, err
	}
	cfg.Difficulty = difficulty
	cfg.AskDifficulty = rawDifficulty == ""

	if cfg.Placement, err = ParsePlacement(getenv(EnvPlacement)); err != nil {
		return Config{}, err
	}
	if cfg.UI, err = ParseUI(getenv(EnvUI)); err != nil {
		return Config{}, err
	}

	if raw := getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvSeed, raw, err)
		}
		cfg.Seed = seed
	}

	if raw := getenv(EnvLogLevel); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvLogLevel, raw, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// CheckUI pins the grid frontend to its only supported game, 10x10
// against the computer. Values configured for anything else are errors.
func (c *Config) CheckUI() error {
	if c.UI != UIGrid {
		return nil
	}

	if !c.AskMode && c.Mode != mb.ModePvE {
		return fmt.Errorf("the grid ui only plays %s, got: %s", mb.ModePvE, c.Mode)
	}
	if !c.AskDifficulty && c.Difficulty != mb.GameDifficultyHard {
		return fmt.Errorf("the grid ui only plays %s, got: %s", mb.GameDifficultyHard, c.Difficulty)
	}

	c.Mode, c.AskMode = mb.ModePvE, false
	c.Difficulty, c.AskDifficulty = mb.GameDifficultyHard, false
	return nil
}

// GameConfig resolves the board size and fleet for the configured
// difficulty.
func (c Config) GameConfig() (mb.Config, error) {
	return mb.PresetConfig(c.Difficulty, c.Mode)
}
