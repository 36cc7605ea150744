package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/battleship-engine/internal/config"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
	"github.com/saeidalz13/battleship-engine/ui/console"
	"github.com/saeidalz13/battleship-engine/ui/screen"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	mode := flag.String("mode", string(cfg.Mode), "game mode: pve or pvp")
	difficulty := flag.String("difficulty", cfg.Difficulty.String(), "board preset: easy (6x6), normal (8x8), hard (10x10)")
	seed := flag.Uint64("seed", cfg.Seed, "random seed, 0 seeds from the clock")
	logLevel := flag.String("log-level", cfg.LogLevel.String(), "log level")
	placement := flag.String("placement", string(cfg.Placement), "ship placement: random or manual")
	ui := flag.String("ui", string(cfg.UI), "frontend: console, or grid for 10x10 against the computer")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.AskMode = false
		case "difficulty":
			cfg.AskDifficulty = false
		}
	})

	if cfg.Mode, err = mb.ParseMode(*mode); err != nil {
		log.Fatal("invalid flag", "err", err)
	}
	if cfg.Difficulty, err = mb.ParseDifficulty(*difficulty); err != nil {
		log.Fatal("invalid flag", "err", err)
	}
	if cfg.LogLevel, err = log.ParseLevel(*logLevel); err != nil {
		log.Fatal("invalid flag", "err", err)
	}
	if cfg.Placement, err = config.ParsePlacement(*placement); err != nil {
		log.Fatal("invalid flag", "err", err)
	}
	if cfg.UI, err = config.ParseUI(*ui); err != nil {
		log.Fatal("invalid flag", "err", err)
	}
	if err := cfg.CheckUI(); err != nil {
		log.Fatal("invalid flag", "err", err)
	}
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel,
		Prefix:          "battleship",
		ReportTimestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	term := console.NewConsole(os.Stdin, os.Stdout, console.WithLogger(logger.WithPrefix("console")))
	if cfg.AskMode {
		if cfg.Mode, err = term.ChooseMode(); err != nil {
			logger.Fatal("failed to read mode", "err", err)
		}
	}
	if cfg.AskDifficulty {
		if cfg.Difficulty, err = term.ChooseDifficulty(); err != nil {
			logger.Fatal("failed to read board size", "err", err)
		}
	}

	gameCfg, err := cfg.GameConfig()
	if err != nil {
		logger.Fatal("invalid game config", "err", err)
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1))

	var (
		reporter mb.Reporter = term
		grid     *screen.Screen
	)
	first, second, err := newSeats(gameCfg, cfg.Placement, rng, term, logger)
	if err != nil {
		logger.Fatal("failed to set up boards", "err", err)
	}
	if cfg.UI == config.UIGrid {
		grid = screen.New(ctx, screen.WithLogger(logger.WithPrefix("screen")))
		first.Chooser = grid.Player()
		reporter = grid
	}

	gameManager := mb.NewBattleshipGameManager()
	game, err := gameManager.CreateGame(gameCfg, first, second, mb.WithReporter(reporter), mb.WithGameLogger(logger))
	if err != nil {
		logger.Fatal("failed to create game", "err", err)
	}
	defer gameManager.TerminateGame(game.Uuid())

	logger.Debug("starting game", "uuid", game.Uuid(), "seed", cfg.Seed, "difficulty", cfg.Difficulty, "ui", cfg.UI)
	if grid == nil {
		if _, err := game.Run(ctx); err != nil {
			logger.Error("game stopped", "uuid", game.Uuid(), "err", err)
		}
		return
	}

	// the terminal loop owns the main goroutine until the player quits
	go func() {
		if _, err := game.Run(ctx); err != nil {
			logger.Error("game stopped", "uuid", game.Uuid(), "err", err)
		}
	}()
	grid.Start()
}

// In pve the human fires first and the computer sits second. Manual
// placement only applies to human seats.
func newSeats(cfg mb.Config, placement config.Placement, rng *rand.Rand, term *console.Console, logger *log.Logger) (*mb.Seat, *mb.Seat, error) {
	humanBoard := func(h *console.Human, next string) (*mb.Board, error) {
		if placement != config.PlacementManual {
			return mb.RandomBoard(cfg.Size, cfg.Ships, rng)
		}

		board, err := h.PlaceFleet(cfg.Size, cfg.Ships)
		if err != nil {
			return nil, err
		}
		if next != "" {
			return board, term.PassTurn(next)
		}
		return board, nil
	}

	if cfg.Mode == mb.ModePvP {
		p1, p2 := term.Human("Player 1"), term.Human("Player 2")
		firstBoard, err := humanBoard(p1, "Player 2")
		if err != nil {
			return nil, nil, err
		}
		secondBoard, err := humanBoard(p2, "Player 1")
		if err != nil {
			return nil, nil, err
		}
		return mb.NewSeat("Player 1", firstBoard, p1), mb.NewSeat("Player 2", secondBoard, p2), nil
	}

	player := term.Human("Player")
	firstBoard, err := humanBoard(player, "")
	if err != nil {
		return nil, nil, err
	}
	secondBoard, err := mb.RandomBoard(cfg.Size, cfg.Ships, rng)
	if err != nil {
		return nil, nil, err
	}

	ai := mb.NewTargeting(rng, mb.WithLogger(logger.WithPrefix("ai")), mb.WithTargetView(firstBoard))
	return mb.NewSeat("Player", firstBoard, player), mb.NewSeat("Computer", secondBoard, ai), nil
}
