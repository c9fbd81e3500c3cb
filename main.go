package main

import (
	"flag"
	"image"
	"log/slog"
	"os"

	"github.com/automoto/doomerang-recoil/config"
	"github.com/automoto/doomerang-recoil/fonts"
	"github.com/automoto/doomerang-recoil/scenes"
	"github.com/automoto/doomerang-recoil/systems"
	"github.com/automoto/doomerang-recoil/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(weapon string, shots *telemetry.ShotLog) (*Game, error) {
	if err := fonts.LoadFont(fonts.HUD, goregular.TTF); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, 11); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Feedback, goregular.TTF, 20); err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewRangeScene(weapon, shots),
	}, nil
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	weapon := flag.String("weapon", "", "weapon to start with (default from config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	noPersist := flag.Bool("no-persist", false, "do not load or save settings")
	shotsPath := flag.String("shots", "", "write every shot to this CSV file")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := config.Load(*configPath); err != nil {
		slog.Error("config_load_failed", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *noPersist {
		config.Debug.Persist = false
	}
	if *weapon != "" {
		if _, ok := config.Weapon(*weapon); !ok {
			slog.Error("weapon_unknown", "weapon", *weapon, "available", config.WeaponOrder)
			os.Exit(1)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Recoil Range")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence; the range works without it.
	if config.Debug.Persist {
		if err := systems.InitPersistence(); err != nil {
			slog.Warn("persistence_unavailable", "err", err)
		}
	}

	shots, err := telemetry.NewShotLog(*shotsPath)
	if err != nil {
		slog.Error("shot_log_failed", "path", *shotsPath, "err", err)
		os.Exit(1)
	}

	game, err := NewGame(*weapon, shots)
	if err != nil {
		slog.Error("startup_failed", "err", err)
		os.Exit(1)
	}
	runErr := ebiten.RunGame(game)

	if err := shots.Close(); err != nil {
		slog.Warn("shot_log_close_failed", "err", err)
	} else if *shotsPath != "" {
		slog.Info("shot_log_written", "path", *shotsPath, "shots", shots.Count())
	}
	if runErr != nil {
		slog.Error("game_exited", "err", runErr)
		os.Exit(1)
	}
}
