package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/quadscene/internal/audio"
	"github.com/l1jgo/quadscene/internal/component"
	"github.com/l1jgo/quadscene/internal/config"
	"github.com/l1jgo/quadscene/internal/core/ecs"
	"github.com/l1jgo/quadscene/internal/core/event"
	coresys "github.com/l1jgo/quadscene/internal/core/system"
	"github.com/l1jgo/quadscene/internal/data"
	"github.com/l1jgo/quadscene/internal/geom"
	"github.com/l1jgo/quadscene/internal/handler"
	"github.com/l1jgo/quadscene/internal/input"
	"github.com/l1jgo/quadscene/internal/render"
	"github.com/l1jgo/quadscene/internal/scripting"
	"github.com/l1jgo/quadscene/internal/system"
	"github.com/l1jgo/quadscene/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Console helpers ────────────────────────────────────────────────
// The terminal belongs to tcell while the scene runs, so these only print
// before the screen opens and after it closes.

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

// ── Scene ─────────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/quadscene.toml"
	if p := os.Getenv("QUADSCENE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	view := geom.R(0, 0, cfg.Window.Width, cfg.Window.Height)
	log.Info("starting", zap.String("config", cfgPath), zap.Stringer("view", view))

	// 3. Scene state
	bus := event.NewBus()
	camera := world.NewCamera(view, cfg.Camera.ZoomRatio, cfg.Camera.MinWidth, cfg.Camera.MinHeight)
	scene := world.NewScene(view, cfg.Scene.InitialCapacity, camera, bus, log)
	defer scene.Free()

	// 4. Lua behaviors and entity kinds
	engine, err := scripting.NewEngine(cfg.Scene.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer engine.Close()
	engine.SetView(view)

	kinds := ecs.NewRegistry()
	component.RegisterAll(kinds, engine, log)

	// 5. Initial population
	entries, err := data.LoadSpawnList(cfg.Scene.SpawnList)
	if err != nil {
		return fmt.Errorf("load spawn list: %w", err)
	}
	spawned, err := scene.Populate(kinds, entries)
	if err != nil {
		return fmt.Errorf("populate: %w", err)
	}

	printSection("Scene")
	printStat("Entity kinds", len(kinds.Kinds()))
	printStat("Lua behaviors", len(engine.Behaviors()))
	printStat("Spawn list entries", len(entries))
	printStat("Entities placed", spawned)

	// 6. Audio
	player := audio.NewPlayer(cfg.Audio, log)
	defer player.Close()
	audio.Subscribe(bus, player)

	// 7. Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.SetTitle(cfg.Window.Title)
	screen.EnableMouse()
	screen.HideCursor()
	defer func() {
		screen.Fini()
		printSection("Shutdown")
		printStat("Entities left", scene.Store.Len())
		printStat("Indexed", scene.Tree.Len())
		printOK("scene closed")
	}()

	canvas := render.NewTerminal(screen)
	pump := input.NewPump(screen, cfg.Loop.EventQueueSize, log)
	go pump.Run()

	// 8. Systems
	spawner := system.NewSpawnerSystem(scene, component.Node, cfg.Scene.SpawnInterval, cfg.Scene.NodeSize, log)

	deps := &handler.Deps{
		Config:  cfg,
		Log:     log,
		Scene:   scene,
		Spawner: spawner,
		OnResize: func(cols, rows int) {
			log.Debug("terminal resized", zap.Int("cols", cols), zap.Int("rows", rows))
			screen.Sync()
		},
	}
	inputReg := input.NewRegistry(log)
	handler.RegisterAll(inputReg, deps)

	toWorld := func(cell geom.Point) geom.Point { return canvas.Viewport().ToWorld(cell) }

	runner := coresys.NewRunner()
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewInputSystem(pump.Events(), inputReg, scene, toWorld, cfg.Loop.MaxEventsPerTick, log))
	runner.Register(spawner)
	runner.Register(system.NewTickSystem(scene))
	runner.Register(system.NewCleanupSystem(scene, log))
	runner.Register(system.NewRenderSystem(scene, canvas, log))

	// First frame, so the viewport exists before any input is mapped.
	runner.TickPhase(coresys.PhaseOutput, 0)

	// 9. Loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	ticker := time.NewTicker(cfg.Loop.TickRate)
	defer ticker.Stop()

	log.Info("scene running", zap.Duration("tick", cfg.Loop.TickRate), zap.Int("systems", runner.Len()))
	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			runner.Tick(now.Sub(last))
			last = now
			if scene.Closing() {
				log.Info("scene closed by user")
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			scene.Close()
			return nil
		}
	}
}

// newLogger builds the zap logger. Output goes to a file because the
// terminal is drawn on.
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
		zapCfg.ErrorOutputPaths = []string{cfg.Output}
	}

	return zapCfg.Build()
}
