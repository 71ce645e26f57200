package main

import (
	"context"
	"flag"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxel-terrain/internal/asset"
	"github.com/OCharnyshevich/voxel-terrain/internal/config"
	"github.com/OCharnyshevich/voxel-terrain/internal/stream"
	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
	"github.com/OCharnyshevich/voxel-terrain/pkg/world/mesh"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "config file (.yaml, .yml or .json)")
	savePath := flag.String("save-config", "", "write the effective config to this file and exit")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "terrain seed")
	flag.IntVar(&cfg.Streaming.LoadRadius, "load-radius", cfg.Streaming.LoadRadius, "load radius in chunks")
	flag.IntVar(&cfg.Streaming.UnloadRadius, "unload-radius", cfg.Streaming.UnloadRadius, "unload radius in chunks")
	flag.IntVar(&cfg.Streaming.MaxChunksPerTick, "max-chunks", cfg.Streaming.MaxChunksPerTick, "chunks loaded and unloaded per tick")
	flag.IntVar(&cfg.Streaming.ViewDistance, "view-distance", cfg.Streaming.ViewDistance, "draw distance in chunks")
	flag.StringVar(&cfg.Atlas.Source, "atlas", cfg.Atlas.Source, "atlas image source (path or URL)")
	flag.StringVar(&cfg.Atlas.CacheDir, "cache-dir", cfg.Atlas.CacheDir, "asset cache directory")
	flag.IntVar(&cfg.Atlas.Grid, "grid", cfg.Atlas.Grid, "atlas tiles per side")
	flag.IntVar(&cfg.Simulation.Ticks, "ticks", cfg.Simulation.Ticks, "ticks to simulate")
	var step, heading float64
	flag.Float64Var(&step, "step", float64(cfg.Simulation.Step), "observer speed in blocks per tick")
	flag.Float64Var(&heading, "heading", float64(cfg.Simulation.Heading), "observer heading in degrees")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()
	cfg.Simulation.Step = float32(step)
	cfg.Simulation.Heading = float32(heading)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
		log.Info("loaded config from file", "path", *configPath)
	}

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if *savePath != "" {
		if err := config.Save(*savePath, cfg); err != nil {
			log.Error("save config", "error", err)
			os.Exit(1)
		}
		log.Info("saved config", "path", *savePath)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("terrain error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	terrain, gd, err := gen.NewDefaultTerrain(cfg.Seed)
	if err != nil {
		return err
	}
	log.Info("registries ready", "blocks", gd.Blocks.Len(), "biomes", gd.Biomes.Len(), "seed", cfg.Seed)

	at := asset.NewLoader(cfg.Atlas.CacheDir, cfg.Atlas.Grid, log).LoadAtlas(ctx, cfg.Atlas.Source)
	builder := mesh.NewBuilder(terrain, gd.Blocks, at)

	mgr, err := stream.NewManager(builder, stream.NewLogScene(log), cfg.Streaming, log)
	if err != nil {
		return err
	}
	defer mgr.Close()

	rad := float64(mgl32.DegToRad(cfg.Simulation.Heading))
	dir := mgl32.Vec3{float32(math.Cos(rad)), 0, float32(math.Sin(rad))}.Mul(cfg.Simulation.Step)
	pos := mgl32.Vec3{0.5, 0, 0.5}

	for tick := 0; tick < cfg.Simulation.Ticks; tick++ {
		select {
		case <-ctx.Done():
			log.Info("interrupted", "tick", tick)
			return nil
		default:
		}

		bx, bz := blockXZ(pos)
		pos[1] = float32(terrain.HeightAt(bx, bz)) + 2
		if err := mgr.Update(pos); err != nil {
			return err
		}
		if tick%50 == 0 {
			s := mgr.Stats()
			log.Info("tick",
				"tick", tick, "x", pos.X(), "z", pos.Z(),
				"biome", terrain.BiomeAt(bx, bz).Name,
				"resident", s.Resident, "visible", s.Visible,
				"pending_loads", s.PendingLoads, "pending_unloads", s.PendingUnloads)
		}
		pos = pos.Add(dir)
	}

	s := mgr.Stats()
	log.Info("simulation done",
		"ticks", s.Ticks, "created", s.Created, "destroyed", s.Destroyed,
		"resident", s.Resident, "visible", s.Visible, "textured", at.Textured())
	return nil
}

// blockXZ returns the column under a world position.
func blockXZ(pos mgl32.Vec3) (x, z int) {
	return int(math.Floor(float64(pos.X()))), int(math.Floor(float64(pos.Z())))
}
