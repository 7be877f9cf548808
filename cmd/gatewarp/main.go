package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/gatewarp/config"
	"github.com/lixenwraith/gatewarp/core"
	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/system"
	"github.com/lixenwraith/gatewarp/vmath"
)

var (
	galaxyFlag   = flag.String("galaxy", "", "Galaxy layout YAML, overrides GATEWARP_GALAXY_FILE")
	shipsFlag    = flag.Int("ships", 8, "Number of piloted ships")
	monitorFlag  = flag.Bool("monitor", false, "Show a live terminal monitor")
	durationFlag = flag.Duration("duration", 0, "Stop after this wall time, 0 runs until interrupted")
	seedFlag     = flag.Uint64("seed", 0, "Jitter seed, overrides GATEWARP_SEED")
	scaleFlag    = flag.Float64("scale", 1, "Simulated seconds per wall second")
	logFlag      = flag.String("log", "", "Log file, default stderr (discarded with -monitor)")
)

// Radius of the spawn scatter around a region origin
const spawnRadiusMeters = 5000.0

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gatewarp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *galaxyFlag != "" {
		cfg.Galaxy.File = *galaxyFlag
	}
	if *seedFlag != 0 {
		cfg.Simulation.Seed = *seedFlag
	}
	if *shipsFlag < 0 || !(*scaleFlag > 0) {
		return errors.New("ships must not be negative and scale must be positive")
	}

	logOut, closeLog, err := openLog(*logFlag, *monitorFlag)
	if err != nil {
		return err
	}
	defer closeLog()
	config.InitLogger(cfg.Logging, logOut)
	logger := slog.With("component", "main")

	layout := galaxy.DefaultLayout()
	if cfg.Galaxy.File != "" {
		loaded, err := config.LoadLayout(cfg.Galaxy.File)
		if err != nil {
			return err
		}
		layout = *loaded
	}

	world := engine.NewWorld(cfg.ToResource(), cfg.Simulation.Seed)
	system.RegisterAll(world)

	regions, err := system.SpawnGalaxy(world, &layout)
	if err != nil {
		return err
	}
	pilot := system.NewPilotSystem(world, regions)
	world.AddSystem(pilot)

	ships := spawnFleet(world, regions, *shipsFlag)
	for _, ship := range ships {
		pilot.AddPilot(ship)
	}

	logger.Info("galaxy spawned",
		"regions", len(layout.Regions), "edges", len(layout.Edges), "ships", len(ships),
		"seed", cfg.Simulation.Seed, "tick", cfg.Simulation.TickInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *durationFlag > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, *durationFlag)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := engine.NewClockScheduler(world, cfg.Simulation.TickInterval)
	if *scaleFlag != 1 {
		sched.SetFixedDelta(time.Duration(float64(cfg.Simulation.TickInterval) * *scaleFlag))
	}

	if *monitorFlag {
		mon, err := newMonitor(world, nil)
		if err != nil {
			return err
		}
		sched.OnTick(mon.capture)
		sched.Start(ctx)
		err = mon.run(ctx, cancel)
		sched.Stop()
		if err != nil {
			return err
		}
	} else if err := sched.Run(ctx); err != nil &&
		!errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	logger.Info("shutdown", "ticks", sched.TickCount(), "metrics", world.Resources.Status)
	return nil
}

// spawnFleet places n ships round-robin across regions, scattered near each origin
func spawnFleet(world *engine.World, regions []core.Entity, n int) []core.Entity {
	jitter := world.Resources.Galaxy.Jitter
	ships := make([]core.Entity, n)
	for i := range ships {
		rng := jitter.Rand(core.NullEntity, int64(i), galaxy.SaltSpawn)
		ships[i] = system.SpawnShip(world, system.ShipSpec{
			Region: regions[i%len(regions)],
			Pos:    galaxy.AroundPos(rng, vmath.Vec3F{}, spawnRadiusMeters),
		})
	}
	world.FlushCommands()
	return ships
}

// openLog picks the log destination; the monitor owns the terminal
func openLog(path string, monitor bool) (io.Writer, func(), error) {
	if path == "" {
		if monitor {
			return io.Discard, func() {}, nil
		}
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return f, func() { f.Close() }, nil
}
