package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"thforest/internal/config"
	"thforest/internal/foliage"
	"thforest/internal/game"
	"thforest/internal/profiling"
	"thforest/internal/scene"
	"thforest/internal/streaming"
	"thforest/pkg/spawndata"

	"github.com/xlab/closer"
)

func main() {
	var (
		configPath    = flag.String("config", "", "path to settings.yaml (defaults are used when empty)")
		basePath      = flag.String("base", ".", "directory datasets are resolved against")
		compressPath  = flag.String("compress", "", "write a zstd copy of this dataset next to it and exit")
		printDefaults = flag.Bool("print-defaults", false, "print the default settings as YAML and exit")
		tickRate      = flag.Int("hz", 20, "controller ticks per second (0 ticks as fast as possible)")
		cycle         = flag.Bool("cycle-density", true, "step the tree density through every level once spawned")
	)
	flag.Parse()

	if *printDefaults {
		raw, err := config.Marshal(config.Defaults())
		if err != nil {
			log.Fatalf("marshal defaults: %v", err)
		}
		os.Stdout.Write(raw)
		return
	}
	if *compressPath != "" {
		if err := compressDataset(*compressPath); err != nil {
			log.Fatalf("compress: %v", err)
		}
		return
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	store := config.NewStore(settings)

	graph, home, source := buildSolarSystem(settings)
	loader := streaming.LoaderFunc(func(id string) {
		log.Printf("Requested asset package %s", id)
	})

	ctrl := game.NewController(settings, game.Deps{
		Scene:    graph,
		Regions:  graph,
		Loader:   loader,
		Datasets: spawndata.NewLoader(*basePath),
		Rand:     seededRand(settings.Seed),
	})
	unbind := ctrl.Bind(store)

	closer.Bind(func() {
		unbind()
		ctrl.Unload()
		log.Println("Placement controller stopped")
	})

	go run(ctrl, store, home, source, *tickRate, *cycle)
	closer.Hold()
}

// run drives one world load until the pass settles, then plays a round trip
// from the source region back home.
func run(ctrl *game.Controller, store *config.Store, home, source *scene.Sector, hz int, cycle bool) {
	ctrl.OnSceneLoaded("TitleScreen", time.Now())
	ctrl.OnSceneLoaded(store.Get().WorldScene, time.Now())
	if ctrl.State() == game.StateFailed {
		log.Printf("Nothing to spawn: %v", ctrl.Err())
		closer.Exit(1)
		return
	}
	log.Printf("Spawn pass %d scheduled for %s", ctrl.Generation(), ctrl.Deadline().Format(time.TimeOnly))

	pacer := game.NewPacer(hz)
	for !ctrl.Tick(pacer.Wait()) {
	}

	if ctrl.State() != game.StateDone {
		log.Printf("Spawn pass ended in state %v: %v", ctrl.State(), ctrl.Err())
		closer.Exit(1)
		return
	}

	if cycle {
		orig := store.Get()
		for _, name := range foliage.DensityNames() {
			store.SetDensity(name, orig.GroundcoverDensity)
		}
		store.SetDensity(orig.TreeDensity, orig.GroundcoverDensity)
	}

	source.Enter(scene.Player)
	source.Exit(scene.Player)
	home.Enter(scene.Player)

	log.Printf("Slowest stages: %s", profiling.TopN(5))
	closer.Close()
}

func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func compressDataset(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	out := path + ".zst"
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := spawndata.Compress(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
