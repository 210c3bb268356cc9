package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/tetromino/tetris"
)

func main() {
	draws := flag.Int("draws", 70000, "The number of pieces to spawn.")
	seed := flag.Uint64("seed", 0, "Seed for a PCG source. Zero uses the process-wide source.")
	tolerance := flag.Float64("tolerance", 0.10, "Largest accepted relative deviation from a uniform distribution.")
	flag.Parse()

	if *draws <= 0 {
		log.Fatalf("draws must be positive, got %d", *draws)
	}

	var rng tetris.RNG
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}
	spawner := tetris.NewSpawner(rng)

	log.Printf("Spawning %d pieces...\n", *draws)
	startTime := time.Now()
	tally := tetris.NewTally()
	for i := 0; i < *draws; i++ {
		tally.Record(spawner.Next())
	}
	elapsed := time.Since(startTime)
	log.Println("Spawning complete.")

	report := NewReport(tally, *seed, *tolerance, elapsed)

	fmt.Println("\n\n--- Spawn Distribution Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.Passed() {
		log.Fatalf("Max deviation %.4f exceeds tolerance %.4f", report.MaxDeviation, report.Tolerance)
	}
}
