// Command sweep-bench times full-view sweeps across levels, column counts
// and worker counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"gridcaster/internal/body"
	"gridcaster/internal/core"
	"gridcaster/internal/frame"
	_ "gridcaster/internal/levels"
)

type scenario struct {
	level   string
	columns int
	workers int
}

func (s scenario) String() string {
	return fmt.Sprintf("level=%s columns=%d workers=%d", s.level, s.columns, s.workers)
}

type scenarioResult struct {
	scenario
	perFrame time.Duration
	meanDist float64
	err      error
}

func main() {
	frames := flag.Int("frames", 200, "sweeps to time per scenario")
	jobsN := flag.Int("jobs", 1, "scenarios measured concurrently")
	flag.Parse()

	columnOptions := []int{320, 720, 1920}
	workerOptions := []int{1, 2, 4, runtime.NumCPU()}

	var sets []scenario
	for _, level := range core.LevelNames() {
		for _, cols := range columnOptions {
			for _, w := range workerOptions {
				sets = append(sets, scenario{level: level, columns: cols, workers: w})
			}
		}
	}

	fmt.Printf("Timing %d scenarios (%d frames each, %d at a time)\n", len(sets), *frames, *jobsN)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*jobsN, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runScenario(s, *frames)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.Printf("%s: %v", res.scenario, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].level != all[j].level {
			return all[i].level < all[j].level
		}
		if all[i].columns != all[j].columns {
			return all[i].columns < all[j].columns
		}
		return all[i].workers < all[j].workers
	})
	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-40s %10s/frame  mean distance %.1f\n", res.scenario, res.perFrame, res.meanDist)
	}
}

// runScenario spins the body in place so every frame sees a different view.
func runScenario(s scenario, frames int) scenarioResult {
	res := scenarioResult{scenario: s}
	lvl, err := core.LoadLevel(s.level, nil)
	if err != nil {
		res.err = err
		return res
	}
	b, err := body.FromLevel(lvl)
	if err != nil {
		res.err = err
		return res
	}
	cfg := frame.DefaultConfig()
	cfg.Columns = s.columns
	cfg.Workers = s.workers
	view, err := frame.New(lvl.Grid, b, cfg)
	if err != nil {
		res.err = err
		return res
	}
	b.SetTurn(body.TurnRight)

	frames = max(frames, 1)
	dt := 2 * math.Pi / (lvl.TurnSpeed * float64(frames))
	if lvl.TurnSpeed <= 0 {
		dt = 0
	}
	var sum float64
	var n int
	begin := time.Now()
	for i := 0; i < frames; i++ {
		f, err := view.Tick(dt)
		if err != nil {
			res.err = err
			return res
		}
		for _, r := range f.Rays {
			sum += r.Distance
			n++
		}
	}
	res.perFrame = time.Since(begin) / time.Duration(frames)
	if n > 0 {
		res.meanDist = sum / float64(n)
	}
	return res
}
