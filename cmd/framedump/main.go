// Command framedump advances a body through a level without a window and
// prints the rays of each frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"gridcaster/internal/app"
	"gridcaster/internal/body"
	"gridcaster/internal/frame"
	_ "gridcaster/internal/levels"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	ticks := flag.Int("ticks", 1, "ticks to simulate")
	turn := flag.Int("turn", 0, "turn intent held every tick (-1, 0, 1)")
	move := flag.Int("move", 0, "move intent held every tick (-1, 0, 1)")
	stride := flag.Int("stride", 0, "print every n-th ray of the final frame (0 prints a summary only)")
	flag.Parse()

	scene, err := app.NewScene(cfg, 0, 0)
	if err != nil {
		log.Fatalf("load %q: %v", cfg.Level, err)
	}
	b := scene.View.Body()
	b.SetTurn(body.TurnIntent(*turn))
	b.SetMove(body.MoveIntent(*move))
	dt := 1 / float64(max(cfg.TPS, 1))

	out := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(out, "tick\tx\ty\theading\tblocked\tnearest\tfarthest")
	var last frame.Frame
	for i := 1; i <= max(*ticks, 1); i++ {
		f, err := scene.View.Tick(dt)
		if err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}
		near, far := math.Inf(1), 0.0
		for _, r := range f.Rays {
			near = math.Min(near, r.Distance)
			far = math.Max(far, r.Distance)
		}
		last = f
		fmt.Fprintf(out, "%d\t%.2f\t%.2f\t%.1f\t%t\t%.2f\t%.2f\n",
			i, f.Pose.Position.X, f.Pose.Position.Y, f.Pose.Heading*180/math.Pi, f.Blocked, near, far)
	}
	out.Flush()

	if *stride <= 0 {
		return
	}
	fmt.Println()
	out = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(out, "column\tangle\thit_x\thit_y\tdistance\tside")
	for c := 0; c < len(last.Rays); c += *stride {
		r := last.Rays[c]
		side := "h"
		if r.Vertical {
			side = "v"
		}
		fmt.Fprintf(out, "%d\t%.2f\t%.2f\t%.2f\t%.3f\t%s\n", c, r.Angle*180/math.Pi, r.Hit.X, r.Hit.Y, r.Distance, side)
	}
	out.Flush()
}
