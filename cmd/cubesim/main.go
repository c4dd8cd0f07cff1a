// Command cubesim loads a level without a window, prints the cube's edge
// table and runs the simulation for a number of ticks, logging every face
// crossing.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/milk9111/cubescroller/cube"
	"github.com/milk9111/cubescroller/obj"
	"github.com/milk9111/cubescroller/system"
	"go.uber.org/zap"
)

func main() {
	levelName := flag.String("level", "cube.yaml", "level prefab in prefabs/")
	ticks := flag.Int("ticks", 600, "ticks to simulate")
	walk := flag.Float64("walk", 1, "player move input each tick (-1, 0 or 1)")
	jumpEvery := flag.Int("jump", 0, "jump every n ticks (0 never)")
	fireEvery := flag.Int("fire", 0, "fire every n ticks (0 never)")
	table := flag.Bool("table", true, "print the face adjacency table")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	world, err := system.NewWorld(*levelName, logger)
	if err != nil {
		logger.Fatal("load", zap.String("level", *levelName), zap.Error(err))
	}

	if *table {
		printTable(world.Cube)
	}

	crossings := 0
	for i := 1; i <= *ticks; i++ {
		in := obj.Intent{
			MoveX: *walk,
			Jump:  *jumpEvery > 0 && i%*jumpEvery == 0,
			Fire:  *fireEvery > 0 && i%*fireEvery == 0,
		}
		for _, c := range world.Update(in) {
			crossings++
			if c.Mover == world.Player.Mover() {
				logger.Info("player crossed",
					zap.Int("tick", i),
					zap.String("from", c.From.Name),
					zap.String("to", c.To.Name),
					zap.Stringer("up", c.Mover.Up()),
				)
			}
		}
	}

	p := world.Player.Mover()
	pos := p.CubePosition()
	logger.Info("done",
		zap.Int("ticks", *ticks),
		zap.Int("crossings", crossings),
		zap.Int("kills", world.Kills),
		zap.String("face", p.Face().Name),
		zap.Stringer("up", p.Up()),
		zap.Float64s("cube", pos[:]),
	)
}

func printTable(c *cube.Cube) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "face\toffset\tnorth\teast\tsouth\twest")
	for _, f := range c.Faces() {
		fmt.Fprintf(tw, "%s\t%s", f.Name, f.Offset)
		for _, d := range cube.Directions {
			n := f.AdjacentFace(d)
			fmt.Fprintf(tw, "\t%s (%s)", n.Name, n.BackwardsDirectionFrom(f))
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}
