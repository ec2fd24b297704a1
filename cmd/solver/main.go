// Command solver plans a single agent's path through a previously
// generated instance, subject to the other agents' scripted reservations,
// and emits the result as a "solution" YAML document on stdout (spec.md
// §6). Flags mirror original_source/solver/args.rs: -c selects the
// instance file, -i selects one "kind: instance" document from it by id.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/tetofonta/asd/auxcodec"
	"github.com/tetofonta/asd/auxtable"
	"github.com/tetofonta/asd/grid"
	"github.com/tetofonta/asd/ioformat"
	"github.com/tetofonta/asd/planner"
)

const renderSuppressThreshold = 300

func main() {
	app := &cli.App{
		Name:  "solver",
		Usage: "plan a path through a generated instance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "instance YAML file", Required: true},
			&cli.StringFlag{Name: "config-id", Aliases: []string{"i"}, Usage: "select one document by id"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	f, err := os.Open(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot open instance: %v", err), 1)
	}
	defer f.Close()

	var inst ioformat.Instance
	if err := ioformat.LoadDocument(f, "instance", c.String("config-id"), &inst); err != nil {
		logger.Error("cannot load instance document", zap.Error(err))
		return cli.Exit(err.Error(), 1)
	}

	g, err := ioformat.InstanceToGrid(inst)
	if err != nil {
		logger.Error("invalid grid configuration", zap.Error(err))
		return cli.Exit(err.Error(), 2)
	}
	mgr := ioformat.InstanceToManager(inst)

	var aux auxtable.Table
	if inst.AuxPath != "" {
		aux, err = loadAux(inst.AuxPath)
		if err != nil {
			logger.Error("cannot load aux table", zap.Error(err))
			return cli.Exit(err.Error(), 3)
		}
	}

	initCell := grid.Cell{X: inst.Init[0], Y: inst.Init[1]}
	goalCell := grid.Cell{X: inst.Goal[0], Y: inst.Goal[1]}

	sol, err := planner.Solve(g, mgr, initCell, goalCell, inst.TimeMax, inst.Greedy, aux)
	if err != nil {
		logger.Error("planning failed", zap.Error(err))
		switch {
		case errors.Is(err, planner.ErrInfeasibleInstance):
			return cli.Exit(err.Error(), 4)
		case errors.Is(err, planner.ErrPathVerificationFailed):
			return cli.Exit(err.Error(), 5)
		default:
			return cli.Exit(err.Error(), 1)
		}
	}

	if inst.Grid.Width <= renderSuppressThreshold && inst.Grid.Height <= renderSuppressThreshold {
		logger.Info("solved instance",
			zap.Float64("weight", sol.Weight), zap.Int("time", sol.Time),
			zap.Int("waits", sol.Waits), zap.Int("expanded", sol.Expanded),
			zap.Int("opened", sol.Opened))
		fmt.Fprintln(os.Stderr, g.Render())
	}

	return ioformat.WriteDocument(os.Stdout, ioformat.SolutionFromPlan(sol))
}

func loadAux(path string) (auxtable.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return auxcodec.Decode(f)
}
