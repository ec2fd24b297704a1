// Command instancegen synthesises a reproducible planning instance: a
// noise-backed grid, N scripted agent trajectories, and an init/goal pair,
// then emits it as an "instance" YAML document on stdout (spec.md §6).
//
// Flags mirror original_source/instance_gen/args.rs: -c selects the
// settings file, -i selects one "kind: settings" document from it by id,
// -o additionally asks for the aux table to be precomputed and written to
// the given path.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/tetofonta/asd/auxcodec"
	"github.com/tetofonta/asd/generator"
	"github.com/tetofonta/asd/ioformat"
)

const renderSuppressThreshold = 300

func main() {
	app := &cli.App{
		Name:  "instancegen",
		Usage: "generate a reproducible planning instance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "settings YAML file"},
			&cli.StringFlag{Name: "config-id", Aliases: []string{"i"}, Usage: "select one document by id"},
			&cli.StringFlag{Name: "aux-file", Aliases: []string{"o"}, Usage: "write the precomputed aux table here"},
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

	cfg, err := loadConfig(c, logger)
	if err != nil {
		return err
	}

	if auxPath := c.String("aux-file"); auxPath != "" {
		cfg.PrecomputeAux = true
		cfg.AuxPath = auxPath
	}

	res, err := generator.Run(cfg)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return cli.Exit(err.Error(), 1)
	}

	if cfg.PrecomputeAux && cfg.AuxPath != "" {
		f, err := os.Create(cfg.AuxPath)
		if err != nil {
			return cli.Exit(fmt.Sprintf("cannot open aux file: %v", err), 1)
		}
		defer f.Close()
		if err := auxcodec.Encode(f, res.Aux); err != nil {
			return cli.Exit(fmt.Sprintf("cannot write aux file: %v", err), 1)
		}
	}

	inst := ioformat.InstanceFromResult(cfg, res)

	if cfg.Width <= renderSuppressThreshold && cfg.Height <= renderSuppressThreshold {
		logger.Info("generated instance",
			zap.Int("width", cfg.Width), zap.Int("height", cfg.Height),
			zap.Int("obstacles", cfg.Obstacles), zap.Int("agents", len(res.Agents)),
			zap.Any("init", res.Init), zap.Any("goal", res.Goal))
		fmt.Fprintln(os.Stderr, res.Grid.Render())
	}

	return ioformat.WriteDocument(os.Stdout, inst)
}

func loadConfig(c *cli.Context, logger *zap.Logger) (generator.Config, error) {
	path := c.String("config")
	if path == "" {
		return generator.DefaultConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return generator.Config{}, cli.Exit(fmt.Sprintf("cannot open config: %v", err), 1)
	}
	defer f.Close()

	var settings ioformat.Settings
	if err := ioformat.LoadDocument(f, "settings", c.String("config-id"), &settings); err != nil {
		logger.Error("cannot load settings document", zap.Error(err))
		return generator.Config{}, cli.Exit(err.Error(), 1)
	}

	return ioformat.SettingsToConfig(settings), nil
}
