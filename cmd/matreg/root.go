package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matreg/config"
	"github.com/katalvlaran/matreg/logging"
	"github.com/katalvlaran/matreg/matrix"
	"github.com/katalvlaran/matreg/registry"
	"github.com/katalvlaran/matreg/shell"
)

// newRootCmd builds the command tree. The shell reads commands from in and
// prints to out.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   "matreg",
		Short: "An interactive registry of named uint32 matrices",
		Long: `matreg keeps a fixed number of named uint32 matrices in memory and
runs line commands against them: create, random, add, duplicate, equal,
shift, display, read and write. Matrices are stored on disk in a compact
little-endian binary format.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			return runShell(cfg, in, out)
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .matreg/config.yaml or ~/.config/matreg/config.yaml)")
	root.Flags().StringP("data-dir", "d", "", "directory for relative read/write paths")
	root.Flags().Int("capacity", 0, "number of registry slots")
	root.Flags().String("format", "", "file format for write: v1 or legacy")
	root.Flags().String("log-level", "", "log level: debug, info, warn, error")
	root.Flags().Uint64("seed", 0, "seed for random fills (0 seeds from the clock)")

	root.AddCommand(newInspectCmd(), newInitConfigCmd())

	return root
}

// runShell wires logger, registry and shell from cfg and runs the command loop.
func runShell(cfg config.Config, in io.Reader, out io.Writer) (err error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	regOpts := []registry.Option{
		registry.WithLogger(logger),
		registry.WithMatrixOptions(matrix.WithMaxElements(cfg.Codec.MaxElements)),
	}
	if !cfg.Registry.UniqueNames {
		regOpts = append(regOpts, registry.WithAllowDuplicateNames())
	}
	reg, err := registry.New(cfg.Registry.Capacity, regOpts...)
	if err != nil {
		return err
	}
	defer func() {
		n := reg.EvictAll()
		logger.Debug("registry released", zap.Int("matrices", n))
	}()

	seed := cfg.Random.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sh := shell.New(reg, out,
		shell.WithLogger(logger),
		shell.WithDataDir(cfg.DataDir),
		shell.WithCodecOptions(cfg.CodecOptions()...),
		shell.WithFillOptions(matrix.WithRand(rand.New(rand.NewPCG(seed, seed>>1|1)))),
	)
	logger.Info("starting shell",
		zap.String("data_dir", cfg.DataDir),
		zap.Int("capacity", cfg.Registry.Capacity),
		zap.String("format", cfg.Codec.Format))

	if cfg.REPL.Bootstrap {
		if err = sh.Bootstrap(); err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}

	return sh.Run(in, cfg.REPL.Prompt)
}
