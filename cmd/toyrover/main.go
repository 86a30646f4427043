package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WilliamJWhite1999/ToyRover/internal/config"
	"github.com/WilliamJWhite1999/ToyRover/internal/interpreter"
	"github.com/WilliamJWhite1999/ToyRover/internal/rover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toyrover [script]",
		Short: "Text-command-driven rover simulator",
		Long: "toyrover simulates a single rover on a planar grid, driven by a small\n" +
			"command vocabulary (PLACE, MOVE, LEFT, RIGHT, REPORT, FILE, HELP, EXIT).\n" +
			"With no arguments it starts an interactive session; with a script path it\n" +
			"runs the script and exits.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&cfg.BoardWidth, "board-width", cfg.BoardWidth, "board width (0 for an unbounded grid)")
	flags.IntVar(&cfg.BoardHeight, "board-height", cfg.BoardHeight, "board height (0 for an unbounded grid)")
	flags.IntVar(&cfg.MaxIncludeDepth, "max-include-depth", cfg.MaxIncludeDepth, "maximum FILE nesting depth")
	return cmd
}

func run(cfg config.Config, args []string) error {
	board := rover.NewBoard(cfg.BoardWidth, cfg.BoardHeight)
	rv := rover.New(board)
	session := interpreter.NewSession(rv, os.Stdout, interpreter.Options{
		MaxIncludeDepth: cfg.MaxIncludeDepth,
	})

	if len(args) == 1 {
		src, err := interpreter.OpenFileSource(args[0])
		if err != nil {
			return err
		}
		session.Run(src)
		return nil
	}

	fmt.Println("Starting ToyRover simulator.")
	fmt.Println("Type HELP to see all available commands.")
	session.Run(interactiveSource(cfg.HistoryFile))
	return nil
}
