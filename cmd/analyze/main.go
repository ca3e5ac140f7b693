// Command analyze prints quick, human-readable statistics about puzzle
// boards: how evenly a shuffle policy spreads the tiles, how many of its
// boards can be solved, and how far the configs in the configs directory
// start from the solution.
//
//	analyze shuffle --policy uniform --runs 20000
//	analyze configs --config-dir configs
//	analyze board "1 2 3 4 / 5 6 7 8 / 9 10 11 12 / 13 15 14 0"
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/mcp-training/fifteen/game/config"
	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
)

// ShuffleReport summarizes many draws of one shuffle policy
type ShuffleReport struct {
	Policy        puzzle.ShufflePolicy
	Runs          int
	Solvable      int
	MeanInversion float64
	MeanDistance  float64
	// ChiSquare tests every cell's value distribution against a uniform
	// 1/16 spread, summed over all cells.
	ChiSquare float64
	Degrees   int
	// GapRows counts how often the gap landed in each row
	GapRows [puzzle.Size]int
}

// SolvableFraction is the share of draws that can be solved
func (r ShuffleReport) SolvableFraction() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Solvable) / float64(r.Runs)
}

// analyzeShuffle draws runs boards from src with the given policy
func analyzeShuffle(src puzzle.Source, policy puzzle.ShufflePolicy, runs int) ShuffleReport {
	report := ShuffleReport{Policy: policy, Runs: runs, Degrees: puzzle.Cells * (puzzle.Cells - 1)}
	if runs <= 0 {
		return report
	}

	var counts [puzzle.Cells][puzzle.Cells]int
	inversions, distance := 0, 0

	for i := 0; i < runs; i++ {
		b := puzzle.Shuffle(src, policy)
		for cell, v := range b {
			counts[cell][v]++
		}
		if b.IsSolvable() {
			report.Solvable++
		}
		inversions += b.Inversions()
		distance += b.ManhattanDistance()
		report.GapRows[b.EmptyIndex()/puzzle.Size]++
	}

	expected := float64(runs) / puzzle.Cells
	for cell := range counts {
		for _, observed := range counts[cell] {
			d := float64(observed) - expected
			report.ChiSquare += d * d / expected
		}
	}

	report.MeanInversion = float64(inversions) / float64(runs)
	report.MeanDistance = float64(distance) / float64(runs)
	return report
}

func printShuffleReport(w io.Writer, r ShuffleReport) {
	fmt.Fprintf(w, "=== Shuffle policy %q, %d runs ===\n", r.Policy, r.Runs)
	fmt.Fprintf(w, "Solvable: %d (%.1f%%)\n", r.Solvable, 100*r.SolvableFraction())
	fmt.Fprintf(w, "Mean inversions: %.2f\n", r.MeanInversion)
	fmt.Fprintf(w, "Mean Manhattan distance: %.2f\n", r.MeanDistance)
	fmt.Fprintf(w, "Cell chi-square: %.1f over %d degrees of freedom (ratio %.2f)\n",
		r.ChiSquare, r.Degrees, r.ChiSquare/float64(r.Degrees))
	fmt.Fprintf(w, "Gap rows: %v\n", r.GapRows)

	if r.Policy == puzzle.ShuffleUniform && r.Solvable < r.Runs {
		fmt.Fprintf(w, "⚠️  %d boards (%.1f%%) cannot be solved\n",
			r.Runs-r.Solvable, 100*(1-r.SolvableFraction()))
	}
}

// describeBoard prints the metrics of one board
func describeBoard(w io.Writer, b puzzle.Board) {
	fmt.Fprintf(w, "Board: %s\n", b)
	fmt.Fprintf(w, "Gap: %+v\n", b.EmptyPosition())
	fmt.Fprintf(w, "Solved: %v\n", b.IsSolved())
	fmt.Fprintf(w, "Inversions: %d\n", b.Inversions())
	fmt.Fprintf(w, "Solvable: %v\n", b.IsSolvable())
	fmt.Fprintf(w, "Manhattan distance: %d\n", b.ManhattanDistance())
	fmt.Fprintf(w, "Misplaced tiles: %d\n", b.MisplacedTiles())

	moves := b.PossibleMoves()
	names := make([]string, len(moves))
	for i, d := range moves {
		names[i] = string(d)
	}
	fmt.Fprintf(w, "Possible moves: %s\n", strings.Join(names, ", "))
}

func analyzeConfigs(w io.Writer, dir string) error {
	manager, err := config.NewManager(dir)
	if err != nil {
		return err
	}

	infos, err := manager.ListConfigs()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return fmt.Errorf("no configs found in %s", dir)
	}

	for _, info := range infos {
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", info.Filename)

		cfg, err := manager.LoadConfig(info.ConfigID)
		if err != nil {
			fmt.Fprintf(w, "❌ %v\n", err)
			continue
		}
		fmt.Fprintf(w, "Name: %s\n", cfg.Name)
		fmt.Fprintf(w, "Shuffle: %s\n", cfg.ShufflePolicy)

		if cfg.StartBoard == "" {
			fmt.Fprintf(w, "Start board: shuffled\n")
			continue
		}

		board, err := puzzle.ParseBoard(cfg.StartBoard)
		if err != nil {
			fmt.Fprintf(w, "❌ start_board: %v\n", err)
			continue
		}
		describeBoard(w, board)
		if !board.IsSolvable() {
			fmt.Fprintf(w, "⚠️  WARNING: pinned start board cannot be solved\n")
		} else {
			fmt.Fprintf(w, "✅ Pinned start board is solvable\n")
		}
	}
	return nil
}

func newSource(seed int) puzzle.Source {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

func newApp(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "analyze",
		Usage:  "statistics about fifteen puzzle boards and configs",
		Writer: w,
		Commands: []*cli.Command{
			{
				Name:  "shuffle",
				Usage: "draw many boards and report solvability and tile spread",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "runs", Value: 10000, Usage: "number of boards to draw"},
					&cli.StringFlag{Name: "policy", Usage: "uniform, solvable, or empty for both"},
					&cli.IntFlag{Name: "seed", Usage: "fixed PCG seed, 0 draws from the global generator"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					runs := int(cmd.Int("runs"))
					if runs <= 0 {
						return fmt.Errorf("runs must be positive, got %d", runs)
					}

					policies := []puzzle.ShufflePolicy{puzzle.ShuffleUniform, puzzle.ShuffleSolvable}
					switch p := puzzle.ShufflePolicy(cmd.String("policy")); p {
					case "":
					case puzzle.ShuffleUniform, puzzle.ShuffleSolvable:
						policies = []puzzle.ShufflePolicy{p}
					default:
						return fmt.Errorf("unknown policy %q", p)
					}

					for _, policy := range policies {
						src := newSource(int(cmd.Int("seed")))
						printShuffleReport(w, analyzeShuffle(src, policy, runs))
					}
					return nil
				},
			},
			{
				Name:  "configs",
				Usage: "check every config in a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config-dir", Value: "configs", Usage: "directory with config JSON files"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return analyzeConfigs(w, cmd.String("config-dir"))
				},
			},
			{
				Name:      "board",
				Usage:     "describe one board",
				ArgsUsage: `"1 2 3 4 / 5 6 7 8 / 9 10 11 12 / 13 14 15 0"`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("board argument required")
					}
					board, err := puzzle.ParseBoard(strings.Join(cmd.Args().Slice(), " "))
					if err != nil {
						return err
					}
					describeBoard(w, board)
					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}
}
