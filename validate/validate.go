// Command validate checks the puzzle configuration JSON files in a directory
// (default ../configs, or the first argument). It checks:
//   - JSON structure, with unknown keys rejected
//   - Required fields and message format strings
//   - The shuffle policy
//   - A pinned start_board, which must be a permutation of 0..15 that can be solved
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/fifteen/game/puzzle"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...any) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single configuration JSON file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config puzzle.GameConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	id := strings.TrimSuffix(result.File, ".json")
	if id != strings.ToLower(id) || strings.ContainsAny(id, " /\\") {
		result.fail("File name %q must be lowercase without spaces to be usable as a config_id", result.File)
	}

	if err := puzzle.ValidateGameConfig(&config); err != nil {
		result.fail("%s", strings.TrimPrefix(err.Error(), "config validation: "))
	}

	if config.Messages.Blocked == "" {
		result.info("No blocked message, blocked moves will report an empty message")
	}

	switch config.ShufflePolicy {
	case puzzle.ShuffleUniform:
		result.info("Shuffle: uniform, about half of new boards cannot be solved")
	case puzzle.ShuffleSolvable:
		result.info("Shuffle: solvable, every new board can be solved")
	}

	if config.StartBoard != "" {
		board, err := puzzle.ParseBoard(config.StartBoard)
		switch {
		case err != nil:
			// Already reported by ValidateGameConfig
		case !board.IsSolvable():
			result.fail("Start board %q cannot be solved (inversions %d, gap row %d)",
				config.StartBoard, board.Inversions(), board.EmptyPosition().Row)
		case board.IsSolved():
			result.fail("Start board is already solved")
		default:
			result.info("Start board solvable, Manhattan distance %d", board.ManhattanDistance())
		}
	}

	return result
}

// validateDir validates every *.json file in dir. It returns false when any
// file is invalid or none were found.
func validateDir(dir string) ([]ValidationResult, bool, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, false, err
	}
	if len(files) == 0 {
		return nil, false, fmt.Errorf("no config files in %s", dir)
	}

	allValid := true
	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		result := validateConfig(file)
		if !result.Valid {
			allValid = false
		}
		results = append(results, result)
	}
	return results, allValid, nil
}

// main validates the configs directory, printing a concise report and
// exiting with non-zero status if any file is invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	results, allValid, err := validateDir(configDir)
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	for _, result := range results {
		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
