// Command costgen generates a random square cost map and writes it to
// costs.txt in the format consumed by grid.WithCostFile.
//
// Usage:
//
//	costgen [size] [min_cost] [max_cost]
//
// Defaults: size 19, min_cost 1, max_cost 9. Costs must lie strictly
// between 0 and 100, with min_cost < max_cost.
package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/pdramos/pathviz/costmap"
)

const outputFile = "costs.txt"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "costgen: logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	size, minCost, maxCost, err := parseArgs(os.Args[1:])
	if err != nil {
		logger.Fatal("Invalid arguments", zap.Error(err))
	}

	costs, err := costmap.Generate(size, minCost, maxCost, nil)
	if err != nil {
		logger.Fatal("Generation failed", zap.Error(err))
	}
	if err = costmap.WriteFile(outputFile, costs); err != nil {
		logger.Fatal("Write failed", zap.Error(err))
	}

	logger.Info("Cost map written",
		zap.String("file", outputFile),
		zap.Int("size", size),
		zap.Int("min_cost", minCost),
		zap.Int("max_cost", maxCost),
	)
}

// parseArgs reads up to three optional positional integers: size,
// min_cost, max_cost.
func parseArgs(args []string) (size, minCost, maxCost int, err error) {
	size, minCost, maxCost = 19, 1, 9
	targets := []*int{&size, &minCost, &maxCost}
	names := []string{"size", "min_cost", "max_cost"}

	if len(args) > len(targets) {
		return 0, 0, 0, fmt.Errorf("expected at most %d arguments, got %d",
			len(targets), len(args))
	}
	for i, arg := range args {
		v, perr := strconv.Atoi(arg)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%s must be an integer, got %q", names[i], arg)
		}
		*targets[i] = v
	}

	if size < 1 {
		return 0, 0, 0, fmt.Errorf("size must be positive, got %d", size)
	}
	if minCost <= 0 || minCost >= 100 {
		return 0, 0, 0, fmt.Errorf("min_cost must be > 0 and < 100, got %d", minCost)
	}
	if maxCost <= 0 || maxCost >= 100 {
		return 0, 0, 0, fmt.Errorf("max_cost must be > 0 and < 100, got %d", maxCost)
	}
	if minCost >= maxCost {
		return 0, 0, 0, fmt.Errorf("min_cost (%d) must be less than max_cost (%d)",
			minCost, maxCost)
	}

	return size, minCost, maxCost, nil
}
