// Command vectortrace replays vector operations given on the command line
// and logs the vector's state after each one.
//
//	vectortrace -dev push:1 push:2 push:3 erase:1 insert:1:9
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/pavanmanishd/vector/internal/script"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("vectortrace", flag.ContinueOnError)
	dev := fs.Bool("dev", false, "use the human-readable development logger")
	level := fs.String("level", "", "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: vectortrace [flags] op...\n")
		fmt.Fprintf(fs.Output(), "ops: push:V pop insert:P:V erase:P resize:N reserve:N clear at:I set:I:V\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ops, err := script.ParseAll(fs.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "vectortrace:", err)
		return 2
	}

	logger, _, err := script.NewLogger(script.LoggerConfig{Development: *dev, Level: *level})
	if err != nil {
		fmt.Fprintln(os.Stderr, "vectortrace:", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	r := script.NewRunner(logger)
	if err := r.Run(ops); err != nil {
		logger.Error("run failed", zap.Error(err))
		return 1
	}

	m := r.Vector().Metrics()
	logger.Info("done",
		zap.Int("size", m.Size),
		zap.Int("capacity", m.Capacity),
		zap.Int("reallocations", m.Reallocations),
		zap.Float64("utilization", m.Utilization),
	)
	return 0
}
