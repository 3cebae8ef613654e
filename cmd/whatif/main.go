package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/clincher/internal/whatif"
)

func main() {
	rosterPath := flag.String("roster", "", "path to a YAML roster file")
	finishes := flag.String("finishes", "", `hypothetical finishes, e.g. "verstappen=1,norris=2"`)
	target := flag.String("target", "", "contender id to enumerate winning scenarios for")
	showTable := flag.Bool("table", false, "print the points table and exit")
	help := flag.Bool("help", false, "show help")
	flag.Parse()

	if *help || (*finishes == "" && *target == "" && !*showTable) {
		whatif.ShowHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := whatif.NewRunner(os.Stdout)
	if err := runner.Run(ctx, whatif.Options{
		RosterPath: *rosterPath,
		Finishes:   *finishes,
		Target:     *target,
		ShowTable:  *showTable,
	}); err != nil {
		os.Stderr.WriteString("whatif failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
