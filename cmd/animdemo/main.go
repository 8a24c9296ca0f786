// Command animdemo runs levels headlessly and logs every animation condition
// change of every mutant. Several scenarios run concurrently.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/milk9111/mutant/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	levelName := flag.String("level", "arena", "level to run when -scenarios is empty")
	scenarios := flag.String("scenarios", "", "comma separated level names or .json paths to run concurrently")
	ticks := flag.Int("ticks", 600, "ticks to simulate per scenario")
	parallel := flag.Int("parallel", 4, "max scenarios running at once")
	approach := flag.Bool("approach", true, "walk the player toward the nearest mutant")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger.Init()
	logger.SetDebug(*debug)

	names := parseScenarios(*scenarios)
	if len(names) == 0 {
		names = []string{*levelName}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	if *parallel > 0 {
		g.SetLimit(*parallel)
	}
	reports := make([]Report, len(names))
	for i, name := range names {
		g.Go(func() error {
			r, err := runScenario(ctx, Options{Level: name, Ticks: *ticks, Approach: *approach})
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Log.WithError(err).Fatal("animdemo failed")
	}

	for _, r := range reports {
		logger.Log.WithFields(logrus.Fields{
			"level":      r.Level,
			"ticks":      r.Ticks,
			"states":     r.StateChanges,
			"attacks":    r.Attacks,
			"conditions": r.ConditionChanges,
		}).Info("scenario finished")
	}
}

func parseScenarios(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
