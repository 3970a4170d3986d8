package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"seatca/internal/config"
	"seatca/internal/layout"
	"seatca/internal/seating"
)

var log = logrus.New()

type ruleResult struct {
	part int
	rule seating.Rule
	res  seating.Result
}

type fileResult struct {
	path  string
	rules []ruleResult
	err   error
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML run config")
	rules := fs.String("rules", "", "comma-separated rules to run (adjacent, visible)")
	maxRounds := fs.Int("max-rounds", 0, "give up after this many rounds, 0 for unbounded")
	workers := fs.Int("workers", 0, "layouts evaluated concurrently")
	verbose := fs.Bool("v", false, "log every round")
	printGrid := fs.Bool("print", false, "print the stabilized layouts")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: seats [flags] layout...")
		fs.PrintDefaults()
		return 2
	}

	log.SetOutput(stderr)
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.WithError(err).Error("loading config")
			return 1
		}
		cfg = loaded
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rules":
			cfg.Rules = splitList(*rules)
		case "max-rounds":
			cfg.MaxRounds = *maxRounds
		case "workers":
			cfg.Workers = *workers
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		case "print":
			cfg.Print = *printGrid
		}
	})
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("invalid settings")
		return 2
	}
	log.SetLevel(cfg.Level())

	selected, err := cfg.SelectedRules()
	if err != nil {
		log.WithError(err).Error("selecting rules")
		return 2
	}

	results := evaluate(fs.Args(), selected, cfg)
	status := 0
	for _, fr := range results {
		if fr.err != nil {
			log.WithField("file", fr.path).WithError(fr.err).Error("layout failed")
			status = 1
			continue
		}
		if len(results) > 1 {
			fmt.Fprintf(stdout, "%s:\n", fr.path)
		}
		for _, rr := range fr.rules {
			fmt.Fprintf(stdout, "Part %d: %d\n", rr.part, rr.res.Occupied)
			if cfg.Print {
				fmt.Fprint(stdout, layout.Format(rr.res.Grid))
			}
		}
	}
	return status
}

// evaluate runs every layout under every rule. Layouts are independent and
// run concurrently; each simulation itself is single-threaded.
func evaluate(paths []string, rules []seating.Rule, cfg config.Config) []fileResult {
	results := make([]fileResult, len(paths))
	var g errgroup.Group
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = evaluateFile(path, rules, cfg.MaxRounds)
			return results[i].err
		})
	}
	_ = g.Wait()
	return results
}

func evaluateFile(path string, rules []seating.Rule, maxRounds int) fileResult {
	fr := fileResult{path: path}
	grid, err := layout.Load(path)
	if err != nil {
		fr.err = err
		return fr
	}
	h, w := grid.Dims()
	entry := log.WithFields(logrus.Fields{"file": path, "height": h, "width": w})
	entry.Debug("layout loaded")

	for _, rule := range rules {
		s := seating.NewSession(grid, rule).WithLogger(entry)
		res, err := s.Run(maxRounds)
		if err != nil {
			fr.err = err
			return fr
		}
		entry.WithFields(logrus.Fields{
			"rule":     rule.Name,
			"rounds":   res.Rounds,
			"occupied": res.Occupied,
		}).Info("layout stabilized")
		fr.rules = append(fr.rules, ruleResult{part: partOf(rule), rule: rule, res: res})
	}
	return fr
}

// partOf numbers rules the way the puzzle does: adjacent is part 1, visible
// part 2.
func partOf(r seating.Rule) int {
	for i, known := range seating.Rules() {
		if known.Name == r.Name {
			return i + 1
		}
	}
	return 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
