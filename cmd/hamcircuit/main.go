// Command hamcircuit reads a graph description and searches it for a
// Hamiltonian circuit by exhaustive backtracking.
//
// Usage:
//
//	hamcircuit [flags] [-input graph.csv]     search (stdin when no input)
//	hamcircuit -generate wheel:8              print a generated graph
//
// Exit status is 0 when the search completed (found or not), 1 for invalid
// input or configuration, and 2 when a budget or timeout stopped the search.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/hamcircuit/builder"
	"github.com/katalvlaran/hamcircuit/config"
	"github.com/katalvlaran/hamcircuit/csvgraph"
	"github.com/katalvlaran/hamcircuit/hamilton"
	"github.com/katalvlaran/hamcircuit/report"
	"github.com/katalvlaran/hamcircuit/store"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitLimit   = 2
)

func main() {
	code := run(os.Args[1:], os.Stdin, os.Stdout)
	klog.Flush()
	os.Exit(code)
}

// flagValues holds command-line overrides; they win over the config file
// only when explicitly set.
type flagValues struct {
	configPath    string
	input         string
	generate      string
	start         int
	strict        bool
	stack         bool
	maxExpansions int64
	timeout       string
	cacheDir      string
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fset := flag.NewFlagSet("hamcircuit", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})

	var fv flagValues
	fset.StringVar(&fv.configPath, "config", "", "TOML configuration file")
	fset.StringVar(&fv.input, "input", "", "graph file (default stdin)")
	fset.StringVar(&fv.generate, "generate", "", "write a generated graph kind:n (cycle, path, star, complete, wheel) and exit")
	fset.IntVar(&fv.start, "start", config.DefaultStart, "start vertex")
	fset.BoolVar(&fv.strict, "strict", false, "single vertex closes only through a self-loop")
	fset.BoolVar(&fv.stack, "stack", false, "use the explicit-stack search")
	fset.Int64Var(&fv.maxExpansions, "max-expansions", 0, "abort after this many extensions (0 = unlimited)")
	fset.StringVar(&fv.timeout, "timeout", "", "abort after this duration, e.g. 30s")
	fset.StringVar(&fv.cacheDir, "cache", "", "result cache directory (enables the cache)")
	if err := fset.Parse(args); err != nil {
		return exitInvalid
	}

	if fv.generate != "" {
		return generate(fv.generate, stdout)
	}

	cfg, err := loadConfig(fset, fv)
	if err != nil {
		klog.Errorf("%v", err)

		return exitInvalid
	}

	return search(cfg, stdin, stdout)
}

func loadConfig(fset *flag.FlagSet, fv flagValues) (config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(fv.configPath); err != nil {
			return cfg, err
		}
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = fv.input
		case "start":
			cfg.Start = fv.start
		case "strict":
			cfg.Policy.StrictClosure = fv.strict
		case "stack":
			cfg.Policy.ExplicitStack = fv.stack
		case "max-expansions":
			cfg.Limits.MaxExpansions = fv.maxExpansions
		case "timeout":
			cfg.Limits.Timeout = fv.timeout
		case "cache":
			cfg.Cache.Enabled = fv.cacheDir != ""
			cfg.Cache.Dir = fv.cacheDir
		}
	})

	return cfg, cfg.Validate()
}

func search(cfg config.Config, stdin io.Reader, stdout io.Writer) int {
	t0 := time.Now()
	doc, err := loadGraph(cfg.Input, stdin)
	if err != nil {
		klog.Errorf("%v", err)

		return exitInvalid
	}
	summary := report.Summary{
		ReadTime: time.Since(t0),
		Vertices: doc.Graph.VertexCount(),
		Edges:    doc.Graph.EdgeCount(),
	}
	if err = doc.Problem.Check(doc.Graph); err != nil {
		klog.Warningf("%v", err)
	}
	klog.V(2).Infof("loaded %d vertices, %d edges from %d records in %v",
		summary.Vertices, summary.Edges, doc.Records, summary.ReadTime)

	var cache *store.Cache
	if cfg.Cache.Enabled {
		if cache, err = store.Open(store.Options{Dir: cfg.Cache.Dir}); err != nil {
			klog.Errorf("%v", err)

			return exitInvalid
		}
		defer cache.Close()
	}

	t1 := time.Now()
	if cache != nil {
		res, ok, err := cache.Get(doc.Graph, cfg.Start, cfg.Policy.StrictClosure)
		if err != nil {
			klog.Warningf("ignoring cache entry: %v", err)
		} else if ok {
			summary.Result, summary.Cached = res, true
			klog.V(2).Infof("cache hit for start %d", cfg.Start)
		}
	}

	if summary.Result == nil {
		opts, cancel, err := cfg.SearchOptions(context.Background())
		if err != nil {
			klog.Errorf("%v", err)

			return exitInvalid
		}
		res, err := hamilton.FindCircuit(doc.Graph, cfg.Start, opts...)
		cancel()
		if err != nil {
			klog.Errorf("%v", err)
			if errors.Is(err, hamilton.ErrBudgetExceeded) || errors.Is(err, context.DeadlineExceeded) {
				return exitLimit
			}

			return exitInvalid
		}
		summary.Result = res

		if cache != nil {
			if err = cache.Put(doc.Graph, cfg.Start, cfg.Policy.StrictClosure, res); err != nil {
				klog.Warningf("cache store failed: %v", err)
			}
		}
	}
	summary.SearchTime = time.Since(t1)

	if err = report.Write(stdout, summary); err != nil {
		klog.Errorf("%v", err)

		return exitInvalid
	}

	return exitOK
}

func loadGraph(input string, stdin io.Reader) (*csvgraph.Document, error) {
	if input == "" || input == "-" {
		return csvgraph.Load(stdin)
	}

	return csvgraph.LoadFile(input)
}

func generate(text string, stdout io.Writer) int {
	cons, err := builder.Parse(text)
	if err != nil {
		klog.Errorf("%v", err)

		return exitInvalid
	}
	g, err := builder.BuildGraph(nil, cons)
	if err != nil {
		klog.Errorf("%v", err)

		return exitInvalid
	}
	if err = csvgraph.Write(stdout, g, csvgraph.DefaultProblemType); err != nil {
		klog.Errorf("%v", err)

		return exitInvalid
	}

	return exitOK
}
