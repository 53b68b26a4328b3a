// Command nnk-grid runs leave-one-out 1-nearest-neighbor classification
// against a ".ts" dataset once per distance measure and reports each
// measure's accuracy as JSON, a quick way to compare measures before
// committing to one for a full Proximity Forest run.
package main

import (
	"flag"
	"log"
	"os"
	"sync/atomic"

	"github.com/katalvlaran/tempo/cost"
	"github.com/katalvlaran/tempo/dist"
	"github.com/katalvlaran/tempo/nn"
	"github.com/katalvlaran/tempo/report"
	"github.com/katalvlaran/tempo/runtime"
	"github.com/katalvlaran/tempo/seq"
	"github.com/katalvlaran/tempo/tsio"
)

type int64Counter struct{ v int64 }

func (c *int64Counter) add(n int64)  { atomic.AddInt64(&c.v, n) }
func (c *int64Counter) value() int   { return int(atomic.LoadInt64(&c.v)) }

func main() {
	dataPath := flag.String("data", "", "path to a .ts dataset")
	outPath := flag.String("out", "", "output JSON path (default stdout)")
	workers := flag.Int("workers", 0, "worker count (0 = NumCPU)")
	seed := flag.Int64("seed", 1, "RNG seed for tie-breaking")
	flag.Parse()

	if *dataPath == "" {
		log.Fatal("nnk-grid: -data is required")
	}

	ds, err := tsio.ReadTS(*dataPath)
	if err != nil {
		log.Fatalf("nnk-grid: reading dataset: %v", err)
	}

	measures := []struct {
		name    string
		measure dist.Measure
		params  dist.Params
	}{
		{"DTW", dist.DTWMeasure, dist.Params{Cost: cost.SqE(ds.Header().D)}},
		{"CDTW(w=Lmax/10)", dist.CDTWMeasure, dist.Params{Cost: cost.SqE(ds.Header().D), Window: ds.Header().Lmax / 10}},
		{"ERP", dist.ERPMeasure, dist.Params{Cost: cost.ADE(1), Exponent: 1, Window: dist.NoWindow}},
		{"MSM", dist.MSMMeasure, dist.Params{C: 1}},
		{"TWE", dist.TWEMeasure, dist.Params{Nu: 0.001, Lambda: 1}},
		{"Direct", dist.DirectMeasure, dist.Params{Cost: cost.SqE(ds.Header().D)}},
	}

	out := report.NNKGridReport{Dataset: *dataPath, Results: make([]report.GridPoint, len(measures))}
	pool := runtime.NewPool(*workers)
	hier := runtime.NewRNGHierarchy(*seed)

	for mi, m := range measures {
		if _, err := dist.New(m.measure, m.params); err != nil {
			log.Fatalf("nnk-grid: configuring %s: %v", m.name, err)
		}

		var correct int64Counter
		pool.Run(ds.Len(), func(i int) {
			// One Instance per query: an Instance's scratch buffer must not
			// be used by concurrently running queries.
			inst, _ := dist.New(m.measure, m.params)
			candidates := make(seq.IndexSet, 0, ds.Len()-1)
			for j := 0; j < ds.Len(); j++ {
				if j != i {
					candidates = append(candidates, j)
				}
			}
			idx, _ := nn.Classify(ds, ds.Row(i), candidates, inst, hier.ForLOOCVQuery(i))
			if idx >= 0 && ds.Label(idx) == ds.Label(i) {
				correct.add(1)
			}
		})

		out.Results[mi] = report.GridPoint{
			Label:    m.name,
			Correct:  correct.value(),
			Total:    ds.Len(),
			Accuracy: float64(correct.value()) / float64(ds.Len()),
		}
	}

	w := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("nnk-grid: creating output file: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := report.WriteJSON(w, out); err != nil {
		log.Fatalf("nnk-grid: writing report: %v", err)
	}
}
