// Package batch runs many headless searches: scripted scenarios loaded from
// YAML and sweeps that measure comparison counts across array sizes.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/bsviz/internal/config"
	"github.com/san-kum/bsviz/internal/search"
	"github.com/san-kum/bsviz/internal/storage"
)

var ErrEmptyScenario = errors.New("batch: scenario has no searches")

// Scenario is a named list of searches.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Searches    []Entry `yaml:"searches"`
}

// Entry is one search of a scenario. Preset fills Array and Target when
// they are not given.
type Entry struct {
	Name   string `yaml:"name"`
	Preset string `yaml:"preset"`
	Array  []int  `yaml:"array"`
	Target *int   `yaml:"target"`
}

// Result is the outcome of one scenario entry.
type Result struct {
	Name      string
	Array     []int
	Target    int
	Steps     []search.Step
	Outcome   string
	Index     int
	WorstCase int
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	if err := sc.resolve(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// resolve expands presets, sorts every array and checks each entry is
// runnable.
func (sc *Scenario) resolve() error {
	if len(sc.Searches) == 0 {
		return ErrEmptyScenario
	}
	for i := range sc.Searches {
		e := &sc.Searches[i]
		if e.Preset != "" {
			p := config.GetPreset(e.Preset)
			if p == nil {
				return fmt.Errorf("search %d: unknown preset: %s (available: %v)", i+1, e.Preset, config.ListPresets())
			}
			if e.Array == nil {
				e.Array = slices.Clone(p.Array)
			}
			if e.Target == nil && p.Target != nil {
				t := *p.Target
				e.Target = &t
			}
		}
		if len(e.Array) == 0 {
			return fmt.Errorf("search %d: empty array", i+1)
		}
		if e.Target == nil {
			return fmt.Errorf("search %d: no target", i+1)
		}
		if e.Name == "" {
			e.Name = fmt.Sprintf("search-%d", i+1)
		}
		slices.Sort(e.Array)
	}
	return nil
}

// Run executes every entry of sc on up to workers goroutines and returns
// the results in scenario order.
func Run(ctx context.Context, sc *Scenario, interval time.Duration, workers int) ([]Result, error) {
	if err := sc.resolve(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(sc.Searches))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, e := range sc.Searches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			steps := search.Run(e.Array, *e.Target, interval, time.Time{})
			outcome, index := storage.Outcome(steps)
			results[i] = Result{
				Name:      e.Name,
				Array:     e.Array,
				Target:    *e.Target,
				Steps:     steps,
				Outcome:   outcome,
				Index:     index,
				WorstCase: search.MaxComparisons(len(e.Array)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SweepPoint summarises every possible successful and failed search over
// an array of N distinct elements.
type SweepPoint struct {
	N         int
	AvgFound  float64
	MaxFound  int
	AvgMissed float64
	MaxMissed int
	WorstCase int
}

// Sweep searches for every element, and for every gap between elements, of
// the arrays 0, 2, ..., 2(n-1) for n in [1, maxN].
func Sweep(ctx context.Context, maxN int) ([]SweepPoint, error) {
	if maxN < 1 {
		return []SweepPoint{}, nil
	}

	points := make([]SweepPoint, maxN)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for n := 1; n <= maxN; n++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			points[n-1] = sweepPoint(n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func sweepPoint(n int) SweepPoint {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = 2 * i
	}

	p := SweepPoint{N: n, WorstCase: search.MaxComparisons(n)}
	found := 0
	for _, v := range arr {
		c := len(search.Run(arr, v, time.Second, time.Time{}))
		found += c
		p.MaxFound = max(p.MaxFound, c)
	}
	// odd values fall in the n+1 gaps
	missed := 0
	for v := -1; v <= 2*n-1; v += 2 {
		c := len(search.Run(arr, v, time.Second, time.Time{}))
		missed += c
		p.MaxMissed = max(p.MaxMissed, c)
	}
	p.AvgFound = float64(found) / float64(n)
	p.AvgMissed = float64(missed) / float64(n+1)
	return p
}
