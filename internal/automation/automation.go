// Package automation runs scripted batches of headless sorts: YAML scenarios,
// input-size sweeps and repeated random trials.
package automation

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/san-kum/sortvis/internal/dispatch"
	"github.com/san-kum/sortvis/internal/engine"
	"github.com/san-kum/sortvis/internal/source"
	"gopkg.in/yaml.v3"
)

// drawWidth only feeds metadata; headless runs never draw.
const drawWidth = 1024

// Scenario defines a scripted list of runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one headless run. File wins over Pattern and Count.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Pattern   string `yaml:"pattern"`
	Count     int    `yaml:"count"`
	File      string `yaml:"file"`
	Seed      int64  `yaml:"seed"`
	MaxSteps  int    `yaml:"max_steps"`
}

// RunResult is the outcome of one headless run.
type RunResult struct {
	Algorithm engine.Algorithm
	Count     int
	Final     engine.State
	Stats     engine.Stats
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("%s: %w: scenario has no steps", path, engine.ErrInvalidArgument)
	}
	return &scenario, nil
}

func (s ScenarioStep) sequence() (*engine.Sequence, error) {
	if s.File != "" {
		return source.LoadFile(s.File)
	}
	return source.Generate(s.Pattern, s.Count, s.Seed)
}

// Run sorts seq with algo until it is sorted or maxSteps ticks have passed.
func Run(ctx context.Context, algo engine.Algorithm, seq *engine.Sequence, maxSteps int) (RunResult, error) {
	d, err := dispatch.New(algo, engine.Bars, drawWidth)
	if err != nil {
		return RunResult{}, err
	}
	if err := d.Load(seq); err != nil {
		return RunResult{}, err
	}
	res, err := dispatch.Drive(ctx, d, maxSteps)
	if err != nil {
		return RunResult{}, err
	}
	return RunResult{Algorithm: algo, Count: seq.Len(), Final: res.Final, Stats: res.Stats}, nil
}

// RunScenario executes all steps in a scenario
func RunScenario(ctx context.Context, scenario *Scenario) ([]RunResult, error) {
	results := make([]RunResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		algo, err := engine.ParseAlgorithm(step.Algorithm)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		seq, err := step.sequence()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		res, err := Run(ctx, algo, seq, step.MaxSteps)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// Sweep runs one algorithm over growing input sizes.
type Sweep struct {
	Algorithm engine.Algorithm
	Pattern   string
	MinCount  int
	MaxCount  int
	NumSteps  int
	Seed      int64
}

// RunSweep executes a size sweep. Sizes are spread evenly over
// [MinCount, MaxCount]; duplicates are run once.
func RunSweep(ctx context.Context, sweep *Sweep) ([]RunResult, error) {
	if sweep.MinCount <= 0 || sweep.MaxCount < sweep.MinCount || sweep.NumSteps <= 0 {
		return nil, fmt.Errorf("%w: sweep %d..%d in %d steps", engine.ErrInvalidArgument, sweep.MinCount, sweep.MaxCount, sweep.NumSteps)
	}
	results := make([]RunResult, 0, sweep.NumSteps)
	last := 0
	for i := 0; i < sweep.NumSteps; i++ {
		n := sweep.MinCount
		if sweep.NumSteps > 1 {
			n += i * (sweep.MaxCount - sweep.MinCount) / (sweep.NumSteps - 1)
		}
		if n == last {
			continue
		}
		last = n
		seq, err := source.Generate(sweep.Pattern, n, sweep.Seed)
		if err != nil {
			return nil, err
		}
		res, err := Run(ctx, sweep.Algorithm, seq, 0)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// TrialConfig repeats one algorithm on freshly shuffled inputs.
type TrialConfig struct {
	Algorithm engine.Algorithm
	Count     int
	NumTrials int
	Seed      int64
	Workers   int
	// Progress, when set, is called once per finished trial from the workers.
	Progress func()
}

// TrialStats summarizes the step counts of a batch of trials.
type TrialStats struct {
	Trials              int
	MinSteps, MaxSteps  int
	MeanSteps           float64
	MeanSwaps, MeanCmps float64
}

// RunTrials runs NumTrials independent sorts on a worker pool. Trial i uses
// seed Seed+i, so results do not depend on scheduling.
func RunTrials(ctx context.Context, cfg *TrialConfig) ([]RunResult, error) {
	if cfg.NumTrials <= 0 || cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: %d trials of %d values", engine.ErrInvalidArgument, cfg.NumTrials, cfg.Count)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]RunResult, cfg.NumTrials)
	errs := make([]error, cfg.NumTrials)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				seq, err := source.Random(cfg.Count, cfg.Seed+int64(idx))
				if err != nil {
					errs[idx] = err
					continue
				}
				results[idx], errs[idx] = Run(ctx, cfg.Algorithm, seq, 0)
				if cfg.Progress != nil {
					cfg.Progress()
				}
			}
		}()
	}
	for i := 0; i < cfg.NumTrials; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Summarize computes TrialStats over results.
func Summarize(results []RunResult) TrialStats {
	if len(results) == 0 {
		return TrialStats{}
	}
	steps := make([]int, len(results))
	st := TrialStats{Trials: len(results)}
	for i, r := range results {
		steps[i] = r.Stats.Steps
		st.MeanSteps += float64(r.Stats.Steps)
		st.MeanSwaps += float64(r.Stats.Swaps)
		st.MeanCmps += float64(r.Stats.Comparisons)
	}
	sort.Ints(steps)
	n := float64(len(results))
	st.MinSteps, st.MaxSteps = steps[0], steps[len(steps)-1]
	st.MeanSteps /= n
	st.MeanSwaps /= n
	st.MeanCmps /= n
	return st
}
