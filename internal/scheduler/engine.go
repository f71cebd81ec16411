package scheduler

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusforge/timetable/pkg/workerpool"
)

// Cell is one occupied row in a group's output grid.
type Cell struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// Result is everything one year's run produced: the RunID correlating its
// logs/metrics/cache entry, the per-group output grid (nil cell = free
// slot), and every non-fatal Warning collected along the way.
type Result struct {
	RunID          string              `json:"runId"`
	Year           string              `json:"year"`
	Grid           map[string][]*Cell  `json:"grid"`
	Warnings       []Warning           `json:"warnings"`
	RepairStats    RepairStats         `json:"repairStats"`
	HardeningStats HardeningStats      `json:"hardeningStats"`
}

// EngineConfig wires the Engine's optional collaborators. Every field is
// nil-safe: an Engine built from a zero-value EngineConfig logs nowhere,
// records no metrics, caches nothing, and runs up to runtime.GOMAXPROCS(0)
// years concurrently.
type EngineConfig struct {
	Logger  *zap.Logger
	Metrics *Metrics
	Cache   ResultCache
	Workers int
}

// Engine orchestrates the full per-year pipeline — DataBuilder, lab/lecture
// placement, repair, hardening — and the single-threaded cross-year
// reconciliation pass that follows.
type Engine struct {
	logger  *zap.Logger
	metrics *Metrics
	cache   ResultCache
	workers int
}

// NewEngine builds an Engine, defaulting any unset collaborator.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Cache == nil {
		cfg.Cache = NoopResultCache{}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{logger: cfg.Logger, metrics: cfg.Metrics, cache: cfg.Cache, workers: cfg.Workers}
}

type yearRun struct {
	dataset *Dataset
	matrix  *Matrix
	result  *Result
}

// Generate runs every year in cfg.Years, each on its own goroutine with its
// own Dataset/Matrix (no shared mutable state between years), then
// reconciles room conflicts across years single-threaded before returning.
func (e *Engine) Generate(ctx context.Context, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sorted := append([]YearConfig(nil), cfg.Years...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	pool := workerpool.New(workerpool.Config{Workers: e.workers, Logger: e.logger})
	jobs := make([]workerpool.Job, len(sorted))
	for i, yc := range sorted {
		yc := yc
		priority := i
		jobs[i] = workerpool.Job{
			Name: yc.Name,
			Run: func(ctx context.Context) (any, error) {
				return e.runYear(ctx, yc, priority, cfg.Seed), nil
			},
		}
	}

	outcomes := pool.Run(ctx, jobs)
	runs := make([]yearRun, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		runs = append(runs, o.Value.(yearRun))
	}

	yearResults := make([]YearResult, len(runs))
	for i, r := range runs {
		yearResults[i] = YearResult{Dataset: r.dataset, Matrix: r.matrix}
	}
	crossWarnings := ReconcileCrossYear(yearResults)
	warningsByYear := make(map[string][]Warning)
	for _, w := range crossWarnings {
		warningsByYear[w.Year] = append(warningsByYear[w.Year], w)
	}

	results := make([]Result, 0, len(runs))
	for _, r := range runs {
		r.result.Grid = buildGrid(r.dataset, r.matrix)
		r.result.Warnings = append(r.result.Warnings, warningsByYear[r.dataset.Year.Name]...)
		results = append(results, *r.result)
		e.metrics.addUnplaced(r.dataset.Year.Name, countUnplaced(r.result.Warnings))
	}

	e.metrics.incRun("ok")
	return results, nil
}

// GenerateYear runs a single year's pipeline in isolation, without cross-year
// reconciliation, consulting the ResultCache first. This is the path a
// Monte-Carlo ensemble caller should use: reconciliation only makes sense
// once every year in the ensemble has been generated, so it is Generate's
// job, not this one's.
func (e *Engine) GenerateYear(ctx context.Context, yc YearConfig, seed int64) Result {
	key := CacheKey(yc, seed)
	if cached, ok := e.cache.Get(ctx, key); ok {
		return *cached
	}
	run := e.runYear(ctx, yc, 0, seed)
	run.result.Grid = buildGrid(run.dataset, run.matrix)
	e.cache.Set(ctx, key, run.result, 30*time.Minute)
	return *run.result
}

func (e *Engine) runYear(ctx context.Context, yc YearConfig, priority int, seed int64) yearRun {
	runID := uuid.NewString()
	timing := yc.effectiveTiming()
	logger := e.logger.With(zap.String("runId", runID), zap.String("year", yc.Name))

	rng := NewRNG(seed)
	cm := DefaultCostModel()

	ds, buildWarnings := BuildDataset(yc, priority)
	m := NewMatrix(ds, timing)

	start := time.Now()
	labWarnings := PlaceLabs(ds, m, yc.MaxLabsPerDay, rng)
	e.metrics.observePhase("place_labs", yc.Name, time.Since(start).Seconds())

	start = time.Now()
	lectureWarnings := PlaceLectures(ds, m, rng)
	e.metrics.observePhase("place_lectures", yc.Name, time.Since(start).Seconds())

	start = time.Now()
	repairStats := Repair(ds, m, cm, rng)
	e.metrics.observePhase("repair", yc.Name, time.Since(start).Seconds())
	e.metrics.observeRepair(repairStats.Iterations)

	start = time.Now()
	hardeningStats := Harden(ds, m, cm, rng)
	e.metrics.observePhase("harden", yc.Name, time.Since(start).Seconds())
	e.metrics.observeHardening(hardeningStats.Accepted)

	auditWarnings := Audit(ds, m)

	warnings := make([]Warning, 0, len(buildWarnings)+len(labWarnings)+len(lectureWarnings)+len(auditWarnings))
	warnings = append(warnings, buildWarnings...)
	warnings = append(warnings, labWarnings...)
	warnings = append(warnings, lectureWarnings...)
	warnings = append(warnings, auditWarnings...)

	logger.Info("year pipeline complete",
		zap.Int("classes", len(ds.Classes)),
		zap.Int("warnings", len(warnings)),
		zap.Float64("finalCost", hardeningStats.FinalCost),
	)

	return yearRun{
		dataset: ds,
		matrix:  m,
		result: &Result{
			RunID:          runID,
			Year:           yc.Name,
			Warnings:       warnings,
			RepairStats:    repairStats,
			HardeningStats: hardeningStats,
		},
	}
}

func buildGrid(ds *Dataset, m *Matrix) map[string][]*Cell {
	grid := make(map[string][]*Cell, len(ds.Groups))
	for _, g := range ds.Groups {
		grid[g.Name] = make([]*Cell, m.Rows())
	}
	for _, p := range m.placements {
		class, ok := findClass(ds, p.ClassID)
		if !ok {
			continue
		}
		cells := grid[p.Group]
		for i := 0; i < p.Duration; i++ {
			cells[p.Row+i] = &Cell{Subject: class.Subject, Teacher: class.Teacher, Room: p.Room}
		}
	}
	return grid
}

func countUnplaced(warnings []Warning) int {
	n := 0
	for _, w := range warnings {
		if w.Kind == WarningUnplacedClass {
			n++
		}
	}
	return n
}
