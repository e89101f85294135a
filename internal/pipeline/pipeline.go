// Package pipeline runs one upload through profiling, inference and synthesis and
// substitutes the fallback document when any stage fails.
package pipeline

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KaramelBytes/convertsearch/internal/analysis"
	"github.com/KaramelBytes/convertsearch/internal/inference"
	"github.com/KaramelBytes/convertsearch/internal/report"
	"github.com/KaramelBytes/convertsearch/internal/standards"
)

// RandomStandard picks harvard or oxford per document instead of a fixed key.
const RandomStandard = "random"

// RawInput is a single uploaded file already converted to text.
type RawInput struct {
	Name      string
	SizeBytes int64
	Content   string
}

// Result is the outcome of one Generate call. Document is always set when err is nil.
type Result struct {
	ID       string
	Document string
	Date     time.Time
	Standard standards.Profile
	Analysis *analysis.Analysis
	Context  *inference.ResearchContext
	Fallback bool
	Cause    error
}

// Engine wires the stages together. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	logger   *zap.Logger
	profiler *analysis.Profiler
	seed     uint64
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed fixes the random seed. Zero keeps per-call time seeding.
func WithSeed(seed uint64) Option { return func(e *Engine) { e.seed = seed } }

// WithClock overrides the date source used in documents.
func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// WithProfiler replaces the default profiler.
func WithProfiler(p *analysis.Profiler) Option { return func(e *Engine) { e.profiler = p } }

// New returns an Engine logging to logger. A nil logger discards logs.
func New(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		logger:   logger,
		profiler: analysis.NewProfiler(nil),
		now:      time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Generate produces the document for in under the standard named by key.
// An unknown key is returned as an error before any stage runs. Stage failures
// are not returned: the fallback document is substituted and Result.Cause set.
func (e *Engine) Generate(in RawInput, key string) (*Result, error) {
	rng := e.newRand()
	if strings.EqualFold(strings.TrimSpace(key), RandomStandard) {
		key = standards.Oxford
		if rng.Float64() > 0.5 {
			key = standards.Harvard
		}
	}
	std, err := standards.Lookup(key)
	if err != nil {
		return nil, err
	}

	date := e.now()
	res := &Result{ID: uuid.NewString(), Date: date, Standard: std}
	log := e.logger.With(
		zap.String("report_id", res.ID),
		zap.String("file", in.Name),
		zap.String("standard", std.Key),
	)
	start := time.Now()

	if err := e.run(res, in, std, date, rng); err != nil {
		res.Fallback = true
		res.Cause = err
		res.Document = report.Fallback(in.Name, in.SizeBytes, date)
		log.Warn("report generation failed, using fallback", zap.Error(err))
		return res, nil
	}
	log.Info("report generated",
		zap.Int("sample_size", res.Analysis.SampleSize),
		zap.Int("variables", len(res.Analysis.Variables)),
		zap.String("domain", res.Context.Domain),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// Profile runs only the profiling and inference stages.
func (e *Engine) Profile(in RawInput) (*analysis.Analysis, *inference.ResearchContext, error) {
	return e.analyze(e.newRand(), in.Content)
}

func (e *Engine) analyze(rng *rand.Rand, content string) (*analysis.Analysis, *inference.ResearchContext, error) {
	a, err := runStage(StageProfile, func() (*analysis.Analysis, error) {
		return e.profiler.Profile(rng, content)
	})
	if err != nil {
		return nil, nil, err
	}
	ctx, err := runStage(StageInfer, func() (*inference.ResearchContext, error) {
		return inference.Infer(a)
	})
	if err != nil {
		return nil, nil, err
	}
	return a, ctx, nil
}

func (e *Engine) run(res *Result, in RawInput, std standards.Profile, date time.Time, rng *rand.Rand) error {
	a, ctx, err := e.analyze(rng, in.Content)
	if err != nil {
		return err
	}
	doc, err := runStage(StageSynthesize, func() (string, error) {
		return report.Synthesize(report.Input{
			Analysis:  a,
			Context:   ctx,
			FileName:  in.Name,
			SizeBytes: in.SizeBytes,
			Standard:  std,
			Date:      date,
			Rand:      rng,
		})
	})
	if err != nil {
		return err
	}
	res.Analysis, res.Context, res.Document = a, ctx, doc
	return nil
}

func (e *Engine) newRand() *rand.Rand {
	seed := e.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// runStage converts both returned errors and panics into a *StageError.
func runStage[T any](stage Stage, fn func() (T, error)) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out, err = zero, &StageError{Stage: stage, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	out, err = fn()
	if err != nil {
		return out, &StageError{Stage: stage, Err: err}
	}
	return out, nil
}
