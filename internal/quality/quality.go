package quality

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/nao1215/passwdgen/internal/random"
	"golang.org/x/sync/errgroup"
)

// Sampling range for the quality test. Samples are uniform integers in
// [SampleMin, SampleMax], 101 possible values, so the expected mean is
// 50.0 and the expected standard deviation is sqrt((101^2-1)/12) ~ 29.15.
const (
	SampleMin = 0
	SampleMax = 100

	// DefaultSampleSize is the sample count used when the caller does
	// not specify one.
	DefaultSampleSize = 1_000_000
)

// ErrInvalidSampleSize is returned when the requested sample size is
// not positive. The error is detected before any randomness is consumed.
var ErrInvalidSampleSize = errors.New("invalid request: sample size must be positive")

// Result holds the descriptive statistics of one quality test run.
// The tester enforces no pass/fail threshold; it only reports, and the
// caller judges the numbers against the theoretical uniform values.
type Result struct {
	// SampleSize is the number of samples drawn.
	SampleSize int `json:"sample_size"`

	// Mean is the sample mean. Approaches 50.0 as the sample grows.
	Mean float64 `json:"mean"`

	// StdDev is the population standard deviation.
	StdDev float64 `json:"stddev"`

	// Variance is the population variance.
	Variance float64 `json:"variance"`

	// Elapsed is the wall-clock time across the full sampling batch.
	Elapsed time.Duration `json:"elapsed"`

	// CreatedAt is when the run finished. Used by the history database.
	CreatedAt time.Time `json:"created_at"`
}

// Tester draws samples from a random Source and reports descriptive
// statistics to detect bias in the underlying randomness.
type Tester struct {
	src         random.Source
	concurrency int
	logger      *slog.Logger
}

// Option configures a Tester.
type Option func(*Tester)

// WithSource sets the random source under test.
// Defaults to the crypto/rand-backed CryptoSource.
func WithSource(src random.Source) Option {
	return func(t *Tester) {
		if src != nil {
			t.src = src
		}
	}
}

// WithConcurrency splits sampling across n workers.
// The source must be safe for concurrent draws, which CryptoSource is.
// Default is 1 (sequential).
func WithConcurrency(n int) Option {
	return func(t *Tester) {
		if n > 0 {
			t.concurrency = n
		}
	}
}

// WithLogger sets a custom logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tester) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTester creates a Tester.
func NewTester(opts ...Option) *Tester {
	t := &Tester{
		src:         random.NewCryptoSource(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// checkInterval is how many samples a worker draws between context
// cancellation checks.
const checkInterval = 1 << 16

// Run draws sampleSize uniform integers in [SampleMin, SampleMax] and
// returns their descriptive statistics.
//
// Accumulation uses Welford's online algorithm, which stays numerically
// stable for sample sizes of 10^7 and beyond; a naive sum-of-squares
// pass would lose precision to catastrophic cancellation at that scale.
// With concurrency above 1, each worker keeps its own accumulator and
// the partial states are merged after the batch completes.
func (t *Tester) Run(ctx context.Context, sampleSize int) (*Result, error) {
	if sampleSize <= 0 {
		return nil, ErrInvalidSampleSize
	}

	rangeSize := SampleMax - SampleMin + 1
	workers := t.concurrency
	if workers > sampleSize {
		workers = sampleSize
	}

	t.logger.Debug("starting RNG quality run",
		"sampleSize", sampleSize,
		"workers", workers,
	)

	start := time.Now()

	accumulators := make([]welford, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		// Spread the remainder over the first sampleSize%workers workers.
		count := sampleSize / workers
		if w < sampleSize%workers {
			count++
		}
		acc := &accumulators[w]

		g.Go(func() error {
			for i := 0; i < count; i++ {
				if i%checkInterval == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}
				v, err := t.src.IntN(rangeSize)
				if err != nil {
					return err
				}
				acc.add(float64(SampleMin + v))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := accumulators[0]
	for _, acc := range accumulators[1:] {
		total = merge(total, acc)
	}

	result := &Result{
		SampleSize: sampleSize,
		Mean:       total.mean,
		Variance:   total.variance(),
		StdDev:     math.Sqrt(total.variance()),
		Elapsed:    time.Since(start),
		CreatedAt:  time.Now(),
	}

	t.logger.Debug("RNG quality run finished",
		"mean", result.Mean,
		"stddev", result.StdDev,
		"elapsed", result.Elapsed,
	)

	return result, nil
}

// welford is an online mean/variance accumulator (Welford's algorithm).
type welford struct {
	n    int64
	mean float64
	m2   float64
}

// add folds one observation into the accumulator.
func (w *welford) add(x float64) {
	w.n++
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

// variance returns the population variance.
func (w *welford) variance() float64 {
	if w.n == 0 {
		return 0
	}
	return w.m2 / float64(w.n)
}

// merge combines two accumulators into one, as if every observation had
// been folded into a single accumulator (Chan et al. parallel update).
func merge(a, b welford) welford {
	if a.n == 0 {
		return b
	}
	if b.n == 0 {
		return a
	}
	n := a.n + b.n
	delta := b.mean - a.mean
	return welford{
		n:    n,
		mean: a.mean + delta*float64(b.n)/float64(n),
		m2:   a.m2 + b.m2 + delta*delta*float64(a.n)*float64(b.n)/float64(n),
	}
}
