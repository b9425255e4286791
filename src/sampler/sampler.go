package sampler

import (
	"fmt"

	"github.com/poorlydefinedbehaviour/randgen-go/src/constants"
	"github.com/poorlydefinedbehaviour/randgen-go/src/rand"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Config struct {
	// Inclusive bounds of the range to sample from.
	Low  int64
	High int64

	// How many values to draw.
	Samples uint64
}

// Draws values from a range and tallies how the draws are distributed.
// Exists to make the modulo mapping observable: over enough samples every
// value in [Low, High] shows up, and nothing outside it ever does.
type Sampler struct {
	config Config

	random rand.Random

	logger *zap.SugaredLogger
}

type Report struct {
	// How many times each value in the range came up.
	Counts map[int64]uint64

	Samples uint64
	Min     int64
	Max     int64
	Mean    float64
	StdDev  float64
}

func New(config Config, logger *zap.SugaredLogger, random rand.Random) (*Sampler, error) {
	if config.High < config.Low {
		return nil, fmt.Errorf("invalid range: low %d is greater than high %d", config.Low, config.High)
	}
	if config.Samples == 0 {
		return nil, fmt.Errorf("at least one sample is required")
	}

	return &Sampler{
		config: config,
		random: random,
		logger: logger,
	}, nil
}

// Draws `Samples` values and returns the observed distribution. Advances
// the random source by exactly one draw per sample.
func (sampler *Sampler) Run() Report {
	histogram := metrics.NewHistogram(metrics.NewUniformSample(int(sampler.config.Samples)))

	counts := make(map[int64]uint64)

	for i := uint64(0); i < sampler.config.Samples; i++ {
		value := rand.Between(sampler.random, sampler.config.Low, sampler.config.High)

		if constants.Debug {
			sampler.logger.Debugf("sample %d: %d", i, value)
		}

		counts[value]++
		histogram.Update(value)
	}

	report := Report{
		Counts:  counts,
		Samples: sampler.config.Samples,
		Min:     histogram.Min(),
		Max:     histogram.Max(),
		Mean:    histogram.Mean(),
		StdDev:  histogram.StdDev(),
	}

	sampler.logger.Infow("sampling finished",
		"samples", report.Samples,
		"low", sampler.config.Low,
		"high", sampler.config.High,
		"min", report.Min,
		"max", report.Max,
		"mean", report.Mean,
		"stddev", report.StdDev,
	)

	return report
}

// Returns the distinct values observed, in ascending order.
func (report *Report) Values() []int64 {
	values := maps.Keys(report.Counts)
	slices.Sort(values)
	return values
}
