package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/poorlydefinedbehaviour/randgen-go/src/clock"
	"github.com/poorlydefinedbehaviour/randgen-go/src/config"
	"github.com/poorlydefinedbehaviour/randgen-go/src/rand"
	"github.com/poorlydefinedbehaviour/randgen-go/src/sampler"
	"go.uber.org/zap"
)

func main() {
	var configPath string
	var samples uint64
	flag.StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	flag.Uint64Var(&samples, "samples", 10_000, "Number of draws used for the distribution summary")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	logger := log.Sugar()

	conf := config.Default()
	if configPath != "" {
		conf, err = config.LoadFromFile(configPath)
		if err != nil {
			logger.Errorf("loading config: %s", err)
			os.Exit(1)
		}
	}

	// The seed is set once, before any draw. A fixed seed from the config
	// reproduces a previous run, otherwise the wall clock decides.
	seed := conf.Seed
	if seed == 0 {
		seed = uint64(clock.NewUnixClock().UnixSeconds())
	}
	random := rand.NewRand(seed)

	logger.Infow("random source initialized", "seed", seed)

	fmt.Printf("\nDisplaying %d random numbers between 0 and %d\n", conf.Repetitions, rand.GenMax)
	for i := uint64(0); i < conf.Repetitions; i++ {
		fmt.Println(random.Gen())
	}

	fmt.Printf("\nDisplaying %d random numbers between %d and %d\n", conf.Repetitions, conf.Range.Low, conf.Range.High)
	for i := uint64(0); i < conf.Repetitions; i++ {
		fmt.Println(rand.Between(random, conf.Range.Low, conf.Range.High))
	}

	rangeSampler, err := sampler.New(sampler.Config{
		Low:     conf.Range.Low,
		High:    conf.Range.High,
		Samples: samples,
	}, logger, random)
	if err != nil {
		logger.Errorf("creating sampler: %s", err)
		os.Exit(1)
	}

	report := rangeSampler.Run()

	fmt.Printf("\nDistribution of %d samples between %d and %d\n", report.Samples, conf.Range.Low, conf.Range.High)
	for _, value := range report.Values() {
		fmt.Printf("%d: %d\n", value, report.Counts[value])
	}
}
