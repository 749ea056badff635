package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-img/dsp/fft2"
)

// Environment variables that provide defaults for the -backend and -workers flags.
const (
	envBackend = "IMGFILTER_BACKEND"
	envWorkers = "IMGFILTER_WORKERS"
	envFile    = ".env"
)

type config struct {
	backend fft2.Backend
	workers int
}

// lookupFunc returns the value of an environment variable and whether it is set.
type lookupFunc func(key string) (string, bool)

// envLookup reads the process environment first and falls back to the
// variables in file. A missing file is not an error.
func envLookup(file string) (lookupFunc, error) {
	fromFile, err := godotenv.Read(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		fromFile = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFile[key]
		return v, ok
	}, nil
}

func loadConfig(lookup lookupFunc) (config, error) {
	cfg := config{backend: fft2.BackendAuto, workers: 1}

	if v, ok := lookup(envBackend); ok && strings.TrimSpace(v) != "" {
		b, err := fft2.ParseBackend(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envBackend, err)
		}
		cfg.backend = b
	}

	if v, ok := lookup(envWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("%s: invalid worker count %q", envWorkers, v)
		}
		cfg.workers = n
	}

	return cfg, nil
}
