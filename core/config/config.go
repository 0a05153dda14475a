package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilConfig     = errors.New("config: destination is nil")
	ErrParsingConfig = errors.New("config: failed to parse environment")
)

var (
	cache      sync.Map // reflect.Type -> T
	dotenvOnce sync.Once
)

// Load fills cfg from the environment. The first call for a given type parses
// the environment; later calls for the same type return the cached value.
// A .env file in the working directory is loaded once, without overriding
// variables that are already set.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	parsed, err := env.ParseAs[T]()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(key, parsed)
	*cfg = actual.(T)
	return nil
}

// Reset drops every cached configuration so the next Load re-reads the
// environment. The .env file is not re-read.
func Reset() {
	cache.Clear()
}
