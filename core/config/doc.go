// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use with joho/godotenv and parses
// variables into struct fields with caarlos0/env.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/urlqr/core/config"
//
//	type Config struct {
//		BoxSize int    `env:"QRGEN_BOX_SIZE" envDefault:"10"`
//		Fill    string `env:"QRGEN_FILL" envDefault:"#000000"`
//		Bucket  string `env:"QRGEN_S3_BUCKET"`
//	}
//
//	func main() {
//		var cfg Config
//
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var a Config
//	config.Load(&a) // parses the environment
//
//	var b Config
//	config.Load(&b) // returns the cached value, a == b
//
// Tests that change the environment between loads call Reset.
package config
