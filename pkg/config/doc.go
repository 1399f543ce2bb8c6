// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// .env file (or the files passed with WithEnvFiles) is loaded into the process
// environment once, then env tags on the target struct are parsed. Each
// configuration type is parsed only once per prefix and cached for the life of
// the process.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("TEXTKIT_")); err != nil {
//		return err
//	}
//
// Reset drops the cache, which is mostly useful in tests.
package config
