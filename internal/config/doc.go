// Package config manages user-level settings stored at ~/.openspec/config.yaml
// and the environment variables that redirect tool locations. Viper reads
// and writes the file; the environment is decoded with caarlos0/env.
package config
