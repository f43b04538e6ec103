// Package config stores user settings in ~/.groundwork/config.yaml via
// Viper, with GROUNDWORK_* environment variables taking precedence.
package config
