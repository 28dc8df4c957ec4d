// Package config manages application configuration via Viper, reading from
// ~/.termbridge/config.yaml and TERMBRIDGE_* environment variables.
package config
