// Package config loads and validates flightline's TOML configuration.
package config
