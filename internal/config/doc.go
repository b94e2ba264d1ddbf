// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv) in the binaries, maps environment
// variables to Config structs and validates required fields.
package config
