// Package config loads server configuration from environment variables,
// command-line flags and an optional JSON file.
//
// Sources are merged in priority order: environment variables win over
// flags, flags win over the JSON file. The JSON file path itself may be
// given via the CONFIG env variable or the -c/-config flags.
package config
