package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose  = "verbose"
	FlagConfig   = "config"
	FlagLogFile  = "log-file"
	FlagDataFile = "data-file"
	FlagBackend  = "backend"

	// Scramble command flags
	FlagCount = "count"

	// Add command flags
	FlagTime     = "time"
	FlagPenalty  = "penalty"
	FlagScramble = "scramble"

	// Output format flags
	FlagJSON = "json"
)
