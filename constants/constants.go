package constants

import (
	"os"
	"time"
)

const (
	ConfigEnv = "GRIPDEX_CONFIG"
	TuningEnv = "GRIPDEX_TUNING"
	AddrEnv   = "GRIPDEX_ADDR"
	OutDirEnv = "GRIPDEX_OUT_DIR"
)

const (
	DefaultAddr   = ":8080"
	DefaultOutDir = "./out"

	// DefaultLimit is how many ranked grips commands print.
	DefaultLimit = 10

	// CacheSize is the number of generated chords the server keeps.
	CacheSize = 256

	// ListenDebounce coalesces the note on/off burst of a struck chord.
	ListenDebounce = 150 * time.Millisecond
)

// TicksPerQuarter is the resolution of exported midi files.
const TicksPerQuarter = 960

func GetConfigPath() string {
	return os.Getenv(ConfigEnv)
}

func GetTuning() string {
	return os.Getenv(TuningEnv)
}

func GetAddr() string {
	addr := os.Getenv(AddrEnv)
	if addr != "" {
		return addr
	}
	return DefaultAddr
}

func GetOutDir() string {
	path := os.Getenv(OutDirEnv)
	if path != "" {
		return path
	}
	return DefaultOutDir
}
