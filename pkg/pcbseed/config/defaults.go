package config

import (
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/fetch"
	"github.com/ukaji3/pcbseed-go/pkg/pcbseed/sources"
)

// Default paths and Drive ids of the two source workbooks.
const (
	DefaultOutputPath   = "seedData.json"
	DefaultAtombergPath = "Atomberg Data.xlsm"
	DefaultBajajPath    = "Bajaj PCB Dec 25 Data.xlsm"
	AtombergDriveID     = "1ffoZB91dClmEpedNzUihkIXZHK3IFBnC"
	BajajDriveID        = "1MfZy8W-neubScR94lo63lg00XQ9dn9Ch"
)

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		Sources: []SourceConfig{
			{Path: DefaultAtombergPath, DriveID: AtombergDriveID, Schema: sources.Atomberg()},
			{Path: DefaultBajajPath, DriveID: BajajDriveID, Schema: sources.Bajaj()},
		},
	}
	ApplyDefaults(cfg)
	applyEnv(cfg)
	return cfg
}

// ApplyDefaults fills unset fields. Sources named after a built-in schema
// inherit its sheets when none are configured.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.JSONPath == "" {
		cfg.Output.JSONPath = DefaultOutputPath
	}
	if cfg.Fetch.Timeout <= 0 {
		cfg.Fetch.Timeout = fetch.DefaultTimeout
	}
	for i := range cfg.Sources {
		src := &cfg.Sources[i]
		if !src.IsZero() {
			continue
		}
		if builtin, ok := sources.Builtin(src.Name); ok {
			src.Schema = builtin
		}
	}
}
