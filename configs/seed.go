// Package configs ships the static content bundled into the binaries.
package configs

import (
	"embed"
	"io/fs"
)

//go:embed seed_data/*.json
var seedFiles embed.FS

// SeedFS returns the bundled seed catalog files (scenarios.json, ranges.json, concepts.json).
func SeedFS() fs.FS {
	sub, err := fs.Sub(seedFiles, "seed_data")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}
