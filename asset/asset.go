// Package asset bundles the default maps and configuration into the binary
package asset

import "embed"

// Maps holds maps.yaml and the map files it references
//
//go:embed maps.yaml maps/*.txt
var Maps embed.FS

// ManifestName is the catalogue path inside Maps
const ManifestName = "maps.yaml"
