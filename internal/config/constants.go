// Package config holds the small set of names and default paths the
// rest of the checker shares.
package config

// SourceFileExt is the recognized extension for declaration files.
const SourceFileExt = ".proof"

// Default paths used by the CLI when none are given: the source is
// read from the file ./practice and the environment dump goes to
// ./dump.json.
const (
	DefaultSourcePath = "./practice"
	DefaultDumpPath   = "./dump.json"
	DefaultCachePath  = "./.proofcheck/cache.db"
)

// Predeclared names seeded into every global environment.
const (
	TypeName  = "Type"
	SorryName = "SORRY"
)
