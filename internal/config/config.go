// Package config holds the settings shared by jayvee's subcommands:
// the classpath directories searched for classes, and the logging
// verbosity. jdiag has no dedicated config package of its own (its
// cmd/*.go files read flags inline); this one is new, patterned on
// cobra's standard PersistentFlags + package-level var idiom already
// used throughout jdiag's cmd/root.go.
package config

// Config is populated from cobra persistent flags in cmd/root.go and
// passed down to the commands that need it.
type Config struct {
	ClassPath []string
	Verbose   bool
}

// New returns a Config with an empty classpath and verbosity off.
func New() *Config {
	return &Config{}
}
