// Package modkit provides module wiring and core deps
package modkit

import (
	"thaicurate/internal/platform/config"
	"thaicurate/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}

// Named returns a child of Deps.Log tagged with component
func (d Deps) Named(component string) logger.Logger {
	return d.Log.With().Str("component", component).Logger()
}
