// Package log provides the module's single package-level logger, grounded
// on the teacher-adjacent gopher3D engine's logger.Log.Error(msg,
// zap.String(...), zap.Error(err)) call-site pattern.
package log

import (
	"os"

	"go.uber.org/zap"
)

// Log is the package-level logger every loader and render-driver call site
// uses. It is a production logger by default; set PATHTRACE_DEBUG to any
// non-empty value to switch to a development logger (human-readable,
// includes caller/stacktrace, debug level enabled).
var Log *zap.Logger

func init() {
	var err error
	if os.Getenv("PATHTRACE_DEBUG") != "" {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		Log = zap.NewNop()
	}
}

// Sugar returns a SugaredLogger over Log, for call sites that prefer
// key-value pairs over explicit zap.Field values.
func Sugar() *zap.SugaredLogger {
	return Log.Sugar()
}
