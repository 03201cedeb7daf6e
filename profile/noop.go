//go:build !pprof

package profile

// Modes returns no mode names when built without the pprof tag.
func Modes() []string { return nil }

// start never runs without the pprof tag; the session is always a no-op.
func start(Profiler) interface{ Stop() } { return noop{} }
