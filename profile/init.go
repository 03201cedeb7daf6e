package profile

// Profiler holds the configuration for one profiling session.
// The zero value is inert: starting it returns a no-op session.
type Profiler struct {
	mode  string
	path  string
	quiet bool
}

// Option configures a Profiler.
type Option func(Profiler) Profiler

// New returns a Profiler with the given options applied.
func New(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// WithMode selects the profiling mode by name. An empty or unrecognized
// mode leaves the profiler inert.
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.mode = mode

		return p
	}
}

// WithPath sets the directory profile files are written to.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.path = path

		return p
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.quiet = quiet

		return p
	}
}

// Start begins profiling and returns the running session.
//
// Without the pprof build tag, or with no mode selected, the returned
// session is a no-op. Stop is always safe to call.
func (p Profiler) Start() interface{ Stop() } {
	if p.mode == "" {
		return noop{}
	}

	return start(p)
}

type noop struct{}

func (noop) Stop() {}
