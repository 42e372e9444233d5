package multregt

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	defaultRegion    RegionArray
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		defaultRegion:    Multnum,
	}
}

// Option configures scanner construction.
type Option func(*options)

// WithLogger configures structured logging for index construction.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithDefaultRegionArray sets the region array used by a leading directive
// that leaves its region selector defaulted. Default: MULTNUM.
func WithDefaultRegionArray(name RegionArray) Option {
	return func(o *options) {
		o.defaultRegion = name
	}
}
