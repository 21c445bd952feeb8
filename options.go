package twophase

import "time"

// Option configures solver behavior.
type Option func(*config)

type config struct {
	maxLength int
	timeout   time.Duration
	workers   int
}

func defaultConfig() *config {
	return &config{
		maxLength: 24,
		timeout:   time.Second,
		workers:   0,
	}
}

// WithMaxLength sets the solution length the solver is content with.
// The search stops as soon as it finds a solution of at most n moves;
// until then it keeps improving within the timeout.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// WithTimeout bounds a single Solve call when the caller's context has
// no earlier deadline. The best solution found so far is returned when
// the time is up.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithWorkers caps the number of parallel search workers. The default
// (0) uses the full fan-out: two workers per power of the partitioning
// rotation symmetry.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
