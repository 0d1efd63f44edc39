package symtab

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// DefaultPrioritySeed seeds the priority source of a PriorityTreeMap when
// none is injected, so that runs are reproducible.
const DefaultPrioritySeed = 0

// PrioritySource yields node priorities for PriorityTreeMap. *rand.Rand
// satisfies it.
type PrioritySource interface {
	Uint64() uint64
}

type Option func(*options)

type options struct {
	logger     *log.Entry
	priorities PrioritySource
}

// WithLogger sets the entry used for trace events on root changes.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrioritySource gives a PriorityTreeMap its own priority generator.
// Other kinds ignore it.
func WithPrioritySource(src PrioritySource) Option {
	return func(o *options) {
		o.priorities = src
	}
}

func newOptions(kind Kind, opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.WithFields(log.Fields{"symtab": kind.String()})
	}
	if o.priorities == nil && kind == KindPriority {
		o.priorities = rand.New(rand.NewSource(DefaultPrioritySeed))
	}
	return o
}

func traceEnabled(logger *log.Entry) bool {
	return logger.Logger.IsLevelEnabled(log.TraceLevel)
}
