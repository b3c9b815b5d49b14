package automaton

const (
	// DefaultStepLimit Step budget of a Turing machine run.
	DefaultStepLimit = 1000

	// DefaultClosureLimit Maximum number of configurations a single epsilon closure
	// may hold before it is reported as unbounded.
	DefaultClosureLimit = 1 << 16

	// DefaultDeterminizeStateLimit Maximum number of DFA states the subset
	// construction may synthesize.
	DefaultDeterminizeStateLimit = 10000
)

// StackMatch Selects how a PDA transition whose stack top is Epsilon matches.
type StackMatch int

const (
	// StackMatchEmpty Epsilon matches only the empty stack.
	StackMatchEmpty = StackMatch(iota)
	// StackMatchWildcard Epsilon matches any stack and pops nothing.
	StackMatchWildcard
)

// Step Reports one step of a run. Symbol is Epsilon for the initial closure of a
// finite or pushdown run, and the symbol read from the tape for a Turing machine.
// Configurations are rendered in canonical order.
type Step struct {
	Index          int
	Symbol         Symbol
	Configurations []string
}

// TraceFunc Receives every step of a run.
type TraceFunc func(step Step)

type runOptions struct {
	stepLimit    int
	closureLimit int
	stackMatch   StackMatch
	trace        TraceFunc
}

func newRunOptions(opts ...RunOption) *runOptions {
	options := &runOptions{
		stepLimit:    DefaultStepLimit,
		closureLimit: DefaultClosureLimit,
		stackMatch:   StackMatchEmpty,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (o *runOptions) emit(index int, symbol Symbol, configs []string) {
	if o.trace != nil {
		o.trace(Step{Index: index, Symbol: symbol, Configurations: configs})
	}
}

type RunOption func(*runOptions)

// WithStepLimit Sets the Turing machine step budget. Values below one keep the default.
func WithStepLimit(limit int) RunOption {
	return func(o *runOptions) {
		if limit > 0 {
			o.stepLimit = limit
		}
	}
}

// WithClosureLimit Caps the size of a single epsilon closure. Values below one keep
// the default.
func WithClosureLimit(limit int) RunOption {
	return func(o *runOptions) {
		if limit > 0 {
			o.closureLimit = limit
		}
	}
}

func WithStackMatch(mode StackMatch) RunOption {
	return func(o *runOptions) {
		o.stackMatch = mode
	}
}

func WithTrace(fn TraceFunc) RunOption {
	return func(o *runOptions) {
		o.trace = fn
	}
}

type determinizeOptions struct {
	stateLimit   int
	closureLimit int
	prefix       string
}

type DeterminizeOption func(*determinizeOptions)

func newDeterminizeOptions(opts ...DeterminizeOption) *determinizeOptions {
	options := &determinizeOptions{
		stateLimit:   DefaultDeterminizeStateLimit,
		closureLimit: DefaultClosureLimit,
		prefix:       "q",
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithStateLimit Maximum amount of DFA states the subset construction will create
// before failing with ErrTooComplexToDeterminize.
func WithStateLimit(limit int) DeterminizeOption {
	return func(o *determinizeOptions) {
		if limit > 0 {
			o.stateLimit = limit
		}
	}
}

// WithStatePrefix Sets the prefix of synthesized DFA state names (q0, q1, ...).
func WithStatePrefix(prefix string) DeterminizeOption {
	return func(o *determinizeOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}
