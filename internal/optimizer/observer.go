package optimizer

// Observer is notified with every named intermediate quantity while the
// engine computes a result. It replaces ad-hoc verbose printing: the cost
// math never formats or logs anything itself.
type Observer interface {
	Observe(name string, value any)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(name string, value any)

func (f ObserverFunc) Observe(name string, value any) { f(name, value) }

type noopObserver struct{}

func (noopObserver) Observe(string, any) {}

type runOptions struct {
	observer Observer
}

type Option func(*runOptions)

// WithObserver registers o for a single Run. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(ro *runOptions) {
		if o != nil {
			ro.observer = o
		}
	}
}
