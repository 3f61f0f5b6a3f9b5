package queue

import "github.com/kchristidis/listq/element"

// Option configures a Queue at construction time.
type Option func(*Queue)

// WithFactory makes the queue create and release its elements through f.
func WithFactory(f element.Factory) Option {
	return func(q *Queue) {
		q.factory = f
	}
}
