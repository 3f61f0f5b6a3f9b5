package queue

import "errors"

// ErrNilQueue is returned when an operation is handed a queue that does not exist.
var ErrNilQueue = errors.New("queue does not exist")

// ErrEmptyQueue is returned when an operation needs at least one element.
var ErrEmptyQueue = errors.New("queue is empty")
