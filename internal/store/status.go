// Package store holds the client state: one slice per entity collection,
// pure reducers over a closed set of actions, and a serialized dispatcher.
package store

// Status is the lifecycle of a network-backed collection.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Progress tracks one request kind. Loading is true only between pending and settled.
type Progress struct {
	Status  Status
	Loading bool
	Error   string
}

func idle() Progress {
	return Progress{Status: StatusIdle}
}

func (p Progress) pending() Progress {
	return Progress{Status: StatusLoading, Loading: true}
}

func (p Progress) succeeded() Progress {
	return Progress{Status: StatusSucceeded}
}

func (p Progress) failed(message string) Progress {
	return Progress{Status: StatusFailed, Error: message}
}

// Remote is a cached server collection with its request progress.
type Remote[T any] struct {
	Progress
	Data T
}

func (r Remote[T]) pending() Remote[T] {
	r.Progress = r.Progress.pending()

	return r
}

// fulfilled replaces the data wholesale.
func (r Remote[T]) fulfilled(data T) Remote[T] {
	return Remote[T]{Progress: r.Progress.succeeded(), Data: data}
}

// rejected keeps the previous data.
func (r Remote[T]) rejected(message string) Remote[T] {
	r.Progress = r.Progress.failed(message)

	return r
}

func idleRemote[T any](data T) Remote[T] {
	return Remote[T]{Progress: idle(), Data: data}
}
