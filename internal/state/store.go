package state

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Store holds the session's AppState and applies events to it.
// It is driven by a single event consumer (the UI loop) and is not safe
// for concurrent Dispatch.
type Store struct {
	state    AppState
	tracer   oteltrace.Tracer
	logger   *slog.Logger
	onChange []func(prev, next AppState)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTracer records one span per dispatched event.
func WithTracer(t oteltrace.Tracer) StoreOption {
	return func(s *Store) { s.tracer = t }
}

// WithLogger sets the logger used for per-event debug records.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store at the initial state.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		state:  Initial(),
		tracer: noop.NewTracerProvider().Tracer("portfolio/state"),
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() AppState {
	return s.state
}

// Subscribe registers fn to run after every dispatch, including no-op ones.
func (s *Store) Subscribe(fn func(prev, next AppState)) {
	s.onChange = append(s.onChange, fn)
}

// Dispatch applies ev and returns the new state.
func (s *Store) Dispatch(ctx context.Context, ev Event) AppState {
	_, span := s.tracer.Start(ctx, "portfolio.dispatch")
	defer span.End()

	prev := s.state
	s.state = Reduce(prev, ev)

	span.SetAttributes(
		attribute.String("event", ev.Name()),
		attribute.String("screen", s.state.Screen.String()),
		attribute.String("theme", s.state.Theme.String()),
		attribute.String("expanded", s.state.Expanded.String()),
	)
	s.logger.DebugContext(ctx, "dispatch",
		"event", ev.Name(),
		"screen", s.state.Screen.String(),
		"theme", s.state.Theme.String(),
		"expanded", s.state.Expanded.String(),
	)

	for _, fn := range s.onChange {
		fn(prev, s.state)
	}
	return s.state
}
