// Package events publishes domain events to RabbitMQ.
package events

import (
	"context"
	"time"
)

const (
	UserRegisteredKey = "user.registered"
	ReportExportedKey = "report.exported"
)

type UserRegistered struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}

type ReportExported struct {
	UserID     string    `json:"user_id,omitempty"`
	Filename   string    `json:"filename"`
	Search     string    `json:"search,omitempty"`
	Bytes      int       `json:"bytes"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers an event under a routing key. Callers treat failures
// as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// Noop discards every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) error { return nil }
func (Noop) Close() error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	Events []Recorded
}

type Recorded struct {
	Key   string
	Event any
}

func (r *Recorder) Publish(_ context.Context, key string, event any) error {
	r.Events = append(r.Events, Recorded{Key: key, Event: event})
	return nil
}

func (r *Recorder) Close() error { return nil }
