package service

import (
	"context"
)

type Service interface {
	Start(ctx context.Context) error
	IsRunning() bool
	// Serve blocks until the service is stopped.
	Serve()
	Stop()
}

// StartStopCallback holds the hooks of a SimpleService. OnStart receives a
// context that is cancelled once the service stops.
type StartStopCallback interface {
	OnStart(ctx context.Context) error
	OnStop()
}
