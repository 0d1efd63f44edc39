package timer

import (
	"context"
	"time"

	"github.com/tuannh982/symtab/utils/service"
)

type TimeoutRequest interface {
	Duration() time.Duration
	SetTimeoutTs(t time.Time)
	TimeoutTs() time.Time
}

// Timer delivers a request on C once its duration has elapsed. At most one
// request is pending: Reset replaces it, and also drops a fired request that
// nobody has received yet. After the timer stops, Reset has no effect.
type Timer[R TimeoutRequest] interface {
	service.Service
	C() <-chan R
	Reset(R)
}

type timer[R TimeoutRequest] struct {
	*service.SimpleService
	clock   *time.Timer
	request chan R
	timeout chan R
	done    <-chan struct{}
}

func NewTimer[R TimeoutRequest]() Timer[R] {
	t := &timer[R]{
		clock:   time.NewTimer(time.Hour),
		request: make(chan R),
		timeout: make(chan R),
	}
	t.SimpleService = service.NewSimpleService(t)
	t.disarm()
	return t
}

// disarm stops the clock and drains a tick it may already have produced.
func (t *timer[R]) disarm() {
	if !t.clock.Stop() {
		select {
		case <-t.clock.C:
		default:
		}
	}
}

func (t *timer[R]) OnStart(ctx context.Context) error {
	t.done = ctx.Done()
	go t.loop(ctx)
	return nil
}

func (t *timer[R]) loop(ctx context.Context) {
	var (
		current R
		// out is t.timeout while a fired request awaits its receiver
		out chan R
	)
	for {
		select {
		case req := <-t.request:
			t.disarm()
			current, out = req, nil
			t.clock.Reset(req.Duration())
		case ts := <-t.clock.C:
			current.SetTimeoutTs(ts)
			out = t.timeout
		case out <- current:
			out = nil
		case <-ctx.Done():
			return
		}
	}
}

func (t *timer[R]) OnStop() {
	t.disarm()
}

func (t *timer[R]) C() <-chan R {
	return t.timeout
}

func (t *timer[R]) Reset(request R) {
	select {
	case t.request <- request:
	case <-t.done:
	}
}
