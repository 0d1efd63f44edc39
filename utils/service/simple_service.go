package service

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrServiceAlreadyStopped = errors.New("service already stopped")
)

// SimpleService runs a StartStopCallback once: it can be started, and after
// it is stopped it cannot be started again.
type SimpleService struct {
	mu          sync.Mutex
	cancel      context.CancelFunc
	closeChan   <-chan struct{}
	stopped     bool
	startStopCb StartStopCallback
}

func NewSimpleService(startStopCb StartStopCallback) *SimpleService {
	return &SimpleService{
		startStopCb: startStopCb,
	}
}

func (s *SimpleService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrServiceAlreadyStopped
	}
	if s.closeChan != nil {
		return nil
	}
	wrappedCtx, cancel := context.WithCancel(ctx)
	if err := s.startStopCb.OnStart(wrappedCtx); err != nil {
		cancel()
		return err
	}
	s.cancel = cancel
	s.closeChan = wrappedCtx.Done()
	go func() {
		<-wrappedCtx.Done()
		s.Stop()
	}()
	return nil
}

func (s *SimpleService) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeChan != nil && !s.stopped
}

func (s *SimpleService) Serve() {
	s.mu.Lock()
	ch := s.closeChan
	s.mu.Unlock()
	if ch != nil {
		<-ch
	}
}

func (s *SimpleService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closeChan == nil || s.stopped {
		return
	}
	s.stopped = true
	s.startStopCb.OnStop()
	s.cancel()
}
