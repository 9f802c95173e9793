package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, once per
// PushInterval and once more on Stop. A failed batch stays buffered and is
// retried on the next tick.
type Pusher[T any] struct {
	buffer       []T
	pushLogic    func(...T) error
	pushInterval time.Duration
	errorHandler func(error)

	lock     sync.Mutex
	pushLock sync.Mutex
	stop     chan struct{}
	done     chan struct{}
	start    sync.Once
	stopOnce sync.Once
}

func NewPusher[T any](options ...Option[T]) *Pusher[T] {
	p := &Pusher[T]{
		pushLogic:    func(...T) error { return nil },
		errorHandler: func(err error) { logx.Errorf("push: %v", err) },
		pushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.buffer = append(p.buffer, messages...)
}

// Len reports the number of buffered messages.
func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.buffer)
}

// PushAll sends everything buffered so far. Messages added while the batch
// is in flight wait for the next call.
func (p *Pusher[T]) PushAll() error {
	p.pushLock.Lock()
	defer p.pushLock.Unlock()

	p.lock.Lock()
	batch := p.buffer
	p.buffer = nil
	p.lock.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := p.pushLogic(batch...); err != nil {
		p.lock.Lock()
		p.buffer = append(batch, p.buffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) Start() {
	p.start.Do(func() {
		go p.run()
	})
}

func (p *Pusher[T]) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.PushAll(); err != nil {
				p.errorHandler(err)
			}
		case <-p.stop:
			if err := p.PushAll(); err != nil {
				p.errorHandler(err)
			}
			return
		}
	}
}

// Stop flushes the buffer one last time and waits for the loop to exit.
// Stop on a pusher that was never started only flushes.
func (p *Pusher[T]) Stop() {
	p.stopOnce.Do(func() {
		started := true
		p.start.Do(func() { started = false })
		if !started {
			if err := p.PushAll(); err != nil {
				p.errorHandler(err)
			}
			return
		}

		close(p.stop)
		<-p.done
	})
}
