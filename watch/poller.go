package watch

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

type Snapshot[T any] struct {
	Value T
	// Loaded is set once a value is available, fetched or seeded.
	Loaded bool
	// Err is the most recent fetch failure. Value still holds the last good data.
	Err       error
	FetchedAt time.Time
}

// Poller keeps the latest result of fetch, refreshing it on a timer.
// Results that complete after Stop, or after a later fetch was already
// applied, are discarded.
type Poller[T any] struct {
	fetch    FetchFunc[T]
	interval time.Duration
	jitter   time.Duration
	onFetch  func(T)

	mu      sync.Mutex
	snap    Snapshot[T]
	started uint64
	applied uint64
	running bool
	stopped bool
	cancel  context.CancelFunc
}

func NewPoller[T any](fetch FetchFunc[T], interval, jitter time.Duration) *Poller[T] {
	return &Poller[T]{
		fetch:    fetch,
		interval: interval,
		jitter:   jitter,
	}
}

// OnFetch registers fn to run after each successful, applied fetch.
func (p *Poller[T]) OnFetch(fn func(T)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onFetch = fn
}

// Seed installs a value without marking it fetched.
func (p *Poller[T]) Seed(v T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || p.applied > 0 {
		return
	}

	p.snap.Value = v
	p.snap.Loaded = true
}

// Start polls on every tick until ctx is done or Stop is called. The first
// fetch runs immediately unless a Refresh already went out.
func (p *Poller[T]) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running || p.stopped {
		p.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.running = true
	p.cancel = cancel
	p.mu.Unlock()

	go p.loop(ctx)
}

func (p *Poller[T]) loop(ctx context.Context) {
	p.mu.Lock()
	primed := p.started > 0
	p.mu.Unlock()

	if !primed {
		p.Refresh(ctx)
	}

	timer := time.NewTimer(p.next())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.Refresh(ctx)
			timer.Reset(p.next())
		}
	}
}

func (p *Poller[T]) next() time.Duration {
	if p.jitter <= 0 {
		return p.interval
	}
	return p.interval + rand.N(p.jitter)
}

// Refresh fetches now. The error is the fetch error, or ErrStopped.
func (p *Poller[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return ErrStopped
	}
	p.started++
	seq := p.started
	p.mu.Unlock()

	v, err := p.fetch(ctx)

	p.mu.Lock()
	if p.stopped || seq < p.applied {
		p.mu.Unlock()
		if err != nil {
			return err
		}
		return ErrStopped
	}

	p.applied = seq

	if err != nil {
		p.snap.Err = err
		p.mu.Unlock()
		return err
	}

	p.snap.Value = v
	p.snap.Loaded = true
	p.snap.Err = nil
	p.snap.FetchedAt = time.Now()
	onFetch := p.onFetch
	p.mu.Unlock()

	if onFetch != nil {
		onFetch(v)
	}

	return nil
}

// Update applies fn to the current value. It reports false when the poller
// is stopped or nothing was loaded yet.
func (p *Poller[T]) Update(fn func(T) T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || !p.snap.Loaded {
		return false
	}

	p.snap.Value = fn(p.snap.Value)

	return true
}

func (p *Poller[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// Stop cancels the timer. It does not wait for an in-flight fetch; its
// result is dropped when it arrives.
func (p *Poller[T]) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}

	p.stopped = true
	if p.cancel != nil {
		p.cancel()
	}
}

func (p *Poller[T]) Stopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}
