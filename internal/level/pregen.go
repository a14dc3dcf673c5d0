package level

import "sync"

// Result is the outcome of a background generation.
type Result struct {
	Level *Level
	Err   error
}

// Pregenerator builds the next level on a background goroutine while the
// current one is being played.
type Pregenerator struct {
	ready chan Result

	mu   sync.Mutex
	got  bool
	last Result
}

// Pregenerate starts building a level from cfg and returns immediately.
func Pregenerate(cfg Config) *Pregenerator {
	p := &Pregenerator{ready: make(chan Result, 1)}
	go func() {
		l, err := Generate(cfg)
		p.ready <- Result{Level: l, Err: err}
	}()
	return p
}

// Ready delivers the result exactly once. Use either Ready or Poll, not both.
func (p *Pregenerator) Ready() <-chan Result { return p.ready }

// Poll returns the result without blocking. Once a result has arrived it is
// returned on every later call.
func (p *Pregenerator) Poll() (Result, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.got {
		return p.last, true
	}
	select {
	case r := <-p.ready:
		p.got, p.last = true, r
		return r, true
	default:
		return Result{}, false
	}
}

// Wait blocks until the result is available.
func (p *Pregenerator) Wait() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.got {
		p.last = <-p.ready
		p.got = true
	}
	return p.last
}
