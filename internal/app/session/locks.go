package session

import "sync"

// ProfileLocks serializes work on one profile so its state is never advanced
// twice at the same time.
type ProfileLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProfileLocks() *ProfileLocks {
	return &ProfileLocks{locks: map[string]*sync.Mutex{}}
}

func (p *ProfileLocks) Lock(profile string) func() {
	if p == nil {
		return func() {}
	}
	p.mu.Lock()
	l, ok := p.locks[profile]
	if !ok {
		l = &sync.Mutex{}
		p.locks[profile] = l
	}
	p.mu.Unlock()
	l.Lock()
	return l.Unlock
}
