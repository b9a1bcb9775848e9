package room

import (
	"sync"

	"github.com/bankrollhq/bankroll/internal/model"
)

// roomLocks provides one mutex per room code. Rooms are independent, so
// operations on different rooms never contend; operations on the same
// room are serialized for their full load-mutate-save duration.
type roomLocks struct {
	mu    sync.Mutex
	locks map[model.RoomCode]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{
		locks: make(map[model.RoomCode]*sync.Mutex),
	}
}

// lock acquires the mutex for the given code and returns its unlock func.
// Lock entries are never removed; rooms live for the process lifetime.
func (l *roomLocks) lock(code model.RoomCode) func() {
	l.mu.Lock()
	m, ok := l.locks[code]
	if !ok {
		m = &sync.Mutex{}
		l.locks[code] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
