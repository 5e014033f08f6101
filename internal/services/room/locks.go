package room

import (
	"sync"

	"github.com/tmazur/sketchbluff/internal/model"
)

// roomLocks hands out one mutex per room so every transition for a
// given room runs strictly one at a time, while independent rooms
// proceed concurrently.
type roomLocks struct {
	mu    sync.Mutex
	locks map[model.RoomID]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{
		locks: make(map[model.RoomID]*sync.Mutex),
	}
}

// acquire returns the mutex for a room, creating it on first use.
func (l *roomLocks) acquire(id model.RoomID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}

// forget drops a deleted room's mutex. Callers must not hold it.
func (l *roomLocks) forget(id model.RoomID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, id)
}
