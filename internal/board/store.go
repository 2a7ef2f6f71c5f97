// Package board owns the shared layout state and the drag interaction that
// mutates it.
package board

import (
	"github.com/Garsondee/Soccer-Tactics/internal/roster"
	"go.uber.org/zap"
)

// ChangeKind says what a store notification is about.
type ChangeKind int

const (
	ChangeReplaced ChangeKind = iota // whole roster swapped
	ChangeMoved                      // one entity's coordinates changed
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeReplaced:
		return "replaced"
	case ChangeMoved:
		return "moved"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after every mutation.
type Change struct {
	Kind    ChangeKind
	ID      roster.ID // set for ChangeMoved
	Version uint64
}

// Store is the single owner of entity positions. Both views read it; only
// Replace and Move write it. It is not safe for concurrent use: callers keep
// every access on the game loop goroutine.
type Store struct {
	entities []roster.Entity
	index    map[roster.ID]int
	version  uint64
	subs     map[int]func(Change)
	nextSub  int
	log      *zap.Logger
}

// NewStore returns an empty store.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		index: make(map[roster.ID]int),
		subs:  make(map[int]func(Change)),
		log:   log,
	}
}

// Replace swaps in a new roster wholesale. The slice is copied.
func (s *Store) Replace(entities []roster.Entity) {
	next := make([]roster.Entity, len(entities))
	copy(next, entities)
	index := make(map[roster.ID]int, len(next))
	for i, e := range next {
		index[e.ID] = i
	}
	s.entities = next
	s.index = index
	s.version++
	s.log.Debug("layout replaced", zap.Int("entities", len(next)), zap.Uint64("version", s.version))
	s.notify(Change{Kind: ChangeReplaced, Version: s.version})
}

// Move sets the coordinates of one entity. It returns false for an unknown id.
func (s *Store) Move(id roster.ID, x, y float64) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.entities[i].X = x
	s.entities[i].Y = y
	s.version++
	s.notify(Change{Kind: ChangeMoved, ID: id, Version: s.version})
	return true
}

// Get returns the entity with the given id.
func (s *Store) Get(id roster.ID) (roster.Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return roster.Entity{}, false
	}
	return s.entities[i], true
}

// Entities returns a copy of the entities in roster order.
func (s *Store) Entities() []roster.Entity {
	out := make([]roster.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each calls fn for every entity in roster order without copying.
func (s *Store) Each(fn func(roster.Entity)) {
	for _, e := range s.entities {
		fn(e)
	}
}

// Len is the number of entities, ball included.
func (s *Store) Len() int { return len(s.entities) }

// Players is the number of entities excluding the ball.
func (s *Store) Players() int {
	n := 0
	for _, e := range s.entities {
		if !e.IsBall() {
			n++
		}
	}
	return n
}

// Version increases by one on every mutation.
func (s *Store) Version() uint64 { return s.version }

// Subscribe registers fn for change notifications and returns a cancel func.
// Notifications run synchronously inside Replace and Move.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) notify(c Change) {
	for _, fn := range s.subs {
		fn(c)
	}
}
