package ecs

// entityStore tracks entity generations and free ids. Slot ids start at 1
// and generations start at 1 so no live handle is ever zero.
type entityStore struct {
	gen   []generation
	live  []bool
	free  []entityID
	alive int
}

func (s *entityStore) create() Entity {
	s.alive++
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.live[id-1] = true
		return makeEntity(id, s.gen[id-1])
	}
	s.gen = append(s.gen, 1)
	s.live = append(s.live, true)
	return makeEntity(entityID(len(s.gen)), 1)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gen[id-1]++
	s.live[id-1] = false
	s.free = append(s.free, id)
	s.alive--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.live[id-1] && s.gen[id-1] == e.generation()
}

// each calls fn for every live entity in slot order.
func (s *entityStore) each(fn func(Entity)) {
	for i, ok := range s.live {
		if ok {
			fn(makeEntity(entityID(i+1), s.gen[i]))
		}
	}
}
