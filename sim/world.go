package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gushy/components"
)

// dotWorld keeps the live dots as entities. Index i always refers to the
// i-th dot spawned; the count never changes after NewState.
type dotWorld struct {
	world    *ecs.World
	mapper   *ecs.Map1[components.Dot]
	filter   *ecs.Filter1[components.Dot]
	entities []ecs.Entity

	// Reused per step.
	snapshot []components.Dot
	order    []ecs.Entity
}

func newDotWorld(dots []components.Dot) dotWorld {
	world := ecs.NewWorld()
	w := dotWorld{
		world:    world,
		mapper:   ecs.NewMap1[components.Dot](world),
		filter:   ecs.NewFilter1[components.Dot](world),
		entities: make([]ecs.Entity, len(dots)),
		snapshot: make([]components.Dot, 0, len(dots)),
		order:    make([]ecs.Entity, 0, len(dots)),
	}
	for i := range dots {
		w.entities[i] = w.mapper.NewEntity(&dots[i])
	}
	return w
}

// Len returns the number of dots.
func (s *State) Len() int {
	return len(s.dots.entities)
}

// Dot returns the live dot at index i.
func (s *State) Dot(i int) *components.Dot {
	return s.dots.mapper.Get(s.dots.entities[i])
}

// Dots returns a copy of every dot in index order.
func (s *State) Dots() []components.Dot {
	out := make([]components.Dot, len(s.dots.entities))
	for i, e := range s.dots.entities {
		out[i] = *s.dots.mapper.Get(e)
	}
	return out
}

// collect copies every dot into the step snapshot and records the entity
// behind each slot so results can be written back afterwards.
func (w *dotWorld) collect() []components.Dot {
	w.snapshot = w.snapshot[:0]
	w.order = w.order[:0]

	query := w.filter.Query()
	for query.Next() {
		w.order = append(w.order, query.Entity())
		w.snapshot = append(w.snapshot, *query.Get())
	}
	return w.snapshot
}
