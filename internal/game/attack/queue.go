package attack

import (
	"container/heap"
	"fmt"

	"github.com/udisondev/squadsim/internal/game/energy"
	"github.com/udisondev/squadsim/internal/model"
)

// Item is one scheduled entry: an attack or a particle delivery.
type Item struct {
	Frame    model.Frame
	Seq      uint64
	Attack   *model.Attack
	Particle *energy.Particle
}

// Queue is the deterministic future-event queue. Items pop by frame, ties
// by insertion order.
type Queue struct {
	items itemHeap
	seq   uint64
	now   model.Frame
}

// NewQueue returns an empty queue with its clock at frame zero.
func NewQueue() *Queue {
	return &Queue{}
}

// Now returns the queue clock: the last frame passed to PopDue.
func (q *Queue) Now() model.Frame { return q.now }

// Len returns the number of pending items.
func (q *Queue) Len() int { return len(q.items) }

// PushAttack schedules a at a.Frame and stamps its sequence number.
func (q *Queue) PushAttack(a model.Attack) error {
	if a.Frame < q.now {
		return fmt.Errorf("%w: attack %q at %d, queue at %d", model.ErrTimestampRegression, a.Ability, a.Frame, q.now)
	}
	q.seq++
	a.Seq = q.seq
	heap.Push(&q.items, Item{Frame: a.Frame, Seq: q.seq, Attack: &a})
	return nil
}

// PushParticle schedules the delivery of p at p.Frame.
func (q *Queue) PushParticle(p energy.Particle) error {
	if p.Frame < q.now {
		return fmt.Errorf("%w: particles at %d, queue at %d", model.ErrTimestampRegression, p.Frame, q.now)
	}
	q.seq++
	heap.Push(&q.items, Item{Frame: p.Frame, Seq: q.seq, Particle: &p})
	return nil
}

// Schedule pushes every attack and particle in order.
func (q *Queue) Schedule(attacks []model.Attack, particles []energy.Particle) error {
	for _, a := range attacks {
		if err := q.PushAttack(a); err != nil {
			return err
		}
	}
	for _, p := range particles {
		if err := q.PushParticle(p); err != nil {
			return err
		}
	}
	return nil
}

// PopDue advances the clock to now and returns every item due at or before
// it in (frame, submission) order.
func (q *Queue) PopDue(now model.Frame) ([]Item, error) {
	if now < q.now {
		return nil, fmt.Errorf("%w: queue at %d, asked for %d", model.ErrTimestampRegression, q.now, now)
	}
	q.now = now
	var due []Item
	for len(q.items) > 0 && q.items[0].Frame <= now {
		due = append(due, heap.Pop(&q.items).(Item))
	}
	return due, nil
}

// Reset drops every pending item and rewinds the clock.
func (q *Queue) Reset() {
	q.items = q.items[:0]
	q.seq = 0
	q.now = 0
}

// itemHeap implements container/heap ordered by (frame, seq).
type itemHeap []Item

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].Frame != h[j].Frame {
		return h[i].Frame < h[j].Frame
	}
	return h[i].Seq < h[j].Seq
}
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x any)   { *h = append(*h, x.(Item)) }
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
