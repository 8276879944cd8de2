package combat

import "container/heap"

// Outcome classifies a round. The first four values escalate in order as
// events happen; the victories end the battle.
type Outcome int

const (
	NoAction Outcome = iota
	CombatOnly
	Casualty
	Movement
	MidRoundVictory
	Victory
)

func (o Outcome) String() string {
	switch o {
	case NoAction:
		return "no action"
	case CombatOnly:
		return "combat only"
	case Casualty:
		return "casualty"
	case Movement:
		return "movement"
	case MidRoundVictory:
		return "mid-round victory"
	case Victory:
		return "victory"
	}
	return "unknown"
}

func (o Outcome) escalate(to Outcome) Outcome { return max(o, to) }

func (o Outcome) Finished() bool { return o == MidRoundVictory || o == Victory }

type RoundResult struct {
	Outcome Outcome
	Victor  Species
}

// turn is a sprite and the position it held when the round started.
type turn struct {
	at Point
	sp *Sprite
}

// turnQueue orders the round's turns by starting position.
type turnQueue []turn

func (q turnQueue) Len() int           { return len(q) }
func (q turnQueue) Less(i, j int) bool { return readingLess(q[i].at, q[j].at) }
func (q turnQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *turnQueue) Push(x any)        { *q = append(*q, x.(turn)) }
func (q *turnQueue) Pop() any {
	old := *q
	n := len(old)
	p := old[n-1]
	*q = old[:n-1]
	return p
}

// Round is one pass where every sprite alive at the start gets a turn, in
// reading order of its starting position.
type Round struct {
	battle  *Battle
	queue   turnQueue
	outcome Outcome
}

func newRound(b *Battle) *Round {
	q := make(turnQueue, 0, b.m.Sprites.Len())
	b.m.Sprites.Each(func(p Point, sp *Sprite) { q = append(q, turn{at: p, sp: sp}) })
	heap.Init(&q)
	return &Round{battle: b, queue: q}
}

// Play runs every remaining turn and classifies the round.
func (r *Round) Play() RoundResult {
	for r.queue.Len() > 0 {
		if res, done := r.Tick(); done {
			return res
		}
	}
	if victor, ok := r.battle.m.Victorious(); ok {
		return RoundResult{Outcome: Victory, Victor: victor}
	}
	return RoundResult{Outcome: r.outcome}
}

// Tick plays the next sprite's turn. It reports true when the battle ended
// before that sprite could act.
func (r *Round) Tick() (RoundResult, bool) {
	if r.queue.Len() == 0 {
		return RoundResult{Outcome: r.outcome}, false
	}
	b := r.battle
	m := b.m
	next := heap.Pop(&r.queue).(turn)
	at, sp := next.at, next.sp
	if m.Sprites.Get(at) != sp {
		// killed earlier this round, or another sprite has since stepped in
		return RoundResult{Outcome: r.outcome}, false
	}
	if victor, ok := m.Victorious(); ok {
		return RoundResult{Outcome: MidRoundVictory, Victor: victor}, true
	}

	if _, inRange := m.Target(at); !inRange {
		if path, ok := b.paths.FindPath(m, at); ok && m.move(at, path.Direction) {
			from := at
			at = at.Step(path.Direction)
			b.paths.Invalidate()
			r.outcome = r.outcome.escalate(Movement)
			b.emit("Move", map[string]any{
				"species": sp.Species().Name(), "from": from.String(), "to": at.String(),
				"destination": path.Destination.String(), "distance": path.Distance,
			})
		}
	}

	target, ok := m.Target(at)
	if !ok {
		return RoundResult{Outcome: r.outcome}, false
	}
	victim := m.Sprites.Get(target).Species()
	st := m.strike(at, target)
	b.emit("Attack", map[string]any{
		"species": sp.Species().Name(), "from": at.String(), "target": target.String(),
		"power": sp.Attack(), "hp": st.HitPoints,
	})
	if st.Alive {
		r.outcome = r.outcome.escalate(CombatOnly)
		return RoundResult{Outcome: r.outcome}, false
	}
	b.paths.Invalidate()
	r.outcome = r.outcome.escalate(Casualty)
	b.emit("Death", map[string]any{
		"species": victim.Name(), "at": target.String(), "by": at.String(),
	})
	return RoundResult{Outcome: r.outcome}, false
}
