package combat

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

var ErrNoMovesRemain = errors.New("no moves remain on the map")

// InterruptedError wraps the error returned by a Run callback.
type InterruptedError struct {
	Round int
	Err   error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("battle interrupted in round %d: %v", e.Round, e.Err)
}

func (e *InterruptedError) Unwrap() error { return e.Err }
func (e *InterruptedError) Cause() error  { return e.Err }

// Battle owns a map and the pathfinder cache that is only valid for it.
// Emit, when set, receives every move, attack, death and round start.
type Battle struct {
	m     *Map
	paths *Pathfinder
	round int
	Emit  func(Event)
}

func NewBattle(m *Map) *Battle { return &Battle{m: m, paths: NewPathfinder()} }

func (b *Battle) Map() *Map { return b.m }

// Rounds is the number of rounds started so far.
func (b *Battle) Rounds() int { return b.round }

// Round starts the next round.
func (b *Battle) Round() *Round {
	b.round++
	b.emit("RoundStart", map[string]any{"sprites": b.m.Sprites.Len()})
	return newRound(b)
}

func (b *Battle) emit(typ string, payload map[string]any) {
	if b.Emit != nil {
		b.Emit(Event{T: b.round, Type: typ, Payload: payload})
	}
}

type RunOutcome struct {
	Victor    Species `json:"-"`
	Rounds    int     `json:"rounds"`
	HitPoints int     `json:"hit_points"`
	Score     int     `json:"score"`
}

func (o RunOutcome) MarshalJSON() ([]byte, error) {
	type plain RunOutcome
	return json.Marshal(struct {
		plain
		Victor string `json:"victor"`
	}{plain(o), o.Victor.Plural()})
}

func (o RunOutcome) String() string {
	return fmt.Sprintf("%s win after %d rounds for a total score of %d", o.Victor.Plural(), o.Rounds, o.Score)
}

// Run plays rounds until one species is left. onRound, when not nil, is
// called with the round number before each round starts; an error from it
// stops the battle. A round in which nothing happens is a deadlock and
// yields ErrNoMovesRemain.
func (b *Battle) Run(onRound func(b *Battle, round int) error) (RunOutcome, error) {
	for {
		n := b.round + 1
		if onRound != nil {
			if err := onRound(b, n); err != nil {
				return RunOutcome{}, &InterruptedError{Round: n, Err: err}
			}
		}
		res := b.Round().Play()
		switch res.Outcome {
		case Victory:
			return b.finish(res.Victor, n), nil
		case MidRoundVictory:
			return b.finish(res.Victor, n-1), nil
		case NoAction:
			return RunOutcome{}, errors.Wrapf(ErrNoMovesRemain, "round %d", n)
		}
	}
}

func (b *Battle) finish(victor Species, rounds int) RunOutcome {
	hp := b.m.Score()
	out := RunOutcome{Victor: victor, Rounds: rounds, HitPoints: hp, Score: rounds * hp}
	b.emit("Victory", map[string]any{
		"victor": victor.Plural(), "rounds": rounds, "hp": hp, "score": out.Score,
	})
	return out
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
