// Package transcript reads the official battle walkthroughs (initial map,
// final map with hit points, summary lines) and replays them against the
// combat engine.
package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"goblinwars/internal/combat"
)

var (
	reMapLine = regexp.MustCompile(`^\s*(#\S+)\s*(?:-->)?\s*(#.*?)\s*$`)
	reRounds  = regexp.MustCompile(`^Combat ends after (\d+) full rounds$`)
	reVictory = regexp.MustCompile(`^(\w+) win with (\d+) total hit points left$`)
	reOutcome = regexp.MustCompile(`^Outcome: (\d+) \* (\d+) = (\d+)$`)
)

// MetaError is a summary line that matches none of the known forms.
type MetaError struct {
	Line int
	Text string
}

func (e *MetaError) Error() string { return fmt.Sprintf("line %d: invalid summary %q", e.Line, e.Text) }

// MissingError names a summary value the transcript never states.
type MissingError struct{ Part string }

func (e *MissingError) Error() string { return "transcript is missing " + e.Part }

// MismatchError is the first difference between a replay and the transcript.
type MismatchError struct {
	Field    string
	Got      string
	Expected string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s doesn't match:\ngot:\n%s\nexpected:\n%s", e.Field, e.Got, e.Expected)
}

type Example struct {
	Initial   string
	Final     string
	Rounds    int
	HitPoints int
	Score     int
	Victor    combat.Species
}

func Parse(text string) (*Example, error) {
	lines := strings.Split(text, "\n")
	var left, right []string
	i := 0
	for ; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" && len(left) == 0 {
			continue
		}
		mt := reMapLine.FindStringSubmatch(lines[i])
		if mt == nil {
			break
		}
		left = append(left, mt[1])
		right = append(right, mt[2])
	}
	if len(left) == 0 {
		return nil, &MissingError{Part: "map"}
	}

	var rounds, health, score *int
	var victor *combat.Species
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		var nums []*int
		var err error
		if mt := reRounds.FindStringSubmatch(line); mt != nil {
			nums, err = atoi(mt[1:])
			if err == nil {
				rounds = nums[0]
			}
		} else if mt := reVictory.FindStringSubmatch(line); mt != nil {
			var s combat.Species
			if s, err = combat.ParseSpeciesName(mt[1]); err == nil {
				victor = &s
				nums, err = atoi(mt[2:])
			}
			if err == nil {
				health = nums[0]
			}
		} else if mt := reOutcome.FindStringSubmatch(line); mt != nil {
			nums, err = atoi(mt[1:])
			if err == nil {
				rounds, health, score = nums[0], nums[1], nums[2]
			}
		} else {
			return nil, &MetaError{Line: i + 1, Text: line}
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
	}

	switch {
	case rounds == nil:
		return nil, &MissingError{Part: "rounds"}
	case health == nil:
		return nil, &MissingError{Part: "health"}
	case score == nil:
		return nil, &MissingError{Part: "score"}
	case victor == nil:
		return nil, &MissingError{Part: "victor"}
	}
	return &Example{
		Initial:   strings.Join(left, "\n"),
		Final:     strings.Join(right, "\n"),
		Rounds:    *rounds,
		HitPoints: *health,
		Score:     *score,
		Victor:    *victor,
	}, nil
}

func atoi(ss []string) ([]*int, error) {
	out := make([]*int, len(ss))
	for i, s := range ss {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrap(err, "invalid number")
		}
		out[i] = &n
	}
	return out, nil
}

// Map builds the initial battlefield.
func (ex *Example) Map(b combat.MapBuilder) (*combat.Map, error) {
	m, err := b.Build(ex.Initial)
	return m, errors.Wrap(err, "transcript map")
}

// Check replays the battle and compares it with the transcript.
func (ex *Example) Check(b combat.MapBuilder) (combat.RunOutcome, error) {
	m, err := ex.Map(b)
	if err != nil {
		return combat.RunOutcome{}, err
	}
	battle := combat.NewBattle(m)
	out, err := battle.Run(nil)
	if err != nil {
		return out, err
	}
	if got, want := Trim(m.Status()), Trim(ex.Final); got != want {
		return out, &MismatchError{Field: "outcome map", Got: got, Expected: want}
	}
	for _, c := range []struct {
		field     string
		got, want any
	}{
		{"rounds", out.Rounds, ex.Rounds},
		{"victor", out.Victor.Plural(), ex.Victor.Plural()},
		{"hit points", out.HitPoints, ex.HitPoints},
		{"score", out.Score, ex.Score},
	} {
		if c.got != c.want {
			return out, &MismatchError{Field: c.field, Got: fmt.Sprint(c.got), Expected: fmt.Sprint(c.want)}
		}
	}
	return out, nil
}

// Trim normalizes a rendered map: every line trimmed, blank lines dropped.
func Trim(s string) string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
