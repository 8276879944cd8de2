package combat

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"goblinwars/internal/config"
)

var errElfDied = errors.New("an elf died")

// SearchOptions bounds the search. Zero values fall back to the config
// defaults; a MaxPower below StartPower tries StartPower alone.
type SearchOptions struct {
	StartPower int
	MaxPower   int
	Workers    int
	Logger     *slog.Logger
}

type SearchResult struct {
	AttackPower int        `json:"attack_power"`
	Outcome     RunOutcome `json:"outcome"`
}

type trial struct {
	power    int
	flawless bool
	outcome  RunOutcome
}

// SearchElfPower finds the smallest elf attack power at which the elves win
// without a single loss. Each trial rebuilds the battle from text. Trials
// run in batches of Workers; the first flawless power in a batch wins.
func SearchElfPower(ctx context.Context, text string, builder SpriteBuilder, opts SearchOptions) (SearchResult, error) {
	if opts.StartPower < 1 {
		opts.StartPower = config.DefaultStartPower
	}
	if opts.MaxPower == 0 {
		opts.MaxPower = config.DefaultMaxPower
	}
	if opts.MaxPower < opts.StartPower {
		opts.MaxPower = opts.StartPower
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if _, err := NewMapBuilder(builder).Build(text); err != nil {
		return SearchResult{}, err
	}

	for lo := opts.StartPower; lo <= opts.MaxPower; lo += opts.Workers {
		hi := min(lo+opts.Workers-1, opts.MaxPower)
		results := make([]trial, hi-lo+1)
		g, gctx := errgroup.WithContext(ctx)
		for power := lo; power <= hi; power++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				t, err := runTrial(text, builder.WithAttack(Elf, power))
				if err != nil {
					return errors.Wrapf(err, "attack power %d", power)
				}
				t.power = power
				results[power-lo] = t
				log.Debug("trial finished", "power", power, "flawless", t.flawless,
					"rounds", t.outcome.Rounds, "score", t.outcome.Score)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return SearchResult{}, err
		}
		for _, t := range results {
			if t.flawless {
				log.Info("flawless elf victory", "power", t.power, "score", t.outcome.Score)
				return SearchResult{AttackPower: t.power, Outcome: t.outcome}, nil
			}
		}
	}
	return SearchResult{}, errors.Errorf("no flawless elf victory with attack power %d..%d", opts.StartPower, opts.MaxPower)
}

func runTrial(text string, sprites SpriteBuilder) (trial, error) {
	m, err := NewMapBuilder(sprites).Build(text)
	if err != nil {
		return trial{}, err
	}
	b := NewBattle(m)
	elfDied := false
	b.Emit = func(ev Event) {
		if ev.Type == "Death" && ev.Payload["species"] == Elf.Name() {
			elfDied = true
		}
	}
	outcome, err := b.Run(func(*Battle, int) error {
		if elfDied {
			return errElfDied
		}
		return nil
	})
	switch {
	case errors.Is(err, errElfDied):
		return trial{}, nil
	case err != nil:
		return trial{}, err
	}
	return trial{flawless: !elfDied && outcome.Victor == Elf, outcome: outcome}, nil
}
