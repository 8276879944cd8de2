package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"goblinwars/internal/combat"
	"goblinwars/internal/config"
	"goblinwars/internal/display"
	"goblinwars/internal/transcript"
)

type options struct {
	config  string
	out     string
	ui      string
	speed   int
	example bool
	search  bool
}

func main() {
	var opts options
	var verbose bool
	flag.StringVar(&opts.config, "config", "", "YAML config file (built-in defaults when empty)")
	flag.StringVar(&opts.out, "out", "", "JSON output: events and outcome (single) or a summary (several inputs)")
	flag.StringVar(&opts.ui, "ui", "", "viewer: tea, tcell or none (default from config)")
	flag.IntVar(&opts.speed, "speed", 0, "playback speed 1..5 (default from config)")
	flag.BoolVar(&opts.example, "example", false, "inputs are transcripts to replay and verify")
	flag.BoolVar(&opts.search, "search", false, "find the smallest elf attack power that loses no elf")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input>...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), log, opts, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, opts options, inputs []string) error {
	if len(inputs) == 0 {
		flag.Usage()
		return errors.New("no input file")
	}
	cfg := config.Default()
	if opts.config != "" {
		var err error
		if cfg, err = config.Load(opts.config); err != nil {
			return err
		}
	}
	if opts.ui != "" {
		cfg.Display.UI = opts.ui
	}
	if opts.speed != 0 {
		cfg.Display.Speed = opts.speed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	sprites, err := combat.NewSpriteBuilder(&cfg.Stats)
	if err != nil {
		return errors.Wrap(err, "sprite stats")
	}

	if len(inputs) > 1 {
		return batch(ctx, log, cfg, sprites, opts, inputs)
	}

	path := inputs[0]
	text, err := readInput(path)
	if err != nil {
		return err
	}
	var res any
	switch {
	case opts.example:
		res, err = checkTranscript(text, sprites)
	case opts.search:
		res, err = searchPower(ctx, log, cfg, text, sprites)
	case cfg.Display.UI == "none":
		res, err = battle(text, sprites, opts.out != "")
	default:
		res, err = watch(cfg, filepath.Base(path), text, sprites, opts.out != "")
	}
	if err != nil {
		return errors.Wrap(err, path)
	}
	return writeOut(log, opts.out, res)
}

func readInput(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return string(b), nil
}

type battleResult struct {
	Outcome combat.RunOutcome `json:"outcome"`
	Events  []combat.Event    `json:"events,omitempty"`
}

func checkTranscript(text string, sprites combat.SpriteBuilder) (combat.RunOutcome, error) {
	ex, err := transcript.Parse(text)
	if err != nil {
		return combat.RunOutcome{}, err
	}
	out, err := ex.Check(combat.NewMapBuilder(sprites))
	if err != nil {
		return out, err
	}
	fmt.Printf("transcript matches: %s\n", out)
	return out, nil
}

func searchPower(ctx context.Context, log *slog.Logger, cfg *config.Config, text string, sprites combat.SpriteBuilder) (combat.SearchResult, error) {
	res, err := combat.SearchElfPower(ctx, text, sprites, combat.SearchOptions{
		StartPower: cfg.Search.StartPower,
		MaxPower:   cfg.Search.MaxPower,
		Workers:    cfg.Search.Workers,
		Logger:     log,
	})
	if err != nil {
		return res, err
	}
	fmt.Printf("elf attack power %d: %s\n", res.AttackPower, res.Outcome)
	return res, nil
}

func newBattle(text string, sprites combat.SpriteBuilder, record bool) (*combat.Battle, *battleResult, error) {
	m, err := combat.NewMapBuilder(sprites).Build(text)
	if err != nil {
		return nil, nil, err
	}
	b := combat.NewBattle(m)
	res := &battleResult{}
	if record {
		res.Events = make([]combat.Event, 0, 256)
		b.Emit = func(ev combat.Event) { res.Events = append(res.Events, ev) }
	}
	return b, res, nil
}

func battle(text string, sprites combat.SpriteBuilder, record bool) (*battleResult, error) {
	b, res, err := newBattle(text, sprites, record)
	if err != nil {
		return nil, err
	}
	if res.Outcome, err = b.Run(nil); err != nil {
		return nil, err
	}
	fmt.Println(res.Outcome)
	return res, nil
}

// watch runs the battle in the background and a viewer in the foreground.
// Quitting the viewer detaches it; the battle still runs to the end.
func watch(cfg *config.Config, title, text string, sprites combat.SpriteBuilder, record bool) (*battleResult, error) {
	b, res, err := newBattle(text, sprites, record)
	if err != nil {
		return nil, err
	}
	link := display.NewLink(4)
	done := make(chan error, 1)
	go func() {
		var err error
		res.Outcome, err = display.Worker(b, link, display.Delay(cfg.Display.Speed))
		link.Close()
		done <- err
	}()

	var viewErr error
	switch cfg.Display.UI {
	case "tcell":
		var s *display.Screen
		if s, viewErr = display.NewScreen(title, link.Updates()); viewErr == nil {
			s.Run()
			s.Close()
		}
	default:
		_, viewErr = tea.NewProgram(display.NewTeaModel(title, link.Updates()), tea.WithAltScreen()).Run()
	}
	link.Close()

	if err := <-done; err != nil {
		return nil, err
	}
	if viewErr != nil {
		return nil, errors.Wrap(viewErr, "viewer")
	}
	fmt.Println(res.Outcome)
	return res, nil
}

func writeOut(log *slog.Logger, path string, v any) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, combat.MarshalPretty(v), 0644); err != nil {
		return errors.Wrap(err, "write output")
	}
	log.Info("wrote output", "path", path)
	return nil
}

type batchEntry struct {
	Input  string `json:"input"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// batch runs every input headless on a pool of workers and writes one
// summary.
func batch(ctx context.Context, log *slog.Logger, cfg *config.Config, sprites combat.SpriteBuilder, opts options, inputs []string) error {
	entries := make([]batchEntry, len(inputs))
	var mu sync.Mutex
	failed := 0

	wg := sync.WaitGroup{}
	jobs := make(chan int, len(inputs))
	for w := 0; w < min(cfg.Search.Workers, len(inputs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path := inputs[i]
				var res any
				text, err := readInput(path)
				if err == nil {
					switch {
					case opts.example:
						res, err = checkTranscript(text, sprites)
					case opts.search:
						res, err = searchPower(ctx, log, cfg, text, sprites)
					default:
						res, err = battle(text, sprites, false)
					}
				}
				e := batchEntry{Input: path}
				mu.Lock()
				if err != nil {
					e.Error = err.Error()
					failed++
					log.Error("input failed", "input", path, "err", err)
				} else {
					e.Result = res
					log.Debug("input done", "input", path)
				}
				entries[i] = e
				mu.Unlock()
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := writeOut(log, opts.out, map[string]any{
		"runs":   len(inputs),
		"failed": failed,
		"inputs": entries,
	}); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}
