package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/utils"

	"github.com/rs/zerolog/log"
)

const usage = "Usage: othello [flags] <player type> <player type> [ROWS] [COLS]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the process exit code: the winner number for a single game, 1 for missing
// players and 2 for any other invalid input.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	flags := flag.NewFlagSet("othello", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	depth := flags.Int("depth", cfg.Depth, "Search depth in plies, 0 searches to the end")
	goroutines := flags.Int("goroutines", cfg.Goroutines, "Number of goroutines searching the root successors")
	pass := flags.Bool("pass", cfg.Pass, "Let a blocked player pass instead of ending the game")
	quiet := flags.Bool("quiet", false, "Only print the result")
	eval := flags.String("eval", cfg.Eval, "Evaluation at the depth limit: disc or mobility")
	tournament := flags.Bool("tournament", false, "Play a series of games and print the tally of winners")
	games := flags.Int("games", cfg.Games, "Number of games in a tournament")
	record := flags.Bool("record", false, "Store tournament records as CSV under the experiments directory")
	seed := flags.Uint64("seed", 0, "Seed for random players, 0 picks one from the clock")
	saveConfig := flags.Bool("save-config", false, "Write the effective settings to the config file and exit")
	if err = flags.Parse(args); err != nil {
		return 2
	}

	if err = config.SetLogLevel(cfg.LogLevel); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg.Depth = *depth
	cfg.Eval = *eval
	cfg.Games = *games
	cfg.Goroutines = *goroutines
	cfg.Pass = *pass

	players := flags.Args()
	if len(players) > 2 {
		if cfg.Rows, err = dimension(players[2]); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		cfg.Cols = cfg.Rows
	}
	if len(players) > 3 {
		if cfg.Cols, err = dimension(players[3]); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		fmt.Fprintf(stdout, "Saved settings to %s\n", path)
		return 0
	}

	if len(players) < 2 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	for _, kind := range players[:2] {
		if !utils.Contains(meta.PLAYER_KINDS, kind) {
			fmt.Fprintf(stderr, "Possible player types are %s\n", strings.Join(meta.PLAYER_KINDS, ", "))
			return 2
		}
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rule := game.EndWhenEitherBlocked
	if cfg.Pass {
		rule = game.EndWhenBothBlocked
	}
	one, two := cfg.Symbols()

	if *tournament {
		return runTournament(cfg, players[0], players[1], cfg.Games, *record, *seed, rule, stdout, stderr)
	}

	var sources [2]player.MoveSource
	for i, kind := range players[:2] {
		if kind == "human" {
			sources[i] = player.NewHuman(stdin, stdout)
			continue
		}
		sources[i], err = experiments.NewSource(agentConfig(i+1, kind, cfg), *seed+uint64(i))
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, player.ErrInputClosed) {
				fmt.Fprintln(stderr, "\nInput closed, game abandoned.")
				code = 0
				return
			}
			panic(r)
		}
	}()

	options := []engine.Option{engine.WithOutput(stdout), engine.WithRender()}
	if *quiet {
		options = []engine.Option{engine.WithOutput(io.Discard)}
	}
	state := game.NewOthello(one, two, cfg.Rows, cfg.Cols, game.WithEndRule(rule))
	result := engine.NewLocalEngine(state, sources, options...).Run()
	if *quiet {
		fmt.Fprintln(stdout, result.Summary)
	}
	return result.Winner
}

func runTournament(cfg *config.Config, kind1, kind2 string, games int, record bool, seed uint64,
	rule game.EndRule, stdout, stderr io.Writer) int {
	if kind1 == "human" || kind2 == "human" {
		fmt.Fprintln(stderr, "Tournaments need two computer players")
		return 2
	}

	one, two := cfg.Symbols()
	agents := [2]metrics.AgentConfig{agentConfig(1, kind1, cfg), agentConfig(2, kind2, cfg)}
	matchup := experiments.Matchup{
		Agents:  agents,
		Games:   games,
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
		Symbols: [2]rune{one, two},
		Rule:    rule,
		Seed:    seed,
	}

	var tally experiments.Tally
	if record {
		name := fmt.Sprintf("%s_vs_%s", kind1, kind2)
		tallies, err := experiments.RunExperiment(cfg.ExperimentsDir, name, agents[:], []experiments.Matchup{matchup})
		if err != nil {
			log.Error().Err(err).Msg("tournament failed")
			return 2
		}
		tally = tallies[0]
	} else {
		result, err := experiments.RunMatchup(matchup, 1)
		if err != nil {
			log.Error().Err(err).Msg("tournament failed")
			return 2
		}
		tally = result.Tally
	}

	fmt.Fprintln(stdout, tally)
	return 0
}

func agentConfig(id int, kind string, cfg *config.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:         id,
		Kind:       kind,
		Depth:      cfg.Depth,
		Goroutines: cfg.Goroutines,
		Eval:       cfg.Eval,
	}
}

func dimension(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 2 {
		return 0, fmt.Errorf("%w: %q is not a board dimension of at least 2", config.ErrInvalidSize, arg)
	}
	return n, nil
}
