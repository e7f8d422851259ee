package experiments

import (
	"errors"
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrUnknownKind = errors.New("unknown player kind")
	ErrUnknownEval = errors.New("unknown evaluation")
)

// Tally counts finished games by winner number: 0 for a tie, 1 or 2 for a player.
type Tally [3]int

func (t Tally) String() string {
	return fmt.Sprintf("{0: %d, 1: %d, 2: %d}", t[0], t[1], t[2])
}

func (t Tally) Games() int {
	return t[0] + t[1] + t[2]
}

// Matchup plays Games games between two agents, Agents[0] always as player one.
type Matchup struct {
	Agents  [2]metrics.AgentConfig
	Games   int
	Rows    int
	Cols    int
	Symbols [2]rune
	Rule    game.EndRule
	Seed    uint64 // Seeds the random agents, one derived seed per game
}

type MatchupResult struct {
	Tally       Tally
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// NewSource builds the move source an agent config describes. Every search source collects
// metrics.
func NewSource(config metrics.AgentConfig, seed uint64) (player.MoveSource, error) {
	options := []searcher.Option{searcher.WithMetrics()}
	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.Transpositions {
		options = append(options, searcher.WithTranspositions())
	}
	if config.Eval != "" {
		evaluate, ok := game.Evaluations[config.Eval]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEval, config.Eval)
		}
		options = append(options, searcher.WithEvaluationFn(evaluate))
	}

	switch config.Kind {
	case "minimax":
		return agent.NewMinimaxAgent(searcher.NewMinimax(options...)), nil
	case "alphabeta":
		options = append(options, searcher.WithPruning())
		return agent.NewMinimaxAgent(searcher.NewMinimax(options...)), nil
	case "random":
		return player.NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
	}
}

// RunMatchup plays the games of m one after another. Game IDs in the records count from
// firstID.
func RunMatchup(m Matchup, firstID int) (MatchupResult, error) {
	var result MatchupResult
	seeds := rand.New(rand.NewSource(m.Seed))

	for i := 0; i < m.Games; i++ {
		var sources [2]player.MoveSource
		for seat, config := range m.Agents {
			source, err := NewSource(config, seeds.Uint64())
			if err != nil {
				return result, err
			}
			sources[seat] = source
		}

		state := game.NewOthello(m.Symbols[0], m.Symbols[1], m.Rows, m.Cols, game.WithEndRule(m.Rule))
		gameResult := engine.NewLocalEngine(state, sources).Run()

		id := firstID + i
		result.Tally[gameResult.Winner]++
		result.GameRecords = append(result.GameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     m.Agents[0].ID,
			Agent2:     m.Agents[1].ID,
			GameMetric: gameResult.Game,
		})
		for _, mm := range gameResult.MoveMetrics {
			result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Debug().Msgf("completed game %d of %d with winner: %d", i+1, m.Games, gameResult.Winner)
	}
	return result, nil
}

// RunExperiment plays every matchup and stores the agent configs, game records and move
// records under root/name. It returns one tally per matchup.
func RunExperiment(root, name string, configs []metrics.AgentConfig, matchUps []Matchup) ([]Tally, error) {
	count := 0
	tallies := []Tally{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), matchup.Agents[0], matchup.Agents[1])

		result, err := RunMatchup(matchup, count+1)
		if err != nil {
			return nil, fmt.Errorf("matchup %d: %w", mi+1, err)
		}
		count += matchup.Games
		tallies = append(tallies, result.Tally)
		gameRecords = append(gameRecords, result.GameRecords...)
		moveRecords = append(moveRecords, result.MoveRecords...)

		log.Info().Msgf("completed matchup %d of %d: %v", mi+1, len(matchUps), result.Tally)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err = writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err = writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return tallies, nil
}
