package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Pruning    bool
	Duration   time.Duration
	Nodes      int
	Cutoffs    int
	CacheHits  int
	Value      int
}

type MoveMetric struct {
	Step    int
	Player  int // 1 or 2
	Row     int
	Col     int
	Flipped int
	SearchMetric
}

type GameMetric struct {
	GameID         string
	StartingPlayer int
	Winner         int // 0 for a tie
	Scores         [2]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

// Collector gathers counters during one search. Implementations must be safe for use from
// several goroutines.
type Collector interface {
	Start(goroutines, depth int, pruning bool)
	AddNode()
	AddCutoff()
	AddCacheHit()
	Complete(value int) SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	pruning    bool
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
	cacheHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, pruning bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) Complete(value int) SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Pruning:    m.pruning,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		CacheHits:  int(m.cacheHits.Load()),
		Value:      value,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                                  {}
func (m *dummyCollector) AddCutoff()                                {}
func (m *dummyCollector) AddCacheHit()                              {}
func (m *dummyCollector) Complete(value int) SearchMetric           { return SearchMetric{Value: value} }
