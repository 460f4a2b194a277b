package solver

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes a single BestMove call.
type SearchMetric struct {
	Goroutines int
	Depth      uint32
	Duration   time.Duration
	Nodes      int
	TableHits  int
}

// Collector gathers search statistics. Implementations must be safe for
// concurrent use.
type Collector interface {
	Start(goroutines int, depth uint32)
	AddNode()
	AddTableHit()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      uint32
	startTime  time.Time
	nodes      atomic.Int64
	tableHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int, depth uint32) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.tableHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddTableHit() {
	m.tableHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		TableHits:  int(m.tableHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int, depth uint32) {}
func (m *dummyCollector) AddNode()                           {}
func (m *dummyCollector) AddTableHit()                       {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }
