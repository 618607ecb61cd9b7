package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	commandMetrics map[string]*CommandMetrics

	totalDispatches uint64
	totalUnknown    uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// CommandMetrics holds metrics for a specific command.
type CommandMetrics struct {
	Name          string
	DispatchCount uint64
	PanicCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		commandMetrics: make(map[string]*CommandMetrics),
	}
}

// RecordDispatch records one command execution.
func (m *Metrics) RecordDispatch(name string, duration time.Duration, panicked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration
	if panicked {
		m.totalPanics++
	}

	cm := m.commandMetrics[name]
	if cm == nil {
		cm = &CommandMetrics{
			Name:        name,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.commandMetrics[name] = cm
	}

	cm.DispatchCount++
	cm.TotalDuration += duration
	if panicked {
		cm.PanicCount++
	}

	if duration < cm.MinDuration {
		cm.MinDuration = duration
	}
	if duration > cm.MaxDuration {
		cm.MaxDuration = duration
	}
}

// RecordUnknown records a line that named no command.
func (m *Metrics) RecordUnknown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalUnknown++
}

// TopCommands returns the n most dispatched commands.
func (m *Metrics) TopCommands(n int) []*CommandMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmds := make([]*CommandMetrics, 0, len(m.commandMetrics))
	for _, cm := range m.commandMetrics {
		c := *cm
		cmds = append(cmds, &c)
	}

	sort.Slice(cmds, func(i, j int) bool {
		if cmds[i].DispatchCount != cmds[j].DispatchCount {
			return cmds[i].DispatchCount > cmds[j].DispatchCount
		}
		return cmds[i].Name < cmds[j].Name
	})

	if n > len(cmds) {
		n = len(cmds)
	}
	return cmds[:n]
}

// MetricsSnapshot is a point-in-time view of the counters.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalUnknown    uint64
	TotalPanics     uint64
	AverageDuration time.Duration
	CommandCount    int
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalUnknown:    m.totalUnknown,
		TotalPanics:     m.totalPanics,
		CommandCount:    len(m.commandMetrics),
	}
	if m.totalDispatches > 0 {
		s.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	return s
}
