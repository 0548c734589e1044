package forest

import (
	"time"
)

// debugStats holds per-frame timing and command metrics.
// Only populated when debug mode is on.
type debugStats struct {
	emitTime     time.Duration
	submitTime   time.Duration
	commandCount int
	treeCount    int
	frameMS      float64
}

// debugLog writes frame stats to the package logger at debug level.
func (f *Forest) debugLog(stats debugStats) {
	if !f.debug {
		return
	}
	Logger().Debug("forest: frame",
		"t_ms", stats.frameMS,
		"emit", stats.emitTime,
		"submit", stats.submitTime,
		"total", stats.emitTime+stats.submitTime,
		"commands", stats.commandCount,
		"trees", stats.treeCount,
		"by_type", countByType(f.commands))
}

// countByType tallies commands per CommandType, indexed by the type value.
func countByType(commands []DrawCommand) [CommandText + 1]int {
	var counts [CommandText + 1]int
	for i := range commands {
		if t := commands[i].Type; t <= CommandText {
			counts[t]++
		}
	}
	return counts
}
