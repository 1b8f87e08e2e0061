package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseDispatch Phase = iota // 0: swap + deliver last tick's events
	PhaseInput                 // 1: drain pointer/key queue, spawner
	PhaseUpdate                // 2: per-entity OnTick
	PhaseCleanup               // 3: evict flagged entities, compact store
	PhaseOutput                // 4: render
)

func (p Phase) String() string {
	switch p {
	case PhaseDispatch:
		return "dispatch"
	case PhaseInput:
		return "input"
	case PhaseUpdate:
		return "update"
	case PhaseCleanup:
		return "cleanup"
	case PhaseOutput:
		return "output"
	default:
		return "unknown"
	}
}

// System is the interface every scene system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
