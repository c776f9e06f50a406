package sim

type EventKind uint8

const (
	EventAbsorb EventKind = iota
	EventPop
	EventVanish
	EventThrust
	EventLevelClear
)

func (k EventKind) String() string {
	switch k {
	case EventAbsorb:
		return "absorb"
	case EventPop:
		return "pop"
	case EventVanish:
		return "vanish"
	case EventThrust:
		return "thrust"
	case EventLevelClear:
		return "level-clear"
	}
	return "unknown"
}

// Event records something audible that happened during a step.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Player bool
}
