package scrape

// State tracks where a page object is in its fetch cycle.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateExtracting
	StateBuilding
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateExtracting:
		return "extracting"
	case StateBuilding:
		return "building"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
