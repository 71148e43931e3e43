package driver

// Stage is the pipeline phase an event refers to.
type Stage uint8

const (
	StageExtract Stage = iota
	StageRender
	StageAssemble
)

func (s Stage) String() string {
	switch s {
	case StageRender:
		return "render"
	case StageAssemble:
		return "assemble"
	default:
		return "extract"
	}
}

// Event reports per-file progress from directory generation. Index and
// Total describe the file's position in the sorted work list; Cached marks
// files served from the disk cache without running the pipeline.
type Event struct {
	Path   string
	Index  int
	Total  int
	Stage  Stage
	Cached bool
	Err    error
}

// EventFunc receives progress events. The driver serializes calls, so
// implementations need no locking of their own.
type EventFunc func(Event)
