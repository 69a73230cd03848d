package domain

// Label is a positioned text marker derived from a path's geometry.
// Labels are recomputed from scratch whenever a path's vertices or
// color change; they are never authoritative state.
type Label struct {
	Position GeoPoint `json:"position"`
	Text     string   `json:"text"`
}

// Path is a user-drawn walking path.
type Path struct {
	ID             string     `json:"id"`
	SequenceNumber int        `json:"sequence_number"`
	Vertices       []GeoPoint `json:"vertices"`
	Color          string     `json:"color"`
	Labels         []Label    `json:"labels,omitempty"` // derived
}

// PathRow is the read model for a single sidebar entry.
type PathRow struct {
	ID             string  `json:"id"`
	SequenceNumber int     `json:"sequence_number"`
	Color          string  `json:"color"`
	LengthFeet     float64 `json:"length_feet"`
	TimeLabel      string  `json:"time_label"`
}

// Summary is the read model for the totals panel. Both fields render
// as "--" when no path has any length.
type Summary struct {
	Distance string `json:"distance"`
	Time     string `json:"time"`
}

// UndoKind discriminates the undo action variants.
type UndoKind string

const (
	UndoCreate UndoKind = "create"
	UndoDelete UndoKind = "delete"
)

// UndoAction is one reversible path lifecycle action. Create carries
// only the path id; Delete carries a full snapshot sufficient to
// reconstruct an equivalent path. Labels are never snapshotted.
type UndoAction struct {
	Kind           UndoKind   `json:"kind"`
	PathID         string     `json:"path_id"`
	Vertices       []GeoPoint `json:"vertices,omitempty"`
	Color          string     `json:"color,omitempty"`
	SequenceNumber int        `json:"sequence_number,omitempty"`
}

// DrawEventType identifies a gesture coming from the drawing tool.
type DrawEventType string

const (
	DrawPathFinished DrawEventType = "finished"
	DrawPathEdited   DrawEventType = "edited"
	DrawPathRemoved  DrawEventType = "removed"
)

// DrawEvent is a notification from the map drawing tool. Finished
// carries only vertices; edited carries the path id and its updated
// vertices; removed carries only the path id.
type DrawEvent struct {
	Type     DrawEventType `json:"type"`
	PathID   string        `json:"path_id,omitempty"`
	Vertices []GeoPoint    `json:"vertices,omitempty"`
}

// PathsChanged is published after every mutation so sidebar clients
// can re-render without polling.
type PathsChanged struct {
	Paths   []PathRow `json:"paths"`
	Summary Summary   `json:"summary"`
}

// Location is a named place used only to recenter the map view.
type Location struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Location GeoPoint `json:"location"`
	Zoom     int      `json:"zoom"`
}
