package core

// BirdSnapshot is the bird's drawable state for one frame.
type BirdSnapshot struct {
	X, Y     float32
	Rotation float32 // radians, clockwise
	Visible  bool
}

// PipeSnapshot is one pipe pair. GapY is the vertical center of the
// opening, GapHeight its extent.
type PipeSnapshot struct {
	X         float32
	GapY      float32
	GapHeight float32
}

// Snapshot is everything the renderer needs to compose one frame. The
// game simulation produces it; the renderer never reaches back into
// game state.
type Snapshot struct {
	Bird    BirdSnapshot
	Pipes   []PipeSnapshot
	GroundX float32 // world scroll offset, grows over time
	Score   int
	Best    int
}
