package core

import (
	"math"
	"strconv"
)

// On-screen sprite dimensions, in pixels at the logical resolution.
const (
	BirdWidth  = 48
	BirdHeight = 36

	PipeWidth     = 64
	PipeCapHeight = 28

	GroundHeight = 96
	groundTile   = 64

	digitWidth   = 18
	digitHeight  = 26
	digitSpacing = 22

	cloudParallax = 0.25
)

// ComposeScene turns a game snapshot into sprite instances for one
// frame. It resets the batch first, so the caller only ever sees this
// frame's contents. Particles are ticked here so they advance exactly
// once per composed frame.
func ComposeScene(batch *Batch, snap Snapshot, width, height float32, particles *Particles) {
	batch.Reset()

	composeClouds(batch, snap.GroundX, width)
	for _, pipe := range snap.Pipes {
		composePipe(batch, pipe, height)
	}
	composeGround(batch, snap.GroundX, width, height)

	if snap.Bird.Visible {
		batch.Draw("bird", snap.Bird.X, snap.Bird.Y, BirdWidth, BirdHeight, snap.Bird.Rotation)
	}

	drawNumber(batch, snap.Score, width/2, 70, 1)
	if snap.Best > 0 {
		drawNumber(batch, snap.Best, width-50, 30, 0.6)
	}

	if particles != nil {
		particles.Tick(batch)
	}
}

func composeClouds(batch *Batch, scroll, width float32) {
	span := width + 160
	offset := float32(math.Mod(float64(scroll*cloudParallax), float64(span)))
	for i := 0; i < 3; i++ {
		x := float32(i)*span/3 + 80 - offset
		if x < -80 {
			x += span
		}
		y := float32(90 + i*55)
		batch.Draw("cloud", x, y, 120, 56, 0)
	}
}

func composePipe(batch *Batch, pipe PipeSnapshot, height float32) {
	gapTop := pipe.GapY - pipe.GapHeight/2
	gapBottom := pipe.GapY + pipe.GapHeight/2
	groundY := height - GroundHeight

	// top pipe: body from the screen edge down to the cap
	topBodyH := gapTop - PipeCapHeight
	if topBodyH > 0 {
		batch.Draw("pipe-body", pipe.X, topBodyH/2, PipeWidth, topBodyH, 0)
	}
	batch.Draw("pipe-cap", pipe.X, gapTop-PipeCapHeight/2, PipeWidth+8, PipeCapHeight, 0)

	// bottom pipe: cap at the gap edge, body down to the ground
	batch.Draw("pipe-cap", pipe.X, gapBottom+PipeCapHeight/2, PipeWidth+8, PipeCapHeight, 0)
	bottomBodyH := groundY - gapBottom - PipeCapHeight
	if bottomBodyH > 0 {
		batch.Draw("pipe-body", pipe.X, gapBottom+PipeCapHeight+bottomBodyH/2, PipeWidth, bottomBodyH, 0)
	}
}

func composeGround(batch *Batch, scroll, width, height float32) {
	y := height - GroundHeight/2
	offset := float32(math.Mod(float64(scroll), groundTile))
	for x := -offset; x < width+groundTile; x += groundTile {
		batch.Draw("ground", x+groundTile/2, y, groundTile, GroundHeight, 0)
	}
}

// drawNumber renders n as seven-segment digits centered on (cx, y).
func drawNumber(batch *Batch, n int, cx, y, scale float32) {
	if n < 0 {
		n = 0
	}
	digits := digitsOf(n)
	total := float32(len(digits)) * digitSpacing * scale
	x := cx - total/2 + digitSpacing*scale/2
	for _, d := range digits {
		batch.Draw(digitName(d), x, y, digitWidth*scale, digitHeight*scale, 0)
		x += digitSpacing * scale
	}
}

func digitName(d int) string {
	return "digit-" + strconv.Itoa(d)
}

func digitsOf(n int) []int {
	if n == 0 {
		return []int{0}
	}
	var out []int
	for n > 0 {
		out = append([]int{n % 10}, out...)
		n /= 10
	}
	return out
}
