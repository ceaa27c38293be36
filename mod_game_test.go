package flappybird

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieslawsoltes/FlappyBird/render/core"
)

func newTestGame(seed int64) *GameState {
	g := newGameState(seed)
	g.Reset(480, 640)
	return g
}

func TestGameReset(t *testing.T) {
	g := newTestGame(1)
	g.Score = 9
	g.BirdVel = -100
	g.Pipes = append(g.Pipes, Pipe{X: 100, GapY: 300})

	g.Reset(480, 640)

	assert.Equal(t, 0, g.Score)
	assert.Equal(t, float32(0), g.BirdVel)
	assert.Empty(t, g.Pipes)
	assert.InDelta(t, 640*0.45, g.BirdY, 0.001)
}

func TestGravityPullsBirdDown(t *testing.T) {
	g := newTestGame(1)
	startY := g.BirdY

	g.Step(1.0 / 60)
	afterOne := g.BirdY
	g.Step(1.0 / 60)

	assert.Greater(t, afterOne, startY)
	assert.Greater(t, g.BirdY-afterOne, afterOne-startY, "fall must accelerate")
}

func TestFlapPushesBirdUp(t *testing.T) {
	g := newTestGame(1)
	g.Flap()

	require.Equal(t, float32(flapImpulse), g.BirdVel)
	startY := g.BirdY
	g.Step(1.0 / 60)
	assert.Less(t, g.BirdY, startY)
}

func TestBirdTilt(t *testing.T) {
	assert.Equal(t, float32(-0.5), birdTilt(-10000), "tilt clamps while rising")
	assert.Equal(t, float32(1.2), birdTilt(10000), "tilt clamps while diving")
	assert.Equal(t, float32(0), birdTilt(0))
	assert.Less(t, birdTilt(-300), float32(0))
}

func TestPipesSpawnAndScroll(t *testing.T) {
	g := newTestGame(1)

	g.Step(1.0 / 60)
	require.NotEmpty(t, g.Pipes)
	firstX := g.Pipes[0].X

	g.Step(1.0 / 60)
	assert.Less(t, g.Pipes[0].X, firstX, "pipes scroll left")

	for _, pipe := range g.Pipes {
		gapTop := pipe.GapY - pipeGapHeight/2
		gapBottom := pipe.GapY + pipeGapHeight/2
		assert.Greater(t, gapTop, float32(0))
		assert.Less(t, gapBottom, g.Height-core.GroundHeight)
	}
}

func TestScoringOnPipePass(t *testing.T) {
	g := newTestGame(1)
	g.Step(1.0 / 60)
	require.NotEmpty(t, g.Pipes)

	// place a pipe about to clear the bird, with the bird safe in the gap
	g.Pipes[0].X = birdX - core.PipeWidth/2 + 1
	g.Pipes[0].GapY = g.BirdY
	g.BirdVel = 0

	scored, collided := g.Step(1.0 / 60)
	require.False(t, collided)
	assert.True(t, scored)
	assert.Equal(t, 1, g.Score)

	// passing the same pipe again must not double count
	scored, _ = g.Step(1.0 / 60)
	assert.False(t, scored)
	assert.Equal(t, 1, g.Score)
}

func TestGroundCollision(t *testing.T) {
	g := newTestGame(1)
	g.BirdY = g.Height - core.GroundHeight - 1

	_, collided := g.Step(1.0 / 60)
	assert.True(t, collided)
}

func TestPipeCollision(t *testing.T) {
	pipe := Pipe{X: birdX, GapY: 300}

	assert.False(t, birdHitsPipe(birdX, 300, pipe), "centered in the gap")
	assert.True(t, birdHitsPipe(birdX, 300-pipeGapHeight/2-core.BirdHeight, pipe), "above the gap")
	assert.True(t, birdHitsPipe(birdX, 300+pipeGapHeight/2+core.BirdHeight, pipe), "below the gap")
	assert.False(t, birdHitsPipe(birdX+core.PipeWidth*2, 0, pipe), "horizontally clear")
}

func TestCeilingIsForgiving(t *testing.T) {
	g := newTestGame(1)
	g.BirdY = -200
	g.BirdVel = -500
	g.Pipes = nil

	_, collided := g.Step(1.0 / 60)
	assert.False(t, collided, "flying above the screen is not a death")
}

func TestSnapshotMirrorsState(t *testing.T) {
	g := newTestGame(1)
	g.Step(1.0 / 60)
	g.Score = 4

	snap := g.Snapshot(17)

	assert.Equal(t, float32(birdX), snap.Bird.X)
	assert.Equal(t, g.BirdY, snap.Bird.Y)
	assert.True(t, snap.Bird.Visible)
	assert.Equal(t, 4, snap.Score)
	assert.Equal(t, 17, snap.Best)
	assert.Len(t, snap.Pipes, len(g.Pipes))
	for i, pipe := range g.Pipes {
		assert.Equal(t, pipe.X, snap.Pipes[i].X)
		assert.Equal(t, float32(pipeGapHeight), snap.Pipes[i].GapHeight)
	}
}

func TestDeterministicPipesWithSeed(t *testing.T) {
	a := newTestGame(42)
	b := newTestGame(42)

	for i := 0; i < 300; i++ {
		a.Step(1.0 / 60)
		b.Step(1.0 / 60)
	}
	assert.Equal(t, a.Pipes, b.Pipes)
}
