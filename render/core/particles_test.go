package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleLifetime(t *testing.T) {
	particles := NewParticles(1)
	particles.Spawn(100, 100, 1)
	batch := NewBatch(BuildAtlas())

	ticks := 0
	for particles.Count() > 0 {
		particles.Tick(batch)
		ticks++
		require.Less(t, ticks, 100, "particle never died")
	}
	assert.Equal(t, 50, ticks)
}

func TestParticleShrinks(t *testing.T) {
	particles := NewParticles(2)
	particles.Spawn(100, 100, 1)
	batch := NewBatch(BuildAtlas())

	particles.Tick(batch)
	require.Equal(t, 1, batch.Count())
	first := batch.Instances()[0].Size[0]

	batch.Reset()
	for i := 0; i < 25; i++ {
		particles.Tick(batch)
		batch.Reset()
	}
	particles.Tick(batch)
	require.Equal(t, 1, batch.Count())
	later := batch.Instances()[0].Size[0]

	assert.Less(t, later, first)
	assert.Greater(t, later, float32(0))
}

func TestParticleSwapRemove(t *testing.T) {
	particles := NewParticles(3)
	particles.Spawn(0, 0, 5)
	require.Equal(t, 5, particles.Count())

	// age the pool most of the way, then add fresh ones
	batch := NewBatch(BuildAtlas())
	for i := 0; i < 40; i++ {
		particles.Tick(batch)
		batch.Reset()
	}
	particles.Spawn(0, 0, 3)
	require.Equal(t, 8, particles.Count())

	// the old five die together; the young three survive
	for i := 0; i < 10; i++ {
		particles.Tick(batch)
		batch.Reset()
	}
	assert.Equal(t, 3, particles.Count())
}

func TestParticleBurstVelocities(t *testing.T) {
	particles := NewParticles(4)
	particles.Spawn(0, 0, 40)

	var left, right, up, down bool
	for _, pt := range particles.pool {
		assert.GreaterOrEqual(t, pt.VX, float32(-particleSpeed))
		assert.LessOrEqual(t, pt.VX, float32(particleSpeed))
		assert.GreaterOrEqual(t, pt.VY, float32(-particleSpeed))
		assert.LessOrEqual(t, pt.VY, float32(particleSpeed))
		assert.Equal(t, float32(1), pt.Life)
		left = left || pt.VX < 0
		right = right || pt.VX > 0
		up = up || pt.VY < 0
		down = down || pt.VY > 0
	}
	assert.True(t, left && right, "horizontal velocity covers both directions")
	assert.True(t, up && down, "vertical velocity covers both directions")
}

func TestParticleTickIntegratesVelocity(t *testing.T) {
	particles := NewParticles(5)
	particles.Spawn(100, 200, 1)
	batch := NewBatch(BuildAtlas())

	start := particles.pool[0]
	for i := 1; i <= 3; i++ {
		particles.Tick(batch)
		batch.Reset()
		pt := particles.pool[0]
		assert.InDelta(t, start.X+float32(i)*start.VX, pt.X, 1e-5)
		assert.InDelta(t, start.Y+float32(i)*start.VY, pt.Y, 1e-5)
		assert.Equal(t, start.VX, pt.VX)
		assert.Equal(t, start.VY, pt.VY)
	}
}
