package core

import "math/rand"

// ParticleDecay is the per-tick life loss; a particle survives for
// exactly 1/ParticleDecay ticks.
const ParticleDecay = 0.02

const particleBaseSize = 14.0

// Particle is a short-lived feather puff spawned on a flap.
type Particle struct {
	X, Y   float32
	VX, VY float32
	Life   float32 // 1 at spawn, dead at <= 0
}

// Particles owns the live particle pool. Dead particles are removed by
// swapping with the last element, so draw order within the pool is not
// stable; particles are visually interchangeable so this does not
// matter.
type Particles struct {
	pool []Particle
	rng  *rand.Rand
}

func NewParticles(seed int64) *Particles {
	return &Particles{rng: rand.New(rand.NewSource(seed))}
}

// particleSpeed bounds each velocity component; components are drawn
// uniformly from [-particleSpeed, particleSpeed].
const particleSpeed = 2.0

// Spawn emits a burst of n particles around (x, y).
func (p *Particles) Spawn(x, y float32, n int) {
	for i := 0; i < n; i++ {
		p.pool = append(p.pool, Particle{
			X:    x + (p.rng.Float32()-0.5)*8,
			Y:    y + (p.rng.Float32()-0.5)*8,
			VX:   (p.rng.Float32()*2 - 1) * particleSpeed,
			VY:   (p.rng.Float32()*2 - 1) * particleSpeed,
			Life: 1,
		})
	}
}

// Tick advances every particle by one step and submits the survivors
// to the batch. A particle shrinks linearly with its remaining life.
func (p *Particles) Tick(batch *Batch) {
	for i := 0; i < len(p.pool); i++ {
		pt := &p.pool[i]
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life -= ParticleDecay
		// near-zero counts as dead; 0.02 does not sum to 1 exactly in float32
		if pt.Life <= ParticleDecay/2 {
			p.killAt(i)
			i--
			continue
		}
		size := particleBaseSize * pt.Life
		batch.Draw("particle", pt.X, pt.Y, size, size, 0)
	}
}

func (p *Particles) killAt(i int) {
	last := len(p.pool) - 1
	p.pool[i] = p.pool[last]
	p.pool = p.pool[:last]
}

func (p *Particles) Count() int { return len(p.pool) }
