package meadow

import (
	"math"
	"math/rand/v2"
)

// Particle is one entry of the fixed-capacity pool. Positions are in screen
// pixels, velocities in pixels per second, lifetimes in milliseconds.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // remaining lifetime in ms
	MaxLife float64 // initial lifetime (for computing fade)
	C       Color
}

// ParticleSystem manages a fixed pool of particles with CPU simulation.
// Spawning past capacity fails rather than overwriting a live particle.
type ParticleSystem struct {
	pool  []Particle
	alive int
}

// NewParticleSystem creates a pool with the given capacity.
func NewParticleSystem(capacity int) *ParticleSystem {
	if capacity <= 0 {
		capacity = 256
	}
	return &ParticleSystem{pool: make([]Particle, capacity)}
}

// Capacity returns the pool size.
func (s *ParticleSystem) Capacity() int {
	return len(s.pool)
}

// AliveCount returns the number of live particles.
func (s *ParticleSystem) AliveCount() int {
	return s.alive
}

// Spawn adds a particle to the pool. It returns ErrPoolFull when every slot
// holds a live particle.
func (s *ParticleSystem) Spawn(p Particle) error {
	if s.alive >= len(s.pool) {
		return ErrPoolFull
	}
	if p.Life <= 0 {
		p.Life = 1000
	}
	if p.MaxLife <= 0 {
		p.MaxLife = p.Life
	}
	s.pool[s.alive] = p
	s.alive++
	return nil
}

// Burst spawns up to n particles radiating from (x, y), used for click
// sparkles. Particles past pool capacity are silently dropped.
func (s *ParticleSystem) Burst(x, y float64, n int, c Color) {
	for range n {
		angle := rand.Float64() * 2 * math.Pi
		speed := 30 + rand.Float64()*90
		p := Particle{
			X: x, Y: y,
			VX:   math.Cos(angle) * speed,
			VY:   math.Sin(angle)*speed - 40,
			Life: 400 + rand.Float64()*600,
			C:    c,
		}
		p.MaxLife = p.Life
		if s.Spawn(p) != nil {
			return
		}
	}
}

// Update advances the simulation by deltaMS milliseconds: linear position
// integration and lifetime decay. Dead particles are swap-removed.
func (s *ParticleSystem) Update(deltaMS float64) {
	dt := deltaMS / 1000
	i := 0
	for i < s.alive {
		p := &s.pool[i]
		p.Life -= deltaMS
		if p.Life <= 0 {
			// Swap with the last live particle.
			s.alive--
			s.pool[i] = s.pool[s.alive]
			continue
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		i++
	}
}

// Reset kills every particle.
func (s *ParticleSystem) Reset() {
	s.alive = 0
}

// Draw renders the live particles as single blended pixels whose alpha
// fades with remaining life through a quadratic ease-out.
func (s *ParticleSystem) Draw(fb Framebuffer) {
	for i := 0; i < s.alive; i++ {
		p := &s.pool[i]
		fade := Ease(p.Life/p.MaxLife, EaseQuadOut)
		alpha := uint8(float64(p.C.A) * fade)
		if alpha == 0 {
			continue
		}
		x := int(p.X)
		y := int(p.Y)
		fb.SetPixel(x, y, Blend(p.C, fb.At(x, y), alpha))
	}
}
