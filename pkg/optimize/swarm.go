package optimize

import (
	"math"
	"math/rand"
)

// Particle swarm constants.
const (
	swarmInertia   = 0.7
	swarmCognition = 1.5
	swarmSocial    = 1.5

	// maxSwarmSize caps the population; smaller layouts get 4 particles
	// per component.
	maxSwarmSize          = 20
	particlesPerComponent = 4

	// earlyExitScore terminates the swarm once the global best falls below
	// it: near-complete coverage with negligible penalties. A heuristic,
	// not a correctness requirement.
	earlyExitScore = -0.95
)

// particle is one candidate full position assignment with its velocity and
// personal best.
type particle struct {
	pos     []float64
	vel     []float64
	val     float64
	bestPos []float64
	bestVal float64
}

func (p *particle) update() {
	if p.val < p.bestVal {
		p.bestVal = p.val
		copy(p.bestPos, p.pos)
	}
}

// swarm holds the particle population and global best for one optimization
// call. All state is local to the call; nothing is shared.
type swarm struct {
	particles []*particle
	lower     []float64
	upper     []float64
	rng       *rand.Rand

	bestPos []float64
	bestVal float64
	nevals  int
}

// swarmSize returns the population size for a component count.
func swarmSize(componentCount int) int {
	n := particlesPerComponent * componentCount
	if n > maxSwarmSize {
		n = maxSwarmSize
	}
	if n < 1 {
		n = 1
	}
	return n
}

// newSwarm samples n particles uniformly within the per-dimension bounds.
// Velocities start at zero; bests start at +infinity.
func newSwarm(n int, lower, upper []float64, rng *rand.Rand) *swarm {
	ndim := len(lower)
	s := &swarm{
		particles: make([]*particle, n),
		lower:     lower,
		upper:     upper,
		rng:       rng,
		bestPos:   make([]float64, ndim),
		bestVal:   math.Inf(1),
	}
	for i := range s.particles {
		pos := make([]float64, ndim)
		for j := range pos {
			pos[j] = lower[j] + rng.Float64()*(upper[j]-lower[j])
		}
		s.particles[i] = &particle{
			pos:     pos,
			vel:     make([]float64, ndim),
			bestPos: append([]float64{}, pos...),
			bestVal: math.Inf(1),
		}
	}
	return s
}

// step runs one evaluate/update cycle: score every particle, refresh
// personal and global bests, then move the population.
func (s *swarm) step(obj Objectiver) error {
	for _, p := range s.particles {
		val, err := obj.Objective(p.pos)
		if err != nil {
			return err
		}
		s.nevals++
		p.val = val
		p.update()
		if p.bestVal < s.bestVal {
			s.bestVal = p.bestVal
			copy(s.bestPos, p.bestPos)
		}
	}
	s.move()
	return nil
}

// move applies the velocity update and clamps every coordinate back into
// its bound. r1 and r2 are drawn once per particle per step and shared
// across all dimensions, which keeps trajectories reproducible for a seed.
func (s *swarm) move() {
	for _, p := range s.particles {
		r1 := s.rng.Float64()
		r2 := s.rng.Float64()
		for j := range p.vel {
			p.vel[j] = swarmInertia*p.vel[j] +
				swarmCognition*r1*(p.bestPos[j]-p.pos[j]) +
				swarmSocial*r2*(s.bestPos[j]-p.pos[j])
			p.pos[j] += p.vel[j]
			if p.pos[j] < s.lower[j] {
				p.pos[j] = s.lower[j]
			} else if p.pos[j] > s.upper[j] {
				p.pos[j] = s.upper[j]
			}
		}
	}
}
