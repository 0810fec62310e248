package enclose

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSeed is the constant the fallback sampler is seeded with on every
// query call. A fixed seed makes the retry direction sequence identical
// across repeated invocations, which keeps degenerate cases easy to debug.
const DefaultSeed = 1340818006

// SphereSampler yields a deterministic sequence of uniformly distributed
// unit vectors. Each containment query builds its own sampler, so samplers
// are never shared between goroutines.
type SphereSampler struct {
	rng *rand.Rand
}

// NewSphereSampler returns a sampler producing the sequence for the given seed.
func NewSphereSampler(seed int64) *SphereSampler {
	return &SphereSampler{rng: rand.New(rand.NewSource(seed))}
}

// NextDirection returns the next uniformly distributed point on the unit
// sphere, using the cylinder projection method (Archimedes): z uniform in
// [-1, 1], angle uniform in [0, 2π).
func (s *SphereSampler) NextDirection() mgl64.Vec3 {
	z := 2*s.rng.Float64() - 1
	theta := 2 * math.Pi * s.rng.Float64()
	r := math.Sqrt(1 - z*z)
	return mgl64.Vec3{r * math.Cos(theta), r * math.Sin(theta), z}
}
