package waveedit

import (
	"math"
	"math/rand/v2"

	"github.com/viterin/vek/vek32"
	"github.com/wavedraw/wavedraw"
)

type (
	// Generator fills samples[start:end] with a new shape. Generators are
	// picked by the randomize action, either by index or randomly, weighted by
	// Weight.
	Generator struct {
		Name     string
		Weight   int
		Generate func(samples []int, start, end int, rng *rand.Rand)
	}

	// GeneratorPolicy is the Int that selects the generator used by
	// Randomize; RandomGenerator picks one randomly.
	GeneratorPolicy Model
)

// RandomGenerator is the generator policy value for a weighted random choice.
const RandomGenerator = -1

const maxHarmonics = 8

// DefaultGenerators returns the built-in generators.
func DefaultGenerators() []Generator {
	return []Generator{
		{Name: "sine", Weight: 2, Generate: periodic(func(ph float64) float64 { return math.Sin(2 * math.Pi * ph) })},
		{Name: "triangle", Weight: 2, Generate: periodic(func(ph float64) float64 { return 1 - 4*math.Abs(ph-0.5) })},
		{Name: "square", Weight: 2, Generate: periodic(func(ph float64) float64 {
			if ph < 0.5 {
				return 1
			}
			return -1
		})},
		{Name: "saw", Weight: 2, Generate: periodic(func(ph float64) float64 { return 2*ph - 1 })},
		{Name: "noise", Weight: 1, Generate: noise},
		{Name: "random walk", Weight: 3, Generate: randomWalk},
		{Name: "harmonics", Weight: 4, Generate: harmonics},
	}
}

// Generators returns the generators available to Randomize.
func (m *Model) Generators() []Generator { return m.generators }

// SetGenerators replaces the generators available to Randomize.
func (m *Model) SetGenerators(g []Generator) {
	m.generators = g
	m.generator = max(min(m.generator, len(g)-1), RandomGenerator)
}

func (m *Model) pickGenerator() (Generator, bool) {
	if len(m.generators) == 0 {
		return Generator{}, false
	}
	if m.generator >= 0 && m.generator < len(m.generators) {
		return m.generators[m.generator], true
	}
	total := 0
	for _, g := range m.generators {
		total += max(g.Weight, 0)
	}
	if total == 0 {
		return m.generators[m.rand.IntN(len(m.generators))], true
	}
	r := m.rand.IntN(total)
	for _, g := range m.generators {
		if r < max(g.Weight, 0) {
			return g, true
		}
		r -= max(g.Weight, 0)
	}
	return m.generators[len(m.generators)-1], true
}

// periodic returns a generator drawing one period of f, f mapping a phase in
// [0,1) to [-1,1], with a random amplitude.
func periodic(f func(phase float64) float64) func([]int, int, int, *rand.Rand) {
	return func(samples []int, start, end int, rng *rand.Rand) {
		n := end - start
		amp := float64(wavedraw.MaxSample) * (0.5 + 0.5*rng.Float64())
		for i := start; i < end; i++ {
			samples[i] = roundHalfUp(amp * f(float64(i-start)/float64(n)))
		}
	}
}

func noise(samples []int, start, end int, rng *rand.Rand) {
	for i := start; i < end; i++ {
		samples[i] = rng.IntN(wavedraw.NumLevels) + wavedraw.MinSample
	}
}

func randomWalk(samples []int, start, end int, rng *rand.Rand) {
	v := 0
	for i := start; i < end; i++ {
		v = wavedraw.ClampSample(v + rng.IntN(7) - 3)
		samples[i] = v
	}
}

// harmonics sums a few sines with random amplitudes and phases and normalizes
// the result to the full sample range.
func harmonics(samples []int, start, end int, rng *rand.Rand) {
	n := end - start
	if n <= 0 {
		return
	}
	acc := vek32.Zeros(n)
	tmp := make([]float32, n)
	for h := 1; h <= maxHarmonics; h++ {
		phase := rng.Float64()
		for i := range tmp {
			tmp[i] = float32(math.Sin(2 * math.Pi * (float64(h*i)/float64(n) + phase)))
		}
		vek32.MulNumber_Inplace(tmp, float32(rng.Float64()/float64(h)))
		vek32.Add_Inplace(acc, tmp)
	}
	if peak := max(vek32.Max(acc), -vek32.Min(acc)); peak > 0 {
		vek32.MulNumber_Inplace(acc, wavedraw.MaxSample/peak)
	}
	for i, v := range acc {
		samples[start+i] = roundHalfUp(float64(v))
	}
}

// GeneratorPolicy returns the Int selecting the generator used by Randomize.
func (m *Model) GeneratorPolicy() *GeneratorPolicy { return (*GeneratorPolicy)(m) }

func (v *GeneratorPolicy) Int() Int           { return Int{v} }
func (v *GeneratorPolicy) Value() int         { return v.generator }
func (v *GeneratorPolicy) setValue(value int) { v.generator = value }
func (v *GeneratorPolicy) Range() IntRange {
	return IntRange{RandomGenerator, len(v.generators) - 1}
}

// Name returns the name of the selected generator, or "random".
func (v *GeneratorPolicy) Name() string {
	if v.generator >= 0 && v.generator < len(v.generators) {
		return v.generators[v.generator].Name
	}
	return "random"
}
