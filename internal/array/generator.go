package array

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

const (
	DefaultSize = 50
	DefaultMin  = 1
	DefaultMax  = 100
)

var ErrInvalidBounds = errors.New("array: invalid generator bounds")

// Shape selects the initial ordering of generated values.
type Shape string

const (
	ShapeRandom       Shape = "random"
	ShapeSorted       Shape = "sorted"
	ShapeReversed     Shape = "reversed"
	ShapeNearlySorted Shape = "nearly_sorted"
	ShapeFewUnique    Shape = "few_unique"
)

var shapes = []Shape{ShapeRandom, ShapeSorted, ShapeReversed, ShapeNearlySorted, ShapeFewUnique}

// Shapes lists the supported shapes.
func Shapes() []Shape { return slices.Clone(shapes) }

func ParseShape(s string) (Shape, error) {
	if s == "" {
		return ShapeRandom, nil
	}
	for _, sh := range shapes {
		if string(sh) == s {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q (available: %v)", s, shapes)
}

type Spec struct {
	Size  int
	Min   int
	Max   int
	Shape Shape
}

func DefaultSpec() Spec {
	return Spec{Size: DefaultSize, Min: DefaultMin, Max: DefaultMax, Shape: ShapeRandom}
}

func (s Spec) Validate() error {
	if s.Size < 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidBounds, s.Size)
	}
	if s.Min < 1 {
		return fmt.Errorf("%w: min %d must be positive", ErrInvalidBounds, s.Min)
	}
	if s.Max < s.Min {
		return fmt.Errorf("%w: max %d below min %d", ErrInvalidBounds, s.Max, s.Min)
	}
	return nil
}

// Generator produces fresh sequences. It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (g *Generator) Generate(spec Spec) ([]int, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Shape == "" {
		spec.Shape = ShapeRandom
	}

	values := make([]int, spec.Size)
	span := spec.Max - spec.Min + 1

	switch spec.Shape {
	case ShapeRandom, ShapeSorted, ShapeReversed, ShapeNearlySorted:
		for i := range values {
			values[i] = spec.Min + g.rng.IntN(span)
		}
	case ShapeFewUnique:
		pool := make([]int, min(4, span))
		for i := range pool {
			pool[i] = spec.Min + g.rng.IntN(span)
		}
		for i := range values {
			values[i] = pool[g.rng.IntN(len(pool))]
		}
	default:
		return nil, fmt.Errorf("unknown shape %q", spec.Shape)
	}

	switch spec.Shape {
	case ShapeSorted:
		slices.Sort(values)
	case ShapeReversed:
		slices.Sort(values)
		slices.Reverse(values)
	case ShapeNearlySorted:
		slices.Sort(values)
		for k := 0; k < len(values)/10+1 && len(values) > 1; k++ {
			i := g.rng.IntN(len(values) - 1)
			values[i], values[i+1] = values[i+1], values[i]
		}
	}

	return values, nil
}
