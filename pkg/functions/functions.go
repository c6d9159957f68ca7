// Package functions is a catalog of named curves scaled to a surface.
//
// Every curve reads the surface size when evaluated so it keeps its shape
// when the surface is resized.
package functions

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/roffe/plotpad/pkg/graph"
)

const None = "none"

var ErrUnknown = errors.New("unknown function")

type Sizer interface {
	Size() (w, h int)
}

type SizeFunc func() (w, h int)

func (f SizeFunc) Size() (int, int) {
	return f()
}

// Fixed returns a Sizer with a constant size.
func Fixed(w, h int) Sizer {
	return SizeFunc(func() (int, int) { return w, h })
}

type builder func(s Sizer) graph.Func

var catalog = map[string]builder{
	"identity": func(Sizer) graph.Func {
		return func(x float64) float64 { return x }
	},
	"half": func(Sizer) graph.Func {
		return func(x float64) float64 { return x / 2 }
	},
	"sine": func(s Sizer) graph.Func {
		return func(x float64) float64 {
			w, h := dims(s)
			return h/2 + h/4*math.Sin(2*math.Pi*x/w)
		}
	},
	"parabola": func(s Sizer) graph.Func {
		return func(x float64) float64 {
			w, h := dims(s)
			u := x / w
			return h * u * u
		}
	},
	"sigmoid": func(s Sizer) graph.Func {
		return func(x float64) float64 {
			w, h := dims(s)
			return h / (1 + math.Exp(-(x-w/2)/(w/10)))
		}
	},
	"relu": func(s Sizer) graph.Func {
		return func(x float64) float64 {
			w, _ := dims(s)
			return math.Max(0, x-w/2)
		}
	},
}

// dims returns the surface size with a zero width replaced by one.
func dims(s Sizer) (float64, float64) {
	w, h := s.Size()
	if w <= 0 {
		w = 1
	}
	return float64(w), float64(h)
}

// Lookup returns the named curve for surface s. None and the empty string
// return a nil Func, meaning no curve.
func Lookup(name string, s Sizer) (graph.Func, error) {
	if name == None || name == "" {
		return nil, nil
	}
	b, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return b(s), nil
}

// Names returns the catalog names sorted, None first.
func Names() []string {
	names := make([]string, 0, len(catalog)+1)
	for k := range catalog {
		names = append(names, k)
	}
	sort.Strings(names)
	return append([]string{None}, names...)
}
