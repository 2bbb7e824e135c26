package scene

import (
	"fmt"
	"math"
	"strings"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Easing functions.
var (
	EaseLinear Easing = func(t float64) float64 { return t }

	EaseQuadIn  Easing = func(t float64) float64 { return t * t }
	EaseQuadOut Easing = func(t float64) float64 { return t * (2 - t) }
	EaseQuadInOut Easing = func(t float64) float64 {
		t *= 2
		if t <= 1 {
			return t * t / 2
		}
		t--
		return (t*(2-t) + 1) / 2
	}

	EaseCubicIn  Easing = func(t float64) float64 { return t * t * t }
	EaseCubicOut Easing = func(t float64) float64 { t--; return t*t*t + 1 }
	EaseCubicInOut Easing = func(t float64) float64 {
		t *= 2
		if t <= 1 {
			return t * t * t / 2
		}
		t -= 2
		return (t*t*t + 2) / 2
	}

	EaseSinIn    Easing = func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }
	EaseSinOut   Easing = func(t float64) float64 { return math.Sin(t * math.Pi / 2) }
	EaseSinInOut Easing = func(t float64) float64 { return (1 - math.Cos(math.Pi*t)) / 2 }

	EaseExpIn  Easing = func(t float64) float64 { return math.Pow(2, 10*t-10) }
	EaseExpOut Easing = func(t float64) float64 { return 1 - math.Pow(2, -10*t) }

	EaseCircleIn  Easing = func(t float64) float64 { return 1 - math.Sqrt(1-t*t) }
	EaseCircleOut Easing = func(t float64) float64 { t--; return math.Sqrt(1 - t*t) }
)

var easings = map[string]Easing{
	"linear":       EaseLinear,
	"quad-in":      EaseQuadIn,
	"quad-out":     EaseQuadOut,
	"quad-in-out":  EaseQuadInOut,
	"cubic-in":     EaseCubicIn,
	"cubic-out":    EaseCubicOut,
	"cubic-in-out": EaseCubicInOut,
	"sin-in":       EaseSinIn,
	"sin-out":      EaseSinOut,
	"sin-in-out":   EaseSinInOut,
	"exp-in":       EaseExpIn,
	"exp-out":      EaseExpOut,
	"circle-in":    EaseCircleIn,
	"circle-out":   EaseCircleOut,
}

// ParseEasing returns the easing function with the given name, for
// example "cubic-in-out". Bare names such as "cubic" mean the in-out
// variant.
func ParseEasing(name string) (Easing, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EaseCubicInOut, nil
	}
	if e, ok := easings[name]; ok {
		return e, nil
	}
	if e, ok := easings[name+"-in-out"]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("scene: unknown easing %q", name)
}
