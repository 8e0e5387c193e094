package binding

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBinding is returned when a binding name is not recognized.
var ErrUnknownBinding = errors.New("unknown binding")

var (
	boolByName  = indexNames(boolMouseNames[:], BoolMouseStart)
	floatByName = indexNames(floatMouseNames[:], FloatMouseStart)
	vec2ByName  = indexNames(vec2MouseNames[:], Vec2MouseStart)
)

func indexNames[B Enum](names []string, start B) map[string]B {
	m := make(map[string]B, len(names))
	for i, n := range names {
		m[n] = start + B(i)
	}
	return m
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseBool parses a dotted bool binding name such as "mouse.click.left".
func ParseBool(name string) (BoolBinding, error) {
	if b, ok := boolByName[normalize(name)]; ok {
		return b, nil
	}
	return BoolUndefined, fmt.Errorf("%w: bool %q", ErrUnknownBinding, name)
}

// ParseFloat parses a dotted float binding name such as "mouse.wheel.up".
func ParseFloat(name string) (FloatBinding, error) {
	if b, ok := floatByName[normalize(name)]; ok {
		return b, nil
	}
	return FloatUndefined, fmt.Errorf("%w: float %q", ErrUnknownBinding, name)
}

// ParseVec2 parses a dotted vec2 binding name such as "mouse.moved".
func ParseVec2(name string) (Vec2Binding, error) {
	if b, ok := vec2ByName[normalize(name)]; ok {
		return b, nil
	}
	return Vec2Undefined, fmt.Errorf("%w: vec2 %q", ErrUnknownBinding, name)
}

// AllBool returns every valid bool binding in ascending order.
func AllBool() []BoolBinding { return span(BoolMouseStart, BoolMouseEnd) }

// AllFloat returns every valid float binding in ascending order.
func AllFloat() []FloatBinding { return span(FloatMouseStart, FloatMouseEnd) }

// AllVec2 returns every valid vec2 binding in ascending order.
func AllVec2() []Vec2Binding { return span(Vec2MouseStart, Vec2MouseEnd) }

func span[B Enum](first, last B) []B {
	out := make([]B, 0, int(last-first)+1)
	for b := first; b <= last; b++ {
		out = append(out, b)
	}
	return out
}
