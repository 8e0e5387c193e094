package binding

import "fmt"

// BlockSize is the width of one device-class block in every enumeration.
const BlockSize = 0x100

const mouseBlock = 1 * BlockSize

// DeviceClass identifies the device block a binding belongs to.
type DeviceClass uint8

const (
	// ClassNone is the class of the Undefined value.
	ClassNone DeviceClass = iota
	// ClassMouse covers mouse buttons, wheel, and cursor.
	ClassMouse
	// ClassUnknown is any value outside the known blocks.
	ClassUnknown
)

// String returns the device class name.
func (c DeviceClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassMouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// Enum is satisfied by the three binding enumerations.
type Enum interface {
	BoolBinding | FloatBinding | Vec2Binding

	Valid() bool
	Class() DeviceClass
	String() string
}

// BoolBinding identifies a raw input that drives a boolean action.
type BoolBinding uint16

const (
	// BoolUndefined is never a valid binding.
	BoolUndefined BoolBinding = 0

	BoolMouseClickLeft BoolBinding = mouseBlock + iota - 1
	BoolMouseClickRight
	BoolMouseClickMiddle
	BoolMouseClickX1
	BoolMouseClickX2
	BoolMouseDoubleClickLeft
	BoolMouseDoubleClickRight
	BoolMouseDoubleClickMiddle
	BoolMouseDoubleClickX1
	BoolMouseDoubleClickX2

	// BoolMouseStart is the first mouse bool binding.
	BoolMouseStart = BoolMouseClickLeft
	// BoolMouseEnd is the last mouse bool binding.
	BoolMouseEnd = BoolMouseDoubleClickX2
)

var boolMouseNames = [...]string{
	"mouse.click.left",
	"mouse.click.right",
	"mouse.click.middle",
	"mouse.click.x1",
	"mouse.click.x2",
	"mouse.double_click.left",
	"mouse.double_click.right",
	"mouse.double_click.middle",
	"mouse.double_click.x1",
	"mouse.double_click.x2",
}

// Class returns the device block of b.
func (b BoolBinding) Class() DeviceClass {
	return classOf(uint16(b), uint16(BoolMouseStart), uint16(BoolMouseEnd))
}

// Valid reports whether b is a concrete binding of a known device class.
func (b BoolBinding) Valid() bool { return b.Class() == ClassMouse }

// IsMouse reports whether b lies in [BoolMouseStart, BoolMouseEnd].
func (b BoolBinding) IsMouse() bool { return b >= BoolMouseStart && b <= BoolMouseEnd }

// String returns the dotted binding name.
func (b BoolBinding) String() string {
	if b.IsMouse() {
		return boolMouseNames[b-BoolMouseStart]
	}
	return undefinedName(uint16(b))
}

// FloatBinding identifies a raw input that drives a scalar action.
type FloatBinding uint16

const (
	// FloatUndefined is never a valid binding.
	FloatUndefined FloatBinding = 0

	FloatMouseWheelUp FloatBinding = mouseBlock + iota - 1
	FloatMouseWheelDown
	FloatMouseWheelHorizontalUp
	FloatMouseWheelHorizontalDown

	// FloatMouseStart is the first mouse float binding.
	FloatMouseStart = FloatMouseWheelUp
	// FloatMouseEnd is the last mouse float binding.
	FloatMouseEnd = FloatMouseWheelHorizontalDown
)

var floatMouseNames = [...]string{
	"mouse.wheel.up",
	"mouse.wheel.down",
	"mouse.hwheel.up",
	"mouse.hwheel.down",
}

// Class returns the device block of b.
func (b FloatBinding) Class() DeviceClass {
	return classOf(uint16(b), uint16(FloatMouseStart), uint16(FloatMouseEnd))
}

// Valid reports whether b is a concrete binding of a known device class.
func (b FloatBinding) Valid() bool { return b.Class() == ClassMouse }

// IsMouse reports whether b lies in [FloatMouseStart, FloatMouseEnd].
func (b FloatBinding) IsMouse() bool { return b >= FloatMouseStart && b <= FloatMouseEnd }

// String returns the dotted binding name.
func (b FloatBinding) String() string {
	if b.IsMouse() {
		return floatMouseNames[b-FloatMouseStart]
	}
	return undefinedName(uint16(b))
}

// Vec2Binding identifies a raw input that drives a 2-vector action.
type Vec2Binding uint16

const (
	// Vec2Undefined is never a valid binding.
	Vec2Undefined Vec2Binding = 0

	// Vec2MouseMoved carries the cursor delta since the previous report.
	Vec2MouseMoved Vec2Binding = mouseBlock + iota - 1
	// Vec2MousePosition carries the absolute cursor position.
	Vec2MousePosition

	// Vec2MouseStart is the first mouse vec2 binding.
	Vec2MouseStart = Vec2MouseMoved
	// Vec2MouseEnd is the last mouse vec2 binding.
	Vec2MouseEnd = Vec2MousePosition
)

var vec2MouseNames = [...]string{
	"mouse.moved",
	"mouse.position",
}

// Class returns the device block of b.
func (b Vec2Binding) Class() DeviceClass {
	return classOf(uint16(b), uint16(Vec2MouseStart), uint16(Vec2MouseEnd))
}

// Valid reports whether b is a concrete binding of a known device class.
func (b Vec2Binding) Valid() bool { return b.Class() == ClassMouse }

// IsMouse reports whether b lies in [Vec2MouseStart, Vec2MouseEnd].
func (b Vec2Binding) IsMouse() bool { return b >= Vec2MouseStart && b <= Vec2MouseEnd }

// String returns the dotted binding name.
func (b Vec2Binding) String() string {
	if b.IsMouse() {
		return vec2MouseNames[b-Vec2MouseStart]
	}
	return undefinedName(uint16(b))
}

func classOf(v, mouseStart, mouseEnd uint16) DeviceClass {
	switch {
	case v == 0:
		return ClassNone
	case v >= mouseStart && v <= mouseEnd:
		return ClassMouse
	default:
		return ClassUnknown
	}
}

func undefinedName(v uint16) string {
	if v == 0 {
		return "undefined"
	}
	return fmt.Sprintf("unknown(0x%04x)", v)
}
