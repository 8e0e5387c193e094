package win32

import "github.com/dshills/actionmap/internal/input/binding"

// Button identifies a physical mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonX1
	ButtonX2

	buttonCount
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case ButtonX1:
		return "x1"
	case ButtonX2:
		return "x2"
	default:
		return "none"
	}
}

// ClickBinding returns the single-click binding of b.
func (b Button) ClickBinding() binding.BoolBinding {
	if b >= buttonCount {
		return binding.BoolUndefined
	}
	return binding.BoolMouseClickLeft + binding.BoolBinding(b)
}

// DoubleClickBinding returns the double-click binding of b.
func (b Button) DoubleClickBinding() binding.BoolBinding {
	if b >= buttonCount {
		return binding.BoolUndefined
	}
	return binding.BoolMouseDoubleClickLeft + binding.BoolBinding(b)
}

// rawTransitions lists the raw down/up flag pair of every button in the order
// the decoder applies them.
var rawTransitions = [buttonCount]struct {
	down, up uint16
}{
	ButtonLeft:   {RawLeftDown, RawLeftUp},
	ButtonRight:  {RawRightDown, RawRightUp},
	ButtonMiddle: {RawMiddleDown, RawMiddleUp},
	ButtonX1:     {RawX1Down, RawX1Up},
	ButtonX2:     {RawX2Down, RawX2Up},
}

// xButton maps the XBUTTON word of an X button message.
func xButton(wParam uintptr) (Button, bool) {
	switch hiWord(wParam) {
	case XButton1:
		return ButtonX1, true
	case XButton2:
		return ButtonX2, true
	default:
		return 0, false
	}
}
