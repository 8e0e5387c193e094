package win32

// RawMouse is the portable subset of a RAWMOUSE report.
type RawMouse struct {
	// Flags holds MouseMove* bits.
	Flags uint16
	// ButtonFlags holds Raw* transition bits.
	ButtonFlags uint16
	// ButtonData is the signed wheel delta when RawWheel or RawHWheel is set.
	ButtonData int16
	// LastX and LastY are a relative delta or, with MouseMoveAbsolute, a
	// normalized absolute position.
	LastX int32
	LastY int32
}

// RawInputReader reads the mouse report behind a WM_INPUT lParam.
type RawInputReader interface {
	// ReadRawInput returns false when the handle is not a mouse report or
	// cannot be read.
	ReadRawInput(handle uintptr) (RawMouse, bool)
}

// RawInputReaderFunc adapts a function to RawInputReader.
type RawInputReaderFunc func(handle uintptr) (RawMouse, bool)

// ReadRawInput calls f.
func (f RawInputReaderFunc) ReadRawInput(handle uintptr) (RawMouse, bool) {
	return f(handle)
}

// Raw input registration constants.
const (
	usagePageGeneric = 0x01
	usageMouse       = 0x02
	ridevRemove      = 0x00000001
)

// RawInputRegistrar registers the mouse for raw input on a window. It
// implements action.Platform.
type RawInputRegistrar struct {
	hwnd HWND
}

// NewRawInputRegistrar returns a registrar delivering WM_INPUT to hwnd.
func NewRawInputRegistrar(hwnd HWND) *RawInputRegistrar {
	return &RawInputRegistrar{hwnd: hwnd}
}

// Register subscribes the window to raw mouse input.
func (r *RawInputRegistrar) Register() error {
	return registerRawMouse(r.hwnd, 0)
}

// Unregister removes the raw mouse subscription.
func (r *RawInputRegistrar) Unregister() {
	_ = registerRawMouse(0, ridevRemove)
}
