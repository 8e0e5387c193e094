package win32

// HWND identifies a window.
type HWND uintptr

// Window messages handled by the decoder.
const (
	MsgKillFocus      uint32 = 0x0008 // WM_KILLFOCUS
	MsgInput          uint32 = 0x00FF // WM_INPUT
	MsgMouseMove      uint32 = 0x0200 // WM_MOUSEMOVE
	MsgLButtonDown    uint32 = 0x0201 // WM_LBUTTONDOWN
	MsgLButtonUp      uint32 = 0x0202 // WM_LBUTTONUP
	MsgLButtonDblClk  uint32 = 0x0203 // WM_LBUTTONDBLCLK
	MsgRButtonDown    uint32 = 0x0204 // WM_RBUTTONDOWN
	MsgRButtonUp      uint32 = 0x0205 // WM_RBUTTONUP
	MsgRButtonDblClk  uint32 = 0x0206 // WM_RBUTTONDBLCLK
	MsgMButtonDown    uint32 = 0x0207 // WM_MBUTTONDOWN
	MsgMButtonUp      uint32 = 0x0208 // WM_MBUTTONUP
	MsgMButtonDblClk  uint32 = 0x0209 // WM_MBUTTONDBLCLK
	MsgMouseWheel     uint32 = 0x020A // WM_MOUSEWHEEL
	MsgXButtonDown    uint32 = 0x020B // WM_XBUTTONDOWN
	MsgXButtonUp      uint32 = 0x020C // WM_XBUTTONUP
	MsgXButtonDblClk  uint32 = 0x020D // WM_XBUTTONDBLCLK
	MsgMouseHWheel    uint32 = 0x020E // WM_MOUSEHWHEEL
	MsgCaptureChanged uint32 = 0x0215 // WM_CAPTURECHANGED
)

// XBUTTON identifiers carried in the high word of wParam.
const (
	XButton1 = 0x0001
	XButton2 = 0x0002
)

// WheelDelta is one wheel notch.
const WheelDelta = 120

// Raw mouse button flags (RAWMOUSE.usButtonFlags).
const (
	RawLeftDown   uint16 = 0x0001
	RawLeftUp     uint16 = 0x0002
	RawRightDown  uint16 = 0x0004
	RawRightUp    uint16 = 0x0008
	RawMiddleDown uint16 = 0x0010
	RawMiddleUp   uint16 = 0x0020
	RawX1Down     uint16 = 0x0040
	RawX1Up       uint16 = 0x0080
	RawX2Down     uint16 = 0x0100
	RawX2Up       uint16 = 0x0200
	RawWheel      uint16 = 0x0400
	RawHWheel     uint16 = 0x0800
)

// Raw mouse movement flags (RAWMOUSE.usFlags).
const (
	MouseMoveRelative      uint16 = 0x00
	MouseMoveAbsolute      uint16 = 0x01
	MouseVirtualDesktop    uint16 = 0x02
	MouseAttributesChanged uint16 = 0x04
)

func loWord(v uintptr) uint16 { return uint16(v & 0xFFFF) }

func hiWord(v uintptr) uint16 { return uint16((v >> 16) & 0xFFFF) }

// pointFromLParam unpacks signed client coordinates (GET_X_LPARAM and
// GET_Y_LPARAM).
func pointFromLParam(lParam uintptr) (x, y int16) {
	return int16(loWord(lParam)), int16(hiWord(lParam))
}

// MakeLParam packs two 16-bit values the way MAKELPARAM does.
func MakeLParam(lo, hi int16) uintptr {
	return uintptr(uint16(lo)) | uintptr(uint16(hi))<<16
}

// MakeWheelWParam builds the wParam of a wheel message carrying delta.
func MakeWheelWParam(delta int16) uintptr {
	return uintptr(uint16(delta)) << 16
}

// MakeXButtonWParam builds the wParam of an X button message.
func MakeXButtonWParam(xbutton uint16) uintptr {
	return uintptr(xbutton) << 16
}
