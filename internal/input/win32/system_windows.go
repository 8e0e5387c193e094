//go:build windows

package win32

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetDoubleClickTime      = user32.NewProc("GetDoubleClickTime")
	procGetRawInputData         = user32.NewProc("GetRawInputData")
	procRegisterRawInputDevices = user32.NewProc("RegisterRawInputDevices")
)

const (
	ridInput      = 0x10000003
	rimTypeMouse  = 0
	errorReturned = ^uint32(0)
)

type rawInputHeader struct {
	Type   uint32
	Size   uint32
	Device windows.Handle
	WParam uintptr
}

// rawMouse mirrors RAWMOUSE; the padding aligns the button union.
type rawMouse struct {
	Flags            uint16
	_                uint16
	ButtonFlags      uint16
	ButtonData       uint16
	RawButtons       uint32
	LastX            int32
	LastY            int32
	ExtraInformation uint32
}

type rawInput struct {
	Header rawInputHeader
	Mouse  rawMouse
}

type rawInputDevice struct {
	UsagePage uint16
	Usage     uint16
	Flags     uint32
	Target    HWND
}

// DoubleClickInterval returns the user's double-click time.
func DoubleClickInterval() time.Duration {
	if err := procGetDoubleClickTime.Find(); err != nil {
		return defaultDoubleClickInterval
	}
	ms, _, _ := procGetDoubleClickTime.Call()
	if ms == 0 {
		return defaultDoubleClickInterval
	}
	return time.Duration(ms) * time.Millisecond
}

type user32Reader struct{}

// SystemRawInputReader reads WM_INPUT handles with GetRawInputData.
func SystemRawInputReader() RawInputReader { return user32Reader{} }

func (user32Reader) ReadRawInput(handle uintptr) (RawMouse, bool) {
	var ri rawInput
	size := uint32(unsafe.Sizeof(ri))
	r1, _, _ := procGetRawInputData.Call(
		handle,
		ridInput,
		uintptr(unsafe.Pointer(&ri)),
		uintptr(unsafe.Pointer(&size)),
		unsafe.Sizeof(ri.Header),
	)
	if uint32(r1) == errorReturned || ri.Header.Type != rimTypeMouse {
		return RawMouse{}, false
	}
	return RawMouse{
		Flags:       ri.Mouse.Flags,
		ButtonFlags: ri.Mouse.ButtonFlags,
		ButtonData:  int16(ri.Mouse.ButtonData),
		LastX:       ri.Mouse.LastX,
		LastY:       ri.Mouse.LastY,
	}, true
}

func registerRawMouse(hwnd HWND, flags uint32) error {
	dev := rawInputDevice{
		UsagePage: usagePageGeneric,
		Usage:     usageMouse,
		Flags:     flags,
		Target:    hwnd,
	}
	r1, _, err := procRegisterRawInputDevices.Call(
		uintptr(unsafe.Pointer(&dev)),
		1,
		unsafe.Sizeof(dev),
	)
	if r1 == 0 {
		return fmt.Errorf("RegisterRawInputDevices: %w", err)
	}
	return nil
}
