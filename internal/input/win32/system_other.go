//go:build !windows

package win32

import "time"

// DoubleClickInterval returns the Windows default double-click time.
func DoubleClickInterval() time.Duration { return defaultDoubleClickInterval }

// SystemRawInputReader returns a reader that never yields a report; WM_INPUT
// only exists on Windows.
func SystemRawInputReader() RawInputReader {
	return RawInputReaderFunc(func(uintptr) (RawMouse, bool) { return RawMouse{}, false })
}

func registerRawMouse(HWND, uint32) error { return nil }
