// Package win32 decodes Win32 mouse messages into binding events.
//
// A Decoder receives the raw (hwnd, msg, wParam, lParam) tuple from a window
// procedure, classifies it, and forwards semantic events to a Sink, normally
// an *action.System. It understands both raw input (WM_INPUT) and the legacy
// WM_*BUTTON*, WM_MOUSEMOVE and wheel messages.
//
// # Clicks
//
// Buttons follow Up → Down → Up. A down report for a button that is already
// down is a repeat and ignored; a release without a matching press is ignored
// too. Each release emits the button's click binding, unless it is the second
// release within the double-click interval, in which case the double-click
// binding is emitted instead (DoubleClickReplace) or in addition
// (DoubleClickBoth).
//
// # Cursor
//
// Relative motion is forwarded as Vec2MouseMoved. Absolute motion emits the
// delta from the last known position as Vec2MouseMoved and the position itself
// as Vec2MousePosition.
//
// # Windows
//
// A Router replaces the per-window user-data lookup: window procedures call
// Router.WndProc and the router finds the decoder attached to that window.
//
// Only the OS queries (GetDoubleClickTime, GetRawInputData,
// RegisterRawInputDevices) are Windows specific; the decoder itself builds and
// is tested on every platform.
package win32
