package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/internal/input/win32"
)

// buttonMessages maps tcell buttons to the window messages of the same
// physical button.
var buttonMessages = [...]struct {
	mask     tcell.ButtonMask
	down, up uint32
	wParam   uintptr
}{
	{tcell.Button1, win32.MsgLButtonDown, win32.MsgLButtonUp, 0},
	{tcell.Button2, win32.MsgRButtonDown, win32.MsgRButtonUp, 0},
	{tcell.Button3, win32.MsgMButtonDown, win32.MsgMButtonUp, 0},
	{tcell.Button4, win32.MsgXButtonDown, win32.MsgXButtonUp, win32.MakeXButtonWParam(win32.XButton1)},
	{tcell.Button5, win32.MsgXButtonDown, win32.MsgXButtonUp, win32.MakeXButtonWParam(win32.XButton2)},
}

const trackedButtons = tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.Button4 | tcell.Button5

// mouseTranslator turns tcell mouse reports, which carry the full button
// state, into the edge-triggered messages a window procedure receives.
type mouseTranslator struct {
	buttons tcell.ButtonMask
	x, y    int
	havePos bool
}

func (t *mouseTranslator) translate(ev *tcell.EventMouse) []win32.Message {
	x, y := ev.Position()
	at := ev.When()
	lParam := win32.MakeLParam(int16(x), int16(y))

	msg := func(m uint32, wParam uintptr) win32.Message {
		return win32.Message{Hwnd: terminalWindow, Msg: m, WParam: wParam, LParam: lParam, Time: at}
	}

	var msgs []win32.Message
	if !t.havePos || x != t.x || y != t.y {
		msgs = append(msgs, msg(win32.MsgMouseMove, 0))
		t.x, t.y, t.havePos = x, y, true
	}

	buttons := ev.Buttons()
	pressed := buttons & trackedButtons
	for _, bm := range buttonMessages {
		was := t.buttons&bm.mask != 0
		is := pressed&bm.mask != 0
		switch {
		case is && !was:
			msgs = append(msgs, msg(bm.down, bm.wParam))
		case was && !is:
			msgs = append(msgs, msg(bm.up, bm.wParam))
		}
	}
	t.buttons = pressed

	if buttons&tcell.WheelUp != 0 {
		msgs = append(msgs, msg(win32.MsgMouseWheel, win32.MakeWheelWParam(win32.WheelDelta)))
	}
	if buttons&tcell.WheelDown != 0 {
		msgs = append(msgs, msg(win32.MsgMouseWheel, win32.MakeWheelWParam(-win32.WheelDelta)))
	}
	if buttons&tcell.WheelRight != 0 {
		msgs = append(msgs, msg(win32.MsgMouseHWheel, win32.MakeWheelWParam(win32.WheelDelta)))
	}
	if buttons&tcell.WheelLeft != 0 {
		msgs = append(msgs, msg(win32.MsgMouseHWheel, win32.MakeWheelWParam(-win32.WheelDelta)))
	}

	return msgs
}

// reset forgets held buttons, for example after focus loss.
func (t *mouseTranslator) reset() {
	t.buttons = 0
}
