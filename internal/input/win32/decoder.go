package win32

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/actionmap/internal/input/binding"
	"github.com/dshills/actionmap/internal/logging"
)

// Sink receives decoded events. *action.System implements it.
type Sink interface {
	TriggerBool(b binding.BoolBinding, v bool) int
	TriggerFloat(b binding.FloatBinding, v float32) int
	TriggerVec2(b binding.Vec2Binding, v binding.Vec2) int
}

// DoubleClickPolicy decides what the second release of a double click emits.
type DoubleClickPolicy uint8

const (
	// DoubleClickReplace emits only the double-click binding.
	DoubleClickReplace DoubleClickPolicy = iota
	// DoubleClickBoth emits the click binding followed by the double-click
	// binding.
	DoubleClickBoth
)

// String returns the policy name used in binding files.
func (p DoubleClickPolicy) String() string {
	switch p {
	case DoubleClickReplace:
		return "replace"
	case DoubleClickBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseDoubleClickPolicy parses a policy name. The empty string selects
// DoubleClickReplace.
func ParseDoubleClickPolicy(s string) (DoubleClickPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return DoubleClickReplace, nil
	case "both":
		return DoubleClickBoth, nil
	default:
		return DoubleClickReplace, fmt.Errorf("unknown double click policy %q", s)
	}
}

// Message is one window message.
type Message struct {
	Hwnd   HWND
	Msg    uint32
	WParam uintptr
	LParam uintptr

	// Time is when the message was posted. The decoder clock is used when
	// it is zero.
	Time time.Time
}

// Config configures a Decoder.
type Config struct {
	// DoubleClickInterval is the longest time between two releases that
	// still forms a double click. Zero selects the OS setting.
	DoubleClickInterval time.Duration

	// DoubleClickPolicy selects what a double click emits.
	DoubleClickPolicy DoubleClickPolicy
}

// DefaultConfig returns the OS double-click interval with DoubleClickReplace.
func DefaultConfig() Config {
	return Config{
		DoubleClickInterval: DoubleClickInterval(),
		DoubleClickPolicy:   DoubleClickReplace,
	}
}

// Option configures a Decoder beyond Config.
type Option func(*Decoder)

// WithClock replaces time.Now as the decoder clock.
func WithClock(now func() time.Time) Option {
	return func(d *Decoder) {
		if now != nil {
			d.now = now
		}
	}
}

// WithRawInputReader sets how WM_INPUT handles are read.
func WithRawInputReader(r RawInputReader) Option {
	return func(d *Decoder) {
		if r != nil {
			d.reader = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l.WithComponent("win32")
		}
	}
}

// Decoder turns window messages into binding events. It only keeps raw
// protocol bookkeeping; action state lives in the Sink.
type Decoder struct {
	sink   Sink
	reader RawInputReader
	policy DoubleClickPolicy
	now    func() time.Time
	logger *logging.Logger

	interval time.Duration
	clicks   *clickTracker

	down       [buttonCount]bool
	pressStart [buttonCount]time.Time

	// Client-area pixels from WM_MOUSEMOVE and raw absolute reports in
	// normalized 0..65535 units are separate coordinate spaces.
	clientPos     binding.Vec2
	haveClientPos bool
	rawPos        binding.Vec2
	haveRawPos    bool

	// rawSeen is set once a raw report arrives. From then on the raw stream
	// owns motion deltas and wheel notches, and legacy messages only carry
	// the client cursor position.
	rawSeen bool
}

// NewDecoder creates a decoder that forwards events to sink.
func NewDecoder(sink Sink, cfg Config, opts ...Option) *Decoder {
	if cfg.DoubleClickInterval <= 0 {
		cfg.DoubleClickInterval = DoubleClickInterval()
	}
	d := &Decoder{
		sink:     sink,
		reader:   SystemRawInputReader(),
		policy:   cfg.DoubleClickPolicy,
		now:      time.Now,
		logger:   logging.Default().WithComponent("win32"),
		interval: cfg.DoubleClickInterval,
		clicks:   newClickTracker(cfg.DoubleClickInterval),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Interval returns the double-click interval in use.
func (d *Decoder) Interval() time.Duration { return d.interval }

// IsDown reports whether b is currently held.
func (d *Decoder) IsDown(b Button) bool {
	return b < buttonCount && d.down[b]
}

// CursorPosition returns the last client-area cursor position, if one is
// known.
func (d *Decoder) CursorPosition() (binding.Vec2, bool) {
	return d.clientPos, d.haveClientPos
}

// SetCursorPosition seeds the last client-area cursor position, for example
// from GetCursorPos when the window gains focus.
func (d *Decoder) SetCursorPosition(p binding.Vec2) {
	d.clientPos = p
	d.haveClientPos = true
}

// Reset forgets held buttons, pending double clicks and the cursor
// positions.
func (d *Decoder) Reset() {
	d.down = [buttonCount]bool{}
	d.pressStart = [buttonCount]time.Time{}
	d.clicks.reset()
	d.clientPos, d.haveClientPos = binding.Vec2{}, false
	d.rawPos, d.haveRawPos = binding.Vec2{}, false
}

// Inherit copies the held buttons, pending double clicks, cursor positions
// and stream state of prev into d. It is used when a decoder replaces
// another one mid-stream so that a release after the swap still completes
// its click. The double-click interval and policy of d are kept.
func (d *Decoder) Inherit(prev *Decoder) {
	if prev == nil || prev == d {
		return
	}
	d.down = prev.down
	d.pressStart = prev.pressStart
	d.clicks.lastRelease = prev.clicks.lastRelease
	d.clicks.pending = prev.clicks.pending
	d.clientPos, d.haveClientPos = prev.clientPos, prev.haveClientPos
	d.rawPos, d.haveRawPos = prev.rawPos, prev.haveRawPos
	d.rawSeen = prev.rawSeen
}

// ProcessPlatformMessage decodes one window message. handled is false when
// the caller should still pass the message to DefWindowProc.
func (d *Decoder) ProcessPlatformMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) (result uintptr, handled bool) {
	return d.ProcessMessage(Message{Hwnd: hwnd, Msg: msg, WParam: wParam, LParam: lParam})
}

// ProcessMessage is ProcessPlatformMessage for a Message value.
func (d *Decoder) ProcessMessage(m Message) (result uintptr, handled bool) {
	at := m.Time
	if at.IsZero() {
		at = d.now()
	}

	switch m.Msg {
	case MsgInput:
		d.processRawInput(m.LParam, at)
		// Raw input must still reach DefWindowProc for cleanup.
		return 0, false

	case MsgMouseMove:
		x, y := pointFromLParam(m.LParam)
		d.moveClient(binding.Vec2{X: float32(x), Y: float32(y)})
		return 0, true

	case MsgLButtonDown, MsgLButtonDblClk:
		d.press(ButtonLeft, at)
		return 0, true
	case MsgLButtonUp:
		d.release(ButtonLeft, at)
		return 0, true
	case MsgRButtonDown, MsgRButtonDblClk:
		d.press(ButtonRight, at)
		return 0, true
	case MsgRButtonUp:
		d.release(ButtonRight, at)
		return 0, true
	case MsgMButtonDown, MsgMButtonDblClk:
		d.press(ButtonMiddle, at)
		return 0, true
	case MsgMButtonUp:
		d.release(ButtonMiddle, at)
		return 0, true

	case MsgXButtonDown, MsgXButtonDblClk, MsgXButtonUp:
		b, ok := xButton(m.WParam)
		if !ok {
			d.logger.Warn("unknown X button %#x", hiWord(m.WParam))
			return 0, false
		}
		if m.Msg == MsgXButtonUp {
			d.release(b, at)
		} else {
			d.press(b, at)
		}
		// X button messages report handling by returning TRUE.
		return 1, true

	case MsgMouseWheel, MsgMouseHWheel:
		// The same notch already arrived as a raw report.
		if !d.rawSeen {
			d.wheel(int16(hiWord(m.WParam)), m.Msg == MsgMouseHWheel)
		}
		return 0, true

	case MsgKillFocus, MsgCaptureChanged:
		// Releases that happen while unfocused are never delivered.
		d.down = [buttonCount]bool{}
		d.clicks.reset()
		return 0, false
	}

	return 0, false
}

func (d *Decoder) processRawInput(handle uintptr, at time.Time) {
	raw, ok := d.reader.ReadRawInput(handle)
	if !ok {
		return
	}
	d.ProcessRawMouse(raw, at)
}

// ProcessRawMouse applies one raw mouse report.
func (d *Decoder) ProcessRawMouse(raw RawMouse, at time.Time) {
	d.rawSeen = true
	for b := Button(0); b < buttonCount; b++ {
		tr := rawTransitions[b]
		if raw.ButtonFlags&tr.down != 0 {
			d.press(b, at)
		}
		if raw.ButtonFlags&tr.up != 0 {
			d.release(b, at)
		}
	}

	if raw.ButtonFlags&RawWheel != 0 {
		d.wheel(raw.ButtonData, false)
	}
	if raw.ButtonFlags&RawHWheel != 0 {
		d.wheel(raw.ButtonData, true)
	}

	if raw.Flags&MouseMoveAbsolute != 0 {
		d.moveRawAbsolute(binding.Vec2{X: float32(raw.LastX), Y: float32(raw.LastY)})
		return
	}
	if raw.LastX != 0 || raw.LastY != 0 {
		d.sink.TriggerVec2(binding.Vec2MouseMoved, binding.Vec2{X: float32(raw.LastX), Y: float32(raw.LastY)})
	}
}

func (d *Decoder) press(b Button, at time.Time) {
	if d.down[b] {
		d.logger.Debug("repeated down report for %s button", b)
		return
	}
	d.down[b] = true
	d.pressStart[b] = at
}

func (d *Decoder) release(b Button, at time.Time) {
	if !d.down[b] {
		d.logger.Debug("release of %s button without press", b)
		return
	}
	d.down[b] = false
	d.logger.Debug("%s button held for %v", b, at.Sub(d.pressStart[b]))

	if !d.clicks.recordRelease(b, at) {
		d.sink.TriggerBool(b.ClickBinding(), true)
		return
	}
	if d.policy == DoubleClickBoth {
		d.sink.TriggerBool(b.ClickBinding(), true)
	}
	d.sink.TriggerBool(b.DoubleClickBinding(), true)
}

func (d *Decoder) wheel(delta int16, horizontal bool) {
	if delta == 0 {
		return
	}
	up, down := binding.FloatMouseWheelUp, binding.FloatMouseWheelDown
	if horizontal {
		up, down = binding.FloatMouseWheelHorizontalUp, binding.FloatMouseWheelHorizontalDown
	}

	notches := float32(delta) / WheelDelta
	if notches > 0 {
		d.sink.TriggerFloat(up, notches)
	} else {
		d.sink.TriggerFloat(down, -notches)
	}
}

// moveClient applies a WM_MOUSEMOVE position. The delta from the previous
// client position is skipped for the first report, for zero deltas and once
// the raw stream reports motion itself.
func (d *Decoder) moveClient(p binding.Vec2) {
	if d.haveClientPos && !d.rawSeen {
		if delta := p.Sub(d.clientPos); !delta.IsZero() {
			d.sink.TriggerVec2(binding.Vec2MouseMoved, delta)
		}
	}
	d.clientPos = p
	d.haveClientPos = true
	d.sink.TriggerVec2(binding.Vec2MousePosition, p)
}

// moveRawAbsolute applies a MOUSE_MOVE_ABSOLUTE report. Deltas are taken
// against the previous raw absolute report only. The position is reported
// in raw units until a client position is known.
func (d *Decoder) moveRawAbsolute(p binding.Vec2) {
	if d.haveRawPos {
		if delta := p.Sub(d.rawPos); !delta.IsZero() {
			d.sink.TriggerVec2(binding.Vec2MouseMoved, delta)
		}
	}
	d.rawPos = p
	d.haveRawPos = true
	if !d.haveClientPos {
		d.sink.TriggerVec2(binding.Vec2MousePosition, p)
	}
}
