package win32

import (
	"testing"
	"time"

	"github.com/dshills/actionmap/internal/input/binding"
	"github.com/dshills/actionmap/internal/logging"
)

type event struct {
	kind string
	b    uint16
	bv   bool
	fv   float32
	vv   binding.Vec2
}

type recordingSink struct {
	events []event
}

func (s *recordingSink) TriggerBool(b binding.BoolBinding, v bool) int {
	s.events = append(s.events, event{kind: "bool", b: uint16(b), bv: v})
	return 1
}

func (s *recordingSink) TriggerFloat(b binding.FloatBinding, v float32) int {
	s.events = append(s.events, event{kind: "float", b: uint16(b), fv: v})
	return 1
}

func (s *recordingSink) TriggerVec2(b binding.Vec2Binding, v binding.Vec2) int {
	s.events = append(s.events, event{kind: "vec2", b: uint16(b), vv: v})
	return 1
}

func (s *recordingSink) bools() []binding.BoolBinding {
	var out []binding.BoolBinding
	for _, e := range s.events {
		if e.kind == "bool" {
			out = append(out, binding.BoolBinding(e.b))
		}
	}
	return out
}

func (s *recordingSink) reset() { s.events = nil }

// fakeClock is advanced explicitly by tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDecoder(cfg Config, opts ...Option) (*Decoder, *recordingSink, *fakeClock) {
	sink := &recordingSink{}
	clock := newFakeClock()
	base := []Option{WithClock(clock.now), WithLogger(logging.Null())}
	return NewDecoder(sink, cfg, append(base, opts...)...), sink, clock
}

func click(d *Decoder, down, up uint32) {
	d.ProcessPlatformMessage(1, down, 0, 0)
	d.ProcessPlatformMessage(1, up, 0, 0)
}

func sameBools(got, want []binding.BoolBinding) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSingleClickPerButton(t *testing.T) {
	tests := []struct {
		name     string
		down, up uint32
		wParam   uintptr
		want     binding.BoolBinding
	}{
		{"left", MsgLButtonDown, MsgLButtonUp, 0, binding.BoolMouseClickLeft},
		{"right", MsgRButtonDown, MsgRButtonUp, 0, binding.BoolMouseClickRight},
		{"middle", MsgMButtonDown, MsgMButtonUp, 0, binding.BoolMouseClickMiddle},
		{"x1", MsgXButtonDown, MsgXButtonUp, MakeXButtonWParam(XButton1), binding.BoolMouseClickX1},
		{"x2", MsgXButtonDown, MsgXButtonUp, MakeXButtonWParam(XButton2), binding.BoolMouseClickX2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

			d.ProcessPlatformMessage(1, tt.down, tt.wParam, 0)
			if len(sink.events) != 0 {
				t.Fatalf("press emitted %v", sink.events)
			}
			d.ProcessPlatformMessage(1, tt.up, tt.wParam, 0)

			if got := sink.bools(); !sameBools(got, []binding.BoolBinding{tt.want}) {
				t.Errorf("events = %v, want [%s]", got, tt.want)
			}
			if !sink.events[0].bv {
				t.Error("click value should be true")
			}
		})
	}
}

func TestDoubleClickBoundary(t *testing.T) {
	const interval = 500 * time.Millisecond
	single := binding.BoolMouseClickLeft
	double := binding.BoolMouseDoubleClickLeft

	tests := []struct {
		name string
		gap  time.Duration
		want []binding.BoolBinding
	}{
		{"well inside", 480 * time.Millisecond, []binding.BoolBinding{single, double}},
		{"exactly at threshold", interval, []binding.BoolBinding{single, double}},
		{"one unit over", interval + time.Millisecond, []binding.BoolBinding{single, single}},
		{"well outside", 520 * time.Millisecond, []binding.BoolBinding{single, single}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, sink, clock := newTestDecoder(Config{DoubleClickInterval: interval})

			click(d, MsgLButtonDown, MsgLButtonUp) // release at t=0
			clock.advance(tt.gap)
			click(d, MsgLButtonDown, MsgLButtonUp)

			if got := sink.bools(); !sameBools(got, tt.want) {
				t.Errorf("events = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoubleClickMeasuredBetweenReleases(t *testing.T) {
	d, sink, clock := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	d.ProcessPlatformMessage(1, MsgLButtonDown, 0, 0)
	clock.advance(300 * time.Millisecond)
	d.ProcessPlatformMessage(1, MsgLButtonUp, 0, 0) // release 1
	clock.advance(200 * time.Millisecond)
	d.ProcessPlatformMessage(1, MsgLButtonDown, 0, 0)
	clock.advance(250 * time.Millisecond)
	d.ProcessPlatformMessage(1, MsgLButtonUp, 0, 0) // release 2, 450ms later

	want := []binding.BoolBinding{binding.BoolMouseClickLeft, binding.BoolMouseDoubleClickLeft}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestDoubleClickBothPolicy(t *testing.T) {
	d, sink, clock := newTestDecoder(Config{
		DoubleClickInterval: 500 * time.Millisecond,
		DoubleClickPolicy:   DoubleClickBoth,
	})

	click(d, MsgRButtonDown, MsgRButtonUp)
	clock.advance(100 * time.Millisecond)
	click(d, MsgRButtonDown, MsgRButtonUp)

	want := []binding.BoolBinding{
		binding.BoolMouseClickRight,
		binding.BoolMouseClickRight,
		binding.BoolMouseDoubleClickRight,
	}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestTripleClickStartsNewSequence(t *testing.T) {
	d, sink, clock := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	for i := 0; i < 3; i++ {
		click(d, MsgLButtonDown, MsgLButtonUp)
		clock.advance(100 * time.Millisecond)
	}

	want := []binding.BoolBinding{
		binding.BoolMouseClickLeft,
		binding.BoolMouseDoubleClickLeft,
		binding.BoolMouseClickLeft,
	}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestDoubleClickIsPerButton(t *testing.T) {
	d, sink, clock := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	click(d, MsgLButtonDown, MsgLButtonUp)
	clock.advance(100 * time.Millisecond)
	click(d, MsgRButtonDown, MsgRButtonUp)

	want := []binding.BoolBinding{binding.BoolMouseClickLeft, binding.BoolMouseClickRight}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestClockSkewStartsNewSequence(t *testing.T) {
	d, sink, clock := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	click(d, MsgLButtonDown, MsgLButtonUp)
	clock.advance(-time.Second)
	click(d, MsgLButtonDown, MsgLButtonUp)

	want := []binding.BoolBinding{binding.BoolMouseClickLeft, binding.BoolMouseClickLeft}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestRepeatedDownReportsAreDeduplicated(t *testing.T) {
	d, sink, clock := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	d.ProcessPlatformMessage(1, MsgLButtonDown, 0, 0)
	clock.advance(50 * time.Millisecond)
	d.ProcessPlatformMessage(1, MsgLButtonDown, 0, 0)
	d.ProcessPlatformMessage(1, MsgLButtonDown, 0, 0)
	if !d.IsDown(ButtonLeft) {
		t.Fatal("left button not tracked as down")
	}
	d.ProcessPlatformMessage(1, MsgLButtonUp, 0, 0)
	d.ProcessPlatformMessage(1, MsgLButtonUp, 0, 0) // stray release

	if got := sink.bools(); !sameBools(got, []binding.BoolBinding{binding.BoolMouseClickLeft}) {
		t.Errorf("events = %v, want one click", got)
	}
	if d.IsDown(ButtonLeft) {
		t.Error("left button still down after release")
	}
}

func TestLegacyDoubleClickMessageIsAPress(t *testing.T) {
	d, sink, clock := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	// Windows sends DOWN, UP, DBLCLK, UP for a double click on CS_DBLCLKS windows.
	click(d, MsgLButtonDown, MsgLButtonUp)
	clock.advance(200 * time.Millisecond)
	click(d, MsgLButtonDblClk, MsgLButtonUp)

	want := []binding.BoolBinding{binding.BoolMouseClickLeft, binding.BoolMouseDoubleClickLeft}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestAbsoluteCursorDelta(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})
	d.SetCursorPosition(binding.Vec2{X: 100, Y: 100})

	_, handled := d.ProcessPlatformMessage(1, MsgMouseMove, 0, MakeLParam(130, 90))
	if !handled {
		t.Error("WM_MOUSEMOVE should be handled")
	}

	if len(sink.events) != 2 {
		t.Fatalf("events = %+v, want moved and position", sink.events)
	}
	moved, pos := sink.events[0], sink.events[1]
	if binding.Vec2Binding(moved.b) != binding.Vec2MouseMoved || moved.vv != (binding.Vec2{X: 30, Y: -10}) {
		t.Errorf("moved = %+v, want (30, -10)", moved)
	}
	if binding.Vec2Binding(pos.b) != binding.Vec2MousePosition || pos.vv != (binding.Vec2{X: 130, Y: 90}) {
		t.Errorf("position = %+v, want (130, 90)", pos)
	}
	if got, ok := d.CursorPosition(); !ok || got != (binding.Vec2{X: 130, Y: 90}) {
		t.Errorf("CursorPosition() = %v, %v", got, ok)
	}
}

func TestFirstAbsoluteReportHasNoDelta(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	d.ProcessPlatformMessage(1, MsgMouseMove, 0, MakeLParam(-5, 40))
	if len(sink.events) != 1 || binding.Vec2Binding(sink.events[0].b) != binding.Vec2MousePosition {
		t.Fatalf("events = %+v, want position only", sink.events)
	}
	if sink.events[0].vv != (binding.Vec2{X: -5, Y: 40}) {
		t.Errorf("position = %v, want signed coordinates (-5, 40)", sink.events[0].vv)
	}

	sink.reset()
	d.ProcessPlatformMessage(1, MsgMouseMove, 0, MakeLParam(-5, 40))
	if len(sink.events) != 1 {
		t.Errorf("zero delta should only report position, got %+v", sink.events)
	}
}

func TestWheel(t *testing.T) {
	tests := []struct {
		name  string
		msg   uint32
		delta int16
		want  binding.FloatBinding
		value float32
	}{
		{"up one notch", MsgMouseWheel, WheelDelta, binding.FloatMouseWheelUp, 1},
		{"down two notches", MsgMouseWheel, -2 * WheelDelta, binding.FloatMouseWheelDown, 2},
		{"precision touchpad", MsgMouseWheel, 30, binding.FloatMouseWheelUp, 0.25},
		{"horizontal right", MsgMouseHWheel, WheelDelta, binding.FloatMouseWheelHorizontalUp, 1},
		{"horizontal left", MsgMouseHWheel, -WheelDelta, binding.FloatMouseWheelHorizontalDown, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

			_, handled := d.ProcessPlatformMessage(1, tt.msg, MakeWheelWParam(tt.delta), 0)
			if !handled {
				t.Error("wheel message should be handled")
			}
			if len(sink.events) != 1 {
				t.Fatalf("events = %+v", sink.events)
			}
			e := sink.events[0]
			if binding.FloatBinding(e.b) != tt.want || e.fv != tt.value {
				t.Errorf("got %s=%v, want %s=%v", binding.FloatBinding(e.b), e.fv, tt.want, tt.value)
			}
		})
	}
}

func TestZeroWheelDeltaIsIgnored(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})
	d.ProcessPlatformMessage(1, MsgMouseWheel, MakeWheelWParam(0), 0)
	if len(sink.events) != 0 {
		t.Errorf("events = %+v", sink.events)
	}
}

func TestHandledFlags(t *testing.T) {
	d, _, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	tests := []struct {
		name        string
		msg         uint32
		wParam      uintptr
		wantResult  uintptr
		wantHandled bool
	}{
		{"button", MsgLButtonDown, 0, 0, true},
		{"x button returns TRUE", MsgXButtonDown, MakeXButtonWParam(XButton1), 1, true},
		{"unknown x button", MsgXButtonDown, MakeXButtonWParam(7), 0, false},
		{"raw input goes to DefWindowProc", MsgInput, 0, 0, false},
		{"kill focus", MsgKillFocus, 0, 0, false},
		{"unrelated message", 0x000F, 0, 0, false}, // WM_PAINT
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, handled := d.ProcessPlatformMessage(1, tt.msg, tt.wParam, 0)
			if result != tt.wantResult || handled != tt.wantHandled {
				t.Errorf("got (%d, %v), want (%d, %v)", result, handled, tt.wantResult, tt.wantHandled)
			}
		})
	}
}

func TestKillFocusReleasesButtons(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	d.ProcessPlatformMessage(1, MsgLButtonDown, 0, 0)
	d.ProcessPlatformMessage(1, MsgKillFocus, 0, 0)
	if d.IsDown(ButtonLeft) {
		t.Error("button still down after focus loss")
	}
	d.ProcessPlatformMessage(1, MsgLButtonUp, 0, 0)
	if len(sink.events) != 0 {
		t.Errorf("release after focus loss emitted %+v", sink.events)
	}
}

func TestMessageTimeOverridesClock(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	send := func(msg uint32, at time.Time) {
		d.ProcessMessage(Message{Hwnd: 1, Msg: msg, Time: at})
	}
	send(MsgMButtonDown, base)
	send(MsgMButtonUp, base)
	send(MsgMButtonDown, base.Add(400*time.Millisecond))
	send(MsgMButtonUp, base.Add(400*time.Millisecond))

	want := []binding.BoolBinding{binding.BoolMouseClickMiddle, binding.BoolMouseDoubleClickMiddle}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestResetForgetsState(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	click(d, MsgLButtonDown, MsgLButtonUp)
	d.ProcessPlatformMessage(1, MsgRButtonDown, 0, 0)
	d.SetCursorPosition(binding.Vec2{X: 1, Y: 1})
	d.Reset()

	if d.IsDown(ButtonRight) {
		t.Error("Reset kept a held button")
	}
	if _, ok := d.CursorPosition(); ok {
		t.Error("Reset kept the cursor position")
	}

	sink.reset()
	click(d, MsgLButtonDown, MsgLButtonUp)
	if got := sink.bools(); !sameBools(got, []binding.BoolBinding{binding.BoolMouseClickLeft}) {
		t.Errorf("pending double click survived Reset: %v", got)
	}
}

func TestDefaultInterval(t *testing.T) {
	d := NewDecoder(&recordingSink{}, Config{}, WithLogger(logging.Null()))
	if d.Interval() <= 0 {
		t.Errorf("Interval() = %v, want the OS default", d.Interval())
	}
	if DefaultConfig().DoubleClickPolicy != DoubleClickReplace {
		t.Error("DefaultConfig should replace single clicks")
	}
}

func TestDoubleClickPolicyString(t *testing.T) {
	if DoubleClickReplace.String() != "replace" || DoubleClickBoth.String() != "both" || DoubleClickPolicy(7).String() != "unknown" {
		t.Error("DoubleClickPolicy.String() mismatch")
	}
}

func TestParseDoubleClickPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DoubleClickPolicy
		wantErr bool
	}{
		{"", DoubleClickReplace, false},
		{"replace", DoubleClickReplace, false},
		{" Both ", DoubleClickBoth, false},
		{"triple", DoubleClickReplace, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDoubleClickPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func (s *recordingSink) vec2s(b binding.Vec2Binding) []binding.Vec2 {
	var out []binding.Vec2
	for _, e := range s.events {
		if e.kind == "vec2" && binding.Vec2Binding(e.b) == b {
			out = append(out, e.vv)
		}
	}
	return out
}

func (s *recordingSink) floats() int {
	n := 0
	for _, e := range s.events {
		if e.kind == "float" {
			n++
		}
	}
	return n
}

func TestRawAndClientPositionsAreSeparate(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

	d.ProcessRawMouse(RawMouse{Flags: MouseMoveAbsolute, LastX: 32768, LastY: 32768}, time.Time{})
	d.ProcessPlatformMessage(1, MsgMouseMove, 0, MakeLParam(100, 100))
	d.ProcessRawMouse(RawMouse{Flags: MouseMoveAbsolute, LastX: 32868, LastY: 32768}, time.Time{})
	d.ProcessPlatformMessage(1, MsgMouseMove, 0, MakeLParam(102, 100))

	moved := sink.vec2s(binding.Vec2MouseMoved)
	if len(moved) != 1 || moved[0] != (binding.Vec2{X: 100, Y: 0}) {
		t.Errorf("moved = %v, want one raw delta (100, 0)", moved)
	}

	wantPos := []binding.Vec2{{X: 32768, Y: 32768}, {X: 100, Y: 100}, {X: 102, Y: 100}}
	pos := sink.vec2s(binding.Vec2MousePosition)
	if len(pos) != len(wantPos) {
		t.Fatalf("positions = %v, want %v", pos, wantPos)
	}
	for i := range wantPos {
		if pos[i] != wantPos[i] {
			t.Errorf("position %d = %v, want %v", i, pos[i], wantPos[i])
		}
	}
	if p, _ := d.CursorPosition(); p != (binding.Vec2{X: 102, Y: 100}) {
		t.Errorf("CursorPosition() = %v, want client pixels", p)
	}
}

func TestLegacyMessagesDeferToRawInput(t *testing.T) {
	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})
	d.SetCursorPosition(binding.Vec2{X: 100, Y: 100})

	// Without RIDEV_NOLEGACY every physical event arrives twice.
	d.ProcessRawMouse(RawMouse{LastX: 7}, time.Time{})
	d.ProcessPlatformMessage(1, MsgMouseMove, 0, MakeLParam(105, 100))
	d.ProcessRawMouse(RawMouse{ButtonFlags: RawWheel, ButtonData: WheelDelta}, time.Time{})
	d.ProcessPlatformMessage(1, MsgMouseWheel, MakeWheelWParam(WheelDelta), 0)
	d.ProcessRawMouse(RawMouse{ButtonFlags: RawHWheel, ButtonData: WheelDelta}, time.Time{})
	d.ProcessPlatformMessage(1, MsgMouseHWheel, MakeWheelWParam(WheelDelta), 0)
	d.ProcessRawMouse(RawMouse{ButtonFlags: RawLeftDown}, time.Time{})
	d.ProcessPlatformMessage(1, MsgLButtonDown, 0, 0)
	d.ProcessRawMouse(RawMouse{ButtonFlags: RawLeftUp}, time.Time{})
	d.ProcessPlatformMessage(1, MsgLButtonUp, 0, 0)

	if moved := sink.vec2s(binding.Vec2MouseMoved); len(moved) != 1 || moved[0] != (binding.Vec2{X: 7}) {
		t.Errorf("moved = %v, want only the raw (7, 0)", moved)
	}
	if pos := sink.vec2s(binding.Vec2MousePosition); len(pos) != 1 || pos[0] != (binding.Vec2{X: 105, Y: 100}) {
		t.Errorf("positions = %v, want the client (105, 100)", pos)
	}
	if n := sink.floats(); n != 2 {
		t.Errorf("wheel events = %d, want one per axis", n)
	}
	if got := sink.bools(); !sameBools(got, []binding.BoolBinding{binding.BoolMouseClickLeft}) {
		t.Errorf("clicks = %v, want one", got)
	}
}

func TestFocusLossBreaksDoubleClick(t *testing.T) {
	for _, msg := range []uint32{MsgKillFocus, MsgCaptureChanged} {
		d, sink, clock := newTestDecoder(Config{DoubleClickInterval: 500 * time.Millisecond})

		click(d, MsgLButtonDown, MsgLButtonUp)
		d.ProcessPlatformMessage(1, msg, 0, 0)
		clock.advance(100 * time.Millisecond)
		click(d, MsgLButtonDown, MsgLButtonUp)

		want := []binding.BoolBinding{binding.BoolMouseClickLeft, binding.BoolMouseClickLeft}
		if got := sink.bools(); !sameBools(got, want) {
			t.Errorf("msg %#x: events = %v, want %v", msg, got, want)
		}
	}
}

func TestInheritCarriesInputState(t *testing.T) {
	const interval = 500 * time.Millisecond
	prev, _, _ := newTestDecoder(Config{DoubleClickInterval: interval})
	click(prev, MsgLButtonDown, MsgLButtonUp)
	prev.ProcessPlatformMessage(1, MsgRButtonDown, 0, 0)
	prev.ProcessPlatformMessage(1, MsgMouseMove, 0, MakeLParam(10, 20))

	d, sink, _ := newTestDecoder(Config{DoubleClickInterval: interval, DoubleClickPolicy: DoubleClickBoth})
	d.Inherit(prev)

	if !d.IsDown(ButtonRight) {
		t.Error("held button not inherited")
	}
	if p, ok := d.CursorPosition(); !ok || p != (binding.Vec2{X: 10, Y: 20}) {
		t.Errorf("CursorPosition() = %v, %v", p, ok)
	}

	d.ProcessPlatformMessage(1, MsgRButtonUp, 0, 0)
	click(d, MsgLButtonDown, MsgLButtonUp)

	want := []binding.BoolBinding{
		binding.BoolMouseClickRight,
		binding.BoolMouseClickLeft,
		binding.BoolMouseDoubleClickLeft,
	}
	if got := sink.bools(); !sameBools(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
	if d.Interval() != interval {
		t.Errorf("Interval() = %v", d.Interval())
	}

	d.Inherit(nil)
	d.Inherit(d)
}
