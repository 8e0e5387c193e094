package win32

import "sync"

// Router maps windows to their decoders so a shared window procedure can
// find the right one without per-window user data.
type Router struct {
	mu       sync.RWMutex
	decoders map[HWND]*Decoder
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{decoders: make(map[HWND]*Decoder)}
}

// Attach routes messages for hwnd to d, replacing any previous decoder.
func (r *Router) Attach(hwnd HWND, d *Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decoders[hwnd] = d
}

// Detach stops routing messages for hwnd.
func (r *Router) Detach(hwnd HWND) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.decoders, hwnd)
}

// Decoder returns the decoder attached to hwnd.
func (r *Router) Decoder(hwnd HWND) (*Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.decoders[hwnd]
	return d, ok
}

// WndProc decodes a message for hwnd. Messages for unknown windows are not
// handled.
func (r *Router) WndProc(hwnd HWND, msg uint32, wParam, lParam uintptr) (uintptr, bool) {
	return r.Dispatch(Message{Hwnd: hwnd, Msg: msg, WParam: wParam, LParam: lParam})
}

// Dispatch decodes m with the decoder attached to m.Hwnd.
func (r *Router) Dispatch(m Message) (uintptr, bool) {
	d, ok := r.Decoder(m.Hwnd)
	if !ok {
		return 0, false
	}
	return d.ProcessMessage(m)
}
