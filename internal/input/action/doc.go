// Package action holds the runtime side of the input binding engine.
//
// A System is built once from an actionconfig.SystemConfig. It owns one Set
// per configured action set, and each Set owns the live Bool, Float and Vec2
// actions. Decoded input arrives through TriggerBool, TriggerFloat and
// TriggerVec2; every enabled set is searched and every action bound to the
// event is triggered:
//
//	sys := action.NewSystem(&cfg)
//	sys.TriggerBool(binding.BoolMouseClickLeft, true)
//
//	fire, _ := sys.BoolAction("gameplay", "fire")
//	if fire.TriggeredThisFrame() {
//	    shoot()
//	}
//	sys.ResetFrame()
//
// # Frame protocol
//
// Dispatch is two-phase. During the event phase Trigger* calls latch values
// and set the per-frame edge flag. At the frame boundary the application calls
// ResetFrame exactly once, after it has read the edge flags; values stay
// latched, only the edges are cleared.
//
// # Thread Safety
//
// A System is confined to the goroutine that pumps platform messages. Trigger*
// and ResetFrame must never run concurrently. Metrics may be read from any
// goroutine.
package action
