// Package actionconfig describes actions, action sets, and the whole actions
// system as a value-semantic configuration tree.
//
// Every level owns its children. Clone produces a fully independent deep copy,
// Destroy releases every child and zeroes the value, and Move hands the
// contents to the caller while leaving the source empty. All three are safe on
// nil receivers.
//
// Names are stored in fixed-capacity buffers (Name, LocalizedName) that
// truncate rather than reject long input, matching the layout callers on the
// other side of the engine boundary expect.
//
// The package-level Clone*/Destroy* functions form the boundary used by
// foreign callers: a nil argument is logged and turned into a no-op.
package actionconfig
