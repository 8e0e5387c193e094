// Package binding defines the closed enumerations that identify concrete raw
// inputs, one enumeration per action value kind.
//
// Each enumeration is partitioned into device-class blocks of BlockSize
// values. Block 0 only holds the Undefined value. The mouse occupies the
// block starting at 0x100 and is delimited by inclusive MouseStart and
// MouseEnd markers:
//
//	BoolMouseStart  .. BoolMouseEnd   click and double-click per button
//	FloatMouseStart .. FloatMouseEnd  wheel deltas
//	Vec2MouseStart  .. Vec2MouseEnd   motion delta and absolute position
//
// Future device classes get their own block, so existing values never move.
//
// Every binding has a stable dotted name ("mouse.click.left") used by binding
// files and logs.
package binding
