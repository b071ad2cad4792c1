// Package display moves frames from the controllers to the glass.
//
// Each physical display gets one buffered render channel and one Renderer
// goroutine draining it. The channel's sending half is shared by both
// controllers (a navigation press and a stock press may both refresh the
// stock display); the receiving half has exactly one owner. Frames are
// painted strictly in arrival order and never dropped: when producers outrun
// the display, sends block on the fixed buffer instead.
//
// The package also carries the pure text layout used to fit product names
// onto the fixed-width rows (SplitRows).
package display
