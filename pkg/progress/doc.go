// Package progress renders an in-place updating progress bar to a terminal.
//
// A bar is built from a template whose tokens are substituted on every
// render:
//
//	:bar       the bar glyph, sized to the remaining terminal width
//	:current   current tick count
//	:total     total tick count
//	:elapsed   time since the first tick
//	:eta       estimated time remaining
//	:percent   completion percentage
//	:rate      ticks per second
//
// Any other ":name" token is filled from the Tokens passed to Tick, Add,
// Update or Render.
//
// # Usage Example
//
//	bar, err := progress.New("downloading [:bar] :percent eta :eta", 100)
//	if err != nil {
//		return err
//	}
//	for range 100 {
//		bar.Tick(nil)
//	}
//
// Templates containing newlines render as a multi-line frame that is redrawn
// as a unit. Interrupt prints a message above the frame without disturbing it.
//
// # Execution Model
//
// A Bar is driven entirely by its caller: every method runs to completion on
// the calling goroutine and there is no background redraw. A Bar is not safe
// for concurrent use. Rendering is suppressed when the stream is not a
// terminal and throttled to one frame per RenderThrottle otherwise.
package progress
