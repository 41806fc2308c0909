package progress

import (
	"io"
	"strings"

	"github.com/github/gh-progress/pkg/logger"
)

var outputLog = logger.New("progress:output")

// Clear erases the frame currently on screen. It does nothing when the frame
// is already cleared.
func (b *Bar) Clear() {
	if b.cleared {
		return
	}
	if rows := len(b.lastDraw) - 1; rows > 0 {
		b.stream.MoveCursorRows(-rows)
	}
	b.stream.ClearScreenDown()
	b.stream.CursorToColumn(0)
	b.stream.ClearLineRight()
	b.cleared = true
}

// draw replaces the frame on screen with lines.
func (b *Bar) draw(lines []string) {
	b.Clear()
	b.lastDraw = lines
	b.writeFrame()
}

// redraw repaints the last drawn frame.
func (b *Bar) redraw() {
	b.Clear()
	b.writeFrame()
}

func (b *Bar) writeFrame() {
	b.write(strings.Join(b.lastDraw, lineSeparator))
	b.cleared = false
}

// Interrupt prints message on its own line above the bar and repaints the
// bar below it. On a stream that is not a terminal only the message is
// written.
func (b *Bar) Interrupt(message string) {
	if !b.stream.IsTTY() {
		b.write(message + lineSeparator)
		return
	}
	outputLog.Printf("Interrupting frame: lines=%d", len(b.lastDraw))

	b.Clear()
	b.write(message + lineSeparator)
	if len(b.lastDraw) > 0 {
		b.redraw()
	}
}

// Terminate ends the bar's use of the stream, either erasing the last frame
// or leaving it in place followed by a line separator. The separator is
// written on any stream, so output that follows starts on a fresh line. With
// CallbackOnTerminate set the completion callback runs afterwards.
func (b *Bar) Terminate() {
	outputLog.Printf("Terminating: clear=%t, tty=%t", b.clearOnTerminate, b.stream.IsTTY())
	if b.clearOnTerminate {
		b.Clear()
	} else {
		b.write(lineSeparator)
		b.cleared = true
	}
	if b.callbackOnTerminate {
		b.callback(b)
	}
}

// write sends s to the stream. Terminal write failures are not recoverable
// by the bar and are only logged.
func (b *Bar) write(s string) {
	if _, err := io.WriteString(b.stream, s); err != nil {
		outputLog.Printf("Write failed: %v", err)
	}
}
