//go:build windows

package progress

// lineSeparator joins the lines of a frame and terminates interrupt messages.
const lineSeparator = "\r\n"
