// Package transport owns the raw TCP stream to the instrument.
//
// Conn wraps a net.Conn with buffered I/O, CR-LF line writes, and the two
// read patterns the unframed protocol needs: a bounded discard of the
// greeting banner, and a burst read that collects whatever the instrument
// sends within a window. The session holds the Conn exclusively; no other
// component touches the socket.
package transport
