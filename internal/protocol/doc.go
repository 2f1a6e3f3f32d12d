// Package protocol implements the command channel of the instrument's RCI.
//
// The RCI is a line-oriented text protocol with no request IDs and no message
// framing: the only way to correlate a reply with its query is to write the
// command, wait a settle delay, and drain whatever the instrument sends back.
// Channel owns that exchange discipline. It serializes all operations behind
// a single lock (one outstanding request at a time), scans the drained bytes
// for the first key=value line, and hands scalar and waveform replies to the
// decode package.
//
// The fixed-delay correlation is a protocol limitation, not a design choice;
// it is isolated behind Channel so a framed transport could replace it
// without touching callers.
package protocol
