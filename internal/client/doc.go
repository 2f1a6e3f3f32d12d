// Package client implements the session lifecycle of the lockbox connection.
//
// A Client moves through Disconnected -> Connecting -> Connected ->
// Disconnected. Connect dials the instrument, absorbs the unsolicited
// greeting banner, and hands the stream to a fresh command channel;
// Disconnect tears the channel down and closes the socket, and is safe to
// call any number of times. Connect retries and reconnection are the
// caller's decision, never automatic.
package client
