// Package lockbox provides a Go client for the remote command interface
// (RCI) of LockBox laser-stabilization instruments.
//
// The RCI is a plain-text, line-oriented protocol over TCP: one command per
// line, CR-LF terminated. Directives ("scan:enable=true") expect no reply;
// queries ("pid1:gain?") expect exactly one. The protocol carries no request
// IDs and no message framing, so the client imposes request/response
// discipline itself: commands are serialized one at a time, each query waits
// a settle delay and then drains the instrument's reply burst, and scalar
// and waveform replies are decoded into Go values.
//
// # Basic Usage
//
//	client, err := lockbox.Dial(ctx,
//	    lockbox.WithHost("10.0.0.5"),
//	    lockbox.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	gain, err := client.QueryNumeric("pid1:gain?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	trace, err := client.QueryWaveform("scope:trace?", 1, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or with automatic lifecycle management:
//
//	err := lockbox.WithClient(ctx, func(c lockbox.Client) error {
//	    return c.Send("scan:enable=true")
//	}, lockbox.WithHost("10.0.0.5"))
//
// # Scalar replies
//
// The instrument answers scalar queries as "key=value" lines; the value may
// carry a trailing SI magnitude letter. "gain=2.5k" decodes to 2500,
// "amplitude=150u" to 0.00015. QueryNumeric handles the suffix table
// {m, u, n, k, M, G}.
//
// # Waveform replies
//
// Bulk waveform replies are tab-delimited scientific-notation samples,
// interleaved round-robin across the instrument's two acquisition channels.
// QueryWaveform extracts one channel (1-based) and resamples it to the
// requested length, zero-padding short captures and truncating long ones. An
// acquisition that produced no samples decodes to an all-zero buffer; treat
// that as a soft failure and re-arm the acquisition.
//
// # Error Handling
//
// The client provides typed errors for the failure scenarios of the RCI:
//
//	gain, err := client.QueryNumeric("pid1:gain?")
//	if err != nil {
//	    if errors.Is(err, lockbox.ErrNotConnected) {
//	        // connect first
//	    }
//	    var ire *lockbox.InvalidResponseError
//	    if errors.As(err, &ire) {
//	        log.Printf("undecodable reply: %q", ire.Text)
//	    }
//	}
//
// The client never reconnects on its own. After a dropped connection,
// call Disconnect and then Connect again.
//
// # Timing
//
// The settle delay, retry delay, and poll window are empirical latencies of
// the physical instrument, not protocol guarantees. The defaults work for a
// LockBox on a quiet LAN; tune them with WithSettleDelay and friends when
// the link or the instrument is slower.
package lockbox
