// Package decode parses instrument reply text into Go values.
//
// The instrument answers scalar queries with a number that may carry a
// trailing SI magnitude letter ("5m", "2.5k"), and bulk waveform queries with
// tab-delimited scientific-notation samples interleaved round-robin across
// channels. Numeric parses the former; Waveform extracts one channel from the
// latter and resamples it to a fixed length.
package decode
