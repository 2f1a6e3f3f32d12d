package decode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lumetric/lockbox-go/internal/errors"
)

// Waveform extracts one channel from a bulk reply and resamples it to
// exactly length samples.
//
// The reply is a flat sequence of tab-delimited numbers interleaved
// round-robin across nchannels; channel (1-based) selects every nchannels-th
// value starting at offset channel-1. Tokens that fail to parse are
// discarded: the protocol emits the occasional stray non-numeric token.
//
// A channel shorter than length is right-padded with zeros; a longer one is
// truncated. A reply with no numeric tokens at all yields an all-zero buffer
// rather than an error; acquisition callers treat that as the soft signal of
// a failed acquisition.
func Waveform(text string, channel, length, nchannels int) ([]float64, error) {
	if nchannels < 1 {
		return nil, fmt.Errorf("waveform: channel count %d out of range", nchannels)
	}
	if channel < 1 || channel > nchannels {
		return nil, fmt.Errorf("%w: %d of %d", errors.ErrInvalidChannel, channel, nchannels)
	}
	if length < 0 {
		return nil, fmt.Errorf("waveform: negative length %d", length)
	}

	samples := make([]float64, length)

	i := 0
	for _, tok := range strings.Split(text, "\t") {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			continue
		}
		if i%nchannels == channel-1 {
			idx := i / nchannels
			if idx >= length {
				break
			}
			samples[idx] = v
		}
		i++
	}

	return samples, nil
}

// HasNumericPayload reports whether text contains at least one parseable
// sample. A reply that fails this check is either empty or the instrument's
// channel-name echo quirk, and is worth one retry.
func HasNumericPayload(text string) bool {
	for _, tok := range strings.Split(text, "\t") {
		if _, err := strconv.ParseFloat(strings.TrimSpace(tok), 64); err == nil {
			return true
		}
	}
	return false
}
