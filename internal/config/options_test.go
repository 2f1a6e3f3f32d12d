package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Normalize_Defaults(t *testing.T) {
	o := &Options{Host: "lockbox.lab"}
	o.Normalize()

	assert.Equal(t, DefaultPort, o.Port)
	assert.Equal(t, DefaultDialTimeout, o.DialTimeout)
	assert.Equal(t, DefaultReadTimeout, o.ReadTimeout)
	assert.Equal(t, DefaultSettleDelay, o.SettleDelay)
	assert.Equal(t, DefaultRetryDelay, o.RetryDelay)
	assert.Equal(t, DefaultPollWindow, o.PollWindow)
	assert.Equal(t, DefaultChannelCount, o.ChannelCount)
}

func TestOptions_Normalize_KeepsExplicitValues(t *testing.T) {
	o := &Options{
		Host:         "lockbox.lab",
		Port:         2000,
		SettleDelay:  50 * time.Millisecond,
		ChannelCount: 4,
	}
	o.Normalize()

	assert.Equal(t, 2000, o.Port)
	assert.Equal(t, 50*time.Millisecond, o.SettleDelay)
	assert.Equal(t, 4, o.ChannelCount)
	// Unset fields still filled.
	assert.Equal(t, DefaultReadTimeout, o.ReadTimeout)
}
