package lockbox_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lockbox "github.com/lumetric/lockbox-go"
)

func TestWithClient_RunsAndDisconnects(t *testing.T) {
	host, port := startInstrument(t)

	var seen lockbox.Client
	err := lockbox.WithClient(context.Background(), func(c lockbox.Client) error {
		seen = c
		got, err := c.Query("pid1:gain?")
		if err != nil {
			return err
		}
		assert.Equal(t, "0.75", got)
		return nil
	}, fastOptions(host, port)...)

	require.NoError(t, err)
	assert.False(t, seen.IsConnected(), "WithClient must disconnect on return")
}

func TestWithClient_PropagatesCallbackError(t *testing.T) {
	host, port := startInstrument(t)

	wantErr := errors.New("callback failed")
	err := lockbox.WithClient(context.Background(), func(lockbox.Client) error {
		return wantErr
	}, fastOptions(host, port)...)

	require.ErrorIs(t, err, wantErr)
}

func TestWithClient_ConnectErrorSkipsCallback(t *testing.T) {
	called := false
	err := lockbox.WithClient(context.Background(), func(lockbox.Client) error {
		called = true
		return nil
	}, fastOptions("127.0.0.1", 1)...)

	require.Error(t, err)
	assert.False(t, called)
}
