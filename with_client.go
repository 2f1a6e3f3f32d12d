package lockbox

import (
	"context"
)

// WithClient connects a client, runs fn, and disconnects on every exit path,
// including a panic inside fn.
//
//	err := lockbox.WithClient(ctx, func(c lockbox.Client) error {
//	    gain, err := c.QueryNumeric("pid1:gain?")
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println("gain:", gain)
//	    return nil
//	}, lockbox.WithHost("10.0.0.5"))
func WithClient(ctx context.Context, fn func(Client) error, opts ...Option) error {
	client := NewClient(opts...)
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Close()

	return fn(client)
}
