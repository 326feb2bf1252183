// Package updates carries battery samples from the sampler to the tray.
//
// The channel holds a single sample. A slow consumer blocks the sampler
// instead of letting samples queue up, and the consumer always sees the
// sample that was pending when it caught up.
package updates

import (
	"errors"
	"sync"

	"github.com/ordosx/percentage/pkg/powerinfo"
)

// ErrReceiverClosed is returned by Send once the consumer has gone away.
var ErrReceiverClosed = errors.New("update receiver closed")

// Channel is a single-slot handoff between one sender and one receiver.
type Channel struct {
	slot chan powerinfo.Sample
	done chan struct{}

	closeRecv *sync.Once
	closeSend *sync.Once
}

// New returns an empty Channel.
func New() *Channel {
	return &Channel{
		slot:      make(chan powerinfo.Sample, 1),
		done:      make(chan struct{}),
		closeRecv: &sync.Once{},
		closeSend: &sync.Once{},
	}
}

// Send blocks until the slot is free or the receiver is closed.
func (c *Channel) Send(s powerinfo.Sample) error {
	// Prefer reporting closure over filling a free slot nobody will read.
	select {
	case <-c.done:
		return ErrReceiverClosed
	default:
	}

	select {
	case c.slot <- s:
		return nil
	case <-c.done:
		return ErrReceiverClosed
	}
}

// Receive returns the channel samples arrive on. It is closed by CloseSend.
func (c *Channel) Receive() <-chan powerinfo.Sample {
	return c.slot
}

// Done is closed once the receiver is closed.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

// Close marks the receiver as gone. Pending and future sends fail with
// ErrReceiverClosed. Safe to call more than once.
func (c *Channel) Close() {
	c.closeRecv.Do(func() {
		close(c.done)
	})
}

// CloseSend tells the receiver no more samples will come. Only the sender
// may call it, and it must not Send afterwards. Safe to call more than once.
func (c *Channel) CloseSend() {
	c.closeSend.Do(func() {
		close(c.slot)
	})
}
