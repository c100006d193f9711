package macro

import (
	"fmt"
	"time"
)

// Sink receives synthesized output.
type Sink interface {
	// Tap presses the keys in order and releases them in reverse.
	Tap(keys ...int) error
	// Type types printable text.
	Type(text string) error
	// Wait blocks for d.
	Wait(d time.Duration)
}

// Play sends every step of seq to sink in order. It runs to completion,
// delays included; it stops early only if the sink fails.
func Play(seq Sequence, sink Sink) error {
	for i, st := range seq {
		var err error
		switch v := st.(type) {
		case Chord:
			err = sink.Tap(v...)
		case Text:
			err = sink.Type(string(v))
		case Delay:
			sink.Wait(time.Duration(v))
		}
		if err != nil {
			return fmt.Errorf("step %d of %s: %w", i, seq, err)
		}
	}
	return nil
}
