package output

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// LogSink stands in for the virtual keyboard in dry-run mode and writes
// every operation to a logger instead.
type LogSink struct {
	logger *log.Logger
	sleep  func(time.Duration)
}

func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger, sleep: time.Sleep}
}

func (s *LogSink) Tap(keys ...int) error {
	s.logger.Printf("tap %s", joinCodes(keys))
	return nil
}

func (s *LogSink) Down(keys ...int) error {
	s.logger.Printf("down %s", joinCodes(keys))
	return nil
}

func (s *LogSink) Up(keys ...int) error {
	s.logger.Printf("up %s", joinCodes(keys))
	return nil
}

func (s *LogSink) Type(text string) error {
	for _, r := range text {
		if _, ok := strokeFor(r); !ok {
			return fmt.Errorf("%w: %q", ErrUntypeable, r)
		}
	}
	s.logger.Printf("type %q", text)
	return nil
}

func (s *LogSink) Wait(d time.Duration) {
	s.logger.Printf("wait %v", d)
	s.sleep(d)
}

func (s *LogSink) Forward(code uint16, value int32) error {
	s.logger.Printf("forward %d=%d", code, value)
	return nil
}

func (s *LogSink) Close() error { return nil }

func joinCodes(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, "+")
}
