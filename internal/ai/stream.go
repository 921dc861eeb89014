package ai

import "strings"

// StreamEvent is one step of a text stream: a chunk of generated text,
// or a terminal done/error signal.
type StreamEvent struct {
	Chunk string
	Done  bool
	Err   error
}

// Stream delivers generated text chunks in arrival order. After a Done
// or Err event no further events follow.
type Stream struct {
	events chan StreamEvent
}

func newStream() *Stream {
	return &Stream{events: make(chan StreamEvent)}
}

func (stream *Stream) Events() <-chan StreamEvent {
	return stream.events
}

func (stream *Stream) emit(chunk string) {
	stream.events <- StreamEvent{Chunk: chunk}
}

func (stream *Stream) close(err error) {
	stream.events <- StreamEvent{Done: err == nil, Err: err}
	close(stream.events)
}

// Accumulator reassembles stream chunks into a single growing buffer,
// preserving arrival order.
type Accumulator struct {
	builder strings.Builder
}

func (accumulator *Accumulator) Append(chunk string) {
	accumulator.builder.WriteString(chunk)
}

func (accumulator *Accumulator) Text() string {
	return accumulator.builder.String()
}

// Collect drains a stream into its full text. On a mid-stream failure
// the partial text is discarded so callers never surface a silently
// truncated result.
func Collect(stream *Stream) (string, error) {
	accumulator := Accumulator{}
	for event := range stream.Events() {
		if event.Err != nil {
			return "", event.Err
		}
		if event.Done {
			break
		}
		accumulator.Append(event.Chunk)
	}
	return accumulator.Text(), nil
}
