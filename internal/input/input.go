// Package input turns raw terminal bytes into per-frame key presses.
package input

import (
	"bufio"
)

// Direction is a horizontal movement intent.
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Input represents the key presses that arrived since the previous frame.
// Every field is an edge: a key counts once per press, not while held.
type Input struct {
	Quit bool
	Fire bool
	// Dir is the most recent directional press this frame, so when both
	// left and right arrive together the later one wins.
	Dir     Direction
	Pressed []byte
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	closed  bool
	pending []byte // Unfinished escape sequence held for the next drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking.
// An escape sequence cut off at the end of the drain is completed by the next call.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	if s.closed {
		in := Parse(buf)
		in.Quit = true
		return in
	}

	buf, s.pending = splitPartialEscape(buf)
	return Parse(buf)
}

// splitPartialEscape separates a trailing ESC or ESC [ from the rest of buf.
func splitPartialEscape(buf []byte) (complete, partial []byte) {
	n := len(buf)
	switch {
	case n >= 2 && buf[n-2] == '\x1b' && buf[n-1] == '[':
		return buf[:n-2], append([]byte(nil), buf[n-2:]...)
	case n >= 1 && buf[n-1] == '\x1b':
		return buf[:n-1], []byte{'\x1b'}
	}
	return buf, nil
}

// Parse decodes a batch of terminal bytes, including arrow-key escape sequences.
func Parse(buf []byte) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				in.Fire = true
				i += 2
				continue
			case 'C': // Right arrow
				in.Press(DirRight)
				i += 2
				continue
			case 'D': // Left arrow
				in.Press(DirLeft)
				i += 2
				continue
			}
		}

		applyByte(&in, b)
	}

	return in
}

// applyByte records a single-byte key press.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		in.Press(DirLeft)
	case 'd', 'D', 'l', 'L':
		in.Press(DirRight)
	case ' ', 'w', 'W', 'k', 'K':
		in.Fire = true
	}
}

// Press records a directional key press; the latest press wins.
func (in *Input) Press(d Direction) {
	in.Dir = d
}
