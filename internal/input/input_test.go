package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"nothing", "", Input{}},
		{"left letter", "a", Input{Dir: DirLeft}},
		{"right vim", "l", Input{Dir: DirRight}},
		{"left arrow", "\x1b[D", Input{Dir: DirLeft}},
		{"right arrow", "\x1b[C", Input{Dir: DirRight}},
		{"up arrow fires", "\x1b[A", Input{Fire: true}},
		{"space fires", " ", Input{Fire: true}},
		{"last direction wins", "ad", Input{Dir: DirRight}},
		{"last direction wins reversed", "\x1b[Ca", Input{Dir: DirLeft}},
		{"fire and move", "d ", Input{Fire: true, Dir: DirRight}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"lone escape ignored", "\x1b", Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.in))
			if got.Quit != tt.want.Quit || got.Fire != tt.want.Fire || got.Dir != tt.want.Dir {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// feed queues bytes on a stream as if the reader goroutine had delivered them.
func feed(s *Stream, bs string) {
	for i := 0; i < len(bs); i++ {
		s.ch <- bs[i]
	}
}

func TestReadInput_SplitEscapeSequence(t *testing.T) {
	tests := []struct {
		name        string
		first, next string
		wantFirst   Input
		wantNext    Input
	}{
		{"left arrow split after bracket", "\x1b[", "D", Input{}, Input{Dir: DirLeft}},
		{"up arrow split after bracket", "\x1b[", "A", Input{}, Input{Fire: true}},
		{"right arrow split after escape", "\x1b", "[C", Input{}, Input{Dir: DirRight}},
		{"keys before the split still count", "a\x1b[", "C", Input{Dir: DirLeft}, Input{Dir: DirRight}},
		{"plain key after lone escape", "\x1b", "d", Input{}, Input{Dir: DirRight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Stream{ch: make(chan byte, 16)}

			feed(s, tt.first)
			got := ReadInput(s)
			if got.Fire != tt.wantFirst.Fire || got.Dir != tt.wantFirst.Dir {
				t.Errorf("first frame = %+v, want %+v", got, tt.wantFirst)
			}

			feed(s, tt.next)
			got = ReadInput(s)
			if got.Fire != tt.wantNext.Fire || got.Dir != tt.wantNext.Dir {
				t.Errorf("second frame = %+v, want %+v", got, tt.wantNext)
			}
		})
	}
}

func TestReadInput_HeldPrefixSurvivesEmptyFrame(t *testing.T) {
	s := &Stream{ch: make(chan byte, 16)}

	feed(s, "\x1b[")
	ReadInput(s)
	ReadInput(s)
	feed(s, "D")

	if got := ReadInput(s); got.Dir != DirLeft {
		t.Errorf("Dir = %v, want left", got.Dir)
	}
}

func TestStream_ClosedReaderQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	deadline := time.Now().Add(time.Second)
	var sawRight, quit bool
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		sawRight = sawRight || in.Dir == DirRight
		if in.Quit {
			quit = true
			break
		}
		time.Sleep(time.Millisecond)
	}

	if !sawRight {
		t.Error("right press was not delivered")
	}
	if !quit {
		t.Error("no quit after the reader ended")
	}
}
