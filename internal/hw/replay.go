package hw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dshills/chordkey/internal/input/key"
	"github.com/dshills/chordkey/internal/input/scan"
)

// Frame is one scripted switch state held for a number of poll cycles.
type Frame struct {
	// State is the switch sample returned while this frame is current.
	State scan.State

	// Cycles is how many poll cycles the frame lasts. Zero-cycle frames
	// are skipped.
	Cycles int
}

// Replay is a Matrix that plays back scripted frames. When the script is
// exhausted Scan returns ErrClosed, which ends the polling loop.
type Replay struct {
	frames []Frame
	pos    int
	left   int
}

// NewReplay creates a replay matrix from frames.
func NewReplay(frames []Frame) *Replay {
	return &Replay{frames: frames}
}

// Scan returns the current frame's sample and advances the playhead.
func (r *Replay) Scan() (scan.State, error) {
	for r.pos < len(r.frames) {
		if r.left == 0 {
			r.left = r.frames[r.pos].Cycles
			if r.left == 0 {
				r.pos++
				continue
			}
		}
		s := r.frames[r.pos].State
		r.left--
		if r.left == 0 {
			r.pos++
		}
		return s, nil
	}
	return 0, ErrClosed
}

// Close implements Matrix.
func (r *Replay) Close() error {
	r.pos = len(r.frames)
	return nil
}

// LoadScript reads a replay script file. See ParseScript for the format.
func LoadScript(path string, pollInterval time.Duration) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening replay script: %w", err)
	}
	defer f.Close()
	frames, err := ParseScript(f, pollInterval)
	if err != nil {
		return nil, fmt.Errorf("replay script %s: %w", path, err)
	}
	return frames, nil
}

// ParseScript parses a replay script into frames. The script is line
// oriented; blank lines and lines starting with # are ignored.
//
//	press M E S      switches go down
//	release M E      switches come up
//	release all      everything comes up
//	wait 700ms       hold the current state for a duration
//
// Each press/release line yields one single-cycle frame carrying the new
// state, so the engine sees its edges on one poll cycle. Wait durations are
// rounded up to whole poll cycles.
func ParseScript(r io.Reader, pollInterval time.Duration) ([]Frame, error) {
	var (
		frames []Frame
		held   scan.State
		lineNo int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "press", "release":
			down := strings.EqualFold(fields[0], "press")
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: %s needs at least one switch", lineNo, fields[0])
			}
			if !down && len(fields) == 2 && strings.EqualFold(fields[1], "all") {
				held = 0
			} else {
				for _, name := range fields[1:] {
					id := key.FromName(name)
					if id == key.KeyNone {
						return nil, fmt.Errorf("line %d: unknown switch %q", lineNo, name)
					}
					held.Set(id, down)
				}
			}
			frames = append(frames, Frame{State: held, Cycles: 1})

		case "wait":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: wait needs a duration", lineNo)
			}
			d, err := time.ParseDuration(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cycles := int((d + pollInterval - 1) / pollInterval)
			if cycles < 1 {
				cycles = 1
			}
			frames = append(frames, Frame{State: held, Cycles: cycles})

		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", lineNo, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return frames, nil
}
