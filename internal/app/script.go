package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"panel-sim/internal/core"
)

// ScriptSource replays a parsed event script, one line per frame. Once the
// script is exhausted it emits a close event.
type ScriptSource struct {
	frames [][]core.Event
	next   int
}

// Poll returns the events of the next frame.
func (s *ScriptSource) Poll() []core.Event {
	if s.next >= len(s.frames) {
		return []core.Event{core.Close()}
	}
	evs := s.frames[s.next]
	s.next++
	return evs
}

// ParseScript reads an event script. Each line is one frame; events within
// a line are separated by ';' and '#' starts a comment:
//
//	down w            # key-down
//	up w; press 90 420
//	release 90 420
//	close
func ParseScript(r io.Reader) (*ScriptSource, error) {
	src := &ScriptSource{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		var frame []core.Event
		for _, part := range strings.Split(line, ";") {
			fields := strings.Fields(part)
			if len(fields) == 0 {
				continue
			}
			ev, err := parseEvent(fields)
			if err != nil {
				return nil, fmt.Errorf("script line %d: %w", lineNo, err)
			}
			frame = append(frame, ev)
		}
		src.frames = append(src.frames, frame)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return src, nil
}

func parseEvent(fields []string) (core.Event, error) {
	switch verb := strings.ToLower(fields[0]); verb {
	case "close":
		if len(fields) != 1 {
			return core.Event{}, fmt.Errorf("close takes no arguments")
		}
		return core.Close(), nil
	case "down", "up":
		if len(fields) != 2 {
			return core.Event{}, fmt.Errorf("%s wants one key", verb)
		}
		k, ok := core.ParseKey(fields[1])
		if !ok {
			return core.Event{}, fmt.Errorf("unknown key %q", fields[1])
		}
		if verb == "down" {
			return core.KeyDown(k), nil
		}
		return core.KeyUp(k), nil
	case "press", "release":
		if len(fields) != 3 {
			return core.Event{}, fmt.Errorf("%s wants x and y", verb)
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return core.Event{}, fmt.Errorf("bad x %q: %w", fields[1], err)
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return core.Event{}, fmt.Errorf("bad y %q: %w", fields[2], err)
		}
		if verb == "press" {
			return core.MouseDown(x, y), nil
		}
		return core.MouseUp(x, y), nil
	default:
		return core.Event{}, fmt.Errorf("unknown event %q", fields[0])
	}
}
