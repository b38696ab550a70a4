package spawndata

import (
	"strconv"
	"strings"
)

// keyedState is the position of the keyed-object scanner.
type keyedState int

const (
	stateIdle keyedState = iota
	stateInRecord
	stateInPositionBlock
	stateInRotationBlock
)

func (s keyedState) String() string {
	switch s {
	case stateIdle:
		return "Idle"
	case stateInRecord:
		return "InRecord"
	case stateInPositionBlock:
		return "InPositionBlock"
	case stateInRotationBlock:
		return "InRotationBlock"
	default:
		return "?"
	}
}

// keyedScanner holds the O(1) state of a single linear pass over a
// keyed-object stream. It is not a structural parser: each line causes at
// most one transition.
//
//	line                    Idle         InRecord     In*Block
//	"path" ...              new record   new record   new record
//	"alignRadial" ...       set flag     set flag     set flag
//	.."position"..          ->PosBlock   ->PosBlock   ->PosBlock
//	.."rotation"..          ->RotBlock   ->RotBlock   ->RotBlock
//	"x" / "y" / "z" ...     ignored      ignored      assign axis
//	..}..                   no-op        emit ->Idle  ->InRecord
//
// An axis line that also carries a brace, as in `"z": 3 }`, assigns the axis
// and then closes the block. A brace that closes a nested block never also
// closes the record, even when a second brace follows on the same line.
type keyedScanner struct {
	state   keyedState
	current *Record
	out     []Record
}

// ParseKeyed reads the keyed-object shape line by line. Missing or
// unparseable fields stay zero; a record still open at end of stream is kept.
func ParseKeyed(text string) []Record {
	var s keyedScanner
	for _, line := range splitLines(text) {
		s.step(line)
	}
	s.flush()
	return s.out
}

func (s *keyedScanner) step(line string) {
	switch {
	case strings.HasPrefix(line, `"path"`):
		s.flush()
		s.current = &Record{Path: unquote(keyValue(line))}
		s.state = stateInRecord

	case strings.HasPrefix(line, `"alignRadial"`):
		s.ensureRecord()
		if b, err := strconv.ParseBool(keyValue(line)); err == nil {
			s.current.AlignRadial = b
		}

	case strings.Contains(line, `"position"`):
		s.ensureRecord()
		s.state = stateInPositionBlock

	case strings.Contains(line, `"rotation"`):
		s.ensureRecord()
		s.state = stateInRotationBlock

	case strings.HasPrefix(line, `"x"`), strings.HasPrefix(line, `"y"`), strings.HasPrefix(line, `"z"`):
		s.assignAxis(line)
		if strings.Contains(line, "}") {
			s.closeBrace()
		}

	case strings.Contains(line, "}"):
		s.closeBrace()
	}
}

// closeBrace steps out one level: a block back to its record, or a record
// back to Idle.
func (s *keyedScanner) closeBrace() {
	switch s.state {
	case stateInPositionBlock, stateInRotationBlock:
		s.state = stateInRecord
	case stateInRecord:
		s.flush()
	}
}

func (s *keyedScanner) assignAxis(line string) {
	if s.current == nil {
		return
	}
	var axis int
	switch line[1] {
	case 'x':
		axis = 0
	case 'y':
		axis = 1
	default:
		axis = 2
	}
	v, ok := parseNumber(keyValue(line))
	if !ok {
		return
	}
	switch s.state {
	case stateInPositionBlock:
		s.current.Position[axis] = v
	case stateInRotationBlock:
		s.current.Rotation[axis] = v
	}
}

func (s *keyedScanner) ensureRecord() {
	if s.current == nil {
		s.current = &Record{}
		s.state = stateInRecord
	}
}

// flush appends the open record, if any, and returns to Idle.
func (s *keyedScanner) flush() {
	if s.current != nil {
		s.out = append(s.out, *s.current)
		s.current = nil
	}
	s.state = stateIdle
}

// keyValue returns the text after the first ':' with surrounding whitespace
// and trailing commas or closing brackets removed.
func keyValue(line string) string {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(line[i+1:]), ",}] \t")
}

func unquote(s string) string {
	if u, err := strconv.Unquote(s); err == nil {
		return u
	}
	return strings.Trim(s, `"`)
}
