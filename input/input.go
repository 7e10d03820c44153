// Package input turns a raw terminal byte stream into key presses.
package input

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

// Code identifies a key. Printable keys use CodeRune.
type Code int

const (
	CodeNone Code = iota
	CodeRune
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeEnter
	CodeSpace
	CodeBackspace
	CodeEscape
	CodeInterrupt
	// CodeMouseDrag is the left button pressed or dragged at Col, Row.
	CodeMouseDrag
)

// Key is one key press or pointer event. Col and Row are zero-based
// terminal cells and only set for mouse codes.
type Key struct {
	Code Code
	Rune rune
	Col  int
	Row  int
}

// Button-event tracking with SGR coordinates. Terminals that lack it ignore
// the request.
const (
	enableMouse  = "\x1b[?1002h\x1b[?1006h"
	disableMouse = "\x1b[?1002l\x1b[?1006l"
)

func EnableMouse(w io.Writer)  { io.WriteString(w, enableMouse) }
func DisableMouse(w io.Writer) { io.WriteString(w, disableMouse) }

// Rune builds a printable key.
func Rune(r rune) Key { return Key{Code: CodeRune, Rune: r} }

// Is reports whether k is the printable rune r, ignoring ASCII case.
func (k Key) Is(r rune) bool {
	return k.Code == CodeRune && lower(k.Rune) == lower(r)
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch        chan byte
	held      []byte
	done      chan struct{}
	exited    chan struct{}
	closeOnce sync.Once
}

// StartStream spawns a goroutine that reads from r until it fails or the
// stream is closed.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{
		ch:     make(chan byte, 128),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go func() {
		defer close(s.exited)
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivery. A reader blocked in Read is left to return on its
// own; its next byte is discarded.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Read drains the pending bytes without blocking and parses them. ok is
// false once the underlying reader is exhausted. An unfinished escape
// sequence at the end is held back while new bytes keep arriving and is
// parsed as is by the first Read that brings none, so a lone ESC is
// reported one Read late.
func (s *Stream) Read() (keys []Key, ok bool) {
	buf := s.held
	held := len(buf)
	s.held = nil
	for {
		select {
		case b, open := <-s.ch:
			if !open {
				return Parse(buf), false
			}
			buf = append(buf, b)
		default:
			if cut := incompleteTail(buf); cut >= 0 && len(buf) > held {
				s.held = append([]byte(nil), buf[cut:]...)
				buf = buf[:cut]
			}
			return Parse(buf), true
		}
	}
}

// incompleteTail returns the index of a trailing escape sequence that is
// not finished yet, or -1.
func incompleteTail(buf []byte) int {
	i := bytes.LastIndexByte(buf, '\x1b')
	if i < 0 {
		return -1
	}
	rest := buf[i:]
	switch {
	case len(rest) == 1, len(rest) == 2 && rest[1] == '[':
		return i
	case rest[1] != '[':
		return -1
	case rest[2] == '<' && bytes.IndexAny(rest, "Mm") < 0:
		return i
	}
	return -1
}

// Parse decodes bytes into keys. Arrow keys arrive as CSI sequences; an ESC
// not followed by '[' is the escape key.
func Parse(buf []byte) []Key {
	var keys []Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' && buf[i+2] == '<' {
			key, end, ok := parseSGRMouse(buf, i+3)
			if ok {
				keys = append(keys, key)
			}
			i = end
			continue
		}
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			code := CodeNone
			switch buf[i+2] {
			case 'A':
				code = CodeUp
			case 'B':
				code = CodeDown
			case 'C':
				code = CodeRight
			case 'D':
				code = CodeLeft
			}
			if code != CodeNone {
				keys = append(keys, Key{Code: code})
				i += 2
				continue
			}
		}

		switch b {
		case '\r', '\n':
			keys = append(keys, Key{Code: CodeEnter})
		case ' ':
			keys = append(keys, Key{Code: CodeSpace})
		case '\b', '\x7f':
			keys = append(keys, Key{Code: CodeBackspace})
		case '\x1b':
			keys = append(keys, Key{Code: CodeEscape})
		case '\x03':
			keys = append(keys, Key{Code: CodeInterrupt})
		default:
			if b >= 0x20 && b < 0x7f {
				keys = append(keys, Rune(rune(b)))
			}
		}
	}
	return keys
}

// SGR button bits that do not change which button is meant.
const (
	mouseModifiers = 4 | 8 | 16
	mouseMotion    = 32
)

// parseSGRMouse reads "b;x;y" followed by M or m starting at buf[i] and
// returns the index of the last byte consumed. Only left button presses
// and drags produce a key; an unterminated sequence consumes the rest.
func parseSGRMouse(buf []byte, i int) (Key, int, bool) {
	var fields [3]int
	field := 0
	for ; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c >= '0' && c <= '9':
			fields[field] = fields[field]*10 + int(c-'0')
		case c == ';' && field < len(fields)-1:
			field++
		case (c == 'M' || c == 'm') && field == len(fields)-1:
			button := fields[0] &^ (mouseModifiers | mouseMotion)
			if c == 'm' || button != 0 || fields[1] < 1 || fields[2] < 1 {
				return Key{}, i, false
			}
			return Key{Code: CodeMouseDrag, Col: fields[1] - 1, Row: fields[2] - 1}, i, true
		default:
			return Key{}, i, false
		}
	}
	return Key{}, len(buf) - 1, false
}
