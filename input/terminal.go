package input

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by Acquire when fd is not a terminal.
var ErrNotTerminal = errors.New("input: not a terminal")

// Acquire puts the terminal behind fd in raw mode. The returned release
// restores it and is safe to call more than once.
func Acquire(fd int) (release func(), err error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("input: enable raw mode: %w", err)
	}
	var once sync.Once
	return func() {
		once.Do(func() { _ = term.Restore(fd, oldState) })
	}, nil
}

// Size returns the terminal size behind fd.
func Size(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
