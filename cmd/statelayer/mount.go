package main

import (
	"errors"
	"os"

	"golang.org/x/term"

	slerrors "github.com/alexisbeaulieu97/statelayer/pkg/errors"
)

var errNotTerminal = errors.New("not a terminal")

// isTerminal is swapped in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// checkMount verifies the demo has a terminal to draw on and read input
// from. A missing target is fatal.
func checkMount(stdin, stdout *os.File) error {
	if stdout == nil || !isTerminal(stdout) {
		return slerrors.NewMountError("stdout", errNotTerminal)
	}
	if stdin == nil || !isTerminal(stdin) {
		return slerrors.NewMountError("stdin", errNotTerminal)
	}
	return nil
}
