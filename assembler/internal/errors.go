package internal

import (
	"fmt"

	"tlog.app/go/errors"
)

// ErrLineTooLong is returned when a source line exceeds Config.MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

// ErrOutOfVariableMemory is returned when a variable would get an address above the A instruction range.
var ErrOutOfVariableMemory = errors.New("out of variable memory")

// SyntaxError is the only user facing failure of an assembly run. Line is the
// 1-based source line number.
type SyntaxError struct {
	Line    int
	Content string
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax err at line %d: %s", e.Line, e.Msg)
}

// UnknownSymbolError means a symbol was looked up before the first pass bound it.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Symbol)
}
