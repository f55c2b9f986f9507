package internal

import (
	"fmt"
	"strings"

	"github.com/xiaobogaga/hackasm/util"
)

// The classifier looks at one source line and decides which kind of command it is. It only checks the lexical
// shape of A and L commands; a C command is accepted by its leading character and its fields are checked later
// by the encoder, which has the mnemonic tables anyway.

type CommandType int

const (
	SkipCommand CommandType = iota
	ACommand
	CCommand
	LCommand
	InvalidCommand
	EndOfInput
)

var commandTypeNames = [...]string{
	SkipCommand:    "Skip",
	ACommand:       "ACommand",
	CCommand:       "CCommand",
	LCommand:       "LCommand",
	InvalidCommand: "InvalidCommand",
	EndOfInput:     "EndOfInput",
}

func (tp CommandType) String() string {
	if tp < 0 || int(tp) >= len(commandTypeNames) {
		return fmt.Sprintf("CommandType(%d)", int(tp))
	}
	return commandTypeNames[tp]
}

// Command is a classified source line.
// * Text is the symbol or decimal after '@', the label between '(' and ')', or the whole C command, always without
//   comment.
// * Trailer is whatever follows the extracted text on the line. The encoder checks it for C commands.
// * Reason explains an InvalidCommand.
type Command struct {
	Tp              CommandType
	Text            string
	Trailer         string
	Reason          string
	Line            int
	OriginalContent string
}

func (command Command) String() string {
	return fmt.Sprintf("Command: {Tp: %v, Text: %s, Line: %d, OriginalContent: %s}", command.Tp, command.Text,
		command.Line, command.OriginalContent)
}

// IsSymbolic reports whether the command text names a symbol rather than a decimal constant.
func (command Command) IsSymbolic() bool {
	return command.Text != "" && util.IsSymbolStart(command.Text[0])
}

// removeSpaces drops every blank and the line terminator. Hack tokens never contain blanks, so this is how stray
// spaces around operators are tolerated.
func removeSpaces(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if strings.IndexAny(line, " \t") == -1 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			b.WriteByte(line[i])
		}
	}
	return b.String()
}

// lineEnd returns the index where the meaningful part of line stops: the first '/' or len(line).
func lineEnd(line string) int {
	index := strings.IndexByte(line, '/')
	if index == -1 {
		return len(line)
	}
	return index
}

// validComment reports whether rest, which starts at a line end, is empty or a well formed "//" comment.
func validComment(rest string) bool {
	return rest == "" || strings.HasPrefix(rest, "//")
}

// Classify classifies a raw source line, terminator included or not.
func Classify(line string) Command {
	trimmed := removeSpaces(line)
	command := Command{OriginalContent: trimmed}
	if len(trimmed) == 0 {
		command.Tp = SkipCommand
		return command
	}
	switch trimmed[0] {
	case '/':
		return classifyComment(command, trimmed)
	case '@':
		return classifyACommand(command, trimmed)
	case '(':
		return classifyLCommand(command, trimmed)
	case 'D', 'A', 'M', '0', '1', '-', '!':
		end := lineEnd(trimmed)
		command.Tp = CCommand
		command.Text = trimmed[:end]
		command.Trailer = trimmed[end:]
		return command
	default:
		return invalid(command, fmt.Sprintf("unexpected character %q", trimmed[0]))
	}
}

func invalid(command Command, reason string) Command {
	command.Tp = InvalidCommand
	command.Text = ""
	command.Trailer = ""
	command.Reason = reason
	return command
}

func classifyComment(command Command, line string) Command {
	if len(line) < 2 || line[1] != '/' {
		return invalid(command, "comment format not correct")
	}
	command.Tp = SkipCommand
	return command
}

// classifyACommand accepts '@' followed by either only digits or a symbol, then end of line or a comment.
func classifyACommand(command Command, line string) Command {
	body := line[1:]
	end := lineEnd(body)
	token := body[:end]
	if token == "" {
		return invalid(command, "missing address after @")
	}
	if util.IsNumber(token[0]) {
		for i := 1; i < len(token); i++ {
			if !util.IsNumber(token[i]) {
				return invalid(command, "wrong decimal value format")
			}
		}
	} else if util.IsSymbolStart(token[0]) {
		if !isSymbolTail(token[1:]) {
			return invalid(command, "wrong variable or label format")
		}
	} else {
		return invalid(command, "wrong variable or label format")
	}
	if !validComment(body[end:]) {
		return invalid(command, "comment format not correct")
	}
	command.Tp = ACommand
	command.Text = token
	command.Trailer = body[end:]
	return command
}

// classifyLCommand accepts '(' symbol ')' followed by end of line or a comment.
func classifyLCommand(command Command, line string) Command {
	body := line[1:]
	closing := strings.IndexByte(body, ')')
	end := lineEnd(body)
	if closing == -1 || closing > end {
		return invalid(command, "wrong label format: missing ')'")
	}
	label := body[:closing]
	if label == "" || !util.IsSymbolStart(label[0]) || !isSymbolTail(label[1:]) {
		return invalid(command, "wrong label format")
	}
	rest := body[closing+1:]
	if !validComment(rest) {
		return invalid(command, "unexpected characters after label")
	}
	command.Tp = LCommand
	command.Text = label
	command.Trailer = rest
	return command
}

func isSymbolTail(s string) bool {
	for i := 0; i < len(s); i++ {
		if !util.IsSymbolChar(s[i]) {
			return false
		}
	}
	return true
}
