package internal

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

// A two pass assembler for the hack assembly language.
//
// The first pass classifies every line, binds each label to the address of the instruction that follows it and
// records the symbols referenced by A commands. Symbols still unbound when the pass ends are variables and get
// consecutive RAM addresses starting at Config.VariableBase, in the order they were first referenced. The second
// pass rewinds the source, classifies every line again and emits one 16 character binary line per A or C command.
// The first syntax error aborts the run.

type Assembler struct {
	cfg              Config
	table            *SymbolTable
	line             int // source line counter
	instructionAddr  int // address of the last A or C command seen, -1 before any
	nextVariableAddr uint16
	variables        []string // symbols referenced by A commands, in first reference order
	listing          []ListingEntry
}

// ListingEntry describes one emitted instruction.
type ListingEntry struct {
	Addr   int
	Line   int
	Source string
	Code   string
}

func (entry ListingEntry) String() string {
	return fmt.Sprintf("%5d  %s  // line %d: %s", entry.Addr, entry.Code, entry.Line, entry.Source)
}

func CreateAssembler(cfg Config) *Assembler {
	cfg = cfg.withDefaults()
	return &Assembler{
		cfg:              cfg,
		table:            NewSymbolTable(),
		instructionAddr:  -1,
		nextVariableAddr: cfg.VariableBase,
	}
}

// Assemble translates src with a fresh Assembler using the default configuration.
func Assemble(ctx context.Context, src io.ReadSeeker, dst io.Writer) error {
	return CreateAssembler(DefaultConfig()).Assemble(ctx, src, dst)
}

// Assemble runs both passes over src and writes the machine code to dst. On error dst may hold a prefix of the
// output; the caller owns dst and is expected to discard it. The symbol table persists across calls, the counters
// do not.
func (asm *Assembler) Assemble(ctx context.Context, src io.ReadSeeker, dst io.Writer) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "assemble")
	defer tr.Finish("err", &err)

	err = asm.cfg.Validate()
	if err != nil {
		return err
	}

	err = asm.firstPass(ctx, src)
	if err != nil {
		return err
	}
	tr.Printw("first pass done", "lines", asm.line, "instructions", asm.instructionAddr+1,
		"symbols", asm.table.Len(), "variables", len(asm.variables))

	err = asm.resetForSecondPass(src)
	if err != nil {
		return err
	}

	err = asm.secondPass(ctx, src, dst)
	if err != nil {
		return err
	}
	tr.Printw("second pass done", "lines", asm.line, "instructions", len(asm.listing))
	return nil
}

// SymbolTable returns the table the assembler resolves symbols with.
func (asm *Assembler) SymbolTable() *SymbolTable {
	return asm.table
}

// Listing returns the instructions emitted by the last second pass.
func (asm *Assembler) Listing() []ListingEntry {
	return asm.listing
}

func (asm *Assembler) firstPass(ctx context.Context, src io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	asm.line = 0
	asm.instructionAddr = -1
	asm.variables = asm.variables[:0]
	seen := map[string]bool{}
	rd := bufio.NewReader(src)
	for {
		command, err := asm.advance(rd)
		if err != nil {
			return err
		}
		switch command.Tp {
		case EndOfInput:
			return asm.allocateVariables()
		case SkipCommand, CCommand:
		case InvalidCommand:
			return asm.makeSyntaxErr(command, command.Reason)
		case LCommand:
			addr := asm.instructionAddr + 1
			if addr > maxConstant {
				return asm.makeSyntaxErr(command, fmt.Sprintf("label %s address %d out of range 0..%d", command.Text, addr, maxConstant))
			}
			asm.table.AddEntry(command.Text, uint16(addr))
		case ACommand:
			if command.IsSymbolic() && !asm.table.Contains(command.Text) && !seen[command.Text] {
				seen[command.Text] = true
				asm.variables = append(asm.variables, command.Text)
			}
		}
	}
}

// allocateVariables binds the symbols referenced during the first pass that no label claimed.
func (asm *Assembler) allocateVariables() error {
	for _, name := range asm.variables {
		if asm.table.Contains(name) {
			continue
		}
		if asm.nextVariableAddr > maxConstant {
			return errors.Wrap(ErrOutOfVariableMemory, "variable %s", name)
		}
		asm.table.AddEntry(name, asm.nextVariableAddr)
		asm.nextVariableAddr++
	}
	return nil
}

func (asm *Assembler) resetForSecondPass(src io.Seeker) error {
	_, err := src.Seek(0, io.SeekStart)
	if err != nil {
		return errors.Wrap(err, "rewind source")
	}
	asm.line = 0
	asm.instructionAddr = -1
	asm.listing = asm.listing[:0]
	return nil
}

func (asm *Assembler) secondPass(ctx context.Context, src io.Reader, dst io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rd := bufio.NewReader(src)
	wr := bufio.NewWriter(dst)
	for {
		command, err := asm.advance(rd)
		if err != nil {
			return err
		}
		var code string
		switch command.Tp {
		case EndOfInput:
			if err = wr.Flush(); err != nil {
				return errors.Wrap(err, "write output")
			}
			return nil
		case SkipCommand, LCommand:
			continue
		case InvalidCommand:
			return asm.makeSyntaxErr(command, command.Reason)
		case ACommand:
			code, err = EncodeACommand(command, asm.table)
		case CCommand:
			code, err = EncodeCCommand(command)
		}
		if err != nil {
			var unknown *UnknownSymbolError
			if errors.As(err, &unknown) {
				return errors.Wrap(err, "line %d: symbol missed by first pass", command.Line)
			}
			return asm.makeSyntaxErr(command, err.Error())
		}
		_, err = wr.WriteString(code + "\n")
		if err != nil {
			return errors.Wrap(err, "write output")
		}
		asm.listing = append(asm.listing, ListingEntry{
			Addr:   asm.instructionAddr,
			Line:   command.Line,
			Source: command.OriginalContent,
			Code:   code,
		})
	}
}

// advance reads and classifies the next line, updating the line and instruction counters.
func (asm *Assembler) advance(rd *bufio.Reader) (Command, error) {
	line, err := rd.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return Command{}, errors.Wrap(err, "read line %d", asm.line+1)
	}
	if len(line) == 0 {
		return Command{Tp: EndOfInput, Line: asm.line}, nil
	}
	asm.line++
	if len(bytes.TrimRight(line, "\r\n")) > asm.cfg.MaxLineLength {
		return Command{}, errors.Wrap(ErrLineTooLong, "line %d", asm.line)
	}
	command := Classify(string(line))
	command.Line = asm.line
	if command.Tp == ACommand || command.Tp == CCommand {
		asm.instructionAddr++
	}
	return command, nil
}

func (asm *Assembler) makeSyntaxErr(command Command, msg string) error {
	return &SyntaxError{Line: command.Line, Content: command.OriginalContent, Msg: msg}
}
