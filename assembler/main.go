package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/xiaobogaga/hackasm/assembler/internal"
)

// hackasm reads a hack assembly file and writes the corresponding hack machine code next to it,
// prog.asm becomes prog.hack unless -o says otherwise.

type options struct {
	output  string
	verbose bool
	symbols bool
	cfg     internal.Config
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := options{cfg: internal.DefaultConfig()}
	cmd := &cobra.Command{
		Use:   "hackasm prog.asm",
		Short: "Translate hack assembly into hack machine code",
		Long: `Hackasm translates a program written in the hack assembly language into
hack machine code, one line of 16 binary digits per instruction.

The output file is only created when the whole program assembles; on the
first syntax error nothing is written and the offending line is reported.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), stdout, args[0], opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "the output hack binary code file path (default: input with .hack extension)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "whether print all transformed binary code")
	flags.BoolVar(&opts.symbols, "symbols", false, "whether print the resolved symbol table")
	flags.IntVar(&opts.cfg.MaxLineLength, "max-line-length", opts.cfg.MaxLineLength, "the longest accepted source line in bytes")
	flags.Uint16Var(&opts.cfg.VariableBase, "variable-base", opts.cfg.VariableBase, "the RAM address of the first variable")
	return cmd
}

func main() {
	ctx := tlog.ContextWithSpan(context.Background(), tlog.Root())
	err := newRootCmd(os.Stdout).ExecuteContext(ctx)
	if err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer, inputPath string, opts options) error {
	err := opts.cfg.Validate()
	if err != nil {
		return err
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()

	outputPath := opts.output
	if outputPath == "" {
		outputPath = hackFileName(inputPath)
	}
	tlog.SpanFromContext(ctx).Printw("assemble file", "input", inputPath, "output", outputPath)

	asm := internal.CreateAssembler(opts.cfg)
	err = writeOutput(outputPath, func(w io.Writer) error {
		return asm.Assemble(ctx, f, w)
	})
	if err != nil {
		return errors.Wrap(err, "assemble %v", inputPath)
	}

	if opts.verbose {
		printListing(stdout, asm.Listing())
	}
	if opts.symbols {
		printSymbols(stdout, asm.SymbolTable().Symbols())
	}
	return nil
}

// report is the diagnostic reporter: a syntax error is reported with its source line number, anything else as is.
func report(w io.Writer, err error) {
	var syntaxErr *internal.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintf(w, "Syntax Error on line: %d: %s\n", syntaxErr.Line, syntaxErr.Msg)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
