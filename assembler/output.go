package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/k0kubun/pp/v3"
	"tlog.app/go/errors"

	"github.com/xiaobogaga/hackasm/assembler/internal"
)

// hackFileName maps X.asm to X.hack. Other names get .hack appended.
func hackFileName(asmPath string) string {
	return strings.TrimSuffix(asmPath, ".asm") + ".hack"
}

// writeOutput runs fill against a temporary file next to path and moves it to path only if fill succeeds, so a
// failed run never leaves a partial output file behind.
func writeOutput(path string, fill func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	err = tmp.Chmod(0644)
	if err != nil {
		return errors.Wrap(err, "chmod output")
	}
	err = fill(tmp)
	if err != nil {
		return err
	}
	err = tmp.Close()
	if err != nil {
		return errors.Wrap(err, "close output")
	}
	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return errors.Wrap(err, "save output to %v", path)
	}
	return nil
}

func printListing(w io.Writer, listing []internal.ListingEntry) {
	for _, entry := range listing {
		fmt.Fprintln(w, entry)
	}
}

func printSymbols(w io.Writer, symbols []internal.SymbolEntry) {
	pp.Fprintf(w, "Symbols: %v\n", symbols)
}
