package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/icza/ice"
)

func runRepack(out, errOut *os.File, args []string) error {
	fs := flag.NewFlagSet("repack", flag.ContinueOnError)
	fs.SetOutput(errOut)
	outPath := fs.StringP("out", "o", "", "output archive path")
	compress := fs.StringP("compress", "c", "none", "compression mode: none, prs, kraken[:level], or 0-9")
	encrypt := fs.BoolP("encrypt", "e", false, "encrypt the archive")
	version := fs.UintP("version", "v", 4, "archive version to write (3 or 4)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errMissingArg("icefile")
	}
	if *outPath == "" {
		return errMissingArg("--out")
	}

	opts, err := parseCompressMode(*compress)
	if err != nil {
		return err
	}

	if err := ice.Repack(fs.Arg(0), *outPath, uint32(*version), opts, *encrypt); err != nil {
		return err
	}

	fprintln(out, *outPath)
	return nil
}
