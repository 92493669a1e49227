package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/icza/ice"
)

func runInfo(out, errOut *os.File, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(errOut)
	human := fs.BoolP("human-readable", "H", false, "print sizes in human-readable format")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errMissingArg("icefile")
	}

	f, err := ice.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	fprintln(out, "Version:", f.Header.Version)
	fprintf(out, "Flags:   0x%04x\n", f.Header.Flags)
	fprintln(out, "Size:   ", formatSize(int64(f.Header.FileSize), *human))

	if len(f.Group1) > 0 {
		printGroupInfo(out, "Group 1:", f.Group1, *human)
	}
	if len(f.Group2) > 0 {
		printGroupInfo(out, "Group 2:", f.Group2, *human)
	}

	return nil
}

func printGroupInfo(out *os.File, header string, files []ice.DataFile, human bool) {
	width := 0
	for _, f := range files {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}

	fprintln(out)
	fprintln(out, header)
	for _, f := range files {
		fprintf(out, "  %-*s  %s\n", width, f.Name, formatSize(int64(len(f.Data)), human))
	}
}
