package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/icza/ice"
)

func runList(out, errOut *os.File, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(errOut)
	groups := fs.BoolP("groups", "g", false, "prefix names with their group subdirectory")
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

	group1Prefix, group2Prefix := "", ""
	if *groups {
		group1Prefix, group2Prefix = "group1/", "group2/"
	}

	for _, df := range f.Group1 {
		fprintln(out, group1Prefix+df.Name)
	}
	for _, df := range f.Group2 {
		fprintln(out, group2Prefix+df.Name)
	}

	return nil
}
