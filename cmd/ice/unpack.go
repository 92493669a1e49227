package main

import (
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/icza/ice"
)

func runUnpack(out, errOut *os.File, args []string) error {
	fs := flag.NewFlagSet("unpack", flag.ContinueOnError)
	fs.SetOutput(errOut)
	outDir := fs.StringP("out", "o", ".", "output directory")
	groups := fs.BoolP("groups", "g", false, "write files under group1/group2 subdirectories")
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

	if err := unpackGroup(out, *outDir, "group1", f.Group1, *groups); err != nil {
		return err
	}
	return unpackGroup(out, *outDir, "group2", f.Group2, *groups)
}

func unpackGroup(out *os.File, outDir, groupName string, files []ice.DataFile, useGroups bool) error {
	dir := outDir
	if useGroups {
		dir = filepath.Join(outDir, groupName)
	}

	for _, df := range files {
		path := filepath.Join(dir, df.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := atomicWriteFile(path, df.Data); err != nil {
			return err
		}
		fprintln(out, path)
	}
	return nil
}
