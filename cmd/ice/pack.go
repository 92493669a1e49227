package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/icza/ice"
)

type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func runPack(out, errOut *os.File, args []string) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	fs.SetOutput(errOut)
	outPath := fs.StringP("out", "o", "", "output archive path")
	compress := fs.StringP("compress", "c", "none", "compression mode: none, prs, kraken[:level], or 0-9")
	encrypt := fs.BoolP("encrypt", "e", false, "encrypt the archive")
	version := fs.UintP("version", "v", 4, "archive version to write (3 or 4)")
	var group1Patterns stringSliceFlag
	fs.VarP(&group1Patterns, "group1", "1", "case-insensitive regex matching group-1 file names")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errMissingArg("paths")
	}
	if *outPath == "" {
		return errMissingArg("--out")
	}

	opts, err := parseCompressMode(*compress)
	if err != nil {
		return err
	}

	matchers := make([]*regexp.Regexp, 0, len(group1Patterns))
	for _, p := range group1Patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return err
		}
		matchers = append(matchers, re)
	}

	var group1, group2 []ice.DataFile
	for _, root := range fs.Args() {
		g1, g2, err := groupFiles(root, root, matchers)
		if err != nil {
			return err
		}
		group1 = append(group1, g1...)
		group2 = append(group2, g2...)
	}

	if len(group1) == 0 && len(group2) == 0 {
		return errMissingArg("at least one file to pack")
	}

	f := &ice.IceFile{Group1: group1, Group2: group2}
	if err := f.WriteFile(*outPath, uint32(*version), opts, *encrypt); err != nil {
		return err
	}

	fprintln(out, *outPath)
	return nil
}

// groupFiles walks root (a file or directory), splitting discovered files
// into group1/group2 by isGroup1.
func groupFiles(root, base string, matchers []*regexp.Regexp) (group1, group2 []ice.DataFile, err error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, nil, err
	}

	if info.IsDir() {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range entries {
			sub1, sub2, err := groupFiles(filepath.Join(root, e.Name()), base, matchers)
			if err != nil {
				return nil, nil, err
			}
			group1 = append(group1, sub1...)
			group2 = append(group2, sub2...)
		}
		return group1, group2, nil
	}

	data, err := os.ReadFile(root)
	if err != nil {
		return nil, nil, err
	}
	df := ice.DataFile{Name: filepath.Base(root), Data: data}

	if isGroup1(root, base, matchers) {
		return []ice.DataFile{df}, nil, nil
	}
	return nil, []ice.DataFile{df}, nil
}

// isGroup1 mirrors the pack front-end's file-classification rule: a path
// under a "group1" directory component always matches; otherwise the base
// name is matched against each caller-supplied regex.
func isGroup1(path, base string, matchers []*regexp.Regexp) bool {
	rel, err := filepath.Rel(base, path)
	if err == nil {
		for _, part := range strings.Split(rel, string(filepath.Separator)) {
			if part == "group1" {
				return true
			}
		}
	}

	name := filepath.Base(path)
	for _, re := range matchers {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}
