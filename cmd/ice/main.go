// Command ice reads, lists, extracts, and packs ICE archives.
package main

import "os"

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args))
}

func run(out, errOut *os.File, args []string) int {
	if len(args) < 2 {
		printUsage(errOut)
		return 1
	}

	cmdName := args[1]
	rest := args[2:]

	var err error
	switch cmdName {
	case "info":
		err = runInfo(out, errOut, rest)
	case "list":
		err = runList(out, errOut, rest)
	case "unpack":
		err = runUnpack(out, errOut, rest)
	case "pack":
		err = runPack(out, errOut, rest)
	case "repack":
		err = runRepack(out, errOut, rest)
	case "-h", "--help", "help":
		printUsage(out)
		return 0
	default:
		printUsage(errOut)
		return 1
	}

	if err != nil {
		fprintln(errOut, "error:", err)
		return 1
	}
	return 0
}

func printUsage(w *os.File) {
	fprintln(w, "usage: ice <command> [flags]")
	fprintln(w)
	fprintln(w, "commands:")
	fprintln(w, "  info <icefile> [-H]")
	fprintln(w, "  list <icefile> [-g]")
	fprintln(w, "  unpack <icefile> [-o dir] [-g]")
	fprintln(w, "  pack <paths...> -o <file> [-c mode] [-e] [-v 3|4] [-1 pattern]...")
	fprintln(w, "  repack <icefile> -o <file> [-c mode] [-e] [-v 3|4]")
}
