// Package cliutil holds flag and positional helpers shared by the binaries.
package cliutil

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExplicitFlags returns the names of flags set on the command line. Names
// found in aliases are reported under their canonical name.
func ExplicitFlags(fs *flag.FlagSet, aliases map[string]string) map[string]bool {
	m := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if canon, ok := aliases[name]; ok {
			name = canon
		}
		m[name] = true
	})
	return m
}

// SplitArgs separates flags from input paths so inputs may come before,
// between or after flags (seqstat R1.fq -t 4 R2.fq). "-" is stdin and
// everything after "--" is an input.
func SplitArgs(fs *flag.FlagSet, argv []string) (flagArgs, inputs []string) {
	takesValue := func(name string) bool {
		f := fs.Lookup(name)
		if f == nil {
			// unknown flag: fs.Parse reports it
			return false
		}
		bf, ok := f.Value.(interface{ IsBoolFlag() bool })
		return !ok || !bf.IsBoolFlag()
	}
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return flagArgs, append(inputs, argv[i+1:]...)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			inputs = append(inputs, arg)
		case strings.Contains(arg, "="):
			flagArgs = append(flagArgs, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if takesValue(strings.TrimLeft(arg, "-")) && i+1 < len(argv) {
				i++
				flagArgs = append(flagArgs, argv[i])
			}
		}
	}
	return flagArgs, inputs
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals, in sorted
// order. Directories are rejected: every input must be a readable stream.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		matches := []string{a}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			matches = m
		}
		for _, p := range matches {
			if fi, err := os.Stat(p); err == nil && fi.IsDir() {
				return nil, fmt.Errorf("%s: is a directory", p)
			}
		}
		out = append(out, matches...)
	}
	return out, nil
}
