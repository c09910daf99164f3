// Copyright (C) 2025 Sean Quill. All Rights Reserved.

// Command jevcheck validates JSON from files or standard input, streaming
// each input once and reporting the first structural or lexical failure
// with its code and position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/seaqull/jev"
	"github.com/seaqull/jev/jerr"
)

const (
	exitSuccess = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jevcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	comments := fs.Bool("comments", false, "allow // and /* */ comments")
	maxDepth := fs.Int("max-depth", jev.DefaultMaxDepth, "maximum container nesting depth")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: jevcheck [-comments] [-max-depth n] [file ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *maxDepth <= 0 {
		fmt.Fprintln(stderr, "jevcheck: -max-depth must be positive")
		return exitUsage
	}

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	status := exitSuccess
	for _, name := range files {
		if err := checkFile(name, stdin, *comments, *maxDepth); err != nil {
			report(stderr, name, err)
			status = exitInvalid
			continue
		}
		fmt.Fprintf(stdout, "%s: ok\n", displayName(name))
	}
	return status
}

func checkFile(name string, stdin io.Reader, comments bool, maxDepth int) error {
	in := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	s := jev.NewStreamConfig(in, jev.Config{MaxDepth: maxDepth})
	s.AllowComments(comments)
	return jev.Validate(s)
}

func report(w io.Writer, name string, err error) {
	if code := jerr.CodeOf(err); code != "" {
		fmt.Fprintf(w, "%s: %s at offset %d: %v\n",
			displayName(name), code, jerr.OffsetOf(err), err)
		return
	}
	fmt.Fprintf(w, "%s: %v\n", displayName(name), err)
}

func displayName(name string) string {
	if name == "-" {
		return "(stdin)"
	}
	return name
}
