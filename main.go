package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"
)

const promptText = "Enter the string to hash > "

// Options for the sha1 command. With no string and no files, the command
// falls back to an interactive prompt.
type Options struct {
	String *string `short:"s" long:"string" description:"Hash a literal string instead of files" value-name:"TEXT"`

	Args struct {
		Files []flags.Filename `positional-arg-name:"FILE" description:"Files to hash"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "", 0)
	report := run(&opts, os.Stdin, os.Stdout)
	report.Print(logger)
	if report.Failures() > 0 {
		os.Exit(1)
	}
}

// run digests every requested source and returns the report. A file that
// fails to open is recorded as a failure and processing continues with the
// remaining files.
func run(opts *Options, in io.Reader, promptOut io.Writer) *DigestReport {
	report := &DigestReport{}

	switch {
	case opts.String != nil:
		addStringDigest(report, *opts.String)
	case len(opts.Args.Files) > 0:
		for _, file := range opts.Args.Files {
			path := string(file)
			digest, err := fileDigest(path)
			if err != nil {
				report.AddError(path, err)
				continue
			}
			report.AddDigest(path, digest)
		}
	default:
		line, err := promptLine(in, promptOut)
		if err != nil {
			report.AddError("stdin", err)
			return report
		}
		addStringDigest(report, line)
	}

	return report
}

func addStringDigest(report *DigestReport, s string) {
	digest, err := stringDigest(s)
	if err != nil {
		report.AddError(fmt.Sprintf("%q", s), err)
		return
	}
	report.AddDigest(fmt.Sprintf("%q", s), digest)
}

func promptLine(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptText)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return scanner.Text(), nil
}
