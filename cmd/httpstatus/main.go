/*
 * @Author: thepoy
 * @Email: thepoy@163.com
 * @File Name: main.go
 * @Created: 2023-04-01 20:14:37
 * @Modified: 2023-04-02 10:05:21
 */

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-predator/httpstatus"
	"github.com/go-predator/httpstatus/log"
	"github.com/go-predator/httpstatus/store"
	"github.com/go-predator/httpstatus/tools"
)

const usage = `Usage: httpstatus [flags] [code ...]

Looks up every code given as an argument, or every non-empty line of stdin
when there is none. Unknown codes print the Unknown status.

With -export the catalog is written to the given sqlite file; codes,
-json and -all are ignored then.

Flags:
`

type options struct {
	json     bool
	all      bool
	export   string
	compress bool
	logFile  string
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, log.ToConsole()))
}

// run executes the command and returns its exit code. Log lines go to
// console, and also to the `-log` file when one is given.
func run(args []string, stdin io.Reader, stdout, stderr, console io.Writer) int {
	var op options

	fs := flag.NewFlagSet("httpstatus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&op.json, "json", false, "print one single-line json document per status")
	fs.BoolVar(&op.all, "all", false, "print the whole catalog")
	fs.StringVar(&op.export, "export", "", "write the catalog into the sqlite `file`")
	fs.BoolVar(&op.compress, "compress", false, "compress descriptions in the export")
	fs.StringVar(&op.logFile, "log", "", "also write the log into `file`")
	fs.BoolVar(&op.verbose, "v", false, "log unknown codes and export progress")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := log.NewLogger(log.WARNING, console)
	if op.logFile != "" {
		w, err := log.ToFileAnd(console, op.logFile, -1)
		if err != nil {
			logger.Error(err, log.NewArg("log", op.logFile))
			return 1
		}
		logger = log.NewLogger(log.WARNING, w)
	}
	if op.verbose {
		logger.SetLevel(log.DEBUG)
	}

	if op.export != "" {
		if ignored := ignoredByExport(op, fs.Args()); len(ignored) > 0 {
			logger.Warning("ignored with -export", log.NewArg("ignored", ignored))
		}
		if err := export(op, logger); err != nil {
			logger.Error(err, log.NewArg("path", op.export))
			return 1
		}
		return 0
	}

	if op.compress {
		logger.Warning("-compress only applies to -export")
	}

	show := func(statuses []httpstatus.Status) {
		for _, s := range statuses {
			if op.json {
				fmt.Fprintln(stdout, s.JSON())
			} else {
				fmt.Fprintln(stdout, s.String())
			}
		}
	}

	if op.all {
		show(httpstatus.All())
		return 0
	}

	if fs.NArg() > 0 {
		for _, code := range fs.Args() {
			show(lookup(code, logger))
		}
		return 0
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		code := tools.Strip(scanner.Text())
		if code == "" {
			continue
		}
		show(lookup(code, logger))
	}
	if err := scanner.Err(); err != nil {
		logger.Error(err)
		return 1
	}
	return 0
}

func lookup(code string, logger *log.Logger) []httpstatus.Status {
	found := httpstatus.GetByCodeString(code)
	if found[0].IsUnknown() {
		logger.Debug("unknown status code", log.NewArg("input", code))
	}
	return found
}

func ignoredByExport(op options, codes []string) []string {
	var ignored []string
	if op.json {
		ignored = append(ignored, "-json")
	}
	if op.all {
		ignored = append(ignored, "-all")
	}
	return append(ignored, codes...)
}

func export(op options, logger *log.Logger) error {
	s := store.NewSQLiteStore(
		store.WithURI(op.export),
		store.WithCompression(op.compress),
		store.WithLogger(logger),
	)
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Close()

	return s.Save(httpstatus.All())
}
