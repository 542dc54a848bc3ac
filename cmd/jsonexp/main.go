package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ccbrown/jsonexp"
)

var version = "dev"

// Run reads a JSON document from the given file argument or stdin, rewrites
// its exponential notation to fixed-point notation, and writes the result to
// the --output path or stdout.
func Run(stdin io.Reader, stdout io.Writer, args ...string) error {
	flags := pflag.NewFlagSet("jsonexp", pflag.ContinueOnError)
	output := flags.StringP("output", "o", "", "write the result to this file instead of stdout")
	strict := flags.Bool("strict", false, "exit without writing anything if the input is not valid JSON")
	verbose := flags.BoolP("verbose", "v", false, "log details of the transformation to stderr")
	showVersion := flags.Bool("version", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, "jsonexp "+version)
		return nil
	}

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flags.NArg() > 1 {
		return errors.New("at most one input file may be given")
	}
	file := flags.Arg(0)

	var input []byte
	var err error
	if file == "" || file == "-" {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			logrus.Info("reading from the terminal. pipe a document or provide a file argument if this is not what you want")
		}
		input, err = ioutil.ReadAll(stdin)
	} else {
		input, err = ioutil.ReadFile(file)
	}
	if err != nil {
		return errors.Wrap(err, "error reading input")
	}

	if *strict && !jsoniter.Valid(input) {
		return errors.New("input is not valid JSON")
	}

	start := time.Now()
	result, err := jsonexp.Replace(string(input))
	if err != nil {
		return err
	}
	logrus.Debugf("transformed %v bytes to %v bytes in %v", len(input), len(result), time.Since(start))

	if *output == "" {
		fmt.Fprint(stdout, result)
		return nil
	}
	if err := ioutil.WriteFile(*output, []byte(result), 0644); err != nil {
		return errors.Wrap(err, "error writing output")
	}
	return nil
}

func main() {
	if err := Run(os.Stdin, os.Stdout, os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
