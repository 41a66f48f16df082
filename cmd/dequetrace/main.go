// Command dequetrace replays the reference push/pop scenarios against a
// ring deque and prints its contents after every step.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"

	"github.com/lucasgdosr/ringdeque"
)

var logger = loggo.GetLogger("ringdeque.dequetrace")

func setupLogging(logLevel loggo.Level) error {
	writer := loggo.NewSimpleWriter(os.Stderr, logFormatter)
	loggo.ReplaceDefaultWriter(writer)
	return loggo.ConfigureLoggers(fmt.Sprintf("<root>=%s", logLevel.String()))
}

func logFormatter(entry loggo.Entry) string {
	ts := entry.Timestamp.In(time.UTC).Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s %s %s", ts, entry.Level, entry.Message)
}

type commandLineArgs struct {
	capacity    int
	scenarios   []string
	rawLogLevel string
	logLevel    loggo.Level
}

func commandLine(args []string) (commandLineArgs, error) {
	flags := gnuflag.NewFlagSet("dequetrace", gnuflag.ContinueOnError)
	var a commandLineArgs
	var rawScenarios string
	flags.IntVar(&a.capacity, "capacity", 5,
		"capacity of the deque")
	flags.StringVar(&rawScenarios, "scenario", "back,front",
		"comma separated scenarios to replay (back, front)")
	flags.StringVar(&a.rawLogLevel, "log-level", "WARNING",
		"log level to use (TRACE/DEBUG/INFO/etc)")

	if err := flags.Parse(true, args); err != nil {
		return a, errors.Trace(err)
	}

	level, ok := loggo.ParseLevel(a.rawLogLevel)
	if !ok {
		return a, errors.NotValidf("log level %q", a.rawLogLevel)
	}
	a.logLevel = level

	for _, name := range strings.Split(rawScenarios, ",") {
		name = strings.TrimSpace(name)
		if _, ok := scenarios[name]; !ok {
			return a, errors.NotFoundf("scenario %q", name)
		}
		a.scenarios = append(a.scenarios, name)
	}
	return a, nil
}

func checkErr(label string, err error) {
	if err != nil {
		logger.Errorf("%s: %s", label, err)
		os.Exit(1)
	}
}

func main() {
	args, err := commandLine(os.Args[1:])
	checkErr("parsing command line", err)
	checkErr("setup logging", setupLogging(args.logLevel))
	checkErr("replaying", replay(os.Stdout, args.capacity, args.scenarios))
}

// replay runs every named scenario on a fresh deque, separating their traces
// with "---".
func replay(w io.Writer, capacity int, names []string) error {
	for i, name := range names {
		if i > 0 {
			fmt.Fprintln(w, "---")
		}
		d, err := ringdeque.MakeDeque[int](capacity)
		if err != nil {
			return errors.Trace(err)
		}
		logger.Infof("replaying scenario %q with capacity %d", name, capacity)
		if err := run(w, d, scenarios[name]); err != nil {
			return errors.Annotatef(err, "scenario %q", name)
		}
	}
	return nil
}

func run(w io.Writer, d *ringdeque.Deque[int], steps []step) error {
	printContent(w, d)
	for _, s := range steps {
		if err := s.apply(d); err != nil {
			return errors.Annotate(err, s.name)
		}
		logger.Debugf("%s: %v", s.name, d)
		printContent(w, d)
	}
	return nil
}

// printContent writes the elements front to back followed by the length,
// e.g. "1, 5, 3, [3]".
func printContent(w io.Writer, d *ringdeque.Deque[int]) {
	var b strings.Builder
	for _, v := range d.All() {
		fmt.Fprintf(&b, "%d, ", v)
	}
	fmt.Fprintf(&b, "[%d]", d.Len())
	fmt.Fprintln(w, b.String())
}
