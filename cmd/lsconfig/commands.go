package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"lsconfig/internal/export"
	"lsconfig/internal/labelconfig"
	"lsconfig/internal/logging"
	"lsconfig/internal/settings"
	"lsconfig/internal/task"
	"lsconfig/internal/usage"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// errFailed marks a check that failed after its findings were printed.
var errFailed = errors.New("check failed")

type env struct {
	stdout   io.Writer
	settings *settings.Settings
	logger   *log.Logger
}

type command struct {
	args  string
	nargs int
	help  string
	run   func(e *env, args []string) error
}

var commands = map[string]command{
	"validate":    {args: "<config.xml>", nargs: 1, help: "parse and run structural checks", run: validateCommand},
	"inspect":     {args: "<config.xml>", nargs: 1, help: "print the linked model (-o yaml|json)", run: inspectCommand},
	"sample":      {args: "<config.xml>", nargs: 1, help: "print a sample task (-mode, -secure)", run: sampleCommand},
	"diff":        {args: "<old.xml> <new.xml>", nargs: 2, help: "report essential changes", run: diffCommand},
	"check-task":  {args: "<config.xml> <task.json>", nargs: 2, help: "validate a task", run: checkTaskCommand},
	"consistency": {args: "<config.xml> <summary.yaml>", nargs: 2, help: "check against recorded usage", run: consistencyCommand},
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(stdout)
		return exitOK
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command: %s\n", name)
		printUsage(stderr)

		return exitUsage
	}

	fs := flag.NewFlagSet("lsconfig "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	s, rest, err := settings.Load(fs, args[1:], getenv)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if len(rest) != cmd.nargs {
		fmt.Fprintf(stderr, "usage: lsconfig %s [flags] %s\n", name, cmd.args)
		return exitUsage
	}

	logger, err := logging.New(stderr, s.LogOptions())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	err = cmd.run(&env{stdout: stdout, settings: s, logger: logger}, rest)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFailed):
		return exitFailed
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitFailed
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: lsconfig <command> [flags] <args>")
	fmt.Fprintln(w, "\ncommands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %-30s %s\n", name, commands[name].args, commands[name].help)
	}
}

func (e *env) load(path string) (*labelconfig.LabelingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := labelconfig.New(string(data), labelconfig.WithLogger(e.logger.With("config", path)))
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// render writes v in the configured output format.
func (e *env) render(v any) error {
	var (
		out []byte
		err error
	)

	if e.settings.Output == settings.OutputJSON {
		out, err = json.MarshalIndent(v, "", "  ")
		out = append(out, '\n')
	} else {
		out, err = yaml.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	_, err = e.stdout.Write(out)

	return err
}

func validateCommand(e *env, args []string) error {
	cfg, err := e.load(args[0])
	if err != nil {
		return err
	}

	diags := cfg.Check()
	for _, d := range diags.All() {
		fmt.Fprintf(e.stdout, "%s: %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		fmt.Fprintf(e.stdout, "invalid: %s\n", diags.Error())
		return errFailed
	}

	fmt.Fprintf(e.stdout, "valid: %d controls, %d objects\n", len(cfg.ControlNames()), len(cfg.ObjectNames()))

	return nil
}

func inspectCommand(e *env, args []string) error {
	cfg, err := e.load(args[0])
	if err != nil {
		return err
	}

	out, err := export.Format(cfg, e.settings.Output)
	if err != nil {
		return err
	}

	_, err = e.stdout.Write(out)

	return err
}

func sampleCommand(e *env, args []string) error {
	cfg, err := e.load(args[0])
	if err != nil {
		return err
	}

	return e.render(cfg.GenerateSampleTask(e.settings.ExampleMode(), e.settings.SecureMode))
}

func diffCommand(e *env, args []string) error {
	prev, err := e.load(args[0])
	if err != nil {
		return err
	}

	next, err := e.load(args[1])
	if err != nil {
		return err
	}

	changes := prev.EssentialChanges(next)
	if len(changes) == 0 {
		fmt.Fprintln(e.stdout, "no essential changes")
		return nil
	}

	fmt.Fprintf(e.stdout, "essential changes:\n  %s\n", strings.Join(changes, "\n  "))

	return nil
}

func checkTaskCommand(e *env, args []string) error {
	cfg, err := e.load(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read task: %w", err)
	}

	t, err := task.Parse(data)
	if err != nil {
		fmt.Fprintf(e.stdout, "invalid: %s\n", err)
		return errFailed
	}

	problems := cfg.CheckTask(t)
	for _, p := range problems {
		fmt.Fprintf(e.stdout, "invalid: %s\n", p)
	}

	if len(problems) > 0 {
		return errFailed
	}

	fmt.Fprintf(e.stdout, "valid: %d annotations, %d predictions\n", len(t.Annotations), len(t.Predictions))

	return nil
}

func consistencyCommand(e *env, args []string) error {
	cfg, err := e.load(args[0])
	if err != nil {
		return err
	}

	summary, err := usage.LoadSummaryFile(args[1])
	if err != nil {
		return err
	}

	if err := cfg.ValidateConfigUsingSummary(summary); err != nil {
		fmt.Fprintf(e.stdout, "inconsistent: %s\n", err)
		return errFailed
	}

	fmt.Fprintln(e.stdout, "consistent")

	return nil
}
