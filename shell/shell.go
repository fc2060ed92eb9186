// Package shell is the line-oriented front end of matreg: it splits one input
// line into tokens, resolves names through the registry and calls the matrix
// and codec operations, printing a one-line result for each command.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/matreg/codec"
	"github.com/katalvlaran/matreg/matrix"
	"github.com/katalvlaran/matreg/registry"
)

var (
	// ErrExit is returned by Exec for the exit command.
	ErrExit = errors.New("shell: exit")

	// ErrUnknownCommand is returned for a command word the shell does not know.
	ErrUnknownCommand = errors.New("shell: not a command in this application")

	// ErrUsage is returned for a known command with wrong arguments.
	ErrUsage = errors.New("shell: usage")
)

// Shell dispatches commands against one registry.
type Shell struct {
	reg       *registry.Registry
	out       io.Writer
	log       *zap.Logger
	dataDir   string
	codecOpts []codec.Option
	fillOpts  []matrix.Option
	commands  map[string]command
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.log = l.Named("shell")
		}
	}
}

// WithDataDir sets the directory relative file paths resolve against.
func WithDataDir(dir string) Option {
	return func(s *Shell) { s.dataDir = dir }
}

// WithCodecOptions sets options for read and write.
func WithCodecOptions(opts ...codec.Option) Option {
	return func(s *Shell) { s.codecOpts = append(s.codecOpts, opts...) }
}

// WithFillOptions sets options for the random command (e.g., matrix.WithRand).
func WithFillOptions(opts ...matrix.Option) Option {
	return func(s *Shell) { s.fillOpts = append(s.fillOpts, opts...) }
}

// New returns a Shell writing command output to out.
func New(reg *registry.Registry, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		reg:     reg,
		out:     out,
		log:     zap.NewNop(),
		dataDir: ".",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.commands = s.commandTable()

	return s
}

// Exec runs one input line. Blank lines are a no-op. The returned error is
// meant for the user; Run prints it and continues.
func (s *Shell) Exec(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	cmd, ok := s.commands[args[0]]
	if !ok {
		return fmt.Errorf("%q: %w", args[0], ErrUnknownCommand)
	}
	if len(args)-1 < cmd.minArgs || len(args)-1 > cmd.maxArgs {
		return fmt.Errorf("%w: %s", ErrUsage, cmd.usage)
	}
	s.log.Debug("exec", zap.Strings("args", args))

	return cmd.run(args[1:])
}

// Run reads lines from in until EOF or exit, printing prompt before each
// line and any command error after it.
func (s *Shell) Run(in io.Reader, prompt string) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		err := s.Exec(sc.Text())
		switch {
		case errors.Is(err, ErrExit):
			return nil
		case err != nil:
			fmt.Fprintln(s.out, err)
		}
	}
}

// Bootstrap creates a 5×5 "temp_mat", fills it from [10,15] and writes it
// to the data directory.
func (s *Shell) Bootstrap() error {
	for _, line := range []string{"create temp_mat 5 5", "random temp_mat 10 15", "write temp_mat"} {
		if err := s.Exec(line); err != nil {
			return fmt.Errorf("bootstrap: %w", err)
		}
	}

	return nil
}

// resolvePath joins a relative path onto the data directory.
func (s *Shell) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(s.dataDir, p)
}
