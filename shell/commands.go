package shell

import (
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/matreg/codec"
	"github.com/katalvlaran/matreg/matrix"
	"github.com/katalvlaran/matreg/registry"
)

// command is one entry of the dispatch table.
type command struct {
	usage            string
	minArgs, maxArgs int
	run              func(args []string) error
}

func (s *Shell) commandTable() map[string]command {
	return map[string]command{
		"display":   {"display NAME", 1, 1, s.display},
		"add":       {"add A B RESULT", 3, 3, s.add},
		"duplicate": {"duplicate SRC DST", 2, 2, s.duplicate},
		"equal":     {"equal A B", 2, 2, s.equal},
		"shift":     {"shift NAME l|r AMOUNT", 3, 3, s.shift},
		"read":      {"read PATH", 1, 1, s.read},
		"write":     {"write NAME [PATH]", 1, 2, s.write},
		"create":    {"create NAME ROWS COLS", 3, 3, s.create},
		"random":    {"random NAME LOW HIGH", 3, 3, s.random},
		"list":      {"list", 0, 0, s.list},
		"help":      {"help", 0, 0, s.help},
		"exit":      {"exit", 0, 0, func([]string) error { return ErrExit }},
	}
}

func parseUint32(field, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an unsigned 32-bit integer", ErrUsage, field, s)
	}

	return uint32(v), nil
}

func (s *Shell) display(args []string) error {
	return s.reg.View(func(tx *registry.Txn) error {
		m, err := tx.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "\n%s\n", m)
		return nil
	})
}

// add creates RESULT with the shape of A, adds into it and only then inserts it.
func (s *Shell) add(args []string) error {
	return s.reg.Update(func(tx *registry.Txn) error {
		ms, err := tx.LookupAll(args[0], args[1])
		if err != nil {
			return err
		}
		c, err := tx.New(args[2], ms[0].Rows(), ms[0].Cols())
		if err != nil {
			return err
		}
		if err = matrix.Add(ms[0], ms[1], c); err != nil {
			return err
		}
		if _, err = tx.Insert(c); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Addition of %s and %s finished and is stored in %s\n", args[0], args[1], args[2])
		return nil
	})
}

func (s *Shell) duplicate(args []string) error {
	return s.reg.Update(func(tx *registry.Txn) error {
		src, err := tx.Lookup(args[0])
		if err != nil {
			return err
		}
		dst, err := tx.New(args[1], src.Rows(), src.Cols())
		if err != nil {
			return err
		}
		if err = matrix.Duplicate(src, dst); err != nil {
			return err
		}
		if _, err = tx.Insert(dst); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Duplication of %s into %s finished\n", args[0], args[1])
		return nil
	})
}

func (s *Shell) equal(args []string) error {
	return s.reg.View(func(tx *registry.Txn) error {
		ms, err := tx.LookupAll(args[0], args[1])
		if err != nil {
			return err
		}
		if matrix.Equal(ms[0], ms[1]) {
			fmt.Fprintln(s.out, "SAME DATA IN BOTH")
		} else {
			fmt.Fprintln(s.out, "DIFFERENT DATA IN BOTH")
		}
		return nil
	})
}

func (s *Shell) shift(args []string) error {
	dir, err := matrix.ParseDirection(args[1])
	if err != nil {
		return err
	}
	amount, err := parseUint32("AMOUNT", args[2])
	if err != nil {
		return err
	}

	return s.reg.Update(func(tx *registry.Txn) error {
		m, err := tx.Lookup(args[0])
		if err != nil {
			return err
		}
		if err = matrix.Shift(m, dir, uint(amount)); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Matrix (%s) has been shifted %s by %d\n", m.Name(), dir, amount)
		return nil
	})
}

func (s *Shell) read(args []string) error {
	path := s.resolvePath(args[0])
	m, err := codec.ReadFile(path, s.codecOpts...)
	if err != nil {
		return err
	}
	slot, err := s.reg.Insert(m)
	if err != nil {
		return err
	}
	s.log.Info("matrix read", zap.String("path", path), zap.String("name", m.Name()), zap.Int("slot", slot))
	fmt.Fprintf(s.out, "Matrix (%s) is read from the filesystem\n", m.Name())

	return nil
}

// write encodes under the read lock so no Update can mutate mid-encode.
func (s *Shell) write(args []string) error {
	name := args[0]
	path := name
	if len(args) == 2 {
		path = args[1]
	}
	path = s.resolvePath(path)

	return s.reg.View(func(tx *registry.Txn) error {
		m, err := tx.Lookup(name)
		if err != nil {
			return err
		}
		if err = codec.WriteFile(path, m, s.codecOpts...); err != nil {
			return err
		}
		s.log.Info("matrix written", zap.String("path", path), zap.String("name", name))
		fmt.Fprintf(s.out, "Matrix (%s) is written to %s\n", name, path)
		return nil
	})
}

func (s *Shell) create(args []string) error {
	rows, err := parseUint32("ROWS", args[1])
	if err != nil {
		return err
	}
	cols, err := parseUint32("COLS", args[2])
	if err != nil {
		return err
	}
	if _, err = s.reg.Create(args[0], int(rows), int(cols)); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created Matrix (%s,%d,%d)\n", args[0], rows, cols)

	return nil
}

func (s *Shell) random(args []string) error {
	low, err := parseUint32("LOW", args[1])
	if err != nil {
		return err
	}
	high, err := parseUint32("HIGH", args[2])
	if err != nil {
		return err
	}

	return s.reg.Update(func(tx *registry.Txn) error {
		m, err := tx.Lookup(args[0])
		if err != nil {
			return err
		}
		if err = matrix.RandomFill(m, low, high, s.fillOpts...); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Matrix (%s) is randomized between %d %d\n", m.Name(), low, high)
		return nil
	})
}

func (s *Shell) list([]string) error {
	entries := s.reg.Snapshot()
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "(empty)")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "%d\t%s\t%dx%d\n", e.Slot, e.Name, e.Rows, e.Cols)
	}

	return nil
}

func (s *Shell) help([]string) error {
	usages := make([]string, 0, len(s.commands))
	for _, c := range s.commands {
		usages = append(usages, c.usage)
	}
	sort.Strings(usages)
	for _, u := range usages {
		fmt.Fprintln(s.out, u)
	}

	return nil
}
