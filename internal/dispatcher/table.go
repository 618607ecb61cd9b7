package dispatcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/fcconsole/internal/dispatcher/handler"
)

// Command is one console verb.
type Command struct {
	Name    string
	Help    string
	Handler handler.Handler
}

// Table is the fixed set of commands, ordered by name. Names compare
// case-insensitively.
type Table struct {
	cmds []Command
}

// NewTable builds a table from commands that are already in ascending name
// order. It refuses a table it could not search correctly instead of
// sorting it.
func NewTable(cmds ...Command) (*Table, error) {
	for i, c := range cmds {
		if c.Name == "" || c.Handler == nil {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidCommand, i)
		}
		if i == 0 {
			continue
		}
		prev := strings.ToLower(cmds[i-1].Name)
		cur := strings.ToLower(c.Name)
		switch {
		case cur == prev:
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, c.Name)
		case cur < prev:
			return nil, fmt.Errorf("%w: %s before %s", ErrUnsortedTable, cmds[i-1].Name, c.Name)
		}
	}

	t := &Table{cmds: make([]Command, len(cmds))}
	copy(t.cmds, cmds)
	return t, nil
}

// MustNewTable is like NewTable but panics on error.
func MustNewTable(cmds ...Command) *Table {
	t, err := NewTable(cmds...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of commands.
func (t *Table) Len() int {
	return len(t.cmds)
}

// Commands returns the commands in table order.
func (t *Table) Commands() []Command {
	out := make([]Command, len(t.cmds))
	copy(out, t.cmds)
	return out
}

// Resolve returns the command whose name equals name, ignoring case.
// Prefixes do not match.
func (t *Table) Resolve(name string) (*Command, bool) {
	key := strings.ToLower(name)
	i := sort.Search(len(t.cmds), func(i int) bool {
		return strings.ToLower(t.cmds[i].Name) >= key
	})
	if i < len(t.cmds) && strings.EqualFold(t.cmds[i].Name, name) {
		return &t.cmds[i], true
	}
	return nil, false
}

// Complete returns the names of all commands that start with prefix,
// ignoring case, in table order. An empty prefix matches every command.
func (t *Table) Complete(prefix string) []string {
	key := strings.ToLower(prefix)
	lo := sort.Search(len(t.cmds), func(i int) bool {
		return strings.ToLower(t.cmds[i].Name) >= key
	})

	var out []string
	for i := lo; i < len(t.cmds); i++ {
		name := t.cmds[i].Name
		if !strings.HasPrefix(strings.ToLower(name), key) {
			break
		}
		out = append(out, name)
	}
	return out
}
