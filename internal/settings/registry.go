package settings

import (
	"fmt"
	"io"
	"strings"
)

// Registry is an ordered, immutable collection of settings.
//
// The set of settings is fixed at construction; only the bound values
// change afterwards. A Registry is not safe for concurrent use: it is owned
// by the single console session that mutates the configuration.
type Registry struct {
	settings []Setting
}

// New creates a registry holding the given settings in order.
// Returns an error if two settings share a name (case-insensitively) or a
// setting was not created with Bind.
func New(settings ...Setting) (*Registry, error) {
	seen := make(map[string]struct{}, len(settings))
	for i := range settings {
		s := &settings[i]
		if s.Name == "" {
			return nil, fmt.Errorf("settings: entry %d has no name", i)
		}
		if s.ref == nil {
			return nil, fmt.Errorf("settings: %s is not bound to a field", s.Name)
		}
		key := strings.ToLower(s.Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("settings: duplicate setting %s", s.Name)
		}
		seen[key] = struct{}{}
	}

	r := &Registry{settings: make([]Setting, len(settings))}
	copy(r.settings, settings)
	return r, nil
}

// MustNew creates a registry and panics on error.
// Useful for the built-in setting tables.
func MustNew(settings ...Setting) *Registry {
	r, err := New(settings...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of settings.
func (r *Registry) Len() int {
	return len(r.settings)
}

// All returns the settings in registration order.
func (r *Registry) All() []*Setting {
	result := make([]*Setting, len(r.settings))
	for i := range r.settings {
		result[i] = &r.settings[i]
	}
	return result
}

// Find returns the first setting whose name starts with name, compared
// case-insensitively over the length of name. Returns nil if none matches
// or name is empty.
//
// Because the match is a prefix match, a short name can match several
// settings; registration order decides which one is returned.
func (r *Registry) Find(name string) *Setting {
	if name == "" {
		return nil
	}
	for i := range r.settings {
		s := &r.settings[i]
		if hasPrefixFold(s.Name, name) {
			return s
		}
	}
	return nil
}

// Lookup is like Find but returns ErrSettingNotFound instead of nil.
func (r *Registry) Lookup(name string) (*Setting, error) {
	if s := r.Find(name); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, name)
}

// TrySet parses text into the setting. It reports false, leaving the field
// untouched, when the text does not parse or falls outside the bounds.
func (r *Registry) TrySet(s *Setting, text string) bool {
	return s.Set(text) == nil
}

// Print writes the current value of s to w, followed by its bounds when
// withBounds is set.
func (r *Registry) Print(w io.Writer, s *Setting, withBounds bool) error {
	_, err := io.WriteString(w, s.Format(withBounds))
	return err
}

// List writes "name = value" for every setting in registration order, one
// per line terminated by CRLF, optionally with bounds.
func (r *Registry) List(w io.Writer, withBounds bool) error {
	for i := range r.settings {
		s := &r.settings[i]
		if _, err := fmt.Fprintf(w, "%s = ", s.Name); err != nil {
			return err
		}
		if err := r.Print(w, s, withBounds); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
	}
	return nil
}

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
