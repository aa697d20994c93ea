package tokens

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/text/cases"
)

// ErrNotFound reports that no usable token directory exists for a product.
var ErrNotFound = errors.New("token folder not found")

// Option configures a Resolver.
type Option func(*Resolver)

// WithFS reads the tree from fsys instead of the operating system. Paths
// returned by Resolve are still joined onto the base path.
func WithFS(fsys fs.FS) Option {
	return func(r *Resolver) {
		if fsys != nil {
			r.fsys = fsys
		}
	}
}

// WithSkipEmpty makes the search continue past a matching directory that has
// no files instead of stopping there.
func WithSkipEmpty(skip bool) Option {
	return func(r *Resolver) {
		r.skipEmpty = skip
	}
}

// Resolver searches one token tree.
type Resolver struct {
	base      string
	fsys      fs.FS
	skipEmpty bool
}

// New constructs a resolver rooted at base.
func New(base string, opts ...Option) *Resolver {
	r := &Resolver{base: base}
	for _, opt := range opts {
		opt(r)
	}
	if r.fsys == nil {
		r.fsys = os.DirFS(base)
	}
	return r
}

// Resolve returns the path of the first directory named product (ignoring
// case) that contains at least one file anywhere beneath it.
func (r *Resolver) Resolve(product string) (string, error) {
	if product == "" {
		return "", fmt.Errorf("%w: empty product name", ErrNotFound)
	}
	if _, err := fs.ReadDir(r.fsys, "."); err != nil {
		return "", fmt.Errorf("%w: read token base %s: %w", ErrNotFound, r.base, err)
	}

	s := search{fsys: r.fsys, fold: cases.Fold(), skipEmpty: r.skipEmpty}
	s.want = s.fold.String(product)
	s.walk(".")

	switch {
	case s.found != "":
		return filepath.Join(r.base, filepath.FromSlash(s.found)), nil
	case s.empty != "":
		return "", fmt.Errorf("%w: %q matched %s but it contains no files",
			ErrNotFound, product, filepath.Join(r.base, filepath.FromSlash(s.empty)))
	default:
		return "", fmt.Errorf("%w: no folder named %q under %s", ErrNotFound, product, r.base)
	}
}

type search struct {
	fsys      fs.FS
	fold      cases.Caser
	want      string
	skipEmpty bool

	found string
	empty string
}

// walk reports whether the search is finished. Symlinks to directories take
// part in name matching but are not descended into.
func (s *search) walk(dir string) bool {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		// Unreadable subtrees are skipped, as a directory walk would.
		return false
	}

	candidates := make([]string, 0, len(entries))
	descend := make([]string, 0, len(entries))
	for _, entry := range entries {
		sub := path.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			candidates = append(candidates, sub)
			descend = append(descend, sub)
		case isDirLink(s.fsys, sub, entry):
			candidates = append(candidates, sub)
		}
	}

	for _, sub := range candidates {
		if s.fold.String(path.Base(sub)) != s.want {
			continue
		}
		if hasFile(s.fsys, sub) {
			s.found = sub
			return true
		}
		if s.empty == "" {
			s.empty = sub
		}
		if !s.skipEmpty {
			return true
		}
	}

	for _, sub := range descend {
		if s.walk(sub) {
			return true
		}
	}
	return false
}

// hasFile reports whether any file exists under root. root itself may be a
// symlink; links to directories below it are neither files nor followed.
// Dangling links count as files.
func hasFile(fsys fs.FS, root string) bool {
	found := false
	_ = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || isDirLink(fsys, p, d) {
			return nil
		}
		found = true
		return fs.SkipAll
	})
	return found
}

func isDirLink(fsys fs.FS, name string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, name)
	return err == nil && info.IsDir()
}
