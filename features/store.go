// SPDX-License-Identifier: MIT

package features

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Loader yields normalized domains by name.
type Loader interface {
	Load(ctx context.Context, domain string) (*Domain, error)
}

// Store loads domains of one representation from a feature tree and caches
// them for its own lifetime.
// Store is safe for concurrent use.
type Store struct {
	fsys fs.FS
	root string // display prefix for error paths
	rep  Representation

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]*Domain
}

var _ Loader = (*Store)(nil)

// NewStore returns a Store reading <root>/<rep>/<domain>.json[.gz] from disk.
func NewStore(root string, rep Representation) *Store {
	return NewStoreFS(os.DirFS(root), root, rep)
}

// NewStoreFS returns a Store over an arbitrary file system; root is only
// used to render paths in errors.
func NewStoreFS(fsys fs.FS, root string, rep Representation) *Store {
	return &Store{
		fsys:  fsys,
		root:  root,
		rep:   rep,
		cache: make(map[string]*Domain),
	}
}

// Representation returns the representation this Store loads.
func (s *Store) Representation() Representation { return s.rep }

// Load returns the normalized domain, reading it on first use.
// Concurrent first calls for the same domain share one read.
//
// Errors:
//   - *DataLoadError (errors.Is ErrDataLoad) for missing or malformed files.
//   - ErrBadDomain for names that are not a single path element.
//   - ctx.Err() when ctx is done before the load completes.
func (s *Store) Load(ctx context.Context, domain string) (*Domain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if domain == "" || strings.ContainsAny(domain, `/\`) || domain == "." || domain == ".." {
		return nil, fmt.Errorf("%w: %q", ErrBadDomain, domain)
	}

	s.mu.RLock()
	d, ok := s.cache[domain]
	s.mu.RUnlock()
	if ok {
		return d, nil
	}

	ch := s.group.DoChan(domain, func() (any, error) {
		d, err := s.read(domain)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[domain] = d
		s.mu.Unlock()
		return d, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Domain), nil
	}
}

// read locates, decodes and normalizes one domain.
func (s *Store) read(domain string) (*Domain, error) {
	name, rc, err := s.open(domain)
	if err != nil {
		return nil, s.loadErr(domain, name, err)
	}
	defer rc.Close()

	X, labels, err := Decode(rc)
	if err != nil {
		return nil, s.loadErr(domain, name, err)
	}
	Z, err := Normalize(s.rep, X)
	if err != nil {
		return nil, s.loadErr(domain, name, err)
	}

	return &Domain{Name: domain, Representation: s.rep, Features: Z, Labels: labels}, nil
}

// open tries the gzip container first, then the plain one.
func (s *Store) open(domain string) (string, io.ReadCloser, error) {
	gzName := path.Join(string(s.rep), domain+ExtJSONGz)
	f, err := s.fsys.Open(gzName)
	if err == nil {
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			f.Close()
			return gzName, nil, zerr
		}
		return gzName, &gzipFile{Reader: zr, f: f}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return gzName, nil, err
	}

	name := path.Join(string(s.rep), domain+ExtJSON)
	f, err = s.fsys.Open(name)
	if err != nil {
		return name, nil, err
	}

	return name, f, nil
}

func (s *Store) loadErr(domain, name string, err error) error {
	return &DataLoadError{
		Domain:         domain,
		Representation: s.rep,
		Path:           filepath.Join(s.root, filepath.FromSlash(name)),
		Err:            err,
	}
}

// gzipFile closes both the decompressor and the underlying file.
type gzipFile struct {
	*gzip.Reader
	f fs.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return zerr
}
