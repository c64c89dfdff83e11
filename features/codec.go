// SPDX-License-Identifier: MIT

package features

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/dabench/matrix"
)

// File extensions recognized by the codec. The gzip variant wins when both exist.
const (
	ExtJSON   = ".json"
	ExtJSONGz = ".json.gz"
)

// container is the on-disk document.
type container struct {
	Fts    [][]float64 `json:"fts"`
	Labels []int       `json:"labels"`
}

// Decode reads one container from r and returns the raw (unnormalized)
// feature matrix and labels. The caller owns both results.
//
// Errors:
//   - ErrMalformed for empty matrices, ragged rows, non-positive labels,
//     or a label count different from the row count.
func Decode(r io.Reader) (*matrix.Dense, []int, error) {
	var doc container
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Fts) == 0 || len(doc.Fts[0]) == 0 {
		return nil, nil, fmt.Errorf("%w: empty feature matrix", ErrMalformed)
	}
	if len(doc.Labels) != len(doc.Fts) {
		return nil, nil, fmt.Errorf("%w: %d labels for %d rows", ErrMalformed, len(doc.Labels), len(doc.Fts))
	}
	for i, l := range doc.Labels {
		if l <= 0 {
			return nil, nil, fmt.Errorf("%w: label %d at row %d is not positive", ErrMalformed, l, i)
		}
	}
	X, err := matrix.FromRows(doc.Fts)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return X, doc.Labels, nil
}

// Encode writes one container to w.
func Encode(w io.Writer, fts [][]float64, labels []int) error {
	return json.NewEncoder(w).Encode(container{Fts: fts, Labels: labels})
}

// Write stores a container at path, gzip-compressed when path ends in .gz.
// Parent directories are created as needed.
func Write(path string, fts [][]float64, labels []int) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Encode(f, fts, labels)
	}
	zw := gzip.NewWriter(f)
	if err = Encode(zw, fts, labels); err != nil {
		return err
	}

	return zw.Close()
}
