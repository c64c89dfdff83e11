// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad is the sentinel every DataLoadError unwraps to.
	ErrDataLoad = errors.New("features: data load failed")

	// ErrUnknownRepresentation is returned for a representation name outside
	// the supported set.
	ErrUnknownRepresentation = errors.New("features: unknown representation")

	// ErrBadDomain is returned for an empty domain name or one that is not a
	// single path element.
	ErrBadDomain = errors.New("features: invalid domain name")

	// ErrMalformed marks a container that decoded but violates the
	// row-aligned (fts, labels) contract.
	ErrMalformed = errors.New("features: malformed container")
)

// DataLoadError reports a missing or malformed feature file together with
// the domain and representation it was loaded for.
type DataLoadError struct {
	Domain         string
	Representation Representation
	Path           string
	Err            error
}

// Error implements error.
func (e *DataLoadError) Error() string {
	return fmt.Sprintf("features: load %s/%s from %q: %v", e.Representation, e.Domain, e.Path, e.Err)
}

// Unwrap exposes both the cause and ErrDataLoad to errors.Is.
func (e *DataLoadError) Unwrap() []error { return []error{ErrDataLoad, e.Err} }
