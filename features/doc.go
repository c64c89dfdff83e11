// SPDX-License-Identifier: MIT

// Package features loads the per-domain feature matrices and label vectors
// consumed by the benchmark.
//
// A feature tree is laid out as <root>/<representation>/<domain>.json (or
// .json.gz). Every file holds a JSON document with two keys:
//
//	{"fts": [[...], [...]], "labels": [1, 3, ...]}
//
// Rows of fts are samples; labels are positive class ids aligned by index.
//
// Loading applies the normalization policy of the representation:
//
//   - surf (histogram features): each row is divided by its own sum, then
//     every column is z-scored.
//   - deep-4096, deep-1024: every column is z-scored.
//
// Z-scoring uses the population standard deviation and is computed per
// domain, never across domains. Columns with zero variance are only centered.
//
// Store caches each domain for the lifetime of the run and collapses
// concurrent loads of the same domain into a single read.
package features
