// Package dabench is a cross-domain visual recognition benchmark: it measures
// how well a 1-nearest-neighbor classifier trained on one labeled feature
// collection (the source) generalizes to a differently distributed one (the
// target), with and without a domain-adaptation transform applied first.
//
// 🚀 What is in the box?
//
//	• Feature loading: per-domain matrices + labels, L1/z-score normalization, caching
//	• Stratified sampling: per-class budgets with explicit, derivable RNG streams
//	• Adaptation: NoAdaptation and Subspace Alignment behind one Adapter interface
//	• Evaluation: deterministic 1-NN accuracy (ties go to the lowest train row)
//	• Experiments: domain pairs × trials × algorithms, sequential or parallel
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      row-major Dense, kernels, statistics, Jacobi eigen, thin SVD
//	features/    Domain / Representation, on-disk codec, Store, synthetic data
//	split/       stratified splitter and seed derivation
//	adapt/       Adapter, registry, NA, SA, principal bases
//	evaluate/    1-NN prediction and accuracy
//	experiment/  Config, Plan, Runner, statistics
//	report/      console layout and JSON lines
//	cmd/dabench  the command-line front end
//
// Quick start:
//
//	dabench synth --out ./features --representation deep-1024
//	dabench run --features-dir ./features --representation deep-1024
package dabench
