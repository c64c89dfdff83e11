// SPDX-License-Identifier: MIT

// Package experiment runs the cross-domain benchmark.
//
// A run loads every configured domain once, then for each ordered pair of
// distinct domains (source-major, in configured order) draws Trials
// stratified source subsamples. Within a trial every algorithm sees the same
// subsample and the full target set; each is adapted and scored by 1-NN
// accuracy. Accuracies are reduced to mean and population std per
// (pair, algorithm), then averaged across pairs per algorithm.
//
// Trials may run on several workers. Each trial owns its RNG, derived from
// (Seed, pair index, trial index), and writes into its own result slot, so a
// parallel run reports exactly the numbers of a sequential one.
package experiment
