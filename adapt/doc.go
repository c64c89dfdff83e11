// SPDX-License-Identifier: MIT

// Package adapt implements domain-adaptation transforms behind one contract:
//
//	Adapt(src, srcLabels, tgt, tgtLabels) -> (adaptedSrc, adaptedTgt)
//
// Two variants are registered by default:
//
//   - NA (NoAdaptation): identity; both inputs are returned as is.
//   - SA (SubspaceAlignment, Fernando et al. 2013): with Bs and Bt the top-d
//     principal directions of source and target (features × d),
//     M = Bs·Bsᵀ·Bt, adaptedSrc = src·M and adaptedTgt = tgt·Bt.
//
// Target labels are evaluation data and are never read by any variant.
// New variants are added with Register and looked up by name with New; callers
// depend only on the Adapter interface.
//
// Principal directions are ordered by descending variance and sign-normalized
// so that each vector's largest-magnitude entry is positive (the first such
// entry on ties). Output is therefore a pure function of the inputs and d.
package adapt
