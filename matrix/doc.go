// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix that every
// decomposition in lvlnum is built on.
//
// 🚀 What lives here?
//
//	• Dense — a flat, contiguous row-major buffer with O(1) element access
//	• element-wise kernels: Add, Sub, Scale, Hadamard-free by design
//	• structural kernels: Mul, Transpose, MatVec
//	• central validators shared by the lu, qr and eigen packages
//
// ✨ Conventions:
//
//   - Value semantics — Clone and ArrayCopy produce independent buffers;
//     decompositions snapshot their input at construction and never observe
//     later mutation of the source matrix.
//   - Errors, not panics — At/Set return ErrOutOfRange; all kernels validate
//     shapes up front and return sentinel errors matched via errors.Is.
//   - Raw access for kernels — Index(i,j) exposes the storage offset and
//     Data() the live backing slice, so decomposition inner loops can run on
//     flat buffers without per-element bounds checks.
//
// Layout invariant: a Dense with r rows and c columns owns a backing slice of
// exactly r*c elements, and element (i,j) lives at offset i*c+j for the whole
// lifetime of the value.
package matrix
