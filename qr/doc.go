// Package qr implements the Householder QR decomposition of a dense m×n
// matrix with m ≥ n: A = Q·R with Q orthogonal (m×n, orthonormal columns)
// and R upper triangular (n×n).
//
// The factorization runs once, at construction, on a snapshot of the input.
// The reflector vectors stay packed in place of the eliminated columns; Q
// and H are reconstructed on demand. The diagonal of R is kept separately
// with its sign chosen opposite the leading column entry, which avoids
// cancellation when the reflector is built.
//
// Solve computes the least-squares solution of A·X = B via Y = Qᵀ·B
// followed by back substitution against R. It fails with ErrRankDeficient
// when any diagonal entry of R is exactly zero; probe with IsFullRank first.
package qr
