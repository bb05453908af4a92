package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/cplx"
	"github.com/katalvlaran/lvlnum/matrix"
)

// eps is the double-precision machine epsilon, 2^-52. The deflation and
// small-subdiagonal tests below are tuned against exactly this threshold.
var eps = math.Pow(2.0, -52.0)

// eigenErrorf wraps err with an operation tag; the underlying sentinel stays
// matchable via errors.Is.
func eigenErrorf(op string, err error) error {
	return fmt.Errorf("eigen.%s: %w", op, err)
}

// Decomposition holds the eigendecomposition of an n×n matrix.
//
// d and e carry the real and imaginary parts of the eigenvalues; v the
// eigenvector matrix, column k pairing with eigenvalue k. For a complex
// conjugate pair (e[k] > 0, e[k+1] < 0) columns k and k+1 hold the real and
// imaginary parts of the complex eigenvector.
//
// All buffers are owned by the Decomposition; nothing references the source
// matrix after New returns.
type Decomposition struct {
	n     int
	sym   bool
	d, e  []float64 // eigenvalues, real and imaginary parts
	v     []float64 // eigenvectors, row-major n×n
	h     []float64 // Hessenberg form, nonsymmetric path only
	ort   []float64 // reflector scratch, nonsymmetric path only
	conv  bool
	limit int
}

// New computes the eigendecomposition of the square matrix a. Symmetry is
// tested once and selects the tridiagonal QL path or the Hessenberg QR
// path; see the package comment.
//
// Errors: matrix.ErrNilMatrix for nil input, matrix.ErrNonSquare otherwise.
// Iteration-budget exhaustion is not an error; probe Converged.
// Complexity: O(n³) time, O(n²) space.
func New(a *matrix.Dense, opts ...Option) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, eigenErrorf("New", err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, eigenErrorf("New", err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := a.Rows()
	dec := &Decomposition{
		n:     n,
		d:     make([]float64, n),
		e:     make([]float64, n),
		conv:  true,
		limit: cfg.MaxIterations,
	}

	src := a.Data()
	dec.sym = true
	for i := 0; i < n && dec.sym; i++ {
		for j := 0; j < i; j++ {
			if src[i*n+j] != src[j*n+i] {
				dec.sym = false

				break
			}
		}
	}

	if dec.sym {
		dec.v = a.ArrayCopy() // snapshot: tridiagonalization works in place on the copy
		dec.tred2()
		dec.tql2()
	} else {
		dec.h = a.ArrayCopy()
		dec.v = make([]float64, n*n)
		dec.ort = make([]float64, n)
		dec.orthes()
		dec.hqr2()
	}

	return dec, nil
}

// IsSymmetric reports which path the decomposition took. On the symmetric
// path every eigenvalue is real and V is orthogonal.
func (d *Decomposition) IsSymmetric() bool { return d.sym }

// Converged reports whether every eigenvalue settled within the iteration
// budget. False means d and e still hold the best available approximation.
func (d *Decomposition) Converged() bool { return d.conv }

// RealValues returns a copy of the real parts of the eigenvalues.
// Ascending on the symmetric path; Schur order otherwise.
func (d *Decomposition) RealValues() []float64 {
	out := make([]float64, d.n)
	copy(out, d.d)

	return out
}

// ImagValues returns a copy of the imaginary parts of the eigenvalues.
// Identically zero on the symmetric path.
func (d *Decomposition) ImagValues() []float64 {
	out := make([]float64, d.n)
	copy(out, d.e)

	return out
}

// V returns the eigenvector matrix as a fresh n×n matrix.
func (d *Decomposition) V() *matrix.Dense {
	out, _ := matrix.NewDenseData(d.n, d.n, d.v)

	return out
}

// D returns the block-diagonal eigenvalue matrix as a fresh n×n matrix:
// real eigenvalues on the diagonal, each complex conjugate pair λ ± iμ as
// the 2×2 block [λ, μ; -μ, λ]. Satisfies A·V ≈ V·D.
func (d *Decomposition) D() *matrix.Dense {
	out, _ := matrix.NewDense(d.n, d.n)
	buf := out.Data()
	for i := 0; i < d.n; i++ {
		buf[i*d.n+i] = d.d[i]
		if d.e[i] > 0 {
			buf[i*d.n+i+1] = d.e[i]
		} else if d.e[i] < 0 {
			buf[i*d.n+i-1] = d.e[i]
		}
	}

	return out
}

// Values returns the eigenvalues as complex numbers, pairing d and e.
func (d *Decomposition) Values() []cplx.Complex {
	out := make([]cplx.Complex, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = cplx.New(d.d[i], d.e[i])
	}

	return out
}

// tred2 reduces the symmetric matrix held in v to tridiagonal form by
// Householder similarity transformations, accumulating the orthogonal
// transform back into v. On return d holds the diagonal and e the
// subdiagonal (e[0] = 0).
func (dc *Decomposition) tred2() {
	n, d, e, v := dc.n, dc.d, dc.e, dc.v

	for j := 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
	}

	// Householder reduction to tridiagonal form.
	for i := n - 1; i > 0; i-- {
		// Scale to avoid under/overflow.
		scale, h := 0.0, 0.0
		for k := 0; k < i; k++ {
			scale += math.Abs(d[k])
		}
		if scale == 0 {
			e[i] = d[i-1]
			for j := 0; j < i; j++ {
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0
				v[j*n+i] = 0
			}
		} else {
			// Generate the Householder vector.
			for k := 0; k < i; k++ {
				d[k] /= scale
				h += d[k] * d[k]
			}
			f := d[i-1]
			g := math.Sqrt(h)
			if f > 0 {
				g = -g
			}
			e[i] = scale * g
			h -= f * g
			d[i-1] = f - g
			for j := 0; j < i; j++ {
				e[j] = 0
			}

			// Apply the similarity transformation to the remaining columns.
			for j := 0; j < i; j++ {
				f = d[j]
				v[j*n+i] = f
				g = e[j] + v[j*n+j]*f
				for k := j + 1; k <= i-1; k++ {
					g += v[k*n+j] * d[k]
					e[k] += v[k*n+j] * f
				}
				e[j] = g
			}
			f = 0
			for j := 0; j < i; j++ {
				e[j] /= h
				f += e[j] * d[j]
			}
			hh := f / (h + h)
			for j := 0; j < i; j++ {
				e[j] -= hh * d[j]
			}
			for j := 0; j < i; j++ {
				f = d[j]
				g = e[j]
				for k := j; k <= i-1; k++ {
					v[k*n+j] -= f*e[k] + g*d[k]
				}
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0
			}
		}
		d[i] = h
	}

	// Accumulate the transformations.
	for i := 0; i < n-1; i++ {
		v[(n-1)*n+i] = v[i*n+i]
		v[i*n+i] = 1
		h := d[i+1]
		if h != 0 {
			for k := 0; k <= i; k++ {
				d[k] = v[k*n+i+1] / h
			}
			for j := 0; j <= i; j++ {
				g := 0.0
				for k := 0; k <= i; k++ {
					g += v[k*n+i+1] * v[k*n+j]
				}
				for k := 0; k <= i; k++ {
					v[k*n+j] -= g * d[k]
				}
			}
		}
		for k := 0; k <= i; k++ {
			v[k*n+i+1] = 0
		}
	}
	for j := 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
		v[(n-1)*n+j] = 0
	}
	v[(n-1)*n+n-1] = 1
	e[0] = 0
}

// tql2 diagonalizes the tridiagonal form left by tred2 with implicit-shift
// QL iteration, then sorts the eigenvalues ascending and permutes the
// eigenvector columns to match.
func (dc *Decomposition) tql2() {
	n, d, e, v := dc.n, dc.d, dc.e, dc.v

	for i := 1; i < n; i++ {
		e[i-1] = e[i]
	}
	e[n-1] = 0

	f, tst1 := 0.0, 0.0
	for l := 0; l < n; l++ {
		// Find a small subdiagonal element.
		tst1 = math.Max(tst1, math.Abs(d[l])+math.Abs(e[l]))
		m := l
		for m < n {
			if math.Abs(e[m]) <= eps*tst1 {
				break
			}
			m++
		}

		// If m == l, d[l] is already an eigenvalue; otherwise iterate.
		if m > l {
			iter := 0
			for {
				iter++
				if iter > dc.limit {
					// Budget exhausted: keep the current approximation.
					dc.conv = false

					break
				}

				// Compute the implicit shift.
				g := d[l]
				p := (d[l+1] - g) / (2 * e[l])
				r := math.Hypot(p, 1)
				if p < 0 {
					r = -r
				}
				d[l] = e[l] / (p + r)
				d[l+1] = e[l] * (p + r)
				dl1 := d[l+1]
				h := g - d[l]
				for i := l + 2; i < n; i++ {
					d[i] -= h
				}
				f += h

				// Implicit QL sweep.
				p = d[m]
				c, c2, c3 := 1.0, 1.0, 1.0
				el1 := e[l+1]
				s, s2 := 0.0, 0.0
				for i := m - 1; i >= l; i-- {
					c3 = c2
					c2 = c
					s2 = s
					g = c * e[i]
					h = c * p
					r = math.Hypot(p, e[i])
					e[i+1] = s * r
					s = e[i] / r
					c = p / r
					p = c*d[i] - s*g
					d[i+1] = h + s*(c*g+s*d[i])

					// Accumulate the rotation.
					for k := 0; k < n; k++ {
						h = v[k*n+i+1]
						v[k*n+i+1] = s*v[k*n+i] + c*h
						v[k*n+i] = c*v[k*n+i] - s*h
					}
				}
				p = -s * s2 * c3 * el1 * e[l] / dl1
				e[l] = s * p
				d[l] = c * p

				if math.Abs(e[l]) <= eps*tst1 {
					break
				}
			}
		}
		d[l] += f
		e[l] = 0
	}

	// Sort eigenvalues ascending and carry the eigenvector columns along.
	for i := 0; i < n-1; i++ {
		k := i
		p := d[i]
		for j := i + 1; j < n; j++ {
			if d[j] < p {
				k = j
				p = d[j]
			}
		}
		if k != i {
			d[k] = d[i]
			d[i] = p
			for j := 0; j < n; j++ {
				p = v[j*n+i]
				v[j*n+i] = v[j*n+k]
				v[j*n+k] = p
			}
		}
	}
}

// orthes reduces the matrix held in h to upper Hessenberg form by
// Householder similarity transformations, accumulating the orthogonal
// transform into v.
func (dc *Decomposition) orthes() {
	n, h, v, ort := dc.n, dc.h, dc.v, dc.ort
	low, high := 0, n-1

	for m := low + 1; m <= high-1; m++ {
		// Scale the column below the subdiagonal.
		scale := 0.0
		for i := m; i <= high; i++ {
			scale += math.Abs(h[i*n+m-1])
		}
		if scale != 0 {
			// Compute the Householder transformation.
			hsum := 0.0
			for i := high; i >= m; i-- {
				ort[i] = h[i*n+m-1] / scale
				hsum += ort[i] * ort[i]
			}
			g := math.Sqrt(hsum)
			if ort[m] > 0 {
				g = -g
			}
			hsum -= ort[m] * g
			ort[m] -= g

			// Apply it from both sides.
			for j := m; j < n; j++ {
				f := 0.0
				for i := high; i >= m; i-- {
					f += ort[i] * h[i*n+j]
				}
				f /= hsum
				for i := m; i <= high; i++ {
					h[i*n+j] -= f * ort[i]
				}
			}
			for i := 0; i <= high; i++ {
				f := 0.0
				for j := high; j >= m; j-- {
					f += ort[j] * h[i*n+j]
				}
				f /= hsum
				for j := m; j <= high; j++ {
					h[i*n+j] -= f * ort[j]
				}
			}
			ort[m] *= scale
			h[m*n+m-1] = scale * g
		}
	}

	// Accumulate the transformations into v.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				v[i*n+j] = 1
			} else {
				v[i*n+j] = 0
			}
		}
	}
	for m := high - 1; m >= low+1; m-- {
		if h[m*n+m-1] != 0 {
			for i := m + 1; i <= high; i++ {
				ort[i] = h[i*n+m-1]
			}
			for j := m; j <= high; j++ {
				g := 0.0
				for i := m; i <= high; i++ {
					g += ort[i] * v[i*n+j]
				}
				// Double division avoids possible underflow.
				g = (g / ort[m]) / h[m*n+m-1]
				for i := m; i <= high; i++ {
					v[i*n+j] += g * ort[i]
				}
			}
		}
	}
}

// hqr2 iterates the Hessenberg form left by orthes to real Schur form with
// double-shift QR, records the eigenvalues in d and e, then back
// substitutes and back transforms to recover the eigenvectors in v.
// Deflates whenever a subdiagonal entry drops below eps times the local
// scale; applies the Wilkinson ad-hoc exceptional shift after 10 stalled
// iterations and a second exceptional shift after 30.
func (dc *Decomposition) hqr2() {
	nn := dc.n
	d, e, h, v := dc.d, dc.e, dc.h, dc.v
	n := nn - 1
	low, high := 0, nn-1
	exshift := 0.0
	var p, q, r, s, z, t, w, x, y float64

	// Matrix norm for the deflation and zero tests.
	norm := 0.0
	for i := 0; i < nn; i++ {
		if i < low || i > high {
			d[i] = h[i*nn+i]
			e[i] = 0
		}
		jstart := i - 1
		if jstart < 0 {
			jstart = 0
		}
		for j := jstart; j < nn; j++ {
			norm += math.Abs(h[i*nn+j])
		}
	}

	iter := 0
	for n >= low {
		// Look for a single small subdiagonal element.
		l := n
		for l > low {
			s = math.Abs(h[(l-1)*nn+l-1]) + math.Abs(h[l*nn+l])
			if s == 0 {
				s = norm
			}
			if math.Abs(h[l*nn+l-1]) < eps*s {
				break
			}
			l--
		}

		switch {
		case l == n:
			// One root found.
			h[n*nn+n] += exshift
			d[n] = h[n*nn+n]
			e[n] = 0
			n--
			iter = 0
		case l == n-1:
			// Two roots found.
			w = h[n*nn+n-1] * h[(n-1)*nn+n]
			p = (h[(n-1)*nn+n-1] - h[n*nn+n]) / 2
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			h[n*nn+n] += exshift
			h[(n-1)*nn+n-1] += exshift
			x = h[n*nn+n]

			if q >= 0 {
				// Real pair.
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d[n-1] = x + z
				d[n] = d[n-1]
				if z != 0 {
					d[n] = x - w/z
				}
				e[n-1] = 0
				e[n] = 0
				x = h[n*nn+n-1]
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r

				// Row modification.
				for j := n - 1; j < nn; j++ {
					z = h[(n-1)*nn+j]
					h[(n-1)*nn+j] = q*z + p*h[n*nn+j]
					h[n*nn+j] = q*h[n*nn+j] - p*z
				}
				// Column modification.
				for i := 0; i <= n; i++ {
					z = h[i*nn+n-1]
					h[i*nn+n-1] = q*z + p*h[i*nn+n]
					h[i*nn+n] = q*h[i*nn+n] - p*z
				}
				// Accumulate transformations.
				for i := low; i <= high; i++ {
					z = v[i*nn+n-1]
					v[i*nn+n-1] = q*z + p*v[i*nn+n]
					v[i*nn+n] = q*v[i*nn+n] - p*z
				}
			} else {
				// Complex conjugate pair.
				d[n-1] = x + p
				d[n] = x + p
				e[n-1] = z
				e[n] = -z
			}
			n -= 2
			iter = 0
		default:
			// No convergence yet. Form the shift.
			x = h[n*nn+n]
			y = 0
			w = 0
			if l < n {
				y = h[(n-1)*nn+n-1]
				w = h[n*nn+n-1] * h[(n-1)*nn+n]
			}

			// Wilkinson's original ad-hoc shift.
			if iter == 10 {
				exshift += x
				for i := low; i <= n; i++ {
					h[i*nn+i] -= x
				}
				s = math.Abs(h[n*nn+n-1]) + math.Abs(h[(n-1)*nn+n-2])
				x = 0.75 * s
				y = 0.75 * s
				w = -0.4375 * s * s
			}

			// Second exceptional shift.
			if iter == 30 {
				s = (y - x) / 2
				s = s*s + w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2+s)
					for i := low; i <= n; i++ {
						h[i*nn+i] -= s
					}
					exshift += s
					x, y, w = 0.964, 0.964, 0.964
				}
			}

			iter++
			if iter > dc.limit {
				// Budget exhausted: accept the diagonal entry as the
				// eigenvalue approximation and deflate.
				dc.conv = false
				h[n*nn+n] += exshift
				d[n] = h[n*nn+n]
				e[n] = 0
				n--
				iter = 0

				continue
			}

			// Look for two consecutive small subdiagonal elements.
			m := n - 2
			for m >= l {
				z = h[m*nn+m]
				r = x - z
				s = y - z
				p = (r*s-w)/h[(m+1)*nn+m] + h[m*nn+m+1]
				q = h[(m+1)*nn+m+1] - z - r - s
				r = h[(m+2)*nn+m+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(h[m*nn+m-1])*(math.Abs(q)+math.Abs(r)) <
					eps*(math.Abs(p)*(math.Abs(h[(m-1)*nn+m-1])+math.Abs(z)+math.Abs(h[(m+1)*nn+m+1]))) {
					break
				}
				m--
			}

			for i := m + 2; i <= n; i++ {
				h[i*nn+i-2] = 0
				if i > m+2 {
					h[i*nn+i-3] = 0
				}
			}

			// Double QR step on rows l..n and columns m..n.
			for k := m; k <= n-1; k++ {
				notlast := k != n-1
				if k != m {
					p = h[k*nn+k-1]
					q = h[(k+1)*nn+k-1]
					r = 0
					if notlast {
						r = h[(k+2)*nn+k-1]
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x == 0 {
						continue
					}
					p /= x
					q /= x
					r /= x
				}

				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s == 0 {
					continue
				}
				if k != m {
					h[k*nn+k-1] = -s * x
				} else if l != m {
					h[k*nn+k-1] = -h[k*nn+k-1]
				}
				p += s
				x = p / s
				y = q / s
				z = r / s
				q /= p
				r /= p

				// Row modification.
				for j := k; j < nn; j++ {
					p = h[k*nn+j] + q*h[(k+1)*nn+j]
					if notlast {
						p += r * h[(k+2)*nn+j]
						h[(k+2)*nn+j] -= p * z
					}
					h[k*nn+j] -= p * x
					h[(k+1)*nn+j] -= p * y
				}
				// Column modification.
				imax := k + 3
				if n < imax {
					imax = n
				}
				for i := 0; i <= imax; i++ {
					p = x*h[i*nn+k] + y*h[i*nn+k+1]
					if notlast {
						p += z * h[i*nn+k+2]
						h[i*nn+k+2] -= p * r
					}
					h[i*nn+k] -= p
					h[i*nn+k+1] -= p * q
				}
				// Accumulate transformations.
				for i := low; i <= high; i++ {
					p = x*v[i*nn+k] + y*v[i*nn+k+1]
					if notlast {
						p += z * v[i*nn+k+2]
						v[i*nn+k+2] -= p * r
					}
					v[i*nn+k] -= p
					v[i*nn+k+1] -= p * q
				}
			}
		}
	}

	// Back substitution: eigenvectors of the upper quasi-triangular form.
	if norm == 0 {
		return
	}

	for n = nn - 1; n >= 0; n-- {
		p = d[n]
		q = e[n]

		if q == 0 {
			// Real eigenvector.
			l := n
			h[n*nn+n] = 1
			for i := n - 1; i >= 0; i-- {
				w = h[i*nn+i] - p
				r = 0
				for j := l; j <= n; j++ {
					r += h[i*nn+j] * h[j*nn+n]
				}
				if e[i] < 0 {
					z = w
					s = r
				} else {
					l = i
					if e[i] == 0 {
						if w != 0 {
							h[i*nn+n] = -r / w
						} else {
							h[i*nn+n] = -r / (eps * norm)
						}
					} else {
						// Solve the 2×2 real system for the pair rows.
						x = h[i*nn+i+1]
						y = h[(i+1)*nn+i]
						q = (d[i]-p)*(d[i]-p) + e[i]*e[i]
						t = (x*s - z*r) / q
						h[i*nn+n] = t
						if math.Abs(x) > math.Abs(z) {
							h[(i+1)*nn+n] = (-r - w*t) / x
						} else {
							h[(i+1)*nn+n] = (-s - y*t) / z
						}
					}

					// Overflow control.
					t = math.Abs(h[i*nn+n])
					if (eps*t)*t > 1 {
						for j := i; j <= n; j++ {
							h[j*nn+n] /= t
						}
					}
				}
			}
		} else if q < 0 {
			// Complex eigenvector, stored in columns n-1 (real part) and
			// n (imaginary part).
			l := n - 1

			if math.Abs(h[n*nn+n-1]) > math.Abs(h[(n-1)*nn+n]) {
				h[(n-1)*nn+n-1] = q / h[n*nn+n-1]
				h[(n-1)*nn+n] = -(h[n*nn+n] - p) / h[n*nn+n-1]
			} else {
				zc := cplx.New(0, -h[(n-1)*nn+n]).Div(cplx.New(h[(n-1)*nn+n-1]-p, q))
				h[(n-1)*nn+n-1] = zc.Re
				h[(n-1)*nn+n] = zc.Im
			}
			h[n*nn+n-1] = 0
			h[n*nn+n] = 1
			for i := n - 2; i >= 0; i-- {
				ra, sa := 0.0, 0.0
				for j := l; j <= n; j++ {
					ra += h[i*nn+j] * h[j*nn+n-1]
					sa += h[i*nn+j] * h[j*nn+n]
				}
				w = h[i*nn+i] - p

				if e[i] < 0 {
					z = w
					r = ra
					s = sa
				} else {
					l = i
					if e[i] == 0 {
						zc := cplx.New(-ra, -sa).Div(cplx.New(w, q))
						h[i*nn+n-1] = zc.Re
						h[i*nn+n] = zc.Im
					} else {
						// Solve the complex 2×2 system for the pair rows.
						x = h[i*nn+i+1]
						y = h[(i+1)*nn+i]
						vr := (d[i]-p)*(d[i]-p) + e[i]*e[i] - q*q
						vi := (d[i] - p) * 2 * q
						if vr == 0 && vi == 0 {
							vr = eps * norm *
								(math.Abs(w) + math.Abs(q) + math.Abs(x) + math.Abs(y) + math.Abs(z))
						}
						zc := cplx.New(x*r-z*ra+q*sa, x*s-z*sa-q*ra).Div(cplx.New(vr, vi))
						h[i*nn+n-1] = zc.Re
						h[i*nn+n] = zc.Im
						if math.Abs(x) > math.Abs(z)+math.Abs(q) {
							h[(i+1)*nn+n-1] = (-ra - w*h[i*nn+n-1] + q*h[i*nn+n]) / x
							h[(i+1)*nn+n] = (-sa - w*h[i*nn+n] - q*h[i*nn+n-1]) / x
						} else {
							zc = cplx.New(-r-y*h[i*nn+n-1], -s-y*h[i*nn+n]).Div(cplx.New(z, q))
							h[(i+1)*nn+n-1] = zc.Re
							h[(i+1)*nn+n] = zc.Im
						}
					}

					// Overflow control.
					t = math.Max(math.Abs(h[i*nn+n-1]), math.Abs(h[i*nn+n]))
					if (eps*t)*t > 1 {
						for j := i; j <= n; j++ {
							h[j*nn+n-1] /= t
							h[j*nn+n] /= t
						}
					}
				}
			}
		}
	}

	// Vectors of isolated roots.
	for i := 0; i < nn; i++ {
		if i < low || i > high {
			for j := i; j < nn; j++ {
				v[i*nn+j] = h[i*nn+j]
			}
		}
	}

	// Back transformation to eigenvectors of the original matrix.
	for j := nn - 1; j >= low; j-- {
		for i := low; i <= high; i++ {
			z = 0
			kmax := j
			if high < kmax {
				kmax = high
			}
			for k := low; k <= kmax; k++ {
				z += v[i*nn+k] * h[k*nn+j]
			}
			v[i*nn+j] = z
		}
	}
}
