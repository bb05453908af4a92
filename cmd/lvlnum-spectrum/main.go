// Command lvlnum-spectrum renders the spectrum of a problem on the complex
// plane: polynomial roots from ascending coefficients, or eigenvalues from
// a square matrix, plotted to a PNG.
//
// Usage:
//
//	lvlnum-spectrum -coeffs "4,6,2" -o roots.png
//	lvlnum-spectrum -matrix "0,-1;1,0" -o eigen.png
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlnum/cplx"
	"github.com/katalvlaran/lvlnum/eigen"
	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/poly"
)

func main() {
	coeffs := flag.String("coeffs", "", "polynomial coefficients, ascending degree, comma separated")
	mat := flag.String("matrix", "", "square matrix, rows separated by ';', entries by ','")
	out := flag.String("o", "spectrum.png", "output PNG path")
	flag.Parse()

	if (*coeffs == "") == (*mat == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -coeffs or -matrix is required")
		flag.Usage()
		os.Exit(2)
	}

	var (
		points []cplx.Complex
		title  string
		err    error
	)
	if *coeffs != "" {
		points, title, err = polynomialSpectrum(*coeffs)
	} else {
		points, title, err = matrixSpectrum(*mat)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, z := range points {
		fmt.Println(z)
	}
	if err := renderSpectrum(points, title, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}

// polynomialSpectrum parses ascending coefficients and returns the roots.
func polynomialSpectrum(arg string) ([]cplx.Complex, string, error) {
	cs, err := parseFloats(arg)
	if err != nil {
		return nil, "", fmt.Errorf("parsing -coeffs: %w", err)
	}
	p := poly.New(cs...)
	if p.Degree() < 1 {
		return nil, "", fmt.Errorf("polynomial %v has no finite roots", p)
	}

	return p.Roots(), fmt.Sprintf("roots of %v", p), nil
}

// matrixSpectrum parses a square matrix and returns its eigenvalues.
func matrixSpectrum(arg string) ([]cplx.Complex, string, error) {
	rows := strings.Split(arg, ";")
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		entries, err := parseFloats(row)
		if err != nil {
			return nil, "", fmt.Errorf("parsing -matrix: %w", err)
		}
		if len(entries) != n {
			return nil, "", fmt.Errorf("matrix row %q: want %d entries, got %d", row, n, len(entries))
		}
		data = append(data, entries...)
	}

	a, err := matrix.NewDenseData(n, n, data)
	if err != nil {
		return nil, "", err
	}
	dec, err := eigen.New(a)
	if err != nil {
		return nil, "", err
	}
	if !dec.Converged() {
		fmt.Fprintln(os.Stderr, "warning: iteration budget exhausted, eigenvalues are approximate")
	}

	return dec.Values(), fmt.Sprintf("eigenvalues of a %d×%d matrix", n, n), nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// renderSpectrum scatters the values on the complex plane and saves a PNG.
func renderSpectrum(points []cplx.Complex, title, path string) error {
	xys := make(plotter.XYs, len(points))
	for i, z := range points {
		xys[i].X = z.Re
		xys[i].Y = z.Im
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("building scatter: %w", err)
	}
	sc.GlyphStyle.Radius = vg.Points(4)
	p.Add(sc)

	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}
