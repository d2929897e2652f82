/*
 * basisplot.go, part of gobasis.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package basisplot draws quick-look profiles of basis functions and
// electrostatic potentials, mostly for eyeballing a parsed basis set before
// using it.
package basisplot

import (
	"fmt"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Shell plots every normalized contraction of the shell along the given
// axis (0, 1 or 2) through its center, from -rmax to rmax, sampled at
// npoints, and saves the result to plotname.png. One line per (segmented
// contraction, Cartesian component) pair.
func Shell(sh *basis.Shell, axis int, rmax float64, npoints int, title, plotname string) error {
	if sh == nil {
		return fmt.Errorf("basisplot.Shell: nil shell given")
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("basisplot.Shell: axis must be 0, 1 or 2, got %d", axis)
	}
	if npoints < 2 {
		return fmt.Errorf("basisplot.Shell: need at least 2 points, got %d", npoints)
	}
	center := sh.Center()
	data := make([]float64, 3*npoints)
	xs := make([]float64, npoints)
	for i := 0; i < npoints; i++ {
		t := -rmax + 2*rmax*float64(i)/float64(npoints-1)
		xs[i] = t
		for j := 0; j < 3; j++ {
			data[3*i+j] = center.At(0, j)
		}
		data[3*i+axis] += t
	}
	points, err := v3.NewMatrix(data)
	if err != nil {
		return err
	}
	vals, err := sh.Eval(points)
	if err != nil {
		return err
	}
	p := basicPlot(title, "r (Bohr)", "value")
	rows, _ := vals.Dims()
	L := sh.NumCart()
	comps := sh.CartComponents()
	args := make([]interface{}, 0, 2*rows)
	for r := 0; r < rows; r++ {
		xys := make(plotter.XYs, npoints)
		for i := range xys {
			xys[i].X = xs[i]
			xys[i].Y = vals.At(r, i)
		}
		c := comps[r%L]
		args = append(args, fmt.Sprintf("c%d (%d,%d,%d)", r/L, c[0], c[1], c[2]), xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname+".png")
}

// Potential plots an electrostatic potential profile, one phi value per
// path coordinate, and saves it to plotname.png. The usual source of the
// values is basis.ElectrostaticPotential on points along a line.
func Potential(path, phi []float64, title, plotname string) error {
	if len(path) != len(phi) {
		return fmt.Errorf("basisplot.Potential: %d path coordinates but %d potential values", len(path), len(phi))
	}
	if len(path) == 0 {
		return fmt.Errorf("basisplot.Potential: no data given")
	}
	p := basicPlot(title, "r (Bohr)", "phi (Hartree/e)")
	xys := make(plotter.XYs, len(path))
	for i := range xys {
		xys[i].X = path[i]
		xys[i].Y = phi[i]
	}
	if err := plotutil.AddLines(p, "phi", xys); err != nil {
		return err
	}
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname+".png")
}
