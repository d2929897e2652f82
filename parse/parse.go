/*
 * parse.go, part of gobasis.
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

// Package parse reads Gaussian basis sets in the NWChem text format, as
// distributed by the Basis Set Exchange, into the raw per-element shell
// data that basis.MakeBasis takes. Plain, gzip-compressed and
// zstd-compressed files are supported.
package parse

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	basis "github.com/rmera/gobasis"
	"golang.org/x/exp/slices"
)

var shellLetters = []string{"S", "P", "D", "F", "G", "H", "I"}

// deFortran rewrites the Fortran-style exponent marker (D or d) that
// appears in some files into the form strconv accepts. It is applied to
// every numeric token, and to the first token of each line before deciding
// whether the line is a shell header or a row of primitives.
func deFortran(f string) string {
	return strings.Replace(strings.Replace(f, "D", "E", 1), "d", "e", 1)
}

// NWChem reads a basis set in NWChem format from r. It returns a map from
// element symbol to the shells listed for it, in file order. Multiple
// coefficient columns in a block become one generalized contraction; SP
// blocks are split into an S and a P shell sharing exponents. Blocks with a
// shell letter this library does not know are skipped with a warning
// through the log package, so a partially supported file still parses.
func NWChem(r io.Reader) (map[string][]basis.RawShell, error) {
	ret := make(map[string][]basis.RawShell)
	scanner := bufio.NewScanner(r)
	var symbol, letter string
	var exps []float64
	var coeffs [][]float64
	lineno := 0
	flush := func() error {
		if symbol == "" {
			return nil
		}
		if len(exps) == 0 {
			return Error{fmt.Sprintf("block %s %s has no primitives", symbol, letter), "", []string{"NWChem"}}
		}
		if letter == "SP" {
			s, p, err := splitSP(exps, coeffs)
			if err != nil {
				return errDecorate(err, fmt.Sprintf("NWChem: block %s SP", symbol))
			}
			ret[symbol] = append(ret[symbol], s, p)
			return nil
		}
		l := slices.Index(shellLetters, letter)
		if l < 0 {
			log.Printf("gobasis/parse: skipping %s block with unsupported shell type %q", symbol, letter)
			return nil
		}
		ret[symbol] = append(ret[symbol], basis.RawShell{AngMom: l, Exps: exps, Coeffs: coeffs})
		return nil
	}
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "BASIS") || strings.HasPrefix(upper, "END") {
			if err := flush(); err != nil {
				return nil, err
			}
			symbol = ""
			continue
		}
		fields := strings.Fields(line)
		if _, err := strconv.ParseFloat(deFortran(fields[0]), 64); err != nil {
			//a new element/shell header
			if len(fields) != 2 {
				return nil, Error{fmt.Sprintf("line %d: malformed shell header %q", lineno, line), "", []string{"NWChem"}}
			}
			if err := flush(); err != nil {
				return nil, err
			}
			symbol = fields[0]
			letter = strings.ToUpper(fields[1])
			exps = nil
			coeffs = nil
			if !basis.KnownElement(symbol) {
				log.Printf("gobasis/parse: element %q is not in the internal table, MakeBasis will reject it", symbol)
			}
			continue
		}
		if symbol == "" {
			return nil, Error{fmt.Sprintf("line %d: numbers outside of a shell block", lineno), "", []string{"NWChem"}}
		}
		row := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(deFortran(f), 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("line %d: %v", lineno, err), "", []string{"NWChem"}}
			}
			row = append(row, v)
		}
		if len(row) < 2 {
			return nil, Error{fmt.Sprintf("line %d: a primitive needs an exponent and at least one coefficient", lineno), "", []string{"NWChem"}}
		}
		if len(coeffs) > 0 && len(row)-1 != len(coeffs[0]) {
			return nil, Error{fmt.Sprintf("line %d: inconsistent number of coefficient columns", lineno), "", []string{"NWChem"}}
		}
		exps = append(exps, row[0])
		coeffs = append(coeffs, row[1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{err.Error(), "", []string{"NWChem"}}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return ret, nil
}

// splitSP turns the two coefficient columns of an SP block into separate
// S and P raw shells.
func splitSP(exps []float64, coeffs [][]float64) (basis.RawShell, basis.RawShell, error) {
	var s, p basis.RawShell
	if len(coeffs[0]) != 2 {
		return s, p, Error{fmt.Sprintf("SP block needs exactly 2 coefficient columns, got %d", len(coeffs[0])), "", []string{"splitSP"}}
	}
	s = basis.RawShell{AngMom: 0, Exps: exps}
	p = basis.RawShell{AngMom: 1, Exps: exps}
	for _, row := range coeffs {
		s.Coeffs = append(s.Coeffs, []float64{row[0]})
		p.Coeffs = append(p.Coeffs, []float64{row[1]})
	}
	return s, p, nil
}

// NWChemFile is NWChem on a file. Files ending in "gz" are read through
// gzip, those ending in "zst" or "zstd" through zstd; anything else is read
// as plain text.
func NWChemFile(name string) (map[string][]basis.RawShell, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"NWChemFile"}}
	}
	defer f.Close()
	var r io.Reader = bufio.NewReader(f)
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, "gz"):
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"NWChemFile"}}
		}
		defer gr.Close()
		r = gr
	case strings.HasSuffix(lower, "zst"), strings.HasSuffix(lower, "zstd"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, Error{err.Error(), name, []string{"NWChemFile"}}
		}
		defer zr.Close()
		r = zr
	}
	ret, err := NWChem(r)
	if err != nil {
		return nil, errDecorate(err, "NWChemFile: "+name)
	}
	return ret, nil
}

//Errors

// errDecorate asserts that the error implements basis.Error and decorates
// it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(basis.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the error type for basis-set parsing. It fulfills basis.Error.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err Error) Error() string {
	if err.filename == "" {
		return "gobasis/parse: " + err.message
	}
	return fmt.Sprintf("gobasis/parse, file %s: %s", err.filename, err.message)
}

// Decorate adds new information to the error and returns the accumulated
// decoration.
func (E Error) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
