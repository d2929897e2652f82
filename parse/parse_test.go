/*
 * parse_test.go, part of gobasis.
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

package parse

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// STO-3G for H and C, with an SP block, as the Basis Set Exchange emits it.
const sto3g = `# STO-3G basis set, NWChem format
BASIS "ao basis" SPHERICAL PRINT
#BASIS SET: (3s) -> [1s]
H    S
      3.42525091             0.15432897
      0.62391373             0.53532814
      0.16885540             0.44463454
#BASIS SET: (6s,3p) -> [2s,1p]
C    S
     71.6168370              0.15432897
     13.0450960              0.53532814
      3.5305122              0.44463454
C    SP
      2.9412494             -0.09996723             0.15591627
      0.6834831              0.39951283             0.60768372
      0.2222899              0.70011547             0.39195739
END
`

func TestNWChem(T *testing.T) {
	got, err := NWChem(strings.NewReader(sto3g))
	require.NoError(T, err)
	require.Contains(T, got, "H")
	require.Contains(T, got, "C")
	require.Len(T, got["H"], 1)
	//the C SP block splits into an S and a P shell
	require.Len(T, got["C"], 3)
	h := got["H"][0]
	assert.Equal(T, 0, h.AngMom)
	assert.Equal(T, []float64{3.42525091, 0.62391373, 0.16885540}, h.Exps)
	require.Len(T, h.Coeffs, 3)
	assert.Equal(T, []float64{0.15432897}, h.Coeffs[0])
	s, p := got["C"][1], got["C"][2]
	assert.Equal(T, 0, s.AngMom)
	assert.Equal(T, 1, p.AngMom)
	assert.Equal(T, s.Exps, p.Exps)
	assert.InDelta(T, -0.09996723, s.Coeffs[0][0], 1e-12)
	assert.InDelta(T, 0.15591627, p.Coeffs[0][0], 1e-12)
}

func TestNWChemGeneralized(T *testing.T) {
	//two coefficient columns with the same letter make one generalized
	//contraction
	in := `BASIS
O    S
      1.0    0.3    0.1
      0.5    0.7    0.9
END
`
	got, err := NWChem(strings.NewReader(in))
	require.NoError(T, err)
	require.Len(T, got["O"], 1)
	sh := got["O"][0]
	require.Len(T, sh.Coeffs, 2)
	assert.Equal(T, []float64{0.3, 0.1}, sh.Coeffs[0])
	assert.Equal(T, []float64{0.7, 0.9}, sh.Coeffs[1])
}

func TestNWChemFortranExponents(T *testing.T) {
	in := `BASIS
H    S
      0.3425D+01    0.1543d+00
END
`
	got, err := NWChem(strings.NewReader(in))
	require.NoError(T, err)
	require.Len(T, got["H"], 1)
	assert.InDelta(T, 3.425, got["H"][0].Exps[0], 1e-12)
}

func TestNWChemUnsupportedShell(T *testing.T) {
	//a K block is beyond the internal table; it is skipped, not fatal
	in := `BASIS
H    S
      1.0    1.0
H    K
      1.0    1.0
END
`
	got, err := NWChem(strings.NewReader(in))
	require.NoError(T, err)
	assert.Len(T, got["H"], 1)
}

func TestNWChemMalformed(T *testing.T) {
	cases := []string{
		"BASIS\n1.0 1.0\nEND\n",        //numbers with no block open
		"BASIS\nH S\nEND\n",            //block with no primitives
		"BASIS\nH S extra stuff\nEND\n",//malformed header
		"BASIS\nH S\n1.0\nEND\n",       //primitive with no coefficient
		"BASIS\nH S\n1.0 1.0\n2.0 1.0 1.0\nEND\n", //inconsistent columns
		"BASIS\nH SP\n1.0 1.0\nEND\n",  //SP with a single column
	}
	for i, c := range cases {
		_, err := NWChem(strings.NewReader(c))
		assert.Error(T, err, "case %d", i)
	}
}

func TestNWChemFile(T *testing.T) {
	dir := T.TempDir()
	plain := filepath.Join(dir, "sto3g.nw")
	require.NoError(T, os.WriteFile(plain, []byte(sto3g), 0644))
	got, err := NWChemFile(plain)
	require.NoError(T, err)
	assert.Len(T, got["C"], 3)

	gzname := filepath.Join(dir, "sto3g.nw.gz")
	f, err := os.Create(gzname)
	require.NoError(T, err)
	w := gzip.NewWriter(f)
	_, err = w.Write([]byte(sto3g))
	require.NoError(T, err)
	require.NoError(T, w.Close())
	require.NoError(T, f.Close())
	got, err = NWChemFile(gzname)
	require.NoError(T, err)
	assert.Len(T, got["C"], 3)

	_, err = NWChemFile(filepath.Join(dir, "nosuchfile.nw"))
	assert.Error(T, err)
}
