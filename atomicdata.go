/*
 * atomicdata.go, part of gobasis.
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

package basis

import "fmt"

//A map for assigning atomic numbers to element symbols.
//Note that just the elements up to Kr, plus a few common heavier
//ones, are present.
var symbolZ = map[string]int{
	"H":  1,
	"He": 2,
	"Li": 3,
	"Be": 4,
	"B":  5,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Ne": 10,
	"Na": 11,
	"Mg": 12,
	"Al": 13,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"Ar": 18,
	"K":  19,
	"Ca": 20,
	"Sc": 21,
	"Ti": 22,
	"V":  23,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Ni": 28,
	"Cu": 29,
	"Zn": 30,
	"Ga": 31,
	"Ge": 32,
	"As": 33,
	"Se": 34,
	"Br": 35,
	"Kr": 36,
	"Ru": 44,
	"Rh": 45,
	"Pd": 46,
	"Ag": 47,
	"I":  53,
	"Pt": 78,
	"Au": 79,
	"Hg": 80,
}

// AtomicNumber returns the atomic number for the given element symbol
// (say, "He" -> 2), or an error if the symbol is not known to goBasis.
func AtomicNumber(symbol string) (int, error) {
	z, ok := symbolZ[symbol]
	if !ok {
		return 0, CError{fmt.Sprintf("%s: %s", ErrUnknownSymbol, symbol), []string{"AtomicNumber"}}
	}
	return z, nil
}

// KnownElement returns true if goBasis has data for the given element symbol.
func KnownElement(symbol string) bool {
	_, ok := symbolZ[symbol]
	return ok
}
