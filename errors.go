/*
 * errors.go, part of gobasis.
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

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
// The decoration slice contains a list of functions in the calling stack plus,
// for each function, any relevant information, in the format
// "FunctionName: Extra info".
type Error interface {
	error
	Decorate(string) []string
}

// errDecorate asserts that the error implements Error and decorates it with
// the caller's name before returning it. Using it with anything else is a
// bug in this package, and causes a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// CError is the concrete error type of the basis package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error and returns the accumulated
// decoration. If passed an empty string, it just returns the current value.
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Recurring error messages. Always wrapped in a CError with the
// caller's decoration.
const (
	ErrNilData       = "gobasis: nil data given"
	ErrNilShell      = "gobasis: nil shell given"
	ErrNilBasis      = "gobasis: empty or nil basis given"
	ErrCenterShape   = "gobasis: the center of a shell must be given as a 1x3 v3.Matrix"
	ErrNegAngMom     = "gobasis: angular momentum must be a non-negative integer"
	ErrNoExps        = "gobasis: a shell needs at least one primitive exponent"
	ErrNonPosExp     = "gobasis: primitive exponents must be positive"
	ErrCoeffRows     = "gobasis: coefficient matrix must have one row per primitive exponent"
	ErrKindUnknown   = "gobasis: coordinate kind must be \"cartesian\" or \"spherical\""
	ErrKindsLen      = "gobasis: one coordinate kind per shell is needed"
	ErrTransShape    = "gobasis: transform columns must match the basis dimension"
	ErrDensityShape  = "gobasis: density matrix must be square, symmetric and match the basis dimension"
	ErrChargesLen    = "gobasis: one charge per point/nucleus is needed"
	ErrNegThreshold  = "gobasis: the distance threshold must be non-negative"
	ErrNegMomOrder   = "gobasis: multipole moment orders must be non-negative integers"
	ErrAtomsCoords   = "gobasis: the number of atoms must equal the number of coordinate rows"
	ErrUnknownSymbol = "gobasis: element symbol not found"
)
