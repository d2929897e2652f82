/*
 * doc.go, part of gobasis.
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

/*Package basis is the main package of the goBasis library. It evaluates
one-electron integrals over sets of contracted Cartesian Gaussian basis
functions, as used in quantum-chemistry electronic-structure programs.


	**goBasis capabilities**

    Represents generalized contraction shells (a set of segmented
	contractions sharing center, angular momentum and exponents), with
	primitive and contraction normalization constants derived at
	construction time.

    Evaluates primitives and contractions, and their partial derivatives
	to arbitrary order, at arbitrary points in space.

    Computes overlap and multipole moment integrals of arbitrary order
	between shell pairs, through the Hermite/Gaussian-product recurrences,
	and assembles them into the full basis-pair array.

    Computes point-charge (Coulomb) integrals through the McMurchie-Davidson
	scheme, and from them the electrostatic potential of a molecular
	density on arbitrary points.

    Transforms assembled arrays from Cartesian to real-solid-harmonic
	(spherical) Gaussians, per shell, and applies arbitrary linear
	combinations (say, AO to MO) on both axes.

	Reads NWChem-format basis set files, transparently decompressing
	gzip/zstd-compressed ones (subpackage parse), and plots contraction
	amplitude and electrostatic potential profiles (subpackage basisplot).

goBasis uses the v3.Matrix type for sets of points in 3D space (shell centers,
evaluation points, nuclei), and gonum's Dense type for everything else:
coefficient matrices, normalization tables and the assembled integral arrays.
All evaluation is plain float64, consistent with standard quantum-chemistry
packages. No GPU, distributed or arbitrary-precision execution is attempted.
*/
package basis
