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

/*Package v3 implements a Matrix type representing a row-major set of points in
3D space (i.e. an Nx3 matrix). In goBasis a v3.Matrix holds shell centers,
evaluation points and nuclear coordinates. It is based on gonum's Dense type,
with additional restrictions because of the fixed number of columns, plus some
functions that were found useful for the purposes of goBasis. Each row of a
Matrix is one point.
*/
package v3
