// SPDX-License-Identifier: MIT
package oracle

import "errors"

// ErrDimensionMismatch names the case of two vertex slices of different
// lengths. FeasibilityCheck does not return it; it reports such slices as
// infeasible (false).
var ErrDimensionMismatch = errors.New("oracle: source/target vertex counts differ")
