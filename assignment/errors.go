// SPDX-License-Identifier: MIT
package assignment

import "errors"

// ErrNonSquare is returned when the cost matrix handed to NewDriver is not
// square — an assignment problem is only defined between equal-size sides.
var ErrNonSquare = errors.New("assignment: cost matrix must be square")

// ErrExhausted is returned by NextChild once every matching Murty's
// algorithm can derive from the root solution has already been returned.
var ErrExhausted = errors.New("assignment: no further assignments")

// ErrNotExecuted is returned by NextChild if Execute has not run yet.
var ErrNotExecuted = errors.New("assignment: Execute has not run")
