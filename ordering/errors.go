// SPDX-License-Identifier: MIT
package ordering

import "errors"

// ErrEmptyGraph is returned by BySpanningTree and ByCentrality when the
// graph has no vertices to order.
var ErrEmptyGraph = errors.New("ordering: graph has no vertices")
