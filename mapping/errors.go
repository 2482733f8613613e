// SPDX-License-Identifier: MIT
// Package mapping — sentinel errors.
package mapping

import "errors"

// ErrDuplicateSource is returned by Extend when the source vertex is already
// present in the mapping.
var ErrDuplicateSource = errors.New("mapping: source vertex already mapped")

// ErrDuplicateTarget is returned by Extend when the target vertex is already
// present in the mapping.
var ErrDuplicateTarget = errors.New("mapping: target vertex already mapped")

// ErrLevelMismatch is returned by RemoveLast on an empty mapping — there is
// no last pair to undo.
var ErrLevelMismatch = errors.New("mapping: level mismatch")
