// SPDX-License-Identifier: MIT

// Package matrix: scalar weight resolution and parallel-edge combination.

package matrix

import (
	"fmt"
	"math"
)

// numericValue coerces a graph attribute value into float64. The supported
// kinds mirror what the codecs can store back into matrices.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// weightOf extracts the scalar weight of an edge from its attribute map.
// The default applies when lookup is disabled (WithoutWeightKey) or the
// attribute is absent. A present but non-numeric value is ErrInvalidWeight.
// Complexity: O(1).
func weightOf(attrs map[string]any, o Options) (float64, error) {
	if !o.useWeightKey {
		return o.defaultWeight, nil
	}
	raw, ok := attrs[o.weightKey]
	if !ok {
		return o.defaultWeight, nil
	}
	w, ok := numericValue(raw)
	if !ok {
		return 0, fmt.Errorf("weightOf: attribute %q holds %T: %w", o.weightKey, raw, ErrInvalidWeight)
	}

	return w, nil
}

// combine folds one more parallel-edge weight into an accumulation cell.
// An unset cell is an identity element: the new weight is taken as-is, so
// min/max never see a phantom zero.
// Complexity: O(1).
func combine(cur cell, w float64, r Reducer) (cell, error) {
	if !cur.set {
		return cell{val: w, set: true}, nil
	}
	switch r {
	case ReduceSum:
		return cell{val: cur.val + w, set: true}, nil
	case ReduceMin:
		return cell{val: math.Min(cur.val, w), set: true}, nil
	case ReduceMax:
		return cell{val: math.Max(cur.val, w), set: true}, nil
	default:
		return cell{}, fmt.Errorf("combine: reducer %d: %w", r, ErrUnknownReducer)
	}
}
