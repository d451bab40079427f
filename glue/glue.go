// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glue implements TeX's elastic spring dimensions: glue, the
// glue-set ratio a box is packaged with, and the algorithm that derives one
// from the other.
//
// Dimensions are carried in the fixed-point sp.SP type rather than
// float64, since DVI output must be bit-exact.
package glue

import (
	"github.com/texcore/texcore/sp"
	"github.com/texcore/texcore/texerr"
)

// Order is the order of infinity of a spring dimension's elastic component:
// 0 means finite (an ordinary length), 1-3 are fil, fill, and filll.
type Order int

const (
	Finite Order = 0
	Fil    Order = 1
	Fill   Order = 2
	Filll  Order = 3
)

// SpringDim is an elastic stretch or shrink component: a magnitude at a
// given order of infinity. An Order above Finite dominates any Finite
// component in the same accumulation (see Totals.HighestOrder).
type SpringDim struct {
	Order Order
	Value sp.SP
}

// Glue is the natural length plus its elastic stretch and shrink.
type Glue struct {
	Space   sp.SP
	Stretch SpringDim
	Shrink  SpringDim
}

// Totals accumulates stretch or shrink components across a list by order,
// mirroring tex.go's totStretch/totShrink [4]float64 arrays.
type Totals [4]sp.SP

// Add folds d into the totals at its order.
func (t *Totals) Add(d SpringDim) {
	t[d.Order] += d.Value
}

// HighestOrder returns the highest order with a nonzero total, or Finite if
// all totals are zero.
func (t Totals) HighestOrder() Order {
	for k := Filll; k > Finite; k-- {
		if t[k] != 0 {
			return k
		}
	}
	return Finite
}

// SetRatio is the ratio a packaged box carries: which order of spring
// dimension to apply, and by how much. A None ratio means list elements
// keep their natural length.
type SetRatio struct {
	None  bool
	Order Order
	Value float64
}

// Set computes the SetRatio that resolves a list of natural length natural
// to target length, given the accumulated stretch and shrink totals. This
// implements the packaging algorithm: pick the highest order with a
// nonzero elastic total on the stretching or shrinking side as required,
// and derive the ratio from the shortfall or surplus.
func Set(natural, target sp.SP, stretch, shrink Totals) SetRatio {
	delta := int64(target) - int64(natural)
	switch {
	case delta == 0:
		return SetRatio{None: true}
	case delta > 0:
		order := stretch.HighestOrder()
		total := stretch[order]
		if total == 0 {
			return SetRatio{None: true}
		}
		return SetRatio{Order: order, Value: float64(delta) / float64(total)}
	default:
		order := shrink.HighestOrder()
		total := shrink[order]
		if total == 0 {
			return SetRatio{None: true}
		}
		ratio := float64(delta) / float64(total)
		if order == Finite && ratio < -1 {
			ratio = -1
		}
		return SetRatio{Order: order, Value: ratio}
	}
}

// Apply resolves g to a concrete length under ratio r. Components whose
// order differs from r's contribute nothing; this is what lets an
// infinite-order stretch dominate a finite one in the accumulation but be
// wholly ignored by a ratio set at a different order.
func (r SetRatio) Apply(g Glue) (sp.SP, error) {
	if r.None {
		return g.Space, nil
	}
	var component SpringDim
	if r.Value >= 0 {
		component = g.Stretch
	} else {
		component = g.Shrink
	}
	if component.Order != r.Order {
		return g.Space, nil
	}
	delta, err := sp.MulRatio(component.Value, r.Value)
	if err != nil {
		return 0, texerr.Wrap(texerr.DimensionOverflow, "glue: Apply", err)
	}
	return sp.Add(g.Space, delta)
}
