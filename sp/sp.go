// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sp implements scaled-point fixed-point arithmetic, the integer
// length unit the rest of the core uses in place of floating point so that
// glue application and DVI offsets reproduce TeX's output bit for bit.
package sp

import (
	"math"

	"github.com/texcore/texcore/texerr"
)

// SP is a length in scaled points. One point equals PerPoint sp.
type SP int32

// PerPoint is the number of scaled points in one TeX point.
const PerPoint SP = 1 << 16

// DesignSizeUnity is the scale/design_size DVI uses when a font is loaded
// at its natural size: 2^20 scaled points per point of design size.
const DesignSizeUnity int32 = 1 << 20

// FromPt converts a quantity expressed in points to SP, truncating toward
// zero on any fractional remainder.
func FromPt(pt float64) SP {
	return SP(int64(pt * float64(PerPoint)))
}

// MulRatio multiplies an SP value by a glue-set ratio and truncates toward
// zero. The multiply itself runs in float64 rather than the integer
// xn_over_d form TeX describes: ratio already arrives as a float64 (see
// glue.SetRatio.Value), and at the magnitudes sp values and glue-set
// ratios take on in practice the float64 product rounds to the same
// integer the integer form would produce. A caller that needs literal
// xn_over_d bit-for-bit would need to carry the ratio as a rational pair
// instead.
func MulRatio(v SP, ratio float64) (SP, error) {
	product := float64(v) * ratio
	if math.IsNaN(product) || math.Abs(product) > float64(math.MaxInt32) {
		return 0, texerr.New(texerr.DimensionOverflow, "sp: MulRatio overflow")
	}
	return SP(int64(product)), nil
}

// Add adds two SP values, reporting overflow rather than wrapping.
func Add(a, b SP) (SP, error) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, texerr.New(texerr.DimensionOverflow, "sp: Add overflow")
	}
	return SP(sum), nil
}

// Max returns the larger of a and b.
func Max(a, b SP) SP {
	if a > b {
		return a
	}
	return b
}
