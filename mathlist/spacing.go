// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathlist

import (
	"github.com/texcore/texcore/glue"
	"github.com/texcore/texcore/sp"
)

// Spacing is the inter-atom spacing tag the table below maps a (left,
// right) atom kind pair to. The translator resolves it against the
// current style to decide whether to emit a skip at all.
type Spacing int

const (
	SpacingNone Spacing = iota
	Thin
	ThinNS
	MediumNS
	ThickNS
)

const numKinds = int(Inner) + 1

// spacingTable is the fixed 8x8 inter-atom spacing class table. Forbidden
// pairs are left at SpacingNone: a missing entry never panics, it simply
// inserts no spacing.
var spacingTable = [numKinds][numKinds]Spacing{
	Ord:   {Ord: SpacingNone, Op: Thin, Bin: MediumNS, Rel: ThickNS, Open: SpacingNone, Close: SpacingNone, Punct: SpacingNone, Inner: ThinNS},
	Op:    {Ord: Thin, Op: Thin, Bin: SpacingNone, Rel: ThickNS, Open: SpacingNone, Close: SpacingNone, Punct: SpacingNone, Inner: ThinNS},
	Bin:   {Ord: MediumNS, Op: MediumNS, Bin: SpacingNone, Rel: SpacingNone, Open: MediumNS, Close: SpacingNone, Punct: SpacingNone, Inner: MediumNS},
	Rel:   {Ord: ThickNS, Op: ThickNS, Bin: SpacingNone, Rel: SpacingNone, Open: ThickNS, Close: SpacingNone, Punct: SpacingNone, Inner: ThickNS},
	Open:  {Ord: SpacingNone, Op: SpacingNone, Bin: SpacingNone, Rel: SpacingNone, Open: SpacingNone, Close: SpacingNone, Punct: SpacingNone, Inner: SpacingNone},
	Close: {Ord: SpacingNone, Op: Thin, Bin: MediumNS, Rel: ThickNS, Open: SpacingNone, Close: SpacingNone, Punct: SpacingNone, Inner: ThinNS},
	Punct: {Ord: ThinNS, Op: ThinNS, Bin: SpacingNone, Rel: ThinNS, Open: ThinNS, Close: ThinNS, Punct: ThinNS, Inner: ThinNS},
	Inner: {Ord: ThinNS, Op: Thin, Bin: MediumNS, Rel: ThickNS, Open: ThinNS, Close: SpacingNone, Punct: ThinNS, Inner: ThinNS},
}

// Skips holds the three math-skip glues (\thinmuskip, \mediummuskip,
// \thickmuskip equivalents) that SkipFor inserts. The translator always
// receives these through its caller rather than reading fixed constants,
// so a caller can override them (e.g. from scoped assignments in state)
// without touching this package.
type Skips struct {
	Thin, Medium, Thick glue.Glue
}

// DefaultSkips returns the fixed glue values TeX uses before any
// \thinmuskip-equivalent assignment.
func DefaultSkips() Skips {
	return Skips{
		Thin: glue.Glue{
			Space: sp.FromPt(3),
		},
		Medium: glue.Glue{
			Space:   sp.FromPt(4),
			Stretch: glue.SpringDim{Order: glue.Finite, Value: sp.FromPt(2)},
			Shrink:  glue.SpringDim{Order: glue.Finite, Value: sp.FromPt(4)},
		},
		Thick: glue.Glue{
			Space:   sp.FromPt(5),
			Stretch: glue.SpringDim{Order: glue.Finite, Value: sp.FromPt(5)},
		},
	}
}

// SkipFor looks up the spacing tag for the ordered pair (left, right) and
// resolves it against style and skips, returning the glue to insert and
// whether any should be inserted at all.
func SkipFor(left, right AtomKind, style MathStyle, skips Skips) (glue.Glue, bool) {
	tag := spacingTable[left][right]
	script := style.IsScript()
	switch tag {
	case SpacingNone:
		return glue.Glue{}, false
	case Thin:
		return skips.Thin, true
	case ThinNS:
		if script {
			return glue.Glue{}, false
		}
		return skips.Thin, true
	case MediumNS:
		if script {
			return glue.Glue{}, false
		}
		return skips.Medium, true
	case ThickNS:
		if script {
			return glue.Glue{}, false
		}
		return skips.Thick, true
	default:
		return glue.Glue{}, false
	}
}
