// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package box implements the box and list data model: horizontal and
// vertical boxes containing character, skip, and sub-box elements, and the
// hpack/vpack packaging algorithms that compute a box's dimensions and
// glue-set ratio from its contents.
//
// Dimensions are carried in the fixed-point sp.SP type rather than
// float64, since DVI output must be bit-exact.
package box

import (
	"github.com/texcore/texcore/glue"
	"github.com/texcore/texcore/sp"
)

// FontName identifies a font by the name the metrics oracle resolves.
type FontName string

// Char is a single character set in a font.
type Char struct {
	Rune rune
	Font FontName
}

// HElem is one element of a horizontal list: a character, a skip, or a
// nested box.
type HElem struct {
	Char *Char
	Skip *glue.Glue
	Box  *HBox
}

// IsChar, IsSkip, IsBox report which variant e holds.
func (e HElem) IsChar() bool { return e.Char != nil }
func (e HElem) IsSkip() bool { return e.Skip != nil }
func (e HElem) IsBox() bool  { return e.Box != nil }

// CharElem, SkipElem, BoxElem construct the corresponding HElem variant.
func CharElem(c Char) HElem        { return HElem{Char: &c} }
func SkipElem(g glue.Glue) HElem   { return HElem{Skip: &g} }
func BoxElem(b *HBox) HElem        { return HElem{Box: b} }

// VElem is one element of a vertical list: a skip or a nested box.
type VElem struct {
	Skip *glue.Glue
	Box  *VBox
}

func (e VElem) IsSkip() bool { return e.Skip != nil }
func (e VElem) IsBox() bool  { return e.Box != nil }

func VSkipElem(g glue.Glue) VElem { return VElem{Skip: &g} }
func VBoxElem(b *VBox) VElem      { return VElem{Box: b} }

// PackagedBox is implemented by both HBox and VBox so the DVI serializer
// can dispatch on the packaged box kind without reflection.
type PackagedBox interface {
	isPackagedBox()
}

func (*HBox) isPackagedBox() {}
func (*VBox) isPackagedBox() {}

// HBox is a packaged horizontal box: a list of elements plus the
// dimensions and glue-set ratio chosen when it was packed. The dimensions
// need not equal the natural sum of the contents; that's precisely what
// Ratio resolves at render/serialize time.
type HBox struct {
	List            []HElem
	Height, Depth   sp.SP
	Width           sp.SP
	Ratio           glue.SetRatio
}

// VBox is a packaged vertical box, the column analogue of HBox.
type VBox struct {
	List          []VElem
	Height, Depth sp.SP
	Width         sp.SP
	Ratio         glue.SetRatio
}

// PackHorizontal computes natural dimensions for list, resolves the
// glue-set ratio against target (packing to exactly target when additional
// is false, or to natural+target when additional is true), and returns the
// packaged HBox.
//
// width looks up each Char's advance width; it is an injected function
// rather than a direct font package dependency so box stays independent
// of how metrics are sourced.
func PackHorizontal(list []HElem, target sp.SP, additional bool, width func(Char) sp.SP, metrics func(Char) (h, d sp.SP)) *HBox {
	var (
		natural sp.SP
		height  sp.SP
		depth   sp.SP
		stretch glue.Totals
		shrink  glue.Totals
	)
	for _, e := range list {
		switch {
		case e.IsChar():
			natural += width(*e.Char)
			h, d := metrics(*e.Char)
			height = sp.Max(height, h)
			depth = sp.Max(depth, d)
		case e.IsSkip():
			natural += e.Skip.Space
			stretch.Add(e.Skip.Stretch)
			shrink.Add(e.Skip.Shrink)
		case e.IsBox():
			natural += e.Box.Width
			height = sp.Max(height, e.Box.Height)
			depth = sp.Max(depth, e.Box.Depth)
		}
	}
	targetWidth := target
	if additional {
		targetWidth = natural + target
	}
	ratio := glue.Set(natural, targetWidth, stretch, shrink)
	return &HBox{List: list, Height: height, Depth: depth, Width: targetWidth, Ratio: ratio}
}

// PackNatural packages list at its natural width, equivalent to
// PackHorizontal(list, 0, true, ...): the common case used when combining a
// math sub-list into a single nucleus box.
func PackNatural(list []HElem, width func(Char) sp.SP, metrics func(Char) (h, d sp.SP)) *HBox {
	return PackHorizontal(list, 0, true, width, metrics)
}

// PackVertical is vpack's analogue for vertical lists: height/depth play
// the role width/height play in PackHorizontal, with the baseline-carry
// rule that only the last element's depth becomes the box's depth (earlier
// depths accumulate into height).
func PackVertical(list []VElem, target sp.SP, additional bool, height func() sp.SP) *VBox {
	var (
		width       sp.SP
		naturalH    sp.SP
		depth       sp.SP
		stretch     glue.Totals
		shrink      glue.Totals
	)
	for _, e := range list {
		switch {
		case e.IsSkip():
			naturalH += depth + e.Skip.Space
			depth = 0
			stretch.Add(e.Skip.Stretch)
			shrink.Add(e.Skip.Shrink)
		case e.IsBox():
			naturalH += depth + e.Box.Height
			depth = e.Box.Depth
			width = sp.Max(width, e.Box.Width)
		}
	}
	targetHeight := target
	if additional {
		targetHeight = naturalH + target
	}
	ratio := glue.Set(naturalH, targetHeight, stretch, shrink)
	return &VBox{List: list, Height: targetHeight, Depth: depth, Width: width, Ratio: ratio}
}
