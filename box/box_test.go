// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package box

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/texcore/texcore/glue"
	"github.com/texcore/texcore/sp"
)

func noMetrics(Char) (sp.SP, sp.SP) { return 0, 0 }

func TestPackHorizontalFiniteStretch(t *testing.T) {
	// Glue{2pt, stretch=3pt, shrink=0} packed to 6.5pt natural+additional.
	list := []HElem{
		SkipElem(glue.Glue{
			Space:   sp.FromPt(2),
			Stretch: glue.SpringDim{Order: glue.Finite, Value: sp.FromPt(3)},
		}),
	}
	width := func(Char) sp.SP { return 0 }
	b := PackHorizontal(list, sp.FromPt(4.5), true, width, noMetrics)
	assert.Equal(t, sp.FromPt(2+4.5), b.Width)
	assert.True(t, b.Ratio.None == false)
	assert.Equal(t, glue.Finite, b.Ratio.Order)
	assert.InDelta(t, 1.5, b.Ratio.Value, 1e-9)
}

func TestPackHorizontalFilDominatesFinite(t *testing.T) {
	list := []HElem{
		SkipElem(glue.Glue{
			Space:   sp.FromPt(2),
			Stretch: glue.SpringDim{Order: glue.Fil, Value: sp.FromPt(3)},
		}),
		// A Finite stretch alongside the Fil one must not be chosen.
		SkipElem(glue.Glue{
			Stretch: glue.SpringDim{Order: glue.Finite, Value: sp.FromPt(10)},
		}),
	}
	width := func(Char) sp.SP { return 0 }
	b := PackHorizontal(list, sp.FromPt(1.5), true, width, noMetrics)
	assert.Equal(t, glue.Fil, b.Ratio.Order)

	// ratio = target(1.5pt) / Fil stretch total(3pt) = 0.5; applied to the 3pt
	// Fil stretch component gives 1.5pt added to the 2pt natural space.
	r, err := b.Ratio.Apply(*list[0].Skip)
	assert.NoError(t, err)
	assert.Equal(t, sp.FromPt(2)+sp.FromPt(1.5), r)
}

func TestPackHorizontalNoElasticIsNone(t *testing.T) {
	list := []HElem{SkipElem(glue.Glue{Space: sp.FromPt(1)})}
	width := func(Char) sp.SP { return 0 }
	b := PackHorizontal(list, 0, true, width, noMetrics)
	assert.True(t, b.Ratio.None)
}

func TestPackVerticalAccumulatesDepthIntoHeight(t *testing.T) {
	h1 := &HBox{Height: sp.FromPt(10), Depth: sp.FromPt(2), Width: sp.FromPt(5)}
	h2 := &HBox{Height: sp.FromPt(8), Depth: sp.FromPt(1), Width: sp.FromPt(5)}
	list := []VElem{VBoxElem(toVBox(h1)), VBoxElem(toVBox(h2))}
	v := PackVertical(list, 0, true, nil)
	assert.Equal(t, sp.FromPt(10)+sp.FromPt(2)+sp.FromPt(8), v.Height)
	assert.Equal(t, sp.FromPt(1), v.Depth)
}

func toVBox(h *HBox) *VBox {
	return &VBox{Height: h.Height, Depth: h.Depth, Width: h.Width}
}
