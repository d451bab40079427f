// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glue

import (
	"testing"

	"github.com/texcore/texcore/sp"
)

func TestSetNoShortfallIsNone(t *testing.T) {
	r := Set(sp.FromPt(10), sp.FromPt(10), Totals{}, Totals{})
	if !r.None {
		t.Errorf("Set with zero delta = %+v, want None", r)
	}
}

func TestSetPicksHighestStretchOrder(t *testing.T) {
	var stretch Totals
	stretch[Finite] = sp.FromPt(2)
	stretch[Fil] = sp.FromPt(1)
	r := Set(sp.FromPt(10), sp.FromPt(14), stretch, Totals{})
	if r.Order != Fil {
		t.Errorf("Set order = %v, want Fil", r.Order)
	}
}

func TestSetFiniteShrinkClampedToOne(t *testing.T) {
	var shrink Totals
	shrink[Finite] = sp.FromPt(1)
	r := Set(sp.FromPt(10), sp.FromPt(5), Totals{}, shrink)
	if r.Value != -1 {
		t.Errorf("Set shrink ratio = %v, want -1 (clamped)", r.Value)
	}
}

func TestSetNoElasticComponentIsNone(t *testing.T) {
	r := Set(sp.FromPt(10), sp.FromPt(14), Totals{}, Totals{})
	if !r.None {
		t.Errorf("Set with no elastic component = %+v, want None", r)
	}
}

func TestApplyIgnoresMismatchedOrder(t *testing.T) {
	r := SetRatio{Order: Finite, Value: 1.5}
	g := Glue{Space: sp.FromPt(2), Stretch: SpringDim{Order: Fil, Value: sp.FromPt(3)}}
	got, err := r.Apply(g)
	if err != nil {
		t.Fatal(err)
	}
	if got != g.Space {
		t.Errorf("Apply with mismatched order = %d, want unchanged space %d", got, g.Space)
	}
}

func TestApplyFiniteStretch(t *testing.T) {
	r := SetRatio{Order: Finite, Value: 1.5}
	g := Glue{Space: sp.FromPt(2), Stretch: SpringDim{Order: Finite, Value: sp.FromPt(3)}}
	got, err := r.Apply(g)
	if err != nil {
		t.Fatal(err)
	}
	want := sp.FromPt(2) + sp.FromPt(3)*3/2
	if got != want {
		t.Errorf("Apply = %d, want %d", got, want)
	}
}

func TestApplyNoneReturnsSpace(t *testing.T) {
	r := SetRatio{None: true}
	g := Glue{Space: sp.FromPt(4)}
	got, err := r.Apply(g)
	if err != nil {
		t.Fatal(err)
	}
	if got != g.Space {
		t.Errorf("Apply(None) = %d, want %d", got, g.Space)
	}
}
