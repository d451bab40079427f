// Copyright ©2020 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dvi

import (
	"io"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/texcore/texcore/box"
	"github.com/texcore/texcore/font"
	"github.com/texcore/texcore/glue"
	"github.com/texcore/texcore/sp"
	"github.com/texcore/texcore/texerr"
)

// FileWriter is a single serialization session: it owns the growing
// command buffer, the font registry, and the page back-pointer chain.
type FileWriter struct {
	commands      []Cmd
	stackDepth    int
	lastPageStart int32
	currFontNum   int32
	fontNums      map[box.FontName]int32
	nextFontNum   int32

	oracle *font.Oracle

	// sessionID tags this writer's diagnostics only; it never affects the
	// emitted byte stream.
	sessionID uuid.UUID
	// byteOffset tracks the running total so add_page avoids re-walking
	// the whole command slice on every page, per the design notes.
	byteOffset int64
}

// NewFileWriter constructs an empty serializer session backed by oracle
// for font metrics.
func NewFileWriter(oracle *font.Oracle) *FileWriter {
	return &FileWriter{
		lastPageStart: -1,
		currFontNum:   -1,
		fontNums:      make(map[box.FontName]int32),
		oracle:        oracle,
		sessionID:     uuid.New(),
	}
}

func (w *FileWriter) push(c Cmd) {
	w.commands = append(w.commands, c)
	w.byteOffset += int64(c.ByteSize())
}

// Commands returns the emitted command sequence, for inspection in tests.
func (w *FileWriter) Commands() []Cmd { return w.commands }

func (w *FileWriter) addFontDef(name box.FontName) (int32, error) {
	fontNum := w.nextFontNum
	w.nextFontNum++

	m, err := w.oracle.Get(string(name))
	if err != nil {
		return 0, err
	}

	w.push(Cmd{FntDef4: &FntDef4{
		FontNum:    fontNum,
		Checksum:   m.Checksum(),
		Scale:      sp.DesignSizeUnity,
		DesignSize: sp.DesignSizeUnity,
		Area:       0,
		FontName:   string(name),
	}})
	w.fontNums[name] = fontNum
	return fontNum, nil
}

// SwitchToFont ensures subsequent SetCharN/Set1 commands are interpreted
// against name, defining the font on first use and emitting Fnt4 only when
// the current font actually changes.
func (w *FileWriter) SwitchToFont(name box.FontName) error {
	fontNum, ok := w.fontNums[name]
	if !ok {
		var err error
		fontNum, err = w.addFontDef(name)
		if err != nil {
			return err
		}
	}
	if fontNum != w.currFontNum {
		w.push(fnt4(fontNum))
		w.currFontNum = fontNum
	}
	return nil
}

// AddBox emits a balanced Push/Pop pair around the box's elements.
func (w *FileWriter) AddBox(b box.PackagedBox) error {
	w.push(Cmd{Push: true})
	w.stackDepth++

	var err error
	switch v := b.(type) {
	case *box.HBox:
		for _, e := range v.List {
			err = w.addHorizontalListElem(e, v.Ratio)
			if err != nil {
				break
			}
		}
	case *box.VBox:
		for _, e := range v.List {
			err = w.addVerticalListElem(e, v.Ratio)
			if err != nil {
				break
			}
		}
	default:
		err = texerr.New(texerr.InvariantViolation, "dvi: AddBox: unknown box type")
	}

	w.stackDepth--
	w.push(Cmd{Pop: true})
	return err
}

func (w *FileWriter) addHorizontalListElem(e box.HElem, ratio glue.SetRatio) error {
	switch {
	case e.IsChar():
		if err := w.SwitchToFont(e.Char.Font); err != nil {
			return err
		}
		w.push(charCmd(uint8(e.Char.Rune)))
		return nil

	case e.IsSkip():
		move, err := ratio.Apply(*e.Skip)
		if err != nil {
			return err
		}
		w.push(right4(int32(move)))
		return nil

	case e.IsBox():
		if err := w.AddBox(e.Box); err != nil {
			return err
		}
		w.push(right4(int32(e.Box.Width)))
		return nil

	default:
		return texerr.New(texerr.InvariantViolation, "dvi: empty horizontal list element")
	}
}

func (w *FileWriter) addVerticalListElem(e box.VElem, ratio glue.SetRatio) error {
	switch {
	case e.IsSkip():
		move, err := ratio.Apply(*e.Skip)
		if err != nil {
			return err
		}
		w.push(down4(int32(move)))
		return nil

	case e.IsBox():
		if err := w.AddBox(e.Box); err != nil {
			return err
		}
		w.push(down4(int32(e.Box.Height) + int32(e.Box.Depth)))
		return nil

	default:
		return texerr.New(texerr.InvariantViolation, "dvi: empty vertical list element")
	}
}

// AddPage emits Bop, the page's box tree, then Eop, threading
// lastPageStart into the new Bop's back-pointer.
func (w *FileWriter) AddPage(page box.PackagedBox, cs [10]int32) error {
	old := w.lastPageStart
	w.lastPageStart = int32(w.byteOffset)

	w.push(Cmd{Bop: &Bop{CS: cs, Pointer: old}})

	w.currFontNum = -1
	if err := w.AddBox(page); err != nil {
		return err
	}
	w.push(Cmd{Eop: true})

	log.Printf("dvi[%s]: shipped page at offset %s", w.sessionID, humanize.Bytes(uint64(w.lastPageStart)))
	return nil
}

// WriteTo writes the full command stream in DVI's wire encoding. The
// preamble/postamble (string pool, magnification, font areas) is the
// top-level caller's responsibility, not this serializer's.
func (w *FileWriter) WriteTo(out io.Writer) (int64, error) {
	var total int64
	for _, c := range w.commands {
		n, err := c.WriteTo(out)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// StackBalanced reports whether every AddBox call paired its Push with a
// Pop, i.e. the invariant that there's zero net stack depth outside any
// open page.
func (w *FileWriter) StackBalanced() bool { return w.stackDepth == 0 }
