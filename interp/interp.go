// pdfplumber - structured content extraction for PDF documents
// Copyright (C) 2026 The pdfplumber-go Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package interp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/content"
	"github.com/pdfplumber-go/pdfplumber/font/charcode"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/graphics"
	"github.com/pdfplumber-go/pdfplumber/matrix"
	"github.com/pdfplumber-go/pdfplumber/path"
	"github.com/pdfplumber-go/pdfplumber/textstate"
)

const maxFormDepth = 12

var errTooFewArgs = fmt.Errorf("too few operands")

// Interpreter walks a content stream, maintaining the graphics state stack
// (C3), text state machine (C4), and current path (C2), and reports
// character, path, and image operations through a Handler.
type Interpreter struct {
	gs        *graphics.Stack
	ts        textstate.State
	builder   path.Builder
	resources Resources
	handler   Handler
	font      *ResolvedFont
	fontName  string
	formDepth int
	mcStack   []markedFrame
}

// markedFrame is one entry of the BMC/BDC marked-content stack; the
// innermost frame is attached to every CharEvent emitted while it's open.
type markedFrame struct {
	Tag  string
	MCID *int
}

// New returns an Interpreter for a page (or top-level form) with the given
// resource resolver and event handler.
func New(resources Resources, handler Handler) *Interpreter {
	return &Interpreter{
		gs:        graphics.NewStack(),
		ts:        textstate.Default(),
		resources: resources,
		handler:   handler,
	}
}

// Run interprets the content stream read from r, starting with the
// current CTM as the initial graphics state's transform.
func (ip *Interpreter) Run(r io.Reader, initialCTM matrix.Matrix) error {
	ip.gs.Current().CTM = initialCTM
	scanner := content.NewScanner(r)
	var args []content.Object
	for {
		obj, err := scanner.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			ip.warn("", fmt.Sprintf("scan error: %v", err))
			return nil
		}
		op, isOp := obj.(content.Operator)
		if !isOp {
			args = append(args, obj)
			continue
		}
		if string(op) == "BI" {
			if err := ip.handleInlineImage(scanner); err != nil {
				ip.warn("BI", err.Error())
			}
			args = args[:0]
			continue
		}
		if err := ip.exec(string(op), args); err != nil {
			ip.warn(string(op), err.Error())
		}
		args = args[:0]
	}
}

func (ip *Interpreter) warn(op, msg string) {
	if ip.handler != nil {
		ip.handler.OnWarning(Warning{Op: op, Message: msg})
	}
}

func num(o content.Object) (float64, bool) { return content.Num(o) }

func nums(args []content.Object) []float64 {
	out := make([]float64, len(args))
	for i, a := range args {
		out[i], _ = num(a)
	}
	return out
}

func (ip *Interpreter) exec(op string, args []content.Object) error {
	g := ip.gs.Current()
	switch op {

	// -- graphics state stack --
	case "q":
		ip.gs.Push()
	case "Q":
		if !ip.gs.Pop() {
			return fmt.Errorf("unbalanced Q")
		}
	case "cm":
		if len(args) < 6 {
			return errTooFewArgs
		}
		m := matrix.Matrix{}
		for i := 0; i < 6; i++ {
			m[i], _ = num(args[i])
		}
		g.CTM = m.Mul(g.CTM)
	case "w":
		if len(args) < 1 {
			return errTooFewArgs
		}
		g.LineWidth, _ = num(args[0])
	case "d":
		if len(args) < 2 {
			return errTooFewArgs
		}
		arr, _ := args[0].(content.Array)
		dash := graphics.DashPattern{}
		for _, o := range arr {
			if v, ok := num(o); ok {
				dash.Array = append(dash.Array, v)
			}
		}
		dash.Phase, _ = num(args[1])
		g.Dash = dash
	case "gs":
		if len(args) < 1 {
			return errTooFewArgs
		}
		name, _ := args[0].(content.Name)
		if params, err := ip.resources.ExtGState(string(name)); err == nil {
			if v, ok := params["ca"]; ok {
				g.FillAlpha = v
			}
			if v, ok := params["CA"]; ok {
				g.StrokeAlpha = v
			}
		}

	// -- path construction --
	// Operands arrive in the path's own untransformed space; each point is
	// carried through the current CTM before reaching the Builder, which
	// only ever stores device-space points.
	case "m":
		if len(args) < 2 {
			return errTooFewArgs
		}
		x, _ := num(args[0])
		y, _ := num(args[1])
		ip.builder.MoveTo(g.CTM.TransformPoint(geom.Point{X: x, Y: y}))
	case "l":
		if len(args) < 2 {
			return errTooFewArgs
		}
		x, _ := num(args[0])
		y, _ := num(args[1])
		ip.builder.LineTo(g.CTM.TransformPoint(geom.Point{X: x, Y: y}))
	case "c":
		if len(args) < 6 {
			return errTooFewArgs
		}
		v := nums(args)
		ip.builder.CurveTo(
			g.CTM.TransformPoint(geom.Point{X: v[0], Y: v[1]}),
			g.CTM.TransformPoint(geom.Point{X: v[2], Y: v[3]}),
			g.CTM.TransformPoint(geom.Point{X: v[4], Y: v[5]}),
		)
	case "v":
		if len(args) < 4 {
			return errTooFewArgs
		}
		v := nums(args)
		ip.builder.CurveToV(
			g.CTM.TransformPoint(geom.Point{X: v[0], Y: v[1]}),
			g.CTM.TransformPoint(geom.Point{X: v[2], Y: v[3]}),
		)
	case "y":
		if len(args) < 4 {
			return errTooFewArgs
		}
		v := nums(args)
		ip.builder.CurveToY(
			g.CTM.TransformPoint(geom.Point{X: v[0], Y: v[1]}),
			g.CTM.TransformPoint(geom.Point{X: v[2], Y: v[3]}),
		)
	case "h":
		ip.builder.ClosePath()
	case "re":
		if len(args) < 4 {
			return errTooFewArgs
		}
		v := nums(args)
		x, y, w, h := v[0], v[1], v[2], v[3]
		corners := [4]geom.Point{
			g.CTM.TransformPoint(geom.Point{X: x, Y: y}),
			g.CTM.TransformPoint(geom.Point{X: x + w, Y: y}),
			g.CTM.TransformPoint(geom.Point{X: x + w, Y: y + h}),
			g.CTM.TransformPoint(geom.Point{X: x, Y: y + h}),
		}
		ip.builder.MoveTo(corners[0])
		ip.builder.LineTo(corners[1])
		ip.builder.LineTo(corners[2])
		ip.builder.LineTo(corners[3])
		ip.builder.ClosePath()

	// -- path painting --
	case "S":
		ip.paint(false, true, false)
	case "s":
		ip.builder.ClosePath()
		ip.paint(false, true, false)
	case "f", "F":
		ip.paint(true, false, false)
	case "f*":
		ip.paint(true, false, true)
	case "B":
		ip.paint(true, true, false)
	case "B*":
		ip.paint(true, true, true)
	case "b":
		ip.builder.ClosePath()
		ip.paint(true, true, false)
	case "b*":
		ip.builder.ClosePath()
		ip.paint(true, true, true)
	case "n":
		ip.paint(false, false, false)
	case "W", "W*":
		// Clipping is not tracked: W/W* leave the current path as it is,
		// and no clip path is kept or applied to later events.

	// -- color --
	case "g":
		if len(args) < 1 {
			return errTooFewArgs
		}
		v, _ := num(args[0])
		g.FillColor = color.NewGray(v)
		g.FillSpace = color.DeviceGray
	case "G":
		if len(args) < 1 {
			return errTooFewArgs
		}
		v, _ := num(args[0])
		g.StrokeColor = color.NewGray(v)
		g.StrokeSpace = color.DeviceGray
	case "rg":
		if len(args) < 3 {
			return errTooFewArgs
		}
		v := nums(args)
		g.FillColor = color.NewRGB(v[0], v[1], v[2])
		g.FillSpace = color.DeviceRGB
	case "RG":
		if len(args) < 3 {
			return errTooFewArgs
		}
		v := nums(args)
		g.StrokeColor = color.NewRGB(v[0], v[1], v[2])
		g.StrokeSpace = color.DeviceRGB
	case "k":
		if len(args) < 4 {
			return errTooFewArgs
		}
		v := nums(args)
		g.FillColor = color.NewCMYK(v[0], v[1], v[2], v[3])
		g.FillSpace = color.DeviceCMYK
	case "K":
		if len(args) < 4 {
			return errTooFewArgs
		}
		v := nums(args)
		g.StrokeColor = color.NewCMYK(v[0], v[1], v[2], v[3])
		g.StrokeSpace = color.DeviceCMYK
	case "cs":
		ip.setColorSpace(args, false)
	case "CS":
		ip.setColorSpace(args, true)
	case "sc", "scn":
		ip.setColor(args, false)
	case "SC", "SCN":
		ip.setColor(args, true)

	// -- text object lifecycle --
	case "BT":
		ip.ts.BeginText()
	case "ET":
		ip.ts.EndText()

	// -- text state --
	case "Tc":
		if len(args) < 1 {
			return errTooFewArgs
		}
		ip.ts.CharSpacing, _ = num(args[0])
	case "Tw":
		if len(args) < 1 {
			return errTooFewArgs
		}
		ip.ts.WordSpacing, _ = num(args[0])
	case "Tz":
		if len(args) < 1 {
			return errTooFewArgs
		}
		ip.ts.HScalingPct, _ = num(args[0])
	case "TL":
		if len(args) < 1 {
			return errTooFewArgs
		}
		ip.ts.Leading, _ = num(args[0])
	case "Tf":
		if len(args) < 2 {
			return errTooFewArgs
		}
		name, _ := args[0].(content.Name)
		size, _ := num(args[1])
		ip.ts.FontName = string(name)
		ip.ts.FontSize = size
		rf, err := ip.resources.Font(string(name))
		if err != nil {
			return err
		}
		ip.font = rf
		ip.fontName = string(name)
	case "Tr":
		if len(args) < 1 {
			return errTooFewArgs
		}
		v, _ := num(args[0])
		ip.ts.RenderMode = textstate.RenderMode(int(v))
	case "Ts":
		if len(args) < 1 {
			return errTooFewArgs
		}
		ip.ts.Rise, _ = num(args[0])

	// -- text positioning --
	case "Td":
		if len(args) < 2 {
			return errTooFewArgs
		}
		tx, _ := num(args[0])
		ty, _ := num(args[1])
		ip.ts.MoveLine(tx, ty)
	case "TD":
		if len(args) < 2 {
			return errTooFewArgs
		}
		tx, _ := num(args[0])
		ty, _ := num(args[1])
		ip.ts.MoveLineSetLeading(tx, ty)
	case "Tm":
		if len(args) < 6 {
			return errTooFewArgs
		}
		v := nums(args)
		ip.ts.SetTextMatrix(matrix.Matrix{v[0], v[1], v[2], v[3], v[4], v[5]})
	case "T*":
		ip.ts.NextLine()

	// -- text showing --
	case "Tj":
		if len(args) < 1 {
			return errTooFewArgs
		}
		s, _ := args[0].(content.String)
		ip.showText([]byte(s))
	case "'":
		if len(args) < 1 {
			return errTooFewArgs
		}
		ip.ts.NextLine()
		s, _ := args[0].(content.String)
		ip.showText([]byte(s))
	case `"`:
		if len(args) < 3 {
			return errTooFewArgs
		}
		aw, _ := num(args[0])
		ac, _ := num(args[1])
		ip.ts.WordSpacing = aw
		ip.ts.CharSpacing = ac
		ip.ts.NextLine()
		s, _ := args[2].(content.String)
		ip.showText([]byte(s))
	case "TJ":
		if len(args) < 1 {
			return errTooFewArgs
		}
		arr, _ := args[0].(content.Array)
		for _, frag := range arr {
			switch f := frag.(type) {
			case content.String:
				ip.showText([]byte(f))
			default:
				if k, ok := num(frag); ok {
					ip.ts.Advance(ip.ts.TJAdjustment(k))
				}
			}
		}

	// -- XObjects --
	case "Do":
		if len(args) < 1 {
			return errTooFewArgs
		}
		name, _ := args[0].(content.Name)
		return ip.doXObject(string(name))

	// -- marked content --
	case "BMC":
		tag := ""
		if len(args) >= 1 {
			if n, ok := args[0].(content.Name); ok {
				tag = string(n)
			}
		}
		ip.mcStack = append(ip.mcStack, markedFrame{Tag: tag})
	case "BDC":
		tag := ""
		if len(args) >= 1 {
			if n, ok := args[0].(content.Name); ok {
				tag = string(n)
			}
		}
		frame := markedFrame{Tag: tag}
		if len(args) >= 2 {
			if dict, ok := args[1].(content.Dict); ok {
				if v, ok := content.Num(dict["MCID"]); ok {
					id := int(v)
					frame.MCID = &id
				}
			}
		}
		ip.mcStack = append(ip.mcStack, frame)
	case "EMC":
		if len(ip.mcStack) > 0 {
			ip.mcStack = ip.mcStack[:len(ip.mcStack)-1]
		}

	// -- compatibility / unmodeled graphics operators: no-ops for extraction --
	case "MP", "DP", "BX", "EX", "ri", "i", "j", "J", "M":
	default:
		return nil
	}
	return nil
}

func (ip *Interpreter) paint(fill, stroke, evenOdd bool) {
	p := ip.builder.Path()
	if len(p.Segments) > 0 && ip.handler != nil {
		g := ip.gs.Current()
		ip.handler.OnPath(PathEvent{
			Path:        p,
			CTM:         g.CTM,
			Fill:        fill,
			Stroke:      stroke,
			EvenOdd:     evenOdd,
			LineWidth:   g.LineWidth,
			FillColor:   g.FillColor,
			StrokeColor: g.StrokeColor,
		})
	}
	ip.builder.Reset()
}

func (ip *Interpreter) setColorSpace(args []content.Object, stroke bool) {
	if len(args) < 1 {
		return
	}
	name, _ := args[0].(content.Name)
	cs, err := ip.resources.ColorSpace(string(name))
	if err != nil {
		return
	}
	g := ip.gs.Current()
	if stroke {
		g.StrokeSpace = cs
		g.StrokeColor = cs.Resolve(nil)
	} else {
		g.FillSpace = cs
		g.FillColor = cs.Resolve(nil)
	}
}

func (ip *Interpreter) setColor(args []content.Object, stroke bool) {
	var components []float64
	for _, a := range args {
		if v, ok := num(a); ok {
			components = append(components, v)
		}
	}
	g := ip.gs.Current()
	if stroke {
		g.StrokeColor = g.StrokeSpace.Resolve(components)
	} else {
		g.FillColor = g.FillSpace.Resolve(components)
	}
}

func (ip *Interpreter) showText(s []byte) {
	if ip.font == nil || ip.handler == nil {
		return
	}
	cs := ip.font.CodeSpace
	if cs == nil {
		cs = charcode.Simple
	}
	g := ip.gs.Current()
	for len(s) > 0 {
		code, n := cs.Decode(s)
		if n <= 0 {
			n = 1
		}
		raw := s[:n]
		s = s[n:]

		w := ip.font.Width(code)
		isSpace := n == 1 && raw[0] == ' '
		tx := ip.ts.GlyphDisplacement(w, isSpace)

		trm := ip.ts.RenderingMatrix(g.CTM)
		ev := CharEvent{
			Code:        int(code),
			Rune:        ip.font.Rune(code, raw),
			FontName:    ip.fontName,
			FontSize:    ip.ts.FontSize,
			GlyphWidth:  w,
			Trm:         trm,
			CTM:         g.CTM,
			RenderMode:  ip.ts.RenderMode,
			FillColor:   g.FillColor,
			StrokeColor: g.StrokeColor,
		}
		if len(ip.mcStack) > 0 {
			top := ip.mcStack[len(ip.mcStack)-1]
			ev.Tag = top.Tag
			ev.MCID = top.MCID
		}
		ip.handler.OnChar(ev)

		ip.ts.Advance(tx)
	}
}

func (ip *Interpreter) doXObject(name string) error {
	kind, err := ip.resources.XObjectKind(name)
	if err != nil {
		return err
	}
	g := ip.gs.Current()
	switch kind {
	case XObjectImage:
		img, err := ip.resources.Image(name)
		if err != nil {
			return err
		}
		if ip.handler != nil {
			ip.handler.OnImage(ImageEvent{CTM: g.CTM, Name: name, Width: img.Width, Height: img.Height})
		}
	case XObjectForm:
		if ip.formDepth >= maxFormDepth {
			return fmt.Errorf("form XObject nesting too deep")
		}
		form, err := ip.resources.Form(name)
		if err != nil {
			return err
		}
		child := &Interpreter{
			gs:        graphics.NewStack(),
			ts:        textstate.Default(),
			resources: form.Resources,
			handler:   ip.handler,
			formDepth: ip.formDepth + 1,
		}
		formCTM := matrix.Matrix(form.Matrix).Mul(g.CTM)
		return child.Run(bytes.NewReader(form.Content), formCTM)
	}
	return nil
}

func (ip *Interpreter) handleInlineImage(scanner *content.Scanner) error {
	dict := content.Dict{}
	for {
		obj, err := scanner.Next()
		if err != nil {
			return err
		}
		if opr, ok := obj.(content.Operator); ok && string(opr) == "ID" {
			break
		}
		key, ok := obj.(content.Name)
		if !ok {
			continue
		}
		val, err := scanner.Next()
		if err != nil {
			return err
		}
		dict[key] = val
	}
	if _, err := scanner.SkipInlineImageData(); err != nil && err != io.EOF {
		return err
	}
	w, _ := content.Num(dict["Width"])
	if w == 0 {
		w, _ = content.Num(dict["W"])
	}
	h, _ := content.Num(dict["Height"])
	if h == 0 {
		h, _ = content.Num(dict["H"])
	}
	if ip.handler != nil {
		ip.handler.OnImage(ImageEvent{
			CTM:    ip.gs.Current().CTM,
			Inline: true,
			Width:  int(w),
			Height: int(h),
		})
	}
	return nil
}
