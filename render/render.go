// seehuhn.de/go/pdfdraw - an interpreter for PDF content streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package render

import (
	"fmt"
	"io"
	"log/slog"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/graphics/color"
	"seehuhn.de/go/pdfdraw/graphics/content"
	"seehuhn.de/go/pdfdraw/graphics/extgstate"
	"seehuhn.de/go/pdfdraw/graphics/outline"
)

// ErrStackEmpty is returned by the Q operator if there is no saved
// graphics state.  This error is never reported as malformed input,
// and always stops the page.
var ErrStackEmpty = graphics.ErrStackEmpty

// A Renderer interprets PDF content streams.
//
// A Renderer is not safe for concurrent use.  Use one Renderer per
// goroutine; the [Resources] can be shared.
type Renderer struct {
	Plotter   Plotter
	Resources *Resources

	// State and Text are the current graphics and text state.
	State *graphics.State
	Text  *graphics.TextState

	// UnknownOp, if set, is called for operators which are not defined
	// by the PDF specification.  If UnknownOp returns an error, the
	// error is returned by [Renderer.Do].
	UnknownOp func(op content.OpName, args []pdfdraw.Object) error

	opt   Options
	stack graphics.Stack
	path  outline.Builder

	clipPending bool
	clipRule    graphics.FillRule
	nextClip    graphics.ClipID

	compat int
	marked []MarkedContent

	extGStates map[pdfdraw.Name]*extgstate.ExtGState
}

// New allocates a renderer which sends its output to p.
// If opt is nil, the default options are used.
func New(p Plotter, res *Resources, opt *Options) *Renderer {
	if opt == nil {
		opt = &defaultOptions
	}
	r := &Renderer{
		Plotter: p,
		opt:     *opt,
	}
	r.Reset(res, matrix.Identity)
	return r
}

// Reset prepares the renderer for a new page or form.  All state from
// the previous content stream is discarded, and ctm becomes the initial
// current transformation matrix.
func (r *Renderer) Reset(res *Resources, ctm matrix.Matrix) {
	r.Resources = res
	r.State = graphics.NewState()
	r.State.CTM = ctm
	r.Text = graphics.NewTextState()
	r.stack = graphics.Stack{}
	r.path = outline.Builder{}
	r.clipPending = false
	r.compat = 0
	r.marked = r.marked[:0]
	r.extGStates = make(map[pdfdraw.Name]*extgstate.ExtGState)
}

// Depth returns the number of saved graphics states.
func (r *Renderer) Depth() int {
	return r.stack.Len()
}

// RenderContent reads a content stream from in and executes it.
func (r *Renderer) RenderContent(in io.Reader) error {
	stm, err := content.ReadStream(in)
	if err != nil {
		return err
	}
	return r.Render(stm)
}

// Render executes the operators of stm in order.  Rendering stops at the
// first error.  Draw calls issued before the error are not undone.
func (r *Renderer) Render(stm content.Stream) error {
	for i, op := range stm {
		err := r.Do(op.Name, op.Args)
		if err != nil {
			return fmt.Errorf("operator %d (%s): %w", i, op.Name, err)
		}
	}
	return nil
}

// Do executes a single operator.
func (r *Renderer) Do(op content.OpName, args []pdfdraw.Object) error {
	origArgs := args
	badArgs := false

	next := func() (pdfdraw.Object, bool) {
		if len(args) == 0 {
			badArgs = true
			return nil, false
		}
		x := args[0]
		args = args[1:]
		return x, true
	}
	getNum := func() (float64, bool) {
		x, ok := next()
		if !ok {
			return 0, false
		}
		f, err := pdfdraw.GetNumber(x)
		if err != nil {
			badArgs = true
			return 0, false
		}
		return f, true
	}
	getInteger := func() (pdfdraw.Integer, bool) {
		x, ok := next()
		if !ok {
			return 0, false
		}
		i, err := pdfdraw.GetInteger(x)
		if err != nil {
			badArgs = true
			return 0, false
		}
		return i, true
	}
	getName := func() (pdfdraw.Name, bool) {
		x, ok := next()
		if !ok {
			return "", false
		}
		name, isName := x.(pdfdraw.Name)
		if !isName {
			badArgs = true
		}
		return name, isName
	}
	getString := func() (pdfdraw.String, bool) {
		x, ok := next()
		if !ok {
			return nil, false
		}
		s, isString := x.(pdfdraw.String)
		if !isString {
			badArgs = true
		}
		return s, isString
	}
	getArray := func() (pdfdraw.Array, bool) {
		x, ok := next()
		if !ok {
			return nil, false
		}
		a, isArray := x.(pdfdraw.Array)
		if !isArray {
			badArgs = true
		}
		return a, isArray
	}
	getPoint := func() (vec.Vec2, bool) {
		x, ok1 := getNum()
		y, ok2 := getNum()
		return vec.Vec2{X: x, Y: y}, ok1 && ok2
	}
	getMatrix := func() (matrix.Matrix, bool) {
		var m matrix.Matrix
		for i := range m {
			f, ok := getNum()
			if !ok {
				return m, false
			}
			m[i] = f
		}
		return m, true
	}

	s := r.State
	t := r.Text

	switch op {

	// == General graphics state =========================================

	case content.OpSetLineWidth:
		x, ok := getNum()
		if ok {
			s.LineWidth = x
		}

	case content.OpSetLineCap:
		x, ok := getInteger()
		if ok {
			if x < 0 || x > 2 {
				badArgs = true
				x = 0
			}
			s.LineCap = graphics.LineCapStyle(x)
		}

	case content.OpSetLineJoin:
		x, ok := getInteger()
		if ok {
			if x < 0 || x > 2 {
				badArgs = true
				x = 0
			}
			s.LineJoin = graphics.LineJoinStyle(x)
		}

	case content.OpSetMiterLimit:
		x, ok := getNum()
		if ok && x >= 1 {
			s.MiterLimit = x
		} else if ok {
			badArgs = true
		}

	case content.OpSetLineDash:
		a, ok1 := getArray()
		phase, ok2 := getNum()
		if !ok1 || !ok2 {
			break
		}
		pat, ok := extgstate.ReadDash(a)
		if !ok {
			badArgs = true
			break
		}
		if len(pat) == 0 {
			s.Dash = nil
		} else {
			s.Dash = &graphics.Dash{Pattern: pat, Phase: phase}
		}

	case content.OpSetRenderingIntent:
		name, ok := getName()
		if ok {
			s.RenderingIntent = name
		}

	case content.OpSetFlatnessTolerance:
		x, ok := getNum()
		if ok {
			s.FlatnessTolerance = x
		}

	case content.OpSetExtGState:
		name, ok := getName()
		if !ok {
			break
		}
		e, err := r.extGState(name)
		if err != nil {
			if r.opt.Lenient && pdfdraw.IsMalformed(err) {
				pdfdraw.Logger().Warn("graphics state dictionary skipped",
					slog.String("name", string(name)),
					slog.Any("err", err))
				break
			}
			return err
		}
		e.ApplyTo(s, t)

	case content.OpPushGraphicsState:
		r.path.Flush()
		r.stack.Push(s, t)

	case content.OpPopGraphicsState:
		s, t, err := r.stack.Pop()
		if err != nil {
			return err
		}
		r.State, r.Text = s, t

	// == Special graphics state =========================================

	case content.OpTransform:
		m, ok := getMatrix()
		if ok {
			s.CTM = m.Mul(s.CTM)
		}

	// == Path construction ==============================================

	case content.OpMoveTo:
		p, ok := getPoint()
		if ok {
			r.path.Move(p)
		}

	case content.OpLineTo:
		p, ok := getPoint()
		if ok {
			r.path.Line(p)
		}

	case content.OpCurveTo:
		c1, ok1 := getPoint()
		c2, ok2 := getPoint()
		p, ok3 := getPoint()
		if ok1 && ok2 && ok3 {
			r.path.Curve(c1, c2, p)
		}

	case content.OpCurveToV:
		c2, ok1 := getPoint()
		p, ok2 := getPoint()
		if ok1 && ok2 {
			c1, ok := r.path.CurrentPoint()
			if !ok {
				c1 = c2
			}
			r.path.Curve(c1, c2, p)
		}

	case content.OpCurveToY:
		c1, ok1 := getPoint()
		p, ok2 := getPoint()
		if ok1 && ok2 {
			r.path.Curve(c1, p, p)
		}

	case content.OpClosePath:
		r.path.Close()

	case content.OpRectangle:
		x, ok1 := getNum()
		y, ok2 := getNum()
		w, ok3 := getNum()
		h, ok4 := getNum()
		if ok1 && ok2 && ok3 && ok4 {
			r.path.Rect(x, y, w, h)
		}

	// == Path painting ==================================================

	case content.OpStroke:
		return r.paint(false, true, graphics.Winding)

	case content.OpCloseAndStroke:
		r.path.Close()
		return r.paint(false, true, graphics.Winding)

	case content.OpFill, content.OpFillCompat:
		return r.paint(true, false, graphics.Winding)

	case content.OpFillEvenOdd:
		return r.paint(true, false, graphics.EvenOdd)

	case content.OpFillAndStroke:
		return r.paint(true, true, graphics.Winding)

	case content.OpFillAndStrokeEvenOdd:
		return r.paint(true, true, graphics.EvenOdd)

	case content.OpCloseFillAndStroke:
		r.path.Close()
		return r.paint(true, true, graphics.Winding)

	case content.OpCloseFillAndStrokeEvenOdd:
		r.path.Close()
		return r.paint(true, true, graphics.EvenOdd)

	case content.OpEndPath:
		return r.endPath(r.path.Take())

	// == Clipping paths =================================================

	case content.OpClipNonZero:
		r.clipPending = true
		r.clipRule = graphics.Winding

	case content.OpClipEvenOdd:
		r.clipPending = true
		r.clipRule = graphics.EvenOdd

	// == Text objects ===================================================

	case content.OpTextBegin:
		t.Begin()

	case content.OpTextEnd:
		// pass

	// == Text state =====================================================

	case content.OpTextSetCharacterSpacing:
		x, ok := getNum()
		if ok {
			t.CharSpacing = x
		}

	case content.OpTextSetWordSpacing:
		x, ok := getNum()
		if ok {
			t.WordSpacing = x
		}

	case content.OpTextSetHorizontalScaling:
		x, ok := getNum()
		if ok {
			t.HorizontalScaling = x / 100
		}

	case content.OpTextSetLeading:
		x, ok := getNum()
		if ok {
			t.Leading = x
		}

	case content.OpTextSetFont:
		name, ok1 := getName()
		size, ok2 := getNum()
		if !ok1 || !ok2 {
			break
		}
		var font pdfdraw.Object
		if r.Resources != nil {
			font = r.Resources.Fonts[name]
		}
		if font == nil {
			pdfdraw.Logger().Debug("font not found", slog.String("name", string(name)))
		}
		t.FontName = name
		t.Font = font
		t.FontSize = size

	case content.OpTextSetRenderingMode:
		x, ok := getInteger()
		if ok {
			if x < 0 || x > 7 {
				badArgs = true
				break
			}
			t.Mode = graphics.TextRenderingMode(x)
		}

	case content.OpTextSetRise:
		x, ok := getNum()
		if ok {
			t.Rise = x
		}

	// == Text positioning ===============================================

	case content.OpTextMoveOffset:
		dx, ok1 := getNum()
		dy, ok2 := getNum()
		if ok1 && ok2 {
			t.Translate(dx, dy)
		}

	case content.OpTextMoveOffsetSetLeading:
		dx, ok1 := getNum()
		dy, ok2 := getNum()
		if ok1 && ok2 {
			t.Leading = -dy
			t.Translate(dx, dy)
		}

	case content.OpTextSetMatrix:
		m, ok := getMatrix()
		if ok {
			t.SetMatrix(m)
		}

	case content.OpTextNextLine:
		t.NextLine()

	// == Text showing ===================================================

	case content.OpTextShow:
		getString()

	case content.OpTextShowArray:
		getArray()

	case content.OpTextShowMoveNextLine:
		_, ok := getString()
		if ok {
			t.NextLine()
		}

	case content.OpTextShowMoveNextLineSetSpacing:
		aw, ok1 := getNum()
		ac, ok2 := getNum()
		_, ok3 := getString()
		if ok1 && ok2 && ok3 {
			t.WordSpacing = aw
			t.CharSpacing = ac
			t.NextLine()
		}

	// == Type 3 fonts ===================================================

	case content.OpType3SetWidthOnly, content.OpType3SetWidthAndBoundingBox:
		// pass

	// == Color ==========================================================

	case content.OpSetStrokeColorSpace, content.OpSetFillColorSpace:
		name, ok := getName()
		if !ok {
			break
		}
		cs, err := r.colorSpace(name)
		if err != nil {
			if !r.opt.Lenient {
				return err
			}
			pdfdraw.Logger().Warn("unknown colour space",
				slog.String("op", string(op)),
				slog.String("space", string(name)),
				slog.Any("available", r.Resources.ColorSpaceNames()),
				slog.Any("err", err))
		}
		if op == content.OpSetStrokeColorSpace {
			s.StrokeSpace = cs
			s.SetStrokeColor(color.Black)
		} else {
			s.FillSpace = cs
			s.SetFillColor(color.Black)
		}

	case content.OpSetStrokeColor, content.OpSetStrokeColorN:
		return r.setColor(true, color.ValueComponents(origArgs))

	case content.OpSetFillColor, content.OpSetFillColorN:
		return r.setColor(false, color.ValueComponents(origArgs))

	case content.OpSetStrokeGray, content.OpSetFillGray:
		x, ok := getNum()
		if ok {
			return r.setColor(op == content.OpSetStrokeGray, color.ValueGray(x))
		}

	case content.OpSetStrokeRGB, content.OpSetFillRGB:
		var v color.ValueRGB
		ok := true
		for i := range v {
			var oki bool
			v[i], oki = getNum()
			ok = ok && oki
		}
		if ok {
			return r.setColor(op == content.OpSetStrokeRGB, v)
		}

	case content.OpSetStrokeCMYK, content.OpSetFillCMYK:
		var v color.ValueCMYK
		ok := true
		for i := range v {
			var oki bool
			v[i], oki = getNum()
			ok = ok && oki
		}
		if ok {
			return r.setColor(op == content.OpSetStrokeCMYK, v)
		}

	// == Shading patterns, images and XObjects ==========================

	case content.OpShading, content.OpXObject, content.OpInlineImage:
		pdfdraw.Logger().Debug("operator skipped", slog.String("op", string(op)))

	// == Marked content =================================================

	case content.OpMarkedContentPoint, content.OpMarkedContentPointWithProperties:
		// pass

	case content.OpBeginMarkedContent:
		tag, ok := getName()
		if ok {
			r.beginMarked(tag, nil)
		}

	case content.OpBeginMarkedContentWithProperties:
		tag, ok1 := getName()
		props, ok2 := next()
		if ok1 && ok2 {
			r.beginMarked(tag, props)
		}

	case content.OpEndMarkedContent:
		r.endMarked()

	// == Compatibility ==================================================

	case content.OpBeginCompatibility:
		r.compat++

	case content.OpEndCompatibility:
		if r.compat > 0 {
			r.compat--
		}

	default:
		if r.UnknownOp != nil {
			err := r.UnknownOp(op, origArgs)
			if err != nil {
				return err
			}
		}
		if r.compat > 0 {
			break
		}
		if r.opt.Strict {
			return fmt.Errorf("operator %q: %w", string(op), content.ErrUnknown)
		}
		pdfdraw.Logger().Debug("unknown operator skipped", slog.String("op", string(op)))
	}

	if badArgs {
		pdfdraw.Logger().Debug("malformed operator arguments",
			slog.String("op", string(op)),
			slog.Int("args", len(origArgs)))
	}
	return nil
}

// paint sends the current path to the plotter.  Afterwards, a pending
// clipping path is installed and the current path is cleared.
func (r *Renderer) paint(fill, stroke bool, rule graphics.FillRule) error {
	o := r.path.Take()
	if r.Plotter != nil && (!o.IsEmpty() || r.opt.EmptyOutlines == EmitEmpty) {
		var mode graphics.DrawMode
		if fill {
			mode.Fill = r.State.FillPaint()
		}
		if stroke {
			mode.Stroke = r.State.Stroke()
		}
		err := r.Plotter.Draw(o, mode, rule, r.State.CTM, r.State.Clip)
		if err != nil {
			return err
		}
	}
	return r.endPath(o)
}

// endPath installs the clipping path set by W or W*, if any.
func (r *Renderer) endPath(o *outline.Outline) error {
	if !r.clipPending {
		return nil
	}
	r.clipPending = false

	if c, ok := r.Plotter.(Clipper); ok {
		id, err := c.ClipPath(o, r.clipRule, r.State.CTM, r.State.Clip)
		if err != nil {
			return err
		}
		r.State.Clip = id
		return nil
	}
	r.nextClip++
	r.State.Clip = r.nextClip
	return nil
}

// setColor resolves v in the current fill or stroke colour space and
// makes the result the current colour.
func (r *Renderer) setColor(stroke bool, v color.Value) error {
	res := &color.Resolver{
		Resources: r.Resources,
		Indexed:   r.opt.Indexed,
		Lenient:   r.opt.Lenient,
	}
	s := r.State
	if stroke {
		c, err := res.Resolve(&s.StrokeSpace, v)
		if err != nil {
			return err
		}
		s.SetStrokeColor(c)
	} else {
		c, err := res.Resolve(&s.FillSpace, v)
		if err != nil {
			return err
		}
		s.SetFillColor(c)
	}
	return nil
}

// colorSpace returns the colour space for the operand of CS or cs.
// If a named colour space cannot be found, a [color.SpaceNamed] is
// returned together with an error.
func (r *Renderer) colorSpace(name pdfdraw.Name) (color.Space, error) {
	cs, err := color.ReadSpace(name)
	if err != nil {
		return nil, err
	}
	named, ok := cs.(color.SpaceNamed)
	if !ok {
		return cs, nil
	}
	found, ok := r.Resources.ColorSpace(pdfdraw.Name(named))
	if !ok {
		return cs, pdfdraw.Errorf("colour space %q not found: %w", string(name), color.ErrUnsupported)
	}
	return found, nil
}

func (r *Renderer) extGState(name pdfdraw.Name) (*extgstate.ExtGState, error) {
	if e, ok := r.extGStates[name]; ok {
		return e, nil
	}
	e, err := r.Resources.ExtGState(name)
	if err != nil {
		return nil, err
	}
	r.extGStates[name] = e
	return e, nil
}
