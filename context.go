package azusa

// Surface is a drawing target that can execute a command buffer.
//
// Implementations execute commands strictly in the given order and must
// not modify the slice they receive. Draw blocks until every command has
// been applied. Per-command geometry problems are reported out of band
// (logged, see [GeometryError]); the returned error is reserved for
// failures of the whole operation such as [EncodingError].
type Surface interface {
	Draw(commands []Command) error

	// ClientSize returns the current drawable size in pixels.
	ClientSize() (width, height int)
}

// Context records drawing operations into an ordered command buffer.
//
// Every recording call snapshots the current source color, border color
// and pen position, so later state changes never alter commands that are
// already recorded. A Context is reused across frames: Clear starts the
// next frame.
//
// Example:
//
//	dc := azusa.NewContext()
//	dc.SetSourceColor(azusa.Navy)
//	dc.Clear()
//	dc.MoveTo(5, 5)
//	dc.FillRectangle(90, 90)
//	err := dc.Replay(surface)
//
// Context is not safe for concurrent use.
type Context struct {
	commands []Command

	source    Color
	border    Color
	borderSet bool

	x, y int
}

// NewContext returns an empty Context with a black source color and the
// pen at the origin.
func NewContext() *Context {
	return &Context{
		commands: make([]Command, 0, 64),
		source:   Black,
	}
}

// SetSourceColor sets the color used by subsequent commands.
func (c *Context) SetSourceColor(color Color) {
	c.source = color
}

// SetBorderColor sets the outline color of subsequent FillRectangle calls.
// Until it is called, rectangles are bordered in the source color.
func (c *Context) SetBorderColor(color Color) {
	c.border = color
	c.borderSet = true
}

// SourceColor returns the current source color.
func (c *Context) SourceColor() Color {
	return c.source
}

// BorderColor returns the border color FillRectangle would record now.
func (c *Context) BorderColor() Color {
	if !c.borderSet {
		return c.source
	}
	return c.border
}

// MoveTo sets the pen position used as the top-left corner of
// subsequent shapes.
func (c *Context) MoveTo(x, y int) {
	c.x, c.y = x, y
}

// Position returns the pen position.
func (c *Context) Position() (x, y int) {
	return c.x, c.y
}

// Clear discards every recorded command and starts a new frame whose
// first command fills the target with the source color.
func (c *Context) Clear() {
	clear(c.commands)
	c.commands = append(c.commands[:0], ClearCommand{Color: c.source})
}

// FillRectangle records a filled rectangle at the pen position, bordered
// in the border color. Non-positive sizes are reported when the command
// executes, not here.
func (c *Context) FillRectangle(width, height int) {
	c.commands = append(c.commands, FillRectangleCommand{
		Fill:   c.source,
		Border: c.BorderColor(),
		X:      c.x,
		Y:      c.y,
		Width:  width,
		Height: height,
	})
}

// DrawRectangle records a rectangle outline of the given stroke
// thickness at the pen position.
func (c *Context) DrawRectangle(thickness, width, height int) {
	c.commands = append(c.commands, DrawRectangleCommand{
		Color:     c.source,
		X:         c.x,
		Y:         c.y,
		Width:     width,
		Height:    height,
		Thickness: thickness,
	})
}

// DrawText records text laid out inside the width×height box at the
// pen position.
func (c *Context) DrawText(width, height int, text string, font Font) {
	c.commands = append(c.commands, DrawTextCommand{
		Color:  c.source,
		Font:   font,
		X:      c.x,
		Y:      c.y,
		Width:  width,
		Height: height,
		Text:   text,
	})
}

// Commands returns a copy of the recorded commands in recording order.
func (c *Context) Commands() []Command {
	out := make([]Command, len(c.commands))
	copy(out, c.commands)
	return out
}

// Len returns the number of recorded commands.
func (c *Context) Len() int {
	return len(c.commands)
}

// HasFrame reports whether the buffer holds any command. A new Context
// is empty until its first Clear.
func (c *Context) HasFrame() bool {
	return len(c.commands) > 0
}

// Replay hands the whole command buffer to s once, in recording order.
// The buffer is left intact, so the same frame can be replayed to
// several surfaces.
func (c *Context) Replay(s Surface) error {
	return s.Draw(c.Commands())
}
