package azusa

import "fmt"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear         CommandType = iota // Fill the whole target
	CmdFillRectangle                    // Bordered, filled rectangle
	CmdDrawRectangle                    // Rectangle outline
	CmdDrawText                         // Text in a box
)

var commandTypeNames = [...]string{
	CmdClear:         "Clear",
	CmdFillRectangle: "FillRectangle",
	CmdDrawRectangle: "DrawRectangle",
	CmdDrawText:      "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a recorded drawing operation.
//
// The set of commands is closed: ClearCommand, FillRectangleCommand,
// DrawRectangleCommand and DrawTextCommand. Commands are plain values
// and are never modified after they are recorded.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	String() string

	command()
}

// ClearCommand fills the entire target with Color.
type ClearCommand struct {
	Color Color
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

func (c ClearCommand) String() string {
	return fmt.Sprintf("Clear(%v)", c.Color)
}

func (ClearCommand) command() {}

// FillRectangleCommand draws a one pixel Border outline around the
// rectangle and fills the interior with Fill.
type FillRectangleCommand struct {
	Fill   Color
	Border Color

	X, Y          int
	Width, Height int
}

// Type implements Command.
func (FillRectangleCommand) Type() CommandType { return CmdFillRectangle }

func (c FillRectangleCommand) String() string {
	return fmt.Sprintf("FillRectangle(fill=%v, border=%v, x=%d, y=%d, w=%d, h=%d)",
		c.Fill, c.Border, c.X, c.Y, c.Width, c.Height)
}

func (FillRectangleCommand) command() {}

// DrawRectangleCommand draws an unfilled outline Thickness pixels wide.
type DrawRectangleCommand struct {
	Color Color

	X, Y          int
	Width, Height int
	Thickness     int
}

// Type implements Command.
func (DrawRectangleCommand) Type() CommandType { return CmdDrawRectangle }

func (c DrawRectangleCommand) String() string {
	return fmt.Sprintf("DrawRectangle(%v, x=%d, y=%d, w=%d, h=%d, thickness=%d)",
		c.Color, c.X, c.Y, c.Width, c.Height, c.Thickness)
}

func (DrawRectangleCommand) command() {}

// DrawTextCommand draws Text inside the box at (X, Y) of the given size.
type DrawTextCommand struct {
	Color Color
	Font  Font

	X, Y          int
	Width, Height int

	Text string
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

func (c DrawTextCommand) String() string {
	return fmt.Sprintf("DrawText(%v, %v, x=%d, y=%d, w=%d, h=%d, %q)",
		c.Color, c.Font, c.X, c.Y, c.Width, c.Height, c.Text)
}

func (DrawTextCommand) command() {}
