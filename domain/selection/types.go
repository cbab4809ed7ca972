package selection

import "fmt"

// Point is a coordinate in display/image space. Values are passed through
// from the UI layer without validation.
type Point struct {
	X, Y float64
}

func (p Point) String() string { return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y) }

// MouseButton identifies the pointer button that produced an event.
type MouseButton int

const (
	ButtonLeft   MouseButton = 1
	ButtonMiddle MouseButton = 2
	ButtonRight  MouseButton = 3
)

// PointerEvent is a press, release or click delivered by the UI toolkit.
// Pixel holds the raw widget coordinates used for minimum-span checks.
type PointerEvent struct {
	Data   Point
	Pixel  Point
	Button MouseButton
}

// KeyEvent carries the key identity (Tk keysym) of a key press.
type KeyEvent struct {
	Key string
}

// EventHandler is registered with the UI toolkit at setup time. Each event
// kind has its own method; implementations ignore kinds they do not use.
type EventHandler interface {
	OnPress(PointerEvent)
	OnRelease(PointerEvent)
	OnClick(PointerEvent)
	OnKey(KeyEvent)
}

// Segment is the line connecting the two points of a pair.
type Segment struct {
	From, To Point
}
