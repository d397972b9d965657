package core

// Button identifies one of the four logical buttons the arcade cares about.
// OK and EXE are physically distinct confirm buttons that games treat as
// equivalent.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonOK
	ButtonEXE
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonOK:
		return "OK"
	case ButtonEXE:
		return "EXE"
	default:
		return "Unknown"
	}
}

// KeySource is the input device contract: an instantaneous level read of a
// single button. No debouncing, no edge detection; every frame sees the live
// state.
type KeySource interface {
	Pressed(b Button) bool
}

// Buttons is one frame's immutable input snapshot. The two confirm buttons
// are folded into Launch at poll time so games never see them separately.
type Buttons struct {
	Left   bool
	Right  bool
	Launch bool
}

// Poll captures the current state of all logical buttons from the source.
func Poll(ks KeySource) Buttons {
	return Buttons{
		Left:   ks.Pressed(ButtonLeft),
		Right:  ks.Pressed(ButtonRight),
		Launch: ks.Pressed(ButtonOK) || ks.Pressed(ButtonEXE),
	}
}
