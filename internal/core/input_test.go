package core

import "testing"

// fakeKeys reports a fixed set of buttons as held.
type fakeKeys map[Button]bool

func (f fakeKeys) Pressed(b Button) bool { return f[b] }

func TestPollSnapshotsLevels(t *testing.T) {
	in := Poll(fakeKeys{ButtonLeft: true})
	if !in.Left || in.Right || in.Launch {
		t.Errorf("got %+v, want only Left", in)
	}
}

func TestPollFoldsConfirmButtons(t *testing.T) {
	tests := []struct {
		name   string
		keys   fakeKeys
		launch bool
	}{
		{"ok only", fakeKeys{ButtonOK: true}, true},
		{"exe only", fakeKeys{ButtonEXE: true}, true},
		{"both", fakeKeys{ButtonOK: true, ButtonEXE: true}, true},
		{"neither", fakeKeys{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if in := Poll(tc.keys); in.Launch != tc.launch {
				t.Errorf("Launch = %v, want %v", in.Launch, tc.launch)
			}
		})
	}
}
