package core

import "testing"

func TestActionForKey(t *testing.T) {
	tests := []struct {
		code KeyCode
		want Action
	}{
		{KeyArrowUp, ActionThrust},
		{KeyW, ActionThrust},
		{KeyA, ActionRotateLeft},
		{KeyArrowRight, ActionRotateRight},
		{KeyP, ActionPause},
		{KeySpace, ActionSkipIntro},
		{KeyR, ActionRestart},
		{KeyEscape, ActionMenu},
		{KeyDigit1, ActionGravityDown},
		{KeyDigit6, ActionFuelUp},
		{"KeyZ", ActionNone},
		{"", ActionNone},
	}

	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := ActionForKey(tc.code); got != tc.want {
				t.Errorf("ActionForKey(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestActionHeld(t *testing.T) {
	held := map[Action]bool{
		ActionThrust:      true,
		ActionRotateLeft:  true,
		ActionRotateRight: true,
	}
	for a := ActionNone; a <= ActionFuelUp; a++ {
		if a.Held() != held[a] {
			t.Errorf("%v.Held() = %v, want %v", a, a.Held(), held[a])
		}
	}
}
