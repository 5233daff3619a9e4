package core

import (
	"testing"
	"time"
)

func TestInputHeld(t *testing.T) {
	in := NewInput()

	if in.Held(ActionDive) {
		t.Fatal("new input should hold nothing")
	}

	in.SetHeld(ActionDive, true)
	if !in.Held(ActionDive) {
		t.Error("Dive should be held after SetHeld(true)")
	}
	if in.Held(ActionSwimUp) {
		t.Error("SwimUp should not be held")
	}

	in.SetHeld(ActionDive, false)
	if in.Held(ActionDive) {
		t.Error("Dive should be released after SetHeld(false)")
	}

	in.SetHeld(ActionDive, true)
	in.Clear()
	if in.Held(ActionDive) {
		t.Error("Clear should release every control")
	}
}

func TestZeroInputIsUsable(t *testing.T) {
	var in Input
	in.SetHeld(ActionDive, true)
	if !in.Held(ActionDive) {
		t.Error("zero Input should accept SetHeld")
	}

	var nilInput *Input
	if nilInput.Held(ActionDive) {
		t.Error("nil Input should report nothing held")
	}
}

func TestActionString(t *testing.T) {
	if ActionSwimUp.String() != "SwimUp" || ActionDive.String() != "Dive" {
		t.Errorf("unexpected names: %s, %s", ActionSwimUp, ActionDive)
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should be Unknown")
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("FrameInterval() = %v, expected %v", got, time.Second/60)
	}

	cfg.TickRate = 0
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60 fps, got %v", got)
	}
}
