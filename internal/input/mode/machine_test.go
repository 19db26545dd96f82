package mode

import (
	"testing"

	"github.com/dshills/viteditor/internal/input/key"
)

func TestMachineStartsInNormal(t *testing.T) {
	m := NewMachine()
	if !m.Is(Normal) {
		t.Errorf("initial mode = %v, want normal", m.Current())
	}
}

func TestMachineStep(t *testing.T) {
	m := NewMachine()

	m.Step(key.NewRuneEvent('i'))
	if m.Current() != Insert || m.Previous() != Normal {
		t.Fatalf("after i: current=%v previous=%v", m.Current(), m.Previous())
	}

	res := m.Step(key.NewRuneEvent('x'))
	if res.Action.Name != ActionInsert || m.Current() != Insert {
		t.Fatalf("typing in insert mode: %+v, mode %v", res, m.Current())
	}

	m.Step(key.NewSpecialEvent(key.KeyEscape))
	if m.Current() != Normal || m.Previous() != Insert {
		t.Fatalf("after Esc: current=%v previous=%v", m.Current(), m.Previous())
	}

	m.Step(key.NewSpecialEvent(key.KeyExit))
	m.Step(key.NewRuneEvent('i'))
	if m.Current() != Exit {
		t.Errorf("Exit should absorb further events, got %v", m.Current())
	}
}

func TestMachineOnChange(t *testing.T) {
	m := NewMachine()

	var changes [][2]Mode
	unregister := m.OnChange(func(from, to Mode) {
		changes = append(changes, [2]Mode{from, to})
	})

	m.Step(key.NewRuneEvent('j')) // stays in Normal
	m.Step(key.NewRuneEvent('i'))
	m.Step(key.NewRuneEvent('a')) // stays in Insert
	m.Step(key.NewSpecialEvent(key.KeyEscape))

	want := [][2]Mode{{Normal, Insert}, {Insert, Normal}}
	if len(changes) != len(want) {
		t.Fatalf("got %d changes, want %d: %v", len(changes), len(want), changes)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, changes[i], want[i])
		}
	}

	unregister()
	m.Step(key.NewRuneEvent('i'))
	if len(changes) != 2 {
		t.Error("callback still called after unregister")
	}
}
