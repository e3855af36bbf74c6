package dropdown

import "testing"

func TestToggleIsInvolution(t *testing.T) {
	for _, s := range []State{Opened, Closed} {
		if got := toggle(toggle(s)); got != s {
			t.Errorf("toggle(toggle(%v)) = %v, want %v", s, got, s)
		}
	}
}

func TestToggleFlips(t *testing.T) {
	if toggle(Opened) != Closed {
		t.Error("toggle(Opened) should be Closed")
	}
	if toggle(Closed) != Opened {
		t.Error("toggle(Closed) should be Opened")
	}
}

func TestStateString(t *testing.T) {
	if Opened.String() != "opened" || Closed.String() != "closed" {
		t.Errorf("State strings: %q, %q", Opened.String(), Closed.String())
	}
}

func TestNewStartsClosed(t *testing.T) {
	w := New[string]()
	if w.state != Closed {
		t.Errorf("New widget state = %v, want Closed", w.state)
	}
	if w.settings != DefaultSettings() {
		t.Error("New widget should carry DefaultSettings")
	}
}

func TestNewWithSettingsStartsClosed(t *testing.T) {
	settings := DefaultSettings()
	settings.Placeholder = "Pick one"
	w := NewWithSettings[int](settings)
	if w.state != Closed {
		t.Errorf("state = %v, want Closed", w.state)
	}
	if w.settings.Placeholder != "Pick one" {
		t.Errorf("placeholder = %q", w.settings.Placeholder)
	}
}

func TestUpdateStateMsgSetsExactState(t *testing.T) {
	tests := []struct {
		name   string
		start  State
		target State
	}{
		{"closed to opened", Closed, Opened},
		{"opened to closed", Opened, Closed},
		{"closed to closed", Closed, Closed},
		{"opened to opened", Opened, Opened},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New[string]()
			w.state = tt.start

			next, event := w.Update(StateMsg{State: tt.target})
			if next.state != tt.target {
				t.Errorf("state = %v, want %v (assignment, not toggle)", next.state, tt.target)
			}
			if _, ok := event.(Unchanged); !ok {
				t.Errorf("event = %T, want Unchanged", event)
			}
		})
	}
}

func TestUpdateSelectMsgTogglesState(t *testing.T) {
	for _, start := range []State{Opened, Closed} {
		w := New[string]()
		w.state = start

		next, event := w.Update(SelectMsg[string]{Item: "B"})
		if next.state != toggle(start) {
			t.Errorf("state after select from %v = %v, want %v", start, next.state, toggle(start))
		}
		selected, ok := event.(ItemSelected[string])
		if !ok {
			t.Fatalf("event = %T, want ItemSelected", event)
		}
		if selected.Item != "B" {
			t.Errorf("selected item = %q, want %q", selected.Item, "B")
		}
	}
}

func TestUpdatePreservesSettings(t *testing.T) {
	settings := DefaultSettings()
	settings.ContainerClass = "custom-container"
	w := NewWithSettings[string](settings)

	next, _ := w.Update(StateMsg{State: Opened})
	if next.settings != settings {
		t.Error("StateMsg update should carry settings through unchanged")
	}
	next, _ = next.Update(SelectMsg[string]{Item: "x"})
	if next.settings != settings {
		t.Error("SelectMsg update should carry settings through unchanged")
	}
}

func TestUpdateDoesNotMutateReceiver(t *testing.T) {
	w := New[string]()
	_, _ = w.Update(StateMsg{State: Opened})
	if w.state != Closed {
		t.Error("Update mutated the receiver")
	}
}
