package services

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"oci_kiosk/model"
)

func clock(hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func item(name, start, end string) model.AgendaItem {
	return model.AgendaItem{
		ID:        bson.NewObjectID(),
		Name:      name,
		StartTime: start,
		EndTime:   end,
	}
}

func TestComputeActive(t *testing.T) {
	items := []model.AgendaItem{
		item("opening", "09:00", "09:30"),
		item("keynote", "09:30", "10:30"),
		item("panel", "11:00", "12:00"),
	}

	tests := []struct {
		name       string
		now        time.Time
		wantActive string
		wantNext   string
	}{
		{"before first", clock("08:00"), "", "opening"},
		{"window start inclusive", clock("09:00"), "opening", "keynote"},
		{"inside window", clock("09:45"), "keynote", "panel"},
		{"window end exclusive", clock("10:30"), "", "panel"},
		{"gap between items", clock("10:45"), "", "panel"},
		{"last item active", clock("11:30"), "panel", ""},
		{"after everything", clock("13:00"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, next := ComputeActive(items, tt.now)
			if got := itemName(active); got != tt.wantActive {
				t.Errorf("active = %q, want %q", got, tt.wantActive)
			}
			if got := itemName(next); got != tt.wantNext {
				t.Errorf("next = %q, want %q", got, tt.wantNext)
			}
		})
	}
}

func TestComputeActiveManualToggleWins(t *testing.T) {
	items := []model.AgendaItem{
		item("opening", "09:00", "09:30"),
		item("keynote", "09:30", "10:30"),
	}
	items[1].IsActive = true

	// now falls inside opening's window, but keynote is toggled on
	active, next := ComputeActive(items, clock("09:10"))
	if itemName(active) != "keynote" {
		t.Fatalf("active = %q, want keynote", itemName(active))
	}
	if next != nil {
		t.Fatalf("next = %q, want none after the last item", itemName(next))
	}
}

func TestComputeActiveSkipsMalformedTimes(t *testing.T) {
	items := []model.AgendaItem{
		item("broken", "nope", "09:30"),
		item("fine", "09:00", "10:00"),
	}
	active, _ := ComputeActive(items, clock("09:15"))
	if itemName(active) != "fine" {
		t.Fatalf("active = %q, want fine", itemName(active))
	}
}

func TestNormalizeItems(t *testing.T) {
	t.Run("defaults role", func(t *testing.T) {
		out, err := NormalizeItems([]model.AgendaItem{item("a", "09:00", "09:30")})
		if err != nil {
			t.Fatal(err)
		}
		if out[0].Role != model.RoleSpeaker {
			t.Errorf("role = %q, want %q", out[0].Role, model.RoleSpeaker)
		}
	})

	t.Run("keeps only first active", func(t *testing.T) {
		in := []model.AgendaItem{
			item("a", "09:00", "09:30"),
			item("b", "09:30", "10:00"),
			item("c", "10:00", "10:30"),
		}
		in[1].IsActive = true
		in[2].IsActive = true
		out, err := NormalizeItems(in)
		if err != nil {
			t.Fatal(err)
		}
		if out[0].IsActive || !out[1].IsActive || out[2].IsActive {
			t.Errorf("active flags = %v %v %v, want only b", out[0].IsActive, out[1].IsActive, out[2].IsActive)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		bad := []struct {
			name string
			in   model.AgendaItem
		}{
			{"missing name", item("", "09:00", "09:30")},
			{"bad start", item("a", "25:00", "09:30")},
			{"bad end", item("a", "09:00", "09:99")},
			{"unknown role", func() model.AgendaItem {
				it := item("a", "09:00", "09:30")
				it.Role = "janitor"
				return it
			}()},
		}
		for _, tt := range bad {
			if _, err := NormalizeItems([]model.AgendaItem{tt.in}); err == nil {
				t.Errorf("%s: expected error", tt.name)
			}
		}
	})
}

func itemName(it *model.AgendaItem) string {
	if it == nil {
		return ""
	}
	return it.Name
}
