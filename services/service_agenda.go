package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"oci_kiosk/model"
)

var ErrAgendaNotFound = errors.New("agenda not found")

// ComputeActive resolves the active and next agenda items. A manually toggled
// item always wins over the time windows; with no manual toggle the item whose
// [startTime, endTime) window contains now is active. Next is the item that
// follows the active one in document order, or with no active item the first
// item that starts after now.
func ComputeActive(items []model.AgendaItem, now time.Time) (active, next *model.AgendaItem) {
	minutes := now.Hour()*60 + now.Minute()

	activeIdx := -1
	for i := range items {
		if items[i].IsActive {
			activeIdx = i
			break
		}
	}
	if activeIdx < 0 {
		for i := range items {
			start, err1 := parseClock(items[i].StartTime)
			end, err2 := parseClock(items[i].EndTime)
			if err1 != nil || err2 != nil {
				continue
			}
			if start <= minutes && minutes < end {
				activeIdx = i
				break
			}
		}
	}

	if activeIdx >= 0 {
		active = &items[activeIdx]
		if activeIdx+1 < len(items) {
			next = &items[activeIdx+1]
		}
		return active, next
	}

	for i := range items {
		start, err := parseClock(items[i].StartTime)
		if err != nil {
			continue
		}
		if start > minutes {
			return nil, &items[i]
		}
	}
	return nil, nil
}

// NormalizeItems prepares a replacement item list for persistence: defaults
// the role, validates time strings, and keeps at most the first active item
// so the one-active invariant holds no matter what the client sent.
func NormalizeItems(items []model.AgendaItem) ([]model.AgendaItem, error) {
	out := make([]model.AgendaItem, len(items))
	seenActive := false
	for i, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("item %d: name is required", i)
		}
		if _, err := parseClock(it.StartTime); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, err := parseClock(it.EndTime); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if it.Role == "" {
			it.Role = model.RoleSpeaker
		}
		switch it.Role {
		case model.RoleSpeaker, model.RoleModerator, model.RolePresenter:
		default:
			return nil, fmt.Errorf("item %d: unknown role %q", i, it.Role)
		}
		if it.IsActive {
			if seenActive {
				it.IsActive = false
			}
			seenActive = true
		}
		out[i] = it
	}
	return out, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}
