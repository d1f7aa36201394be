package shift

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies one of the four fixed shift windows, or the weekly-off
// placeholder for employees with no working shift on a given day.
type Type string

const (
	TypeGeneral Type = "General Shift"
	TypeA       Type = "A Shift"
	TypeB       Type = "B Shift"
	TypeC       Type = "C Shift"
	TypeOff     Type = "Week Off"
)

// Window is a shift's nominal start/end as wall-clock "HH:MM" strings.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// Times maps every working shift to its window. The C shift spans midnight.
var Times = map[Type]Window{
	TypeGeneral: {Start: "09:30", End: "17:30", Label: "09:30 AM - 05:30 PM"},
	TypeA:       {Start: "06:30", End: "14:30", Label: "06:30 AM - 02:30 PM"},
	TypeB:       {Start: "14:30", End: "22:30", Label: "02:30 PM - 10:30 PM"},
	TypeC:       {Start: "22:30", End: "06:30", Label: "10:30 PM - 06:30 AM"},
}

// Shift window boundaries in minutes since midnight.
const (
	aStart       = 390  // 06:30
	generalStart = 570  // 09:30
	bStart       = 870  // 14:30
	cStart       = 1350 // 22:30
	dayMinutes   = 1440
)

// IsWorking reports whether t denotes a working shift.
func IsWorking(t Type) bool {
	_, ok := Times[t]
	return ok
}

// Valid reports whether t is a known shift type.
func Valid(t Type) bool {
	return t == TypeOff || IsWorking(t)
}

// MinuteOfDay parses a wall-clock "HH:MM" string into minutes since
// midnight (0-1439).
func MinuteOfDay(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	return hours*60 + minutes, nil
}

// ClassifyMinute maps a minute of the day to the shift window containing it.
// The four windows partition the full 24-hour clock: lower bounds closed,
// upper bounds open.
func ClassifyMinute(minute int) Type {
	switch {
	case minute >= cStart || minute < aStart:
		return TypeC
	case minute < generalStart:
		return TypeA
	case minute < bStart:
		return TypeGeneral
	default:
		return TypeB
	}
}

// Classify maps a wall-clock "HH:MM" time to its shift window.
func Classify(clock string) (Type, error) {
	minute, err := MinuteOfDay(clock)
	if err != nil {
		return "", err
	}
	return ClassifyMinute(minute), nil
}

// startMinute returns a working shift's nominal start as a minute of day.
func startMinute(t Type) int {
	switch t {
	case TypeA:
		return aStart
	case TypeGeneral:
		return generalStart
	case TypeB:
		return bStart
	default:
		return cStart
	}
}
