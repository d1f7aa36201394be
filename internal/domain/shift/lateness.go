package shift

// LateMinutes returns how many minutes past the shift's nominal start the
// check-in landed, floored at zero. Week Off always scores zero.
//
// The C shift wraps midnight, so its lateness is split three ways on the
// check-in minute:
//   - at or after 22:30: late by the same-day difference;
//   - before 06:30: late by the elapsed minutes since 22:30 across midnight;
//   - between 06:30 and 22:30: zero. A check-in there lands before the
//     shift even begins on the standard clock, and the current policy
//     keeps it as a grace window rather than folding it into the wrap
//     formula. Do not "fix" this without product sign-off.
func LateMinutes(checkIn string, t Type) (int, error) {
	if t == TypeOff {
		return 0, nil
	}

	checkTotal, err := MinuteOfDay(checkIn)
	if err != nil {
		return 0, err
	}
	shiftTotal := startMinute(t)

	if t == TypeC {
		if checkTotal >= shiftTotal {
			return checkTotal - shiftTotal, nil
		}
		if checkTotal < aStart {
			return (dayMinutes - shiftTotal) + checkTotal, nil
		}
		return 0, nil
	}

	if diff := checkTotal - shiftTotal; diff > 0 {
		return diff, nil
	}
	return 0, nil
}
