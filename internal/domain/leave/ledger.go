package leave

import (
	"time"

	"github.com/smartattend/attendance-backend-go/internal/domain/user"
)

// InclusiveDays counts the calendar days covered by [startDate, endDate],
// both ends included. Weekends and holidays are not excluded, and an end
// date before the start is not rejected; the ledger applies whatever the
// arithmetic yields.
func InclusiveDays(startDate, endDate string) (int, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, err
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

// Debit is the balance side effect of approving a leave request.
type Debit struct {
	UserID string
	Type   RequestType
	Days   int
}

// TransitionLeave applies a decision to the request with the given id and
// returns the updated list plus the balance side effect. The debit is
// non-nil only when the stored status immediately before the transition is
// PENDING and the decision is APPROVED; re-deciding a processed request
// only rewrites status and updatedAt. An unknown id returns the input
// unchanged with found=false.
func TransitionLeave(leaves []LeaveRequest, id string, decision Status, now time.Time) (out []LeaveRequest, debit *Debit, found bool) {
	out = make([]LeaveRequest, len(leaves))
	copy(out, leaves)

	for i, l := range out {
		if l.ID != id {
			continue
		}
		if l.Status == StatusPending && decision == StatusApproved {
			days, err := InclusiveDays(l.StartDate, l.EndDate)
			if err == nil {
				debit = &Debit{UserID: l.UserID, Type: l.Type, Days: days}
			}
		}
		l.Status = decision
		l.UpdatedAt = now.Format(time.RFC3339)
		out[i] = l
		return out, debit, true
	}
	return leaves, nil, false
}

// TransitionPermission applies a decision to the permission request with
// the given id. incrementUserID is non-empty only on the PENDING ->
// APPROVED edge, identifying the user whose monthly counter goes up by
// exactly one.
func TransitionPermission(perms []PermissionRequest, id string, decision Status, now time.Time) (out []PermissionRequest, incrementUserID string, found bool) {
	out = make([]PermissionRequest, len(perms))
	copy(out, perms)

	for i, p := range out {
		if p.ID != id {
			continue
		}
		if p.Status == StatusPending && decision == StatusApproved {
			incrementUserID = p.UserID
		}
		p.Status = decision
		p.UpdatedAt = now.Format(time.RFC3339)
		out[i] = p
		return out, incrementUserID, true
	}
	return perms, "", false
}

// ApplyDebit returns a new user list with the debit applied to the
// matching balance field, floored at zero.
func ApplyDebit(users []user.User, d Debit) []user.User {
	out := make([]user.User, len(users))
	copy(out, users)

	for i, u := range out {
		if u.ID != d.UserID {
			continue
		}
		switch d.Type {
		case TypeSick:
			u.LeaveBalance.Sick = max(0, u.LeaveBalance.Sick-d.Days)
		default:
			u.LeaveBalance.Casual = max(0, u.LeaveBalance.Casual-d.Days)
		}
		out[i] = u
		break
	}
	return out
}

// ApplyPermissionUse returns a new user list with the user's monthly
// permission counter incremented by one.
func ApplyPermissionUse(users []user.User, userID string) []user.User {
	out := make([]user.User, len(users))
	copy(out, users)

	for i, u := range out {
		if u.ID == userID {
			u.PermissionsUsed++
			out[i] = u
			break
		}
	}
	return out
}
