package leave

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type RequestType string

const (
	TypeCasual RequestType = "CASUAL"
	TypeSick   RequestType = "SICK"
)

// LeaveRequest is a multi-day leave application. Status transitions once
// from PENDING to a terminal state; the balance debit fires only on the
// PENDING -> APPROVED edge. JSON tags define the persisted shape.
type LeaveRequest struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Type      RequestType `json:"type"`
	StartDate string      `json:"startDate"` // YYYY-MM-DD
	EndDate   string      `json:"endDate"`   // YYYY-MM-DD
	Reason    string      `json:"reason"`
	Status    Status      `json:"status"`
	UpdatedAt string      `json:"updatedAt,omitempty"`
}

// PermissionRequest is a short same-day absence window. Approval bumps the
// requesting user's monthly permission counter by exactly one.
type PermissionRequest struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
	Status    Status `json:"status"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
