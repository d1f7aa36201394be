package leave

import "errors"

var (
	ErrLeaveRequestNotFound      = errors.New("leave request not found")
	ErrPermissionRequestNotFound = errors.New("permission request not found")
	ErrInvalidDecision           = errors.New("decision must be APPROVED or REJECTED")
)
