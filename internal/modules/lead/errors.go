package lead

import "errors"

var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrInvalidLead   = errors.New("invalid lead")
	ErrUnknownOption = errors.New("value is not in the configured list")
)
