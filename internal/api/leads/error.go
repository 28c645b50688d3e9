package leads

import "RBCDigital/pkg/response"

var (
	ErrLeadStoreUnavailable = response.NewError(503, "no lead store configured")
	ErrCreateContact        = response.NewError(500, "failed to save contact submission")
	ErrCreateBooking        = response.NewError(500, "failed to save booking request")
	ErrListContacts         = response.NewError(500, "failed to list contact submissions")
	ErrListBookings         = response.NewError(500, "failed to list booking requests")
)
