package leads

import "time"

type CreateContactRequest struct {
	FirstName    string `json:"firstName" validate:"required,min=1,max=50"`
	LastName     string `json:"lastName" validate:"required,min=1,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty,max=30"`
	BusinessType string `json:"businessType" validate:"omitempty,max=100"`
	Challenge    string `json:"challenge" validate:"omitempty,max=2000"`
}

type CreateBookingRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=100"`
	Email         string `json:"email" validate:"required,email"`
	PreferredDate string `json:"preferredDate" validate:"omitempty,max=100"`
}

type ContactResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	BusinessType string    `json:"businessType"`
	Challenge    string    `json:"challenge"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PreferredDate    string    `json:"preferredDate"`
	HubspotContactID string    `json:"hubspotContactId"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateContactResponse struct {
	Success bool            `json:"success"`
	Contact ContactResponse `json:"contact"`
}

type CreateBookingResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

type ContactListResponse struct {
	Data []ContactResponse `json:"data"`
}

type BookingListResponse struct {
	Data []BookingResponse `json:"data"`
}
