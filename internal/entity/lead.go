package entity

import "time"

type Contact struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	BusinessType string    `db:"business_type"`
	Challenge    string    `db:"challenge"`
	CreatedAt    time.Time `db:"created_at"`
}

type Booking struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	PreferredDate    string    `db:"preferred_date"`
	HubspotContactID string    `db:"hubspot_contact_id"`
	CreatedAt        time.Time `db:"created_at"`
}
