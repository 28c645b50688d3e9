package leadsRepository

const (
	queryCreateContact = `
		INSERT INTO contacts (
			id,
			first_name,
			last_name,
			email,
			phone,
			business_type,
			challenge,
			created_at
		) VALUES (
			:id,
			:first_name,
			:last_name,
			:email,
			:phone,
			:business_type,
			:challenge,
			:created_at
		)
	`

	queryGetAllContacts = `
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone,
			business_type,
			challenge,
			created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	queryCreateBooking = `
		INSERT INTO bookings (
			id,
			name,
			email,
			preferred_date,
			hubspot_contact_id,
			created_at
		) VALUES (
			:id,
			:name,
			:email,
			:preferred_date,
			:hubspot_contact_id,
			:created_at
		)
	`

	queryGetAllBookings = `
		SELECT
			id,
			name,
			email,
			preferred_date,
			hubspot_contact_id,
			created_at
		FROM bookings
		ORDER BY created_at DESC
	`
)
