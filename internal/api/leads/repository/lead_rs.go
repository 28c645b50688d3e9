package leadsRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RBCDigital/internal/entity"
	contextPkg "RBCDigital/pkg/context"
)

type ContactDB struct {
	ID           sql.NullString `db:"id"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Email        sql.NullString `db:"email"`
	Phone        sql.NullString `db:"phone"`
	BusinessType sql.NullString `db:"business_type"`
	Challenge    sql.NullString `db:"challenge"`
	CreatedAt    time.Time      `db:"created_at"`
}

type BookingDB struct {
	ID               sql.NullString `db:"id"`
	Name             sql.NullString `db:"name"`
	Email            sql.NullString `db:"email"`
	PreferredDate    sql.NullString `db:"preferred_date"`
	HubspotContactID sql.NullString `db:"hubspot_contact_id"`
	CreatedAt        time.Time      `db:"created_at"`
}

func (r *contactsRepository) CreateContact(ctx context.Context, contact entity.Contact) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            contact.ID,
		"first_name":    contact.FirstName,
		"last_name":     contact.LastName,
		"email":         contact.Email,
		"phone":         contact.Phone,
		"business_type": contact.BusinessType,
		"challenge":     contact.Challenge,
		"created_at":    contact.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateContact, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateContact named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating contact")
		return err
	}

	return nil
}

func (r *contactsRepository) GetAllContacts(ctx context.Context) ([]entity.Contact, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var contactsList []ContactDB

	query, args, err := sqlx.Named(queryGetAllContacts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllContacts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &contactsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllContacts execution err")
		return nil, err
	}

	contacts := make([]entity.Contact, 0, len(contactsList))
	for _, contactDB := range contactsList {
		contacts = append(contacts, r.makeContact(contactDB))
	}

	return contacts, nil
}

func (r *contactsRepository) makeContact(contact ContactDB) entity.Contact {
	return entity.Contact{
		ID:           contact.ID.String,
		FirstName:    contact.FirstName.String,
		LastName:     contact.LastName.String,
		Email:        contact.Email.String,
		Phone:        contact.Phone.String,
		BusinessType: contact.BusinessType.String,
		Challenge:    contact.Challenge.String,
		CreatedAt:    contact.CreatedAt,
	}
}

func (r *bookingsRepository) CreateBooking(ctx context.Context, booking entity.Booking) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                 booking.ID,
		"name":               booking.Name,
		"email":              booking.Email,
		"preferred_date":     booking.PreferredDate,
		"hubspot_contact_id": booking.HubspotContactID,
		"created_at":         booking.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBooking, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBooking named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating booking")
		return err
	}

	return nil
}

func (r *bookingsRepository) GetAllBookings(ctx context.Context) ([]entity.Booking, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var bookingsList []BookingDB

	query, args, err := sqlx.Named(queryGetAllBookings, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBookings named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &bookingsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBookings execution err")
		return nil, err
	}

	bookings := make([]entity.Booking, 0, len(bookingsList))
	for _, bookingDB := range bookingsList {
		bookings = append(bookings, r.makeBooking(bookingDB))
	}

	return bookings, nil
}

func (r *bookingsRepository) makeBooking(booking BookingDB) entity.Booking {
	return entity.Booking{
		ID:               booking.ID.String,
		Name:             booking.Name.String,
		Email:            booking.Email.String,
		PreferredDate:    booking.PreferredDate.String,
		HubspotContactID: booking.HubspotContactID.String,
		CreatedAt:        booking.CreatedAt,
	}
}
