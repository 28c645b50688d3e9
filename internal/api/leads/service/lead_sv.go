package leadsService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/leads"
	"RBCDigital/internal/entity"
	contextPkg "RBCDigital/pkg/context"
	"RBCDigital/pkg/hubspot"
)

// CreateContact persists the form submission and forwards it to the CRM.
// CRM and mail failures never lose the lead: the local record is the source
// of truth and the integrations are best effort.
func (s *leadsService) CreateContact(ctx context.Context, req leads.CreateContactRequest) (leads.ContactResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.leadsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("No store for contact submission")
		return leads.ContactResponse{}, err
	}

	contactID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return leads.ContactResponse{}, err
	}

	contact := entity.Contact{
		ID:           contactID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		BusinessType: req.BusinessType,
		Challenge:    req.Challenge,
		CreatedAt:    time.Now(),
	}

	if err := repo.Contacts.CreateContact(ctx, contact); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save contact submission")
		return leads.ContactResponse{}, leads.ErrCreateContact
	}

	if s.crm.Enabled() {
		if _, err := s.crm.LookupOrCreateContact(ctx, hubspot.ContactProperties{
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Company:   req.BusinessType,
		}); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to forward contact to CRM")
		}
	}

	s.notify(requestID, "New contact form submission", []string{
		"Name: " + req.FirstName + " " + req.LastName,
		"Email: " + req.Email,
		"Phone: " + req.Phone,
		"Business type: " + req.BusinessType,
		"Challenge: " + req.Challenge,
	})

	return makeContactResponse(contact), nil
}

// CreateBooking persists the consultation request. When the CRM is
// configured the contact is looked up or created first and its id is stored
// with the booking; a CRM failure downgrades to a local-only record.
func (s *leadsService) CreateBooking(ctx context.Context, req leads.CreateBookingRequest) (leads.BookingResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.leadsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("No store for booking request")
		return leads.BookingResponse{}, err
	}

	var hubspotContactID string
	if s.crm.Enabled() {
		contactID, err := s.crm.LookupOrCreateContact(ctx, hubspot.ContactProperties{
			Email:     req.Email,
			FirstName: req.Name,
		})
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to forward booking to CRM")
		} else {
			hubspotContactID = contactID
		}
	}

	bookingID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return leads.BookingResponse{}, err
	}

	booking := entity.Booking{
		ID:               bookingID,
		Name:             req.Name,
		Email:            req.Email,
		PreferredDate:    req.PreferredDate,
		HubspotContactID: hubspotContactID,
		CreatedAt:        time.Now(),
	}

	if err := repo.Bookings.CreateBooking(ctx, booking); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save booking request")
		return leads.BookingResponse{}, leads.ErrCreateBooking
	}

	s.notify(requestID, "New consultation booking", []string{
		"Name: " + req.Name,
		"Email: " + req.Email,
		"Preferred date: " + req.PreferredDate,
	})

	return makeBookingResponse(booking), nil
}

func (s *leadsService) GetAllContacts(ctx context.Context) (*leads.ContactListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.leadsRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	contacts, err := repo.Contacts.GetAllContacts(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list contact submissions")
		return nil, leads.ErrListContacts
	}

	response := &leads.ContactListResponse{
		Data: make([]leads.ContactResponse, 0, len(contacts)),
	}
	for _, contact := range contacts {
		response.Data = append(response.Data, makeContactResponse(contact))
	}

	return response, nil
}

func (s *leadsService) GetAllBookings(ctx context.Context) (*leads.BookingListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.leadsRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	bookings, err := repo.Bookings.GetAllBookings(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list booking requests")
		return nil, leads.ErrListBookings
	}

	response := &leads.BookingListResponse{
		Data: make([]leads.BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		response.Data = append(response.Data, makeBookingResponse(booking))
	}

	return response, nil
}

// notify emails the configured inbox in the background so lead capture
// never waits on the mail server.
func (s *leadsService) notify(requestID, subject string, lines []string) {
	if !s.mailer.Enabled() {
		return
	}

	go func() {
		if err := s.mailer.SendLeadNotification(subject, lines); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"subject":    subject,
				"error":      err.Error(),
			}).Warn("Failed to send lead notification email")
		}
	}()
}

func makeContactResponse(contact entity.Contact) leads.ContactResponse {
	return leads.ContactResponse{
		ID:           contact.ID,
		FirstName:    contact.FirstName,
		LastName:     contact.LastName,
		Email:        contact.Email,
		Phone:        contact.Phone,
		BusinessType: contact.BusinessType,
		Challenge:    contact.Challenge,
		CreatedAt:    contact.CreatedAt,
	}
}

func makeBookingResponse(booking entity.Booking) leads.BookingResponse {
	return leads.BookingResponse{
		ID:               booking.ID,
		Name:             booking.Name,
		Email:            booking.Email,
		PreferredDate:    booking.PreferredDate,
		HubspotContactID: booking.HubspotContactID,
		CreatedAt:        booking.CreatedAt,
	}
}
