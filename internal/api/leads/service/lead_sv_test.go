package leadsService

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RBCDigital/internal/api/leads"
	leadsRepository "RBCDigital/internal/api/leads/repository"
	"RBCDigital/internal/entity"
	"RBCDigital/pkg/hubspot"
	"RBCDigital/pkg/utils"
)

type fakeLeadStore struct {
	contacts []entity.Contact
	bookings []entity.Booking
}

func (f *fakeLeadStore) CreateContact(_ context.Context, contact entity.Contact) error {
	f.contacts = append(f.contacts, contact)
	return nil
}

func (f *fakeLeadStore) GetAllContacts(_ context.Context) ([]entity.Contact, error) {
	return f.contacts, nil
}

func (f *fakeLeadStore) CreateBooking(_ context.Context, booking entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeLeadStore) GetAllBookings(_ context.Context) ([]entity.Booking, error) {
	return f.bookings, nil
}

type fakeLeadRepo struct {
	unavailable bool
	store       *fakeLeadStore
}

func (f *fakeLeadRepo) NewClient(tx bool) (leadsRepository.Client, error) {
	if f.unavailable {
		return leadsRepository.Client{}, leads.ErrLeadStoreUnavailable
	}
	return leadsRepository.Client{
		Contacts: f.store,
		Bookings: f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeCRM struct {
	enabled   bool
	contactID string
	err       error
	lookups   int
}

func (f *fakeCRM) Enabled() bool { return f.enabled }

func (f *fakeCRM) SearchContactByEmail(_ context.Context, email string) (string, error) {
	return f.contactID, f.err
}

func (f *fakeCRM) CreateContact(_ context.Context, _ hubspot.ContactProperties) (string, error) {
	return f.contactID, f.err
}

func (f *fakeCRM) LookupOrCreateContact(_ context.Context, _ hubspot.ContactProperties) (string, error) {
	f.lookups++
	return f.contactID, f.err
}

type fakeMailer struct{}

func (fakeMailer) Enabled() bool                           { return false }
func (fakeMailer) SendLeadNotification(string, []string) error { return nil }

func newTestService(repo *fakeLeadRepo, crm *fakeCRM) ILeadsService {
	logger := logrus.New()
	return NewLeadsService(logger, repo, crm, fakeMailer{}, utils.New())
}

func TestCreateContact(t *testing.T) {
	store := &fakeLeadStore{}
	crm := &fakeCRM{enabled: true, contactID: "crm-1"}
	svc := newTestService(&fakeLeadRepo{store: store}, crm)

	contact, err := svc.CreateContact(context.Background(), leads.CreateContactRequest{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        "jane@example.com",
		BusinessType: "Dental clinic",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, "jane@example.com", contact.Email)
	require.Len(t, store.contacts, 1)
	assert.Equal(t, 1, crm.lookups)
}

func TestCreateContactNoStore(t *testing.T) {
	svc := newTestService(&fakeLeadRepo{unavailable: true}, &fakeCRM{})

	_, err := svc.CreateContact(context.Background(), leads.CreateContactRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, leads.ErrLeadStoreUnavailable)
}

func TestCreateBookingStoresCRMContactID(t *testing.T) {
	store := &fakeLeadStore{}
	crm := &fakeCRM{enabled: true, contactID: "crm-42"}
	svc := newTestService(&fakeLeadRepo{store: store}, crm)

	booking, err := svc.CreateBooking(context.Background(), leads.CreateBookingRequest{
		Name:          "John Smith",
		Email:         "john@example.com",
		PreferredDate: "2026-09-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "crm-42", booking.HubspotContactID)
	require.Len(t, store.bookings, 1)
	assert.Equal(t, "crm-42", store.bookings[0].HubspotContactID)
}

func TestCreateBookingSurvivesCRMFailure(t *testing.T) {
	store := &fakeLeadStore{}
	crm := &fakeCRM{enabled: true, err: errors.New("hubspot returned status 500")}
	svc := newTestService(&fakeLeadRepo{store: store}, crm)

	booking, err := svc.CreateBooking(context.Background(), leads.CreateBookingRequest{
		Name:  "John Smith",
		Email: "john@example.com",
	})
	require.NoError(t, err)

	assert.Empty(t, booking.HubspotContactID)
	require.Len(t, store.bookings, 1, "booking must be saved even when the CRM is down")
}

func TestCreateBookingCRMDisabled(t *testing.T) {
	store := &fakeLeadStore{}
	crm := &fakeCRM{enabled: false}
	svc := newTestService(&fakeLeadRepo{store: store}, crm)

	booking, err := svc.CreateBooking(context.Background(), leads.CreateBookingRequest{
		Name:  "John Smith",
		Email: "john@example.com",
	})
	require.NoError(t, err)

	assert.Empty(t, booking.HubspotContactID)
	assert.Equal(t, 0, crm.lookups)
}

func TestGetAllContacts(t *testing.T) {
	store := &fakeLeadStore{contacts: []entity.Contact{
		{ID: "c1", FirstName: "Jane", Email: "jane@example.com"},
		{ID: "c2", FirstName: "John", Email: "john@example.com"},
	}}
	svc := newTestService(&fakeLeadRepo{store: store}, &fakeCRM{})

	result, err := svc.GetAllContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "jane@example.com", result.Data[0].Email)
}

func TestGetAllBookings(t *testing.T) {
	store := &fakeLeadStore{bookings: []entity.Booking{
		{ID: "b1", Name: "Jane", Email: "jane@example.com"},
	}}
	svc := newTestService(&fakeLeadRepo{store: store}, &fakeCRM{})

	result, err := svc.GetAllBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
}
