package leadsHandler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"RBCDigital/internal/api/leads"
	leadsHandler "RBCDigital/internal/api/leads/handler"
	"RBCDigital/internal/config"
	"RBCDigital/internal/middleware"
)

type stubLeadsService struct {
	contactErr error
	bookingErr error
}

func (s *stubLeadsService) CreateContact(_ context.Context, req leads.CreateContactRequest) (leads.ContactResponse, error) {
	if s.contactErr != nil {
		return leads.ContactResponse{}, s.contactErr
	}
	return leads.ContactResponse{
		ID:        "contact-1",
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}, nil
}

func (s *stubLeadsService) CreateBooking(_ context.Context, req leads.CreateBookingRequest) (leads.BookingResponse, error) {
	if s.bookingErr != nil {
		return leads.BookingResponse{}, s.bookingErr
	}
	return leads.BookingResponse{
		ID:    "booking-1",
		Name:  req.Name,
		Email: req.Email,
	}, nil
}

func (s *stubLeadsService) GetAllContacts(_ context.Context) (*leads.ContactListResponse, error) {
	return &leads.ContactListResponse{Data: []leads.ContactResponse{}}, nil
}

func (s *stubLeadsService) GetAllBookings(_ context.Context) (*leads.BookingListResponse, error) {
	return &leads.BookingListResponse{Data: []leads.BookingResponse{}}, nil
}

func newTestApp(t *testing.T, svc *stubLeadsService) *fiber.App {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})

	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	handler := leadsHandler.New(logger, config.NewValidator(), mw, svc)
	handler.Start(app.Group("/api"))

	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateContactSuccess(t *testing.T) {
	app := newTestApp(t, &stubLeadsService{})

	resp := postJSON(t, app, "/api/contacts", map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Contact struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"contact"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, "contact-1", body.Contact.ID)
	assert.Equal(t, "jane@example.com", body.Contact.Email)
}

func TestCreateContactValidation(t *testing.T) {
	app := newTestApp(t, &stubLeadsService{})

	resp := postJSON(t, app, "/api/contacts", map[string]interface{}{
		"lastName": "Doe",
		"email":    "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.False(t, body.Success)
	assert.Equal(t, "Invalid form data", body.Message)

	fields := make(map[string]string)
	for _, fe := range body.Errors {
		fields[fe.Field] = fe.Message
	}
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "email")
	assert.Equal(t, "firstName is required", fields["firstName"])
}

func TestCreateBookingSuccess(t *testing.T) {
	app := newTestApp(t, &stubLeadsService{})

	resp := postJSON(t, app, "/api/bookings", map[string]interface{}{
		"name":  "John Smith",
		"email": "john@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Success bool `json:"success"`
		Booking struct {
			ID string `json:"id"`
		} `json:"booking"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, "booking-1", body.Booking.ID)
}

func TestCreateBookingValidation(t *testing.T) {
	app := newTestApp(t, &stubLeadsService{})

	resp := postJSON(t, app, "/api/bookings", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	fields := make(map[string]bool)
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
}

func TestCreateContactStoreUnavailable(t *testing.T) {
	app := newTestApp(t, &stubLeadsService{contactErr: leads.ErrLeadStoreUnavailable})

	resp := postJSON(t, app, "/api/contacts", map[string]interface{}{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     "jane@example.com",
	})
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "no lead store configured", body.Message)
}
