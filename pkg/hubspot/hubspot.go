package hubspot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://api.hubapi.com"

type ItfHubspot interface {
	Enabled() bool
	SearchContactByEmail(ctx context.Context, email string) (string, error)
	CreateContact(ctx context.Context, contact ContactProperties) (string, error)
	LookupOrCreateContact(ctx context.Context, contact ContactProperties) (string, error)
}

type ContactProperties struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}

type hubspotClient struct {
	baseURL string
	token   string
	client  *http.Client
	log     *logrus.Logger
}

func New(log *logrus.Logger) ItfHubspot {
	token := os.Getenv("HUBSPOT_ACCESS_TOKEN")
	if token == "" {
		log.Warn("HUBSPOT_ACCESS_TOKEN not set, HubSpot integration disabled")
	}

	baseURL := os.Getenv("HUBSPOT_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &hubspotClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

func (h *hubspotClient) Enabled() bool {
	return h.token != ""
}

// SearchContactByEmail returns the id of the matching CRM contact, or an
// empty string when no contact carries the email.
func (h *hubspotClient) SearchContactByEmail(ctx context.Context, email string) (string, error) {
	payload := map[string]interface{}{
		"filterGroups": []map[string]interface{}{
			{
				"filters": []map[string]interface{}{
					{
						"propertyName": "email",
						"operator":     "EQ",
						"value":        email,
					},
				},
			},
		},
		"properties": []string{"firstname", "lastname", "email", "phone", "company"},
		"limit":      1,
	}

	var result struct {
		Total   int `json:"total"`
		Results []struct {
			ID string `json:"id"`
		} `json:"results"`
	}

	if err := h.post(ctx, "/crm/v3/objects/contacts/search", payload, &result); err != nil {
		return "", fmt.Errorf("failed to search HubSpot contacts: %w", err)
	}

	if len(result.Results) == 0 {
		return "", nil
	}
	return result.Results[0].ID, nil
}

func (h *hubspotClient) CreateContact(ctx context.Context, contact ContactProperties) (string, error) {
	payload := map[string]interface{}{
		"properties": contact,
	}

	var result struct {
		ID string `json:"id"`
	}

	if err := h.post(ctx, "/crm/v3/objects/contacts", payload, &result); err != nil {
		return "", fmt.Errorf("failed to create HubSpot contact: %w", err)
	}

	return result.ID, nil
}

func (h *hubspotClient) LookupOrCreateContact(ctx context.Context, contact ContactProperties) (string, error) {
	contactID, err := h.SearchContactByEmail(ctx, contact.Email)
	if err != nil {
		return "", err
	}
	if contactID != "" {
		return contactID, nil
	}

	return h.CreateContact(ctx, contact)
}

func (h *hubspotClient) post(ctx context.Context, path string, body interface{}, dest interface{}) error {
	if !h.Enabled() {
		return fmt.Errorf("hubspot client not initialized, check HUBSPOT_ACCESS_TOKEN")
	}

	payload, err := jsoniter.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		h.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"path":   path,
		}).Error("HubSpot API error")
		return fmt.Errorf("hubspot returned status %d: %s", resp.StatusCode, string(raw))
	}

	if dest == nil {
		return nil
	}
	return jsoniter.NewDecoder(resp.Body).Decode(dest)
}
