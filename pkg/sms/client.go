package sms

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the Twilio Messages REST API.
type Client struct {
	BaseURL    string
	AccountSID string
	AuthToken  string
	FromNumber string
	HTTPClient *http.Client
}

type messageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	// Error payloads use a different shape.
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewClient(accountSID, authToken, fromNumber string) *Client {
	return &Client{
		BaseURL:    "https://api.twilio.com",
		AccountSID: accountSID,
		AuthToken:  authToken,
		FromNumber: fromNumber,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendSMS sends one text message and reports delivery acceptance. A non-2xx
// response from the API is returned as an error with Twilio's message.
func (c *Client) SendSMS(to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.BaseURL, c.AccountSID)

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Create Basic Auth token
	auth := base64.StdEncoding.EncodeToString([]byte(c.AccountSID + ":" + c.AuthToken))
	req.Header.Set("Authorization", "Basic "+auth)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var response messageResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if response.Message != "" {
			return fmt.Errorf("twilio error %d: %s", response.Code, response.Message)
		}
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	return nil
}
