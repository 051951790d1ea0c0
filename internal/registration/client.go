// Package registration talks to a remote registration endpoint.
package registration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/annusingmar/signup-backend/internal/signup"
	"github.com/go-resty/resty/v2"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnexpectedResponse = errors.New("unexpected response from registration endpoint")
)

type Client struct {
	http     *resty.Client
	endpoint string
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     client,
		endpoint: endpoint,
	}
}

// Register posts draft to the endpoint. Any 2xx status counts as success.
func (c *Client) Register(ctx context.Context, draft signup.UserDraft) error {
	var failure struct {
		Error any `json:"error"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetError(&failure).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("registration request: %w", err)
	}

	switch {
	case resp.IsSuccess():
		return nil
	case resp.StatusCode() == http.StatusConflict:
		return ErrEmailTaken
	default:
		return fmt.Errorf("%w: status %d: %v", ErrUnexpectedResponse, resp.StatusCode(), failure.Error)
	}
}
