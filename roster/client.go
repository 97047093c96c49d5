// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/danielhkuo/faction-grid/grid"
	"github.com/danielhkuo/faction-grid/models"
)

var (
	// ErrCredential means the credential was empty or rejected by the service
	ErrCredential = errors.New("credential rejected")
	// ErrNetwork covers transport failures and unusable responses
	ErrNetwork = errors.New("identity service unavailable")
)

const (
	userPath    = "/user/"
	factionPath = "/faction/"
)

// Client talks to the identity/roster service. Every call is a single
// attempt; callers decide whether to try again.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for baseURL. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	return &Client{http: client}
}

// Authenticate resolves a credential to the account's display name
func (c *Client) Authenticate(ctx context.Context, credential string) (string, error) {
	if strings.TrimSpace(credential) == "" {
		return "", fmt.Errorf("%w: empty credential", ErrCredential)
	}

	body, err := c.get(ctx, userPath, credential)
	if err != nil {
		return "", err
	}

	if apiErr := gjson.GetBytes(body, "error"); apiErr.Exists() {
		return "", fmt.Errorf("%w: %s", ErrCredential, apiErr.Raw)
	}
	name := gjson.GetBytes(body, "name")
	if name.Type != gjson.String || name.String() == "" {
		return "", fmt.Errorf("%w: response has no name", ErrNetwork)
	}
	return name.String(), nil
}

// FetchRoster returns the faction members visible to credential.
// A response without members yields an empty roster, not an error.
func (c *Client) FetchRoster(ctx context.Context, credential string) ([]models.MemberRecord, error) {
	body, err := c.get(ctx, factionPath, credential)
	if err != nil {
		return nil, err
	}
	return grid.NormalizeRoster(body), nil
}

func (c *Client) get(ctx context.Context, path, credential string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"selections": "basic",
			"key":        credential,
		}).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, path, redact(err, credential))
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrNetwork, path, resp.StatusCode())
	}
	if !gjson.ValidBytes(resp.Body()) {
		return nil, fmt.Errorf("%w: %s returned invalid JSON", ErrNetwork, path)
	}
	return resp.Body(), nil
}

// redact strips the credential from transport errors, which embed the URL
func redact(err error, credential string) string {
	msg := strings.ReplaceAll(err.Error(), credential, "REDACTED")
	return strings.ReplaceAll(msg, url.QueryEscape(credential), "REDACTED")
}
