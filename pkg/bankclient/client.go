/**
 * @description
 * This package provides a client for the remote banking API. It encapsulates
 * the logic for making authenticated HTTP requests to the banking endpoints,
 * handling request body construction, and parsing responses.
 *
 * Every operation validates its inputs locally before anything is sent over
 * the wire, performs a single blocking round-trip, and maps the response to
 * either a typed result or one of the error kinds in errors.go.
 *
 * @dependencies
 * - bytes, context, encoding/json, fmt, io, log, net/http, strings, sync, time: Standard Go libraries.
 */
package bankclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is where the banking server listens when run locally.
	DefaultBaseURL = "http://localhost:8123"

	// DefaultTimeout bounds every request issued by a client.
	DefaultTimeout = 30 * time.Second
)

// Client is a client for the banking API. It is safe for concurrent use; the
// cached credential is the only shared state and is guarded internally.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu         sync.RWMutex
	credential *Credential
}

// Credential is a bearer token obtained from the auth endpoint. ExpiresIn is
// advisory only; the client never enforces expiry.
type Credential struct {
	Token     string
	ExpiresIn int64
}

// TransferResult is the decoded response from the transfer endpoint.
type TransferResult struct {
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	FromAccount   string  `json:"fromAccount"`
	ToAccount     string  `json:"toAccount"`
	Amount        float64 `json:"amount"`
}

// IsSuccessful reports whether the server marked the transfer as successful.
// The status comparison is case-insensitive.
func (r *TransferResult) IsSuccessful() bool {
	return strings.EqualFold(r.Status, "SUCCESS")
}

// tokenResponse is the body of a successful auth call.
type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// NewClient creates a client for the banking API at baseURL. A trailing slash
// is tolerated; an empty base URL is a configuration error.
func NewClient(baseURL string) (*Client, error) {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a client with a custom request timeout. The
// timeout is fixed for the lifetime of the client; non-positive values fall
// back to the default.
func NewClientWithTimeout(baseURL string, timeout time.Duration) (*Client, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("banking api base URL must not be empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// NewDefaultClient creates a client against the default local server address.
func NewDefaultClient() *Client {
	client, _ := NewClient(DefaultBaseURL)
	return client
}

// BaseURL returns the normalized base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credential returns the cached bearer credential, if one has been obtained.
func (c *Client) Credential() (Credential, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.credential == nil {
		return Credential{}, false
	}
	return *c.credential, true
}

func (c *Client) setCredential(cred Credential) {
	c.mu.Lock()
	c.credential = &cred
	c.mu.Unlock()
}

// Authenticate obtains a bearer token from the auth endpoint and caches it on
// the client. Every subsequent request carries the token until the client is
// discarded or Authenticate is called again. The token is returned as well.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/authToken", strings.NewReader("{}"))
	if err != nil {
		return "", fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "authenticate", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("level=warn component=bank_client op=authenticate status=%d msg=\"authentication rejected\"", resp.StatusCode)
		return "", &AuthenticationFailedError{StatusCode: resp.StatusCode}
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", &MalformedResponseError{Err: err}
	}

	c.setCredential(Credential{Token: token.Token, ExpiresIn: token.ExpiresIn})
	log.Printf("level=info component=bank_client op=authenticate msg=\"authenticated\" expires_in=%d", token.ExpiresIn)
	return token.Token, nil
}

// TransferFunds moves amount from one account to another. Both identifiers
// and the amount are validated locally before any request is sent; the source
// and destination accounts are allowed to be the same.
func (c *Client) TransferFunds(ctx context.Context, fromAccount, toAccount string, amount float64) (*TransferResult, error) {
	if err := ValidateAccountFormat(fromAccount); err != nil {
		return nil, err
	}
	if err := ValidateAccountFormat(toAccount); err != nil {
		return nil, err
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	body, err := json.Marshal(transferPayload{
		FromAccount: fromAccount,
		ToAccount:   toAccount,
		Amount:      amountJSON(amount),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transfer request: %w", err)
	}

	log.Printf("level=info component=bank_client op=transfer from=%s to=%s amount=%.2f", fromAccount, toAccount, amount)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transfer", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cred, ok := c.Credential(); ok {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "transfer", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "transfer", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("level=warn component=bank_client op=transfer status=%d msg=\"transfer rejected\"", resp.StatusCode)
		return nil, &TransferRejectedError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var result TransferResult
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	if !result.IsSuccessful() {
		log.Printf("level=warn component=bank_client op=transfer status=200 result=%q msg=%q", result.Status, result.Message)
	}

	return &result, nil
}

// ValidateAccount asks the server whether an account exists. A malformed
// identifier short-circuits to false without a network call, and a non-200
// response means the account is invalid; only a transport-level failure is
// reported as an error alongside the false result.
func (c *Client) ValidateAccount(ctx context.Context, accountID string) (bool, error) {
	if err := ValidateAccountFormat(accountID); err != nil {
		log.Printf("level=warn component=bank_client op=validate_account account_id=%q msg=\"invalid account format\"", accountID)
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/accounts/validate/"+accountID, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create validation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, &TransportError{Op: "validate account", Err: err}
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}

// Close releases idle connections held by the underlying transport. It is
// safe to call more than once; using the client afterwards is undefined.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
