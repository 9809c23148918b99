// Package httpapi implements identity.Backend over the identity provider's
// HTTP JSON API. It owns the single session-stream fan-out and the one
// table that translates provider error codes into the local taxonomy.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"signet/internal/client/identity"
	"signet/internal/logging"
)

// subscriberBuffer bounds how far a subscriber may fall behind before
// emission blocks. Events are never dropped or coalesced.
const subscriberBuffer = 32

// Client is the concrete identity.Backend. It keeps the active session in
// memory only and pushes every sign-in/sign-out onto subscriber channels in
// the order the calls complete.
type Client struct {
	baseURL  string
	httpc    *http.Client
	log      logging.Logger
	clientID string

	mu      sync.Mutex
	session *identity.Session
	subs    map[int]chan *identity.Session
	nextSub int
}

// NewClient returns a Client talking to the provider at baseURL. Every
// request carries a per-process X-Client-Id and is bounded by timeout;
// there are no automatic retries.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		httpc:    &http.Client{Timeout: timeout},
		log:      log.With("component", "httpapi"),
		clientID: uuid.NewString(),
		subs:     make(map[int]chan *identity.Session),
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type signOutRequest struct {
	Token string `json:"token"`
}

type updatePasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (c *Client) CreateAccount(ctx context.Context, email, password string) (*identity.Session, error) {
	var resp sessionResponse
	if err := c.post(ctx, "/v1/accounts/signup", credentialsRequest{Email: email, Password: password}, &resp); err != nil {
		c.log.Warn(ctx, "account creation failed", "error", err)
		return nil, err
	}
	sess, err := sessionFromToken(resp.IDToken, resp.RefreshToken)
	if err != nil {
		c.log.Warn(ctx, "provider returned an unusable id token", "error", err)
		return nil, err
	}
	c.setSession(sess)
	c.log.Info(ctx, "account created", "uid", sess.UID)
	return sess, nil
}

func (c *Client) Authenticate(ctx context.Context, email, password string) (*identity.Session, error) {
	var resp sessionResponse
	if err := c.post(ctx, "/v1/accounts/signin", credentialsRequest{Email: email, Password: password}, &resp); err != nil {
		c.log.Warn(ctx, "sign-in failed", "error", err)
		return nil, err
	}
	sess, err := sessionFromToken(resp.IDToken, resp.RefreshToken)
	if err != nil {
		c.log.Warn(ctx, "provider returned an unusable id token", "error", err)
		return nil, err
	}
	c.setSession(sess)
	c.log.Info(ctx, "signed in", "uid", sess.UID)
	return sess, nil
}

// EndSession revokes the active session and emits nil on the stream. With
// no active session it returns nil without a request and without an event,
// so a repeated sign-out stays harmless.
func (c *Client) EndSession(ctx context.Context) error {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()
	if sess == nil {
		return nil
	}
	if err := c.post(ctx, "/v1/accounts/signout", signOutRequest{Token: sess.Token}, nil); err != nil {
		c.log.Warn(ctx, "sign-out failed", "error", err)
		return err
	}
	c.mu.Lock()
	c.session = nil
	c.emitLocked(nil)
	c.mu.Unlock()
	c.log.Info(ctx, "signed out", "uid", sess.UID)
	return nil
}

// UpdateCredential changes the password of the active session. Success does
// not emit an event: the session stays as it was, only the credential moved.
func (c *Client) UpdateCredential(ctx context.Context, newPassword string) error {
	c.mu.Lock()
	sess := c.session
	c.mu.Unlock()
	if sess == nil {
		return identity.ErrNoSession
	}
	if err := c.post(ctx, "/v1/accounts/password", updatePasswordRequest{Token: sess.Token, NewPassword: newPassword}, nil); err != nil {
		c.log.Warn(ctx, "credential update failed", "error", err)
		return err
	}
	c.log.Info(ctx, "credential updated", "uid", sess.UID)
	return nil
}

// Subscribe registers a session-stream reader. The current value is placed
// on the channel before Subscribe returns. The subscriber must keep
// draining: once its buffer fills, emission blocks rather than drops.
func (c *Client) Subscribe() (<-chan *identity.Session, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan *identity.Session, subscriberBuffer)
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.session
	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (c *Client) setSession(sess *identity.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = sess
	c.emitLocked(sess)
}

func (c *Client) emitLocked(s *identity.Session) {
	for _, ch := range c.subs {
		ch <- s
	}
}

// post issues a JSON request and decodes the answer into out (which may be
// nil for empty responses). Provider failures come back already translated
// through the error table; transport faults are wrapped verbatim.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Id", c.clientID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err != nil || ae.Err.Code == "" {
			return &identity.UnknownError{Message: fmt.Sprintf("unexpected provider response: %s", resp.Status)}
		}
		return mapError(ae.Err.Code, ae.Err.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
