package bigdata

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/finresearch/bigdata-agent/pkg/utils"
)

// DialFunc creates and authenticates a vendor client. It runs at most once
// per Manager.
type DialFunc func(ctx context.Context) (SearchClient, error)

// Manager hands out the authenticated vendor client shared by every adapter
// in the process. The client is created lazily on the first request; the
// Manager is constructed by the composition root and passed explicitly to
// everything that needs vendor access.
//
// Initialization is guarded by sync.Once, so concurrent first callers block
// until the single login attempt finishes and then all observe the same
// client or the same error. A failed login is not retried; the cached error
// is returned on every subsequent call.
type Manager struct {
	dial DialFunc

	once      sync.Once
	client    SearchClient
	err       error
	createdAt time.Time
}

// NewManager builds a Manager that reads credentials from the given config
// on first use. Credentials are the BIGDATA_USERNAME and BIGDATA_PASSWORD
// environment variables; BIGDATA_API_URL, BIGDATA_RATE_LIMIT_DELAY and
// BIGDATA_MAX_RETRIES are optional tuning knobs.
func NewManager(cfg *utils.Config) *Manager {
	return NewManagerWithDial(func(ctx context.Context) (SearchClient, error) {
		username := cfg.Get("BIGDATA_USERNAME")
		password := cfg.Get("BIGDATA_PASSWORD")
		if username == "" || password == "" {
			return nil, &AuthenticationError{
				Reason: "BIGDATA_USERNAME and BIGDATA_PASSWORD must be set in environment",
			}
		}

		var opts []Option
		if baseURL := cfg.Get("BIGDATA_API_URL"); baseURL != "" {
			opts = append(opts, WithBaseURL(baseURL))
		}
		if delay := cfg.GetFloat("BIGDATA_RATE_LIMIT_DELAY", 0); delay > 0 {
			opts = append(opts, WithRateLimit(time.Duration(delay*float64(time.Second))))
		}
		if retries := cfg.GetInt("BIGDATA_MAX_RETRIES"); retries > 0 {
			opts = append(opts, WithMaxRetries(uint64(retries)))
		}

		client := NewClient(username, password, opts...)
		if err := client.Login(ctx); err != nil {
			return nil, err
		}

		log.Printf("[BIGDATA]: Authenticated session created for %s", username)
		return client, nil
	})
}

// NewManagerWithDial builds a Manager around a custom dial function, used by
// tests to count authentication attempts
func NewManagerWithDial(dial DialFunc) *Manager {
	return &Manager{dial: dial}
}

// Client returns the shared vendor client, creating and authenticating it on
// the first call
func (m *Manager) Client(ctx context.Context) (SearchClient, error) {
	m.once.Do(func() {
		m.client, m.err = m.dial(ctx)
		m.createdAt = time.Now()
	})
	return m.client, m.err
}

// CreatedAt reports when the session was established. Zero until the first
// Client call completes.
func (m *Manager) CreatedAt() time.Time {
	return m.createdAt
}
