package bigdata

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/finresearch/bigdata-agent/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchClient struct{}

func (stubSearchClient) Search(context.Context, Query) ([]Document, error) {
	return nil, nil
}

func (stubSearchClient) LookupEntities(context.Context, string, string, int) ([]EntityMatch, error) {
	return nil, nil
}

func TestManager_DialsOnce(t *testing.T) {
	var dials atomic.Int32
	shared := &stubSearchClient{}
	manager := NewManagerWithDial(func(ctx context.Context) (SearchClient, error) {
		dials.Add(1)
		return shared, nil
	})
	ctx := context.Background()

	first, err := manager.Client(ctx)
	require.NoError(t, err)
	second, err := manager.Client(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), dials.Load())
	assert.Same(t, first, second)
	assert.False(t, manager.CreatedAt().IsZero())
}

func TestManager_ConcurrentFirstCallersShareOneLogin(t *testing.T) {
	var dials atomic.Int32
	manager := NewManagerWithDial(func(ctx context.Context) (SearchClient, error) {
		dials.Add(1)
		return stubSearchClient{}, nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client, err := manager.Client(context.Background())
			assert.NoError(t, err)
			assert.NotNil(t, client)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), dials.Load())
}

func TestManager_CachesDialFailure(t *testing.T) {
	var dials atomic.Int32
	manager := NewManagerWithDial(func(ctx context.Context) (SearchClient, error) {
		dials.Add(1)
		return nil, &AuthenticationError{Reason: "credentials rejected"}
	})
	ctx := context.Background()

	var authErr *AuthenticationError

	_, err := manager.Client(ctx)
	require.ErrorAs(t, err, &authErr)

	_, err = manager.Client(ctx)
	require.ErrorAs(t, err, &authErr)

	assert.Equal(t, int32(1), dials.Load())
}

func TestNewManager_MissingCredentials(t *testing.T) {
	cfg := utils.NewConfig(map[string]string{})
	manager := NewManager(cfg)

	_, err := manager.Client(context.Background())

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Contains(t, err.Error(), "BIGDATA_USERNAME")
}

func TestAuthenticationError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &AuthenticationError{Reason: "login request failed", Err: cause}
	assert.ErrorIs(t, err, cause)

	sErr := &SearchError{Op: "search", Err: cause}
	assert.ErrorIs(t, sErr, cause)
}
