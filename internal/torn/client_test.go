package torn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, srv.URL+"/v2", WithRateLimit(0), WithRetry(time.Millisecond, DefaultMaxRetries))
	return c, srv
}

func TestFetch_SendsKeyAndParams(t *testing.T) {
	var gotPath, gotKey, gotSel string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotSel = r.URL.Query().Get("selections")
		w.Write([]byte(`{"ok":true}`))
	})

	var out struct {
		OK bool `json:"ok"`
	}
	err := c.Fetch(context.Background(), "/user/basic", "secret", url.Values{"selections": {"basic"}}, &out)

	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "/v2/user/basic", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "basic", gotSel)
}

func TestFetch_RetriesServerErrorsThenSucceeds(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			w.WriteHeader(http.StatusServiceUnavailable)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.Write([]byte(`{"attacks":[]}`))
		}
	})

	var out attacksResponse
	err := c.Fetch(context.Background(), PathAttacksFull, "k", nil, &out)

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestFetch_ErrorEnvelopeExhaustsRetries(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"error":{"code":2,"error":"Incorrect key"}}`))
	})

	err := c.Fetch(context.Background(), PathAttacksFull, "bad", nil, nil)

	require.Error(t, err)
	ue, ok := IsUpstreamError(err)
	require.True(t, ok, "expected UpstreamError, got %T", err)
	assert.Equal(t, CodeIncorrectKey, ue.Code)
	assert.Equal(t, "Incorrect key", ue.Message)
	assert.Equal(t, int32(DefaultMaxRetries+1), atomic.LoadInt32(&calls))
	assert.NotContains(t, err.Error(), "bad")
}

func TestFetch_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	})

	err := c.Fetch(context.Background(), "/missing", "k", nil, nil)

	ue, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, 0, ue.Code)
	assert.Equal(t, http.StatusNotFound, ue.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetch_ServerErrorExhaustsRetries(t *testing.T) {
	var calls int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.Fetch(context.Background(), "/x", "k", nil, nil)

	ue, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, ue.StatusCode)
	assert.Equal(t, int32(DefaultMaxRetries+1), atomic.LoadInt32(&calls))
}

func TestFetch_InvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})

	var out map[string]any
	err := c.Fetch(context.Background(), "/x", "k", nil, &out)

	ue, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Contains(t, ue.Message, ErrMsgInvalidJSON)
}

func TestFetch_TransportErrorDoesNotLeakKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := NewClient(addr, addr, WithRateLimit(0), WithRetry(time.Millisecond, 1))
	err := c.Fetch(context.Background(), "/x", "topsecretkey", nil, nil)

	ue, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, 0, ue.Code)
	assert.NotContains(t, err.Error(), "topsecretkey")
}

func TestFetch_ContextCancelled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Fetch(ctx, "/x", "k", nil, nil)

	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestFetchAttacksPage_Params(t *testing.T) {
	var queries []url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query())
		w.Write([]byte(`{"attacks":[{"id":"7","started":100,"ended":"110","result":"Mugged",
			"respect_gain":"1.5","attacker":{"id":1,"name":"A"},"defender":{"id":2,"name":null},"money_mugged":500}]}`))
	})

	first, err := c.FetchAttacksPage(context.Background(), "k", 0, 100)
	require.NoError(t, err)
	_, err = c.FetchAttacksPage(context.Background(), "k", 555, 50)
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, "100", queries[0].Get("limit"))
	assert.Equal(t, "DESC", queries[0].Get("sort"))
	assert.False(t, queries[0].Has("to"))
	assert.Equal(t, "555", queries[1].Get("to"))
	assert.Equal(t, "50", queries[1].Get("limit"))

	require.Len(t, first, 1)
	a := first[0]
	assert.Equal(t, int64(7), a.ID.Value)
	assert.Equal(t, int64(110), a.Ended.Value)
	assert.InDelta(t, 1.5, a.RespectGain.Value, 1e-9)
	assert.Equal(t, int64(1), a.Attacker.ID.Value)
	assert.Nil(t, a.Defender.Name)
	assert.Contains(t, string(a.Raw), "money_mugged")
}

func TestFactionMembers(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/faction/", r.URL.Path)
		assert.Equal(t, "basic,members", r.URL.Query().Get("selections"))
		w.Write([]byte(`{"members":{"10":{"name":"Alice"},"x":{"name":"Bad"},"11":{"name":"  "}}}`))
	})

	m, err := c.FactionMembers(context.Background(), "k")

	require.NoError(t, err)
	assert.Equal(t, map[int64]string{10: "Alice"}, m)
}

func TestUserName(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/42", r.URL.Path)
		w.Write([]byte(`{"player_id":42,"name":" Bob "}`))
	})

	name, err := c.UserName(context.Background(), "k", 42)

	require.NoError(t, err)
	assert.Equal(t, "Bob", name)
}
