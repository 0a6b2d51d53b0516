package torn

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedFeed serves pages keyed by the cursor it expects
type pagedFeed struct {
	pages map[int64][]Attack
	calls []int64
	err   error
}

func (f *pagedFeed) FetchAttacksPage(ctx context.Context, apiKey string, to int64, pageSize int) ([]Attack, error) {
	f.calls = append(f.calls, to)
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[to], nil
}

func att(id, started, ended int64) Attack {
	return Attack{
		ID:      Int64{Value: id, Valid: true},
		Started: Int64{Value: started, Valid: true},
		Ended:   Int64{Value: ended, Valid: ended != 0},
	}
}

func ids(as []Attack) []int64 {
	out := make([]int64, 0, len(as))
	for _, a := range as {
		out = append(out, a.Started.Value)
	}
	return out
}

func TestFetchSince_WindowBoundary(t *testing.T) {
	feed := &pagedFeed{pages: map[int64][]Attack{
		0: {att(4, 400, 401), att(3, 300, 301), att(2, 200, 201), att(1, 100, 101)},
	}}

	got, err := FetchSince(context.Background(), feed, "k", 250, 3, 100)

	require.NoError(t, err)
	assert.Equal(t, []int64{400, 300}, ids(got))
	assert.Equal(t, []int64{0}, feed.calls, "oldest item predates since so no further page")
}

func TestFetchSince_FollowsCursorAcrossPages(t *testing.T) {
	feed := &pagedFeed{pages: map[int64][]Attack{
		0:   {att(4, 400, 401), att(3, 300, 301)},
		301: {att(2, 200, 201), att(1, 100, 101)},
	}}

	got, err := FetchSince(context.Background(), feed, "k", 250, 3, 2)

	require.NoError(t, err)
	assert.Equal(t, []int64{400, 300}, ids(got))
	assert.Equal(t, []int64{0, 301}, feed.calls)
}

func TestFetchSince_StopsOnEmptyPage(t *testing.T) {
	feed := &pagedFeed{pages: map[int64][]Attack{
		0: {att(2, 200, 201), att(1, 100, 101)},
	}}

	got, err := FetchSince(context.Background(), feed, "k", 0, 0, 2)

	require.NoError(t, err)
	assert.Equal(t, []int64{200, 100}, ids(got))
	assert.Equal(t, []int64{0, 101}, feed.calls)
}

func TestFetchSince_StopsOnZeroCursor(t *testing.T) {
	feed := &pagedFeed{pages: map[int64][]Attack{
		0: {att(2, 200, 201), att(1, 100, 0)},
	}}

	got, err := FetchSince(context.Background(), feed, "k", 0, 10, 2)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []int64{0}, feed.calls, "a zero cursor must never be sent as to=0")
}

func TestFetchSince_RespectsMaxPages(t *testing.T) {
	feed := &pagedFeed{pages: map[int64][]Attack{
		0:   {att(4, 400, 401)},
		401: {att(3, 300, 301)},
		301: {att(2, 200, 201)},
	}}

	got, err := FetchSince(context.Background(), feed, "k", 0, 2, 1)

	require.NoError(t, err)
	assert.Equal(t, []int64{400, 300}, ids(got))
	assert.Equal(t, []int64{0, 401}, feed.calls)
}

func TestFetchSince_PropagatesError(t *testing.T) {
	boom := &UpstreamError{Code: CodeTooManyRequests, Message: "Too many requests"}
	feed := &pagedFeed{err: boom}

	got, err := FetchSince(context.Background(), feed, "k", 0, 3, 100)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, boom))
}

func TestNextCursor(t *testing.T) {
	tests := []struct {
		name        string
		prev, ended int64
		want        int64
	}{
		{"first page", 0, 500, 500},
		{"moves backwards", 500, 400, 400},
		{"missing end", 500, 0, 0},
		{"stuck cursor steps back", 500, 500, 499},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextCursor(tt.prev, tt.ended))
		})
	}
}
