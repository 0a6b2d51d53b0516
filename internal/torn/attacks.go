package torn

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/osse101/TornBot_Go/internal/logger"
)

// Participant is the attacker or defender of an attack
type Participant struct {
	ID   Int64   `json:"id"`
	Name *string `json:"name"`
}

// Attack is one item of the faction attacks feed as sent upstream.
// Raw keeps the original item for storage and for lenient field extraction.
type Attack struct {
	ID          Int64           `json:"id"`
	Started     Int64           `json:"started"`
	Ended       Int64           `json:"ended"`
	Result      *string         `json:"result"`
	RespectGain Float64         `json:"respect_gain"`
	RespectLoss Float64         `json:"respect_loss"`
	Attacker    *Participant    `json:"attacker"`
	Defender    *Participant    `json:"defender"`
	Raw         json.RawMessage `json:"-"`
}

func (a *Attack) UnmarshalJSON(b []byte) error {
	type plain Attack
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Attack(p)
	a.Raw = append(json.RawMessage(nil), b...)
	return nil
}

type attacksResponse struct {
	Attacks []Attack `json:"attacks"`
}

// FetchAttacksPage fetches one page of the faction attacks feed, newest first.
// A zero cursor requests the newest end of the feed.
func (c *Client) FetchAttacksPage(ctx context.Context, apiKey string, to int64, pageSize int) ([]Attack, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(pageSize))
	params.Set("sort", "DESC")
	if to > 0 {
		params.Set("to", strconv.FormatInt(to, 10))
	}

	var resp attacksResponse
	if err := c.Fetch(ctx, PathAttacksFull, apiKey, params, &resp); err != nil {
		return nil, err
	}
	return resp.Attacks, nil
}

// FetchAttacksSince walks the feed backwards from the newest end and returns every
// attack whose start time is at or after since, newest first. maxPages <= 0 means no limit.
func (c *Client) FetchAttacksSince(ctx context.Context, apiKey string, since int64, maxPages, pageSize int) ([]Attack, error) {
	return FetchSince(ctx, c, apiKey, since, maxPages, pageSize)
}

// PageFetcher fetches one page of the attacks feed
type PageFetcher interface {
	FetchAttacksPage(ctx context.Context, apiKey string, to int64, pageSize int) ([]Attack, error)
}

// FetchSince implements the window walk over any PageFetcher.
// It stops on an empty page, when the oldest item of a page predates since,
// after maxPages pages, or when the next cursor would be zero.
func FetchSince(ctx context.Context, pf PageFetcher, apiKey string, since int64, maxPages, pageSize int) ([]Attack, error) {
	var (
		out    []Attack
		cursor int64
	)

	for page := 0; maxPages <= 0 || page < maxPages; page++ {
		items, err := pf.FetchAttacksPage(ctx, apiKey, cursor, pageSize)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}

		for _, a := range items {
			if a.Started.Value >= since {
				out = append(out, a)
			}
		}

		last := items[len(items)-1]
		if last.Started.Value < since {
			break
		}

		next := NextCursor(cursor, last.Ended.Value)
		if next <= 0 {
			logger.FromContext(ctx).Debug(LogMsgCursorMissing, "page", page)
			break
		}
		cursor = next
	}

	return out, nil
}

// NextCursor derives the cursor for the page after one whose last item ended at ended.
// It returns 0 when there is no usable cursor, and steps back one second when the
// feed would otherwise return the same page again.
func NextCursor(prev, ended int64) int64 {
	if ended <= 0 {
		return 0
	}
	if prev > 0 && ended >= prev {
		return prev - 1
	}
	return ended
}
