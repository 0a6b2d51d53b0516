package torn

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// UserBasic is the owner of an API key, or a looked-up player
type UserBasic struct {
	PlayerID Int64  `json:"player_id"`
	Name     string `json:"name"`
	Level    Int64  `json:"level"`
}

// KeyOwner returns the player that owns apiKey. Used to verify a key before storing it.
func (c *Client) KeyOwner(ctx context.Context, apiKey string) (*UserBasic, error) {
	params := url.Values{}
	params.Set("selections", "basic")

	var u UserBasic
	if err := c.FetchV1(ctx, PathUserSelf, apiKey, params, &u); err != nil {
		return nil, err
	}
	u.Name = strings.TrimSpace(u.Name)
	return &u, nil
}

// UserName looks up a single player's name. Empty when the player has no name.
func (c *Client) UserName(ctx context.Context, apiKey string, id int64) (string, error) {
	params := url.Values{}
	params.Set("selections", "basic")

	var u UserBasic
	if err := c.FetchV1(ctx, PathUserSelf+strconv.FormatInt(id, 10), apiKey, params, &u); err != nil {
		return "", err
	}
	return strings.TrimSpace(u.Name), nil
}

type factionMembersResponse struct {
	Members map[string]struct {
		Name string `json:"name"`
	} `json:"members"`
}

// FactionMembers returns member id to name for the faction of apiKey's owner.
func (c *Client) FactionMembers(ctx context.Context, apiKey string) (map[int64]string, error) {
	params := url.Values{}
	params.Set("selections", "basic,members")

	var resp factionMembersResponse
	if err := c.FetchV1(ctx, PathFactionMembers, apiKey, params, &resp); err != nil {
		return nil, err
	}

	out := make(map[int64]string, len(resp.Members))
	for k, m := range resp.Members {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		if name := strings.TrimSpace(m.Name); name != "" {
			out[id] = name
		}
	}
	return out, nil
}
