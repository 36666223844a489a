// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultIGDBBaseURL = "https://api.igdb.com/v4"
	externalGamesPath  = "/external_games"
	twitchTokenURL     = "https://id.twitch.tv/oauth2/token" //nolint:gosec // oauth endpoint, not a credential

	// externalCategorySteam is the IGDB external_games category for Steam app ids.
	externalCategorySteam = 1

	rateLimitedRetryDelay = time.Second
)

// ErrIGDBAPI reports a failed call to the IGDB API.
var ErrIGDBAPI = errors.New("igdb api request failed")

// IGDBClient resolves Steam app ids to IGDB game ids. It authenticates against
// the Twitch OAuth2 client-credentials endpoint and refreshes its bearer token
// automatically.
type IGDBClient struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// NewIGDBClient returns an IGDBClient for the given Twitch application credentials.
func NewIGDBClient(ctx context.Context, clientID, clientSecret string) *IGDBClient {
	credentials := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     twitchTokenURL,
	}

	return &IGDBClient{
		httpClient: credentials.Client(ctx),
		baseURL:    defaultIGDBBaseURL,
		clientID:   clientID,
	}
}

// GameID returns the IGDB game id for a Steam app id, or an empty string when
// IGDB has no match. A rate limited request is retried once after a short delay.
func (c *IGDBClient) GameID(ctx context.Context, appID string) (string, error) {
	query := fmt.Sprintf("fields game; where category = %d & uid = %q;", externalCategorySteam, appID)

	response, err := c.post(ctx, query)
	if err != nil {
		return "", err
	}

	if response.StatusCode == http.StatusTooManyRequests {
		response.Body.Close()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(rateLimitedRetryDelay):
		}

		if response, err = c.post(ctx, query); err != nil {
			return "", err
		}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status code %d", ErrIGDBAPI, response.StatusCode)
	}

	var matches []struct {
		Game int64 `json:"game"`
	}
	if err := json.NewDecoder(response.Body).Decode(&matches); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIGDBAPI, err)
	}

	if len(matches) == 0 {
		return "", nil
	}

	return strconv.FormatInt(matches[0].Game, 10), nil
}

func (c *IGDBClient) post(ctx context.Context, query string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+externalGamesPath, strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Client-ID", c.clientID)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIGDBAPI, err)
	}

	return response, nil
}
