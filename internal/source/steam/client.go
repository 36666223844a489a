// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultAPIBaseURL = "https://api.steampowered.com"
	ownedGamesPath    = "/IPlayerService/GetOwnedGames/v1/"

	requestTimeout = 10 * time.Second
)

// ErrSteamAPI reports a failed call to the Steam Web API.
var ErrSteamAPI = errors.New("steam api request failed")

// Game is one owned game as returned by the Steam Web API.
type Game struct {
	AppID            int64  `json:"appid"`
	Name             string `json:"name"`
	PlaytimeForever  int64  `json:"playtime_forever"`
	PlaytimeWindows  int64  `json:"playtime_windows_forever"`
	PlaytimeMac      int64  `json:"playtime_mac_forever"`
	PlaytimeLinux    int64  `json:"playtime_linux_forever"`
	LastPlayed       int64  `json:"rtime_last_played"`
	PlaytimeTwoWeeks int64  `json:"playtime_2weeks"`
	HasVisibleStats  bool   `json:"has_community_visible_stats"`
	IconURL          string `json:"img_icon_url"`
	LogoURL          string `json:"img_logo_url"`
}

// Client calls the Steam Web API on behalf of a single user.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	steamID    string
}

// NewClient returns a Client authenticated with the given Web API key for the
// given SteamID64.
func NewClient(apiKey, steamID string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    defaultAPIBaseURL,
		apiKey:     apiKey,
		steamID:    steamID,
	}
}

// OwnedGames returns the complete owned-games library of the configured user,
// free games with playtime included. A private profile returns an empty list.
func (c *Client) OwnedGames(ctx context.Context) ([]Game, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamid", c.steamID)
	params.Set("include_appinfo", "true")
	params.Set("include_played_free_games", "true")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ownedGamesPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSteamAPI, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrSteamAPI, response.StatusCode)
	}

	var payload struct {
		Response struct {
			Games []Game `json:"games"`
		} `json:"response"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSteamAPI, err)
	}

	return payload.Response.Games, nil
}
