// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// GoogleConfig is the OAuth client configuration served to the client.
type GoogleConfig struct {
	ClientID    string `json:"client_id"`
	RedirectURI string `json:"redirect_uri,omitempty"`
}

// User is the backend's view of the authenticated account.
type User struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Picture      string `json:"picture,omitempty"`
	AuthProvider string `json:"auth_provider,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// LoginResult is the payload of a successful Google login exchange.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	User        User   `json:"user"`
}

// GetGoogleConfig fetches the Google OAuth client configuration.
func (c *Client) GetGoogleConfig(ctx context.Context) (*GoogleConfig, error) {
	data, err := c.get(ctx, "/auth/google/config", nil)
	if err != nil {
		return nil, err
	}
	var cfg GoogleConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse google config: %w", err)
	}
	return &cfg, nil
}

// GoogleLogin exchanges a Google ID token for a backend bearer token.
func (c *Client) GoogleLogin(ctx context.Context, idToken string) (*LoginResult, error) {
	data, err := c.post(ctx, "/auth/google", map[string]string{"id_token": idToken})
	if err != nil {
		return nil, err
	}
	var result LoginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse login result: %w", err)
	}
	return &result, nil
}

// Logout tells the backend the session is over. Token removal itself is
// client-side; a backend failure here is not fatal.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.post(ctx, "/auth/logout", nil)
	return err
}

// Me fetches the current authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	data, err := c.get(ctx, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse user: %w", err)
	}
	return &payload.User, nil
}
