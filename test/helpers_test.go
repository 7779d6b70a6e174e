//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pemdes/webdesa/pkg"
	"github.com/pemdes/webdesa/pkg/session"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

type apiResponse struct {
	StatusCode int
	Body       string
}

func (r apiResponse) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(r.Body), v), r.Body)
}

func call(ctx context.Context, t *testing.T, method, path, body, token string) apiResponse {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return apiResponse{StatusCode: resp.StatusCode, Body: string(respBytes)}
}

func doLogin(ctx context.Context, t *testing.T, username, password string) string {
	t.Helper()

	m, err := session.NewManager(serverEndpoint, session.NewMemoryStore(), session.WithHTTPClient(httpClient))
	require.NoError(t, err)
	_, err = m.Login(ctx, username, password)
	require.NoError(t, err)

	token, err := m.Token()
	require.NoError(t, err)
	return token
}

// addAdmin inserts an extra active admin, so destructive flows leave the
// shared test account untouched.
func (s *IntegrationTestSuite) addAdmin(ctx context.Context, username, password string) int {
	t := s.T()
	hash, err := pkg.HashPasswordWithCost(password, 4)
	require.NoError(t, err)

	var id int
	err = s.DB.QueryRowContext(
		ctx,
		`INSERT INTO admin_account (username, password_hash, is_active) VALUES ($1, $2, TRUE) RETURNING id`,
		username, hash,
	).Scan(&id)
	require.NoError(t, err)
	return id
}
