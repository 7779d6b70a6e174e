//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pemdes/webdesa/pkg/session"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx := context.Background()

	cases := map[string]struct {
		body           string
		expectedStatus int
		expectedBody   string
	}{
		"wrong password": {
			body:           `{"username":"admin1","password":"wrongpass"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Username atau password salah"}`,
		},
		"unknown user": {
			body:           `{"username":"nobody","password":"wrongpass"}`,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Username atau password salah"}`,
		},
		"missing fields": {
			body:           `{"username":"admin1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Username dan password harus diisi"}`,
		},
	}

	for name, tc := range cases {
		resp := call(ctx, t, "POST", "/login", tc.body, "")
		assert.Equal(t, tc.expectedStatus, resp.StatusCode, name)
		assert.JSONEq(t, tc.expectedBody, resp.Body, name)
	}

	resp := call(ctx, t, "POST", "/login", `{"username":"admin1","password":"rahasia-desa"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp struct {
		Token string `json:"token"`
		User  struct {
			Username    string `json:"username"`
			DisplayName string `json:"display_name"`
			Role        string `json:"role"`
		} `json:"user"`
	}
	resp.decode(t, &loginResp)
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, testUsername, loginResp.User.Username)
	assert.Equal(t, testDisplayName, loginResp.User.DisplayName)
	assert.Equal(t, "admin", loginResp.User.Role)

	var lastLogin *time.Time
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT last_login FROM admin_account WHERE username = $1`, testUsername).Scan(&lastLogin))
	require.NotNil(t, lastLogin)
}

func (s *IntegrationTestSuite) TestVerify_Logout_Revokes() {
	t := s.T()
	ctx := context.Background()

	token := doLogin(ctx, t, testUsername, testPassword)

	resp := call(ctx, t, "POST", "/verify", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Body, `"username":"admin1"`)

	resp = call(ctx, t, "POST", "/logout", "", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, resp.Body)

	resp = call(ctx, t, "POST", "/verify", "", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Token tidak valid atau sudah kadaluarsa"}`, resp.Body)

	resp = call(ctx, t, "POST", "/news", `{"title":"x","content":"y"}`, token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestDeactivatedAccount() {
	t := s.T()
	ctx := context.Background()

	s.addAdmin(ctx, "kaur-umum", "password-kaur")
	token := doLogin(ctx, t, "kaur-umum", "password-kaur")

	_, err := s.DB.ExecContext(ctx, `UPDATE admin_account SET is_active = FALSE WHERE username = $1`, "kaur-umum")
	require.NoError(t, err)

	resp := call(ctx, t, "POST", "/verify", "", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"User tidak ditemukan atau tidak aktif"}`, resp.Body)

	resp = call(ctx, t, "POST", "/login", `{"username":"kaur-umum","password":"password-kaur"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Username atau password salah"}`, resp.Body)
}

func (s *IntegrationTestSuite) TestResetPassword() {
	t := s.T()
	ctx := context.Background()

	id := s.addAdmin(ctx, "kasi-pemerintahan", "password-lama")
	oldToken := doLogin(ctx, t, "kasi-pemerintahan", "password-lama")

	_, err := s.DB.ExecContext(
		ctx,
		`UPDATE admin_account SET reset_token = $1, reset_token_expires_at = $2 WHERE id = $3`,
		"reset-abc", time.Now().Add(time.Hour), id,
	)
	require.NoError(t, err)

	resp := call(ctx, t, "POST", "/reset-password", `{"token":"reset-abc","newPassword":"short"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Password minimal 8 karakter"}`, resp.Body)

	resp = call(ctx, t, "POST", "/reset-password", `{"token":"reset-abc","newPassword":"password-baru"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)

	// single use
	resp = call(ctx, t, "POST", "/reset-password", `{"token":"reset-abc","newPassword":"password-lain"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Token reset tidak valid atau sudah kadaluarsa"}`, resp.Body)

	var resetToken *string
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT reset_token FROM admin_account WHERE id = $1`, id).Scan(&resetToken))
	assert.Nil(t, resetToken)

	// sessions from before the reset are gone
	resp = call(ctx, t, "POST", "/verify", "", oldToken)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(ctx, t, "POST", "/login", `{"username":"kasi-pemerintahan","password":"password-lama"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	doLogin(ctx, t, "kasi-pemerintahan", "password-baru")
}

func (s *IntegrationTestSuite) TestExpiredResetToken() {
	t := s.T()
	ctx := context.Background()

	id := s.addAdmin(ctx, "kaur-keuangan", "password-kaur")
	_, err := s.DB.ExecContext(
		ctx,
		`UPDATE admin_account SET reset_token = $1, reset_token_expires_at = $2 WHERE id = $3`,
		"reset-expired", time.Now().Add(-time.Minute), id,
	)
	require.NoError(t, err)

	resp := call(ctx, t, "POST", "/reset-password", `{"token":"reset-expired","newPassword":"password-baru"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Token reset tidak valid atau sudah kadaluarsa"}`, resp.Body)

	doLogin(ctx, t, "kaur-keuangan", "password-kaur")
}

func (s *IntegrationTestSuite) TestSessionManager_ClearsOnUnauthorized() {
	t := s.T()
	ctx := context.Background()

	var redirected bool
	store := session.NewMemoryStore()
	m, err := session.NewManager(serverEndpoint, store,
		session.WithHTTPClient(httpClient),
		session.WithOnUnauthorized(func() { redirected = true }),
	)
	require.NoError(t, err)

	require.NoError(t, store.Save("forged.token.value"))
	_, err = m.Verify(ctx)
	assert.ErrorIs(t, err, session.ErrUnauthorized)
	assert.True(t, redirected)

	_, err = m.Token()
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)
}
