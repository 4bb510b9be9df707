package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
	"github.com/locallink/local-link/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(t *testing.T, method, target string, payload map[string]string) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func userCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.DB.Model(&models.User{}).Count(&count).Error)
	return count
}

func TestRegisterWeakPassword(t *testing.T) {
	testutil.SetupDB(t)
	app := testutil.NewApp()

	cases := map[string]string{
		"short1A!": "Password must be at least 8 characters long",
		"alllower1!": "Password must contain at least one uppercase letter",
		"ALLUPPER1!": "Password must contain at least one lowercase letter",
		"NoDigits!!": "Password must contain at least one number",
		"NoSymbol11": "Password must contain at least one special character",
	}

	for password, reason := range cases {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/register", map[string]string{
			"username":  "alice",
			"email":     "alice@test.com",
			"password":  password,
			"user_type": "student",
			"full_name": "Alice Doe",
		}), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, reason, decodeBody(t, resp)["error"])
	}

	assert.EqualValues(t, 0, userCount(t))
}

func TestRegisterDuplicateCredentials(t *testing.T) {
	testutil.SetupDB(t)
	app := testutil.NewApp()
	testutil.CreateUser(t, "alice", models.TypeStudent, "DemoPass123!")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/register", map[string]string{
		"username":  "alice",
		"email":     "other@test.com",
		"password":  "DemoPass123!",
		"user_type": "student",
		"full_name": "Alice Again",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	assert.EqualValues(t, 1, userCount(t))

	var guides int64
	require.NoError(t, db.DB.Model(&models.Guide{}).Count(&guides).Error)
	assert.EqualValues(t, 0, guides)
}

func TestRegisterLoginDashboardFlow(t *testing.T) {
	testutil.SetupDB(t)
	app := testutil.NewApp()

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/register", map[string]string{
		"username":  "alice",
		"email":     "alice@test.com",
		"password":  "DemoPass123!",
		"user_type": "student",
		"full_name": "Alice Doe",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	registered := decodeBody(t, resp)
	assert.Equal(t, "dashboard", registered["next"])
	assert.NotEmpty(t, registered["token"])

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/login", map[string]string{
		"username": "alice",
		"password": "DemoPass123!",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	loggedIn := decodeBody(t, resp)
	token, _ := loggedIn["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats := decodeBody(t, resp)["statistics"].(map[string]interface{})
	assert.EqualValues(t, 0, stats["sessions_count"])
	assert.EqualValues(t, 0, stats["total_spent"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	testutil.SetupDB(t)
	app := testutil.NewApp()
	testutil.CreateUser(t, "alice", models.TypeStudent, "DemoPass123!")

	// Wrong password and unknown username get the same generic message.
	for _, payload := range []map[string]string{
		{"username": "alice", "password": "WrongPass123!"},
		{"username": "nobody", "password": "DemoPass123!"},
	} {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/login", payload), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid username or password", decodeBody(t, resp)["error"])
	}
}

func TestRegisterGuideRequiresDocument(t *testing.T) {
	testutil.SetupDB(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	app := testutil.NewApp()

	var scanHits atomic.Int64
	scan := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scanHits.Add(1)
		json.NewEncoder(w).Encode(map[string]string{"decision": "approve"})
	}))
	defer scan.Close()
	t.Setenv("IDANALYZER_SCAN_URL", scan.URL)

	fields := map[string]string{
		"username":  "bob",
		"email":     "bob@test.com",
		"password":  "DemoPass123!",
		"user_type": "local",
		"full_name": "Bob Guide",
	}

	// No document at all.
	body, contentType := testutil.MultipartForm(t, fields, "", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Disallowed extension, rejected before any row or external call.
	body, contentType = testutil.MultipartForm(t, fields, "id_document", "malware.exe", []byte("bad"))
	req = httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.EqualValues(t, 0, userCount(t))
	assert.EqualValues(t, 0, scanHits.Load())
}

func TestRegisterGuideDocumentApproved(t *testing.T) {
	testutil.SetupDB(t)
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)
	app := testutil.NewApp()

	scan := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"decision": "approve"})
	}))
	defer scan.Close()
	t.Setenv("IDANALYZER_SCAN_URL", scan.URL)

	body, contentType := testutil.MultipartForm(t, map[string]string{
		"username":  "bob",
		"email":     "bob@test.com",
		"password":  "DemoPass123!",
		"user_type": "local",
		"full_name": "Bob Guide",
	}, "id_document", "passport.png", []byte("fake image"))
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "become-local", decodeBody(t, resp)["next"])

	var guide models.Guide
	require.NoError(t, db.DB.Joins("JOIN users ON users.id = local_guides.user_id").
		Where("users.username = ?", "bob").First(&guide).Error)
	assert.True(t, guide.IsVerified)
	assert.Equal(t, models.VerificationApproved, guide.VerificationStatus)
	assert.Equal(t, models.PlaceholderLocation, guide.City)

	// Temp upload removed on success.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegisterGuideScanFailureStaysPending(t *testing.T) {
	testutil.SetupDB(t)
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)
	app := testutil.NewApp()

	scan := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer scan.Close()
	t.Setenv("IDANALYZER_SCAN_URL", scan.URL)

	body, contentType := testutil.MultipartForm(t, map[string]string{
		"username":  "bob",
		"email":     "bob@test.com",
		"password":  "DemoPass123!",
		"user_type": "local",
		"full_name": "Bob Guide",
	}, "id_document", "passport.png", []byte("fake image"))
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var guide models.Guide
	require.NoError(t, db.DB.Joins("JOIN users ON users.id = local_guides.user_id").
		Where("users.username = ?", "bob").First(&guide).Error)
	assert.False(t, guide.IsVerified)
	assert.Equal(t, models.VerificationPending, guide.VerificationStatus)

	// Temp upload removed on failure too.
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
