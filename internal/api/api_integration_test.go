// internal/api/api_integration_test.go
package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "bloomshop/internal"
	"bloomshop/internal/domain"
)

// testApp is the global application instance for testing.
var testApp *app.Application

// testServer is the httptest server.
var testServer *httptest.Server

// TestMain is the special entry point for Go tests, executed once before all tests.
func TestMain(m *testing.M) {
	// 1. Initialize the application. All stores are in-memory, so no
	// external services are required.
	testApp = app.NewApplication()
	if err := testApp.Initialize(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize test application: %v\n", err)
		os.Exit(1)
	}

	// 2. Start an httptest server to test the HTTP handling layer.
	testServer = httptest.NewServer(testApp.HTTPHandler)
	defer testServer.Close()

	// 3. Run all tests. State is process-wide, so each test uses its own
	// usernames and flowers rather than resetting the stores.
	code := m.Run()

	if err := testApp.Shutdown(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to shutdown test application: %v\n", err)
		os.Exit(1)
	}

	os.Exit(code)
}

// makeRequest helper function: sends an HTTP request to the test server.
func makeRequest(t *testing.T, method, path, contentType string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(method, testServer.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, string(respBody)
}

// makeJSONRequest sends a JSON-bodied request.
func makeJSONRequest(t *testing.T, method, path, body string) (*http.Response, string) {
	return makeRequest(t, method, path, "application/json", strings.NewReader(body))
}

// makeFormRequest sends a form-encoded POST, the content type the login
// and cart-add endpoints expect.
func makeFormRequest(t *testing.T, path string, form url.Values) (*http.Response, string) {
	return makeRequest(t, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// signupUser helper function: registers a user through the API.
func signupUser(t *testing.T, username, password string) {
	body := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)
	resp, respBody := makeJSONRequest(t, http.MethodPost, "/signup", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, respBody, "User created successfully")
}

// TestSignupLoginIntegration covers signup followed by login with the
// same and with wrong credentials.
func TestSignupLoginIntegration(t *testing.T) {
	t.Run("SignupThenLogin", func(t *testing.T) {
		signupUser(t, "login_user", "p1")

		resp, body := makeFormRequest(t, "/login", url.Values{"username": {"login_user"}, "password": {"p1"}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var token map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &token))
		// The token is a fixed literal, identical for every user and session.
		assert.Equal(t, "jwt_token", token["access_token"])
		assert.Equal(t, "bearer", token["token_type"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		signupUser(t, "wrong_pass_user", "p1")

		resp, body := makeFormRequest(t, "/login", url.Values{"username": {"wrong_pass_user"}, "password": {"nope"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Invalid credentials")
	})

	t.Run("UnknownUser", func(t *testing.T) {
		resp, body := makeFormRequest(t, "/login", url.Values{"username": {"never_signed_up"}, "password": {"p1"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Invalid credentials")
	})

	t.Run("RepeatedSignupOverwrites", func(t *testing.T) {
		signupUser(t, "rewrite_user", "old")
		signupUser(t, "rewrite_user", "new")

		// Last write wins: the old password no longer matches.
		resp, _ := makeFormRequest(t, "/login", url.Values{"username": {"rewrite_user"}, "password": {"old"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, _ = makeFormRequest(t, "/login", url.Values{"username": {"rewrite_user"}, "password": {"new"}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("EmptyUsernameSignupAndLogin", func(t *testing.T) {
		// "" is a valid username: signup accepts it and login with the
		// matching password returns the fixed token.
		resp, body := makeJSONRequest(t, http.MethodPost, "/signup", `{"username": "", "password": "p1"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, body, "User created successfully")

		resp, body = makeFormRequest(t, "/login", url.Values{"username": {""}, "password": {"p1"}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "jwt_token")
	})

	t.Run("EmptyPasswordIsCredentialMismatch", func(t *testing.T) {
		signupUser(t, "empty_pw_user", "p1")

		// A present-but-empty password reaches the credential check and
		// fails there, not at shape validation.
		resp, body := makeFormRequest(t, "/login", url.Values{"username": {"empty_pw_user"}, "password": {""}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "Invalid credentials")
	})

	t.Run("MalformedSignupBody", func(t *testing.T) {
		resp, _ := makeJSONRequest(t, http.MethodPost, "/signup", `{"username": "x"`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingSignupFields", func(t *testing.T) {
		resp, _ := makeJSONRequest(t, http.MethodPost, "/signup", `{"username": "no_password"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingLoginFields", func(t *testing.T) {
		resp, _ := makeFormRequest(t, "/login", url.Values{"username": {"someone"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestProfileIntegration covers the mocked profile endpoint.
func TestProfileIntegration(t *testing.T) {
	t.Run("MissingBearer", func(t *testing.T) {
		resp, body := makeRequest(t, http.MethodGet, "/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "Not authenticated")
	})

	t.Run("AnyBearerAccepted", func(t *testing.T) {
		signupUser(t, "profile_user", "p1")

		req, err := http.NewRequest(http.MethodGet, testServer.URL+"/profile", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer total-garbage")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		respBody, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var profile map[string]interface{}
		require.NoError(t, json.Unmarshal(respBody, &profile))
		// The payload is fixed and never reflects the actual user.
		assert.Equal(t, "mock_user", profile["username"])
		assert.Equal(t, "http://example.com/photo.jpg", profile["photo_url"])
	})
}

// TestFlowersIntegration covers catalog creation and listing.
func TestFlowersIntegration(t *testing.T) {
	listFlowers := func(t *testing.T) []domain.Flower {
		resp, body := makeRequest(t, http.MethodGet, "/flowers", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var flowers []domain.Flower
		require.NoError(t, json.Unmarshal([]byte(body), &flowers))
		return flowers
	}

	t.Run("AddAndList", func(t *testing.T) {
		before := listFlowers(t)

		resp, body := makeJSONRequest(t, http.MethodPost, "/flowers", `{"name": "Rose", "price": 10.0}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var created map[string]string
		require.NoError(t, json.Unmarshal([]byte(body), &created))
		firstID := created["flower_id"]
		require.NotEmpty(t, firstID)

		resp, body = makeJSONRequest(t, http.MethodPost, "/flowers", `{"name": "Tulip", "price": 5.0}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, json.Unmarshal([]byte(body), &created))
		secondID := created["flower_id"]
		require.NotEmpty(t, secondID)

		// Identifiers are unique across calls.
		assert.NotEqual(t, firstID, secondID)

		// Both flowers appear at the tail of the listing, in the order added.
		after := listFlowers(t)
		require.Len(t, after, len(before)+2)
		assert.Equal(t, domain.Flower{Name: "Rose", Price: 10.0}, after[len(after)-2])
		assert.Equal(t, domain.Flower{Name: "Tulip", Price: 5.0}, after[len(after)-1])
	})

	t.Run("MissingPrice", func(t *testing.T) {
		resp, _ := makeJSONRequest(t, http.MethodPost, "/flowers", `{"name": "Rose"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		resp, _ := makeJSONRequest(t, http.MethodPost, "/flowers", `not json`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ListIndependentOfCartAndPurchases", func(t *testing.T) {
		before := listFlowers(t)

		resp, _ := makeFormRequest(t, "/cart/items", url.Values{"flower_id": {"1"}})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp, _ = makeRequest(t, http.MethodPost, "/purchased", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, before, listFlowers(t))
	})
}

// TestCartIntegration covers the mocked cart endpoints.
func TestCartIntegration(t *testing.T) {
	wantCart := []map[string]interface{}{
		{"id": "flower1", "name": "Rose", "price": 10.0},
		{"id": "flower2", "name": "Tulip", "price": 5.0},
	}

	getCart := func(t *testing.T) []map[string]interface{} {
		resp, body := makeRequest(t, http.MethodGet, "/cart/items", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &items))
		return items
	}

	t.Run("FixedListing", func(t *testing.T) {
		assert.Equal(t, wantCart, getCart(t))
	})

	t.Run("AddItem", func(t *testing.T) {
		resp, body := makeFormRequest(t, "/cart/items", url.Values{"flower_id": {"7"}})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Flower added to cart")

		// The listing is a fixed payload; adding items does not change it.
		assert.Equal(t, wantCart, getCart(t))
	})

	t.Run("NonIntegerFlowerID", func(t *testing.T) {
		resp, _ := makeFormRequest(t, "/cart/items", url.Values{"flower_id": {"rose"}})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingFlowerID", func(t *testing.T) {
		resp, _ := makeFormRequest(t, "/cart/items", url.Values{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestPurchasedIntegration covers the mocked purchase endpoints.
func TestPurchasedIntegration(t *testing.T) {
	wantPurchased := []map[string]interface{}{
		{"name": "Rose", "price": 10.0},
		{"name": "Tulip", "price": 5.0},
	}

	getPurchased := func(t *testing.T) []map[string]interface{} {
		resp, body := makeRequest(t, http.MethodGet, "/purchased", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(body), &items))
		return items
	}

	t.Run("Checkout", func(t *testing.T) {
		resp, body := makeRequest(t, http.MethodPost, "/purchased", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "Items purchased")
	})

	t.Run("FixedListing", func(t *testing.T) {
		assert.Equal(t, wantPurchased, getPurchased(t))
	})

	t.Run("ListingIgnoresPurchaseStore", func(t *testing.T) {
		// Seed the purchase store directly; the endpoint is not wired to
		// it and must keep returning the fixed payload.
		err := testApp.PurchaseRepository.SavePurchase(context.Background(),
			*domain.NewPurchase("alice", "f1"))
		require.NoError(t, err)

		assert.Equal(t, wantPurchased, getPurchased(t))

		// The record itself is retrievable through the store, confirming
		// the disconnect sits in the endpoint layer, not the store.
		records, err := testApp.PurchaseRepository.ListPurchases(context.Background(), "alice")
		require.NoError(t, err)
		assert.NotEmpty(t, records)
	})
}

// TestHealthIntegration covers the health endpoint.
func TestHealthIntegration(t *testing.T) {
	resp, body := makeRequest(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
}
