package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muktalchal/estate-api/internal/user"
)

func TestListUsers(t *testing.T) {
	srv, repos := testServer(t)
	repos.users.users = []user.User{
		{ID: primitive.NewObjectID(), Email: "a@example.com", Role: "user"},
		{ID: primitive.NewObjectID(), Email: "b@example.com", Role: "admin"},
	}

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := doRequest(t, srv, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var users []user.User
	if err := json.Unmarshal(w.Body.Bytes(), &users); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("len = %d, want 2", len(users))
	}
}

func TestCreateUser(t *testing.T) {
	srv, _ := testServer(t)

	body := `{"email": "new@example.com", "name": "New User", "photo_url": "https://cdn.example.com/p.png"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	w := doRequest(t, srv, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	created := decodeBody(t, w)
	if created["_id"] == nil || created["_id"] == "" {
		t.Error("created user should carry a store-generated _id")
	}
	if created["email"] != "new@example.com" {
		t.Errorf("email = %v, want new@example.com", created["email"])
	}
	if created["role"] != user.DefaultRole {
		t.Errorf("role = %v, want default %q", created["role"], user.DefaultRole)
	}
}

func TestCreateUser_ExplicitRole(t *testing.T) {
	srv, _ := testServer(t)

	body := `{"email": "admin@example.com", "role": "admin"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	w := doRequest(t, srv, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if created := decodeBody(t, w); created["role"] != "admin" {
		t.Errorf("role = %v, want admin", created["role"])
	}
}

func TestCreateUser_MissingEmail(t *testing.T) {
	srv, repos := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name": "No Email"}`))
	w := doRequest(t, srv, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if repos.users.calls != 0 {
		t.Error("invalid request should not reach the store")
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	srv, repos := testServer(t)

	body := `{"email": "dup@example.com", "name": "First"}`
	first := doRequest(t, srv, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	if first.Code != http.StatusCreated {
		t.Fatalf("first signup status = %d, want %d", first.Code, http.StatusCreated)
	}

	// Second signup with the same email returns the original document, not an
	// error and not a second insert.
	again := `{"email": "dup@example.com", "name": "Second"}`
	second := doRequest(t, srv, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(again)))

	if second.Code != http.StatusOK {
		t.Fatalf("duplicate signup status = %d, want %d", second.Code, http.StatusOK)
	}

	resp := decodeBody(t, second)
	if resp["message"] != "User already exists" {
		t.Errorf("message = %v, want %q", resp["message"], "User already exists")
	}
	existing, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("user field = %T, want object", resp["user"])
	}
	if existing["name"] != "First" {
		t.Errorf("duplicate response should carry the original document, got name = %v", existing["name"])
	}

	if len(repos.users.users) != 1 {
		t.Errorf("store holds %d users, want 1", len(repos.users.users))
	}
}

func TestCreateUser_PasswordNeverSerialized(t *testing.T) {
	srv, repos := testServer(t)

	body := `{"email": "secure@example.com", "password": "hunter2-long-enough"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	w := doRequest(t, srv, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	if strings.Contains(w.Body.String(), "hunter2") || strings.Contains(w.Body.String(), "password") {
		t.Errorf("response leaks password material: %s", w.Body.String())
	}

	stored := repos.users.users[0]
	if stored.PasswordHash == "" {
		t.Error("password should be hashed and stored")
	}
	if stored.PasswordHash == "hunter2-long-enough" {
		t.Error("password must not be stored in plaintext")
	}
}

func TestGetUser(t *testing.T) {
	srv, repos := testServer(t)
	repos.users.users = []user.User{
		{ID: primitive.NewObjectID(), Email: "found@example.com", Name: "Found", Role: "user"},
	}

	req := httptest.NewRequest(http.MethodGet, "/users/found@example.com", nil)
	w := doRequest(t, srv, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := decodeBody(t, w); body["name"] != "Found" {
		t.Errorf("name = %v, want Found", body["name"])
	}
}

func TestGetUser_NotFound(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users/absent@example.com", nil)
	w := doRequest(t, srv, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if body := decodeBody(t, w); body["message"] != "User not found" {
		t.Errorf("message = %v, want %q", body["message"], "User not found")
	}
}

func TestGetUserRole(t *testing.T) {
	srv, repos := testServer(t)
	repos.users.users = []user.User{
		{ID: primitive.NewObjectID(), Email: "mod@example.com", Name: "Moderator", PhotoURL: "https://cdn.example.com/m.png", Role: "moderator"},
	}

	req := httptest.NewRequest(http.MethodGet, "/users/mod@example.com/role", nil)
	w := doRequest(t, srv, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := decodeBody(t, w)
	if body["role"] != "moderator" {
		t.Errorf("role = %v, want moderator", body["role"])
	}
	if body["email"] != "mod@example.com" {
		t.Errorf("email = %v, want mod@example.com", body["email"])
	}
	// The role lookup carries only the identity fields, not the profile.
	if _, ok := body["name"]; ok {
		t.Error("role response should not include profile fields")
	}
}

func TestGetUserRole_NotFound(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/users/absent@example.com/role", nil)
	w := doRequest(t, srv, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestListUsers_StoreError(t *testing.T) {
	srv, repos := testServer(t)
	repos.users.fail = true

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	w := doRequest(t, srv, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestCreateUser_StoreError(t *testing.T) {
	srv, repos := testServer(t)
	repos.users.fail = true

	body := `{"email": "x@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	w := doRequest(t, srv, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}
