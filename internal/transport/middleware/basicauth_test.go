package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/pkg/ctxutil"
)

func TestBasicAuth_Plaintext(t *testing.T) {
	t.Parallel()

	cfg := config.AuthConfig{AdminUsername: "admin", AdminPassword: "correct-horse"}

	var gotAdmin string
	handler := BasicAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdmin, _ = ctxutil.AdminUserFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		wantStatus int
	}{
		{"valid credentials", "admin", "correct-horse", true, http.StatusOK},
		{"wrong password", "admin", "wrong", true, http.StatusUnauthorized},
		{"wrong username", "root", "correct-horse", true, http.StatusUnauthorized},
		{"missing header", "", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/terms", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if rec.Header().Get("WWW-Authenticate") == "" {
					t.Error("401 must carry WWW-Authenticate")
				}
			}
		})
	}

	if gotAdmin != "admin" {
		t.Errorf("admin user on context: got %q, want %q", gotAdmin, "admin")
	}
}

func TestBasicAuth_BcryptHash(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	cfg := config.AuthConfig{AdminUsername: "admin", AdminPassword: string(hash)}

	handler := BasicAuth(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/terms", nil)
	req.SetBasicAuth("admin", "correct-horse")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status with valid bcrypt password: got %d, want 200", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/terms", nil)
	req.SetBasicAuth("admin", "wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status with wrong password: got %d, want 401", rec.Code)
	}
}
