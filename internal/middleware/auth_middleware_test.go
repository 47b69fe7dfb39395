package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Maspur102/elokalfa/internal/service"
	"github.com/Maspur102/elokalfa/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(tokenString string) (*service.Actor, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Actor), args.Error(1)
}

func newTestApp(auth Authenticator) *fiber.App {
	app := fiber.New()
	app.Get("/me", RequireAuth(auth, "pos_session"), func(c *fiber.Ctx) error {
		actor, _ := ActorFrom(c)
		return c.SendString(actor.Username)
	})
	app.Get("/users", RequireAuth(auth, "pos_session"), RequirePrivilege("user:manage"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/either", RequireAuth(auth, "pos_session"), RequireAnyPrivilege("report:export", "dashboard:view"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireAuth(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Authenticate", "good").Return(&service.Actor{UserID: 2, Username: "kasir1", Privileges: []string{"dashboard:view"}}, nil)
	auth.On("Authenticate", "stale").Return(nil, service.ErrSessionReplaced)
	auth.On("Authenticate", "forged").Return(nil, jwt.ErrInvalidToken)
	app := newTestApp(auth)

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{"bearer header", "Bearer good", "", 200},
		{"session cookie", "", "good", 200},
		{"missing", "", "", 401},
		{"bad scheme", "Basic good", "", 401},
		{"rotated version", "Bearer stale", "", 401},
		{"invalid token", "", "forged", 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "pos_session", Value: tt.cookie})
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequirePrivilege(t *testing.T) {
	auth := new(MockAuthenticator)
	auth.On("Authenticate", "cashier").Return(&service.Actor{Username: "kasir1", Privileges: []string{"dashboard:view"}}, nil)
	auth.On("Authenticate", "admin").Return(&service.Actor{Username: "admin", Privileges: []string{"user:manage"}}, nil)
	app := newTestApp(auth)

	get := func(path, token string) int {
		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, 403, get("/users", "cashier"))
	assert.Equal(t, 200, get("/users", "admin"))
	assert.Equal(t, 200, get("/either", "cashier"))
	assert.Equal(t, 403, get("/either", "admin"))
}
