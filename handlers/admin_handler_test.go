package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejectTestApp mounts RejectVerification behind a stand-in for the JWT
// middleware so currentUserID resolves without a real token.
func rejectTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/admin/verifications/:providerId/reject", func(c *fiber.Ctx) error {
		c.Locals("user", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": uuid.New().String(),
			"role":    "admin",
		}))
		return c.Next()
	}, RejectVerification)
	return app
}

func postReject(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/admin/verifications/"+uuid.New().String()+"/reject", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

// A rejection without a reason is refused up front. database.DB is nil
// here, so anything past the validation guard would panic rather than
// return 400.
func TestRejectVerificationRequiresReason(t *testing.T) {
	app := rejectTestApp()

	assert.Equal(t, fiber.StatusBadRequest, postReject(t, app, `{"reason": ""}`))
	assert.Equal(t, fiber.StatusBadRequest, postReject(t, app, `{}`))
}

func TestRejectVerificationReasonValidation(t *testing.T) {
	require.Error(t, validate.Struct(RejectVerificationRequest{Reason: ""}))
	require.NoError(t, validate.Struct(RejectVerificationRequest{Reason: "ID document is unreadable"}))
}
