package webserver_test

import (
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver/infrastructure"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

func TestPasswordRecovery(t *testing.T) {
	var (
		db       *gorm.DB
		app      *fiber.App
		smtpMock *infrastructure.SMTPMock
	)

	reset := func() {
		t.Helper()

		db = infrastructure.Connect(":memory:")
		smtpMock = &infrastructure.SMTPMock{}
		app = bootstrapApp(db, smtpMock, infrastructure.NoRepoHost{}, afero.NewMemMapFs())
	}

	requestRecovery := func(email string) string {
		t.Helper()

		smtpMock.Wg.Add(1)
		response, err := postRequest(url.Values{"email": {email}}, nil, app, "/recover")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		smtpMock.Wg.Wait()
		mustReturnStatus(response, fiber.StatusOK, t)

		signedToken := emailedToken(smtpMock.LastBody())
		if signedToken == "" {
			t.Fatal("No token found in the recovery email")
		}
		return signedToken
	}

	t.Run("A recovery email is sent for an existing account", func(t *testing.T) {
		reset()

		requestRecovery("admin@example.com")

		if smtpMock.LastAddress() != "admin@example.com" {
			t.Errorf("Expected recovery email for admin@example.com, got %s", smtpMock.LastAddress())
		}
	})

	t.Run("An unknown address gets the same response but no email", func(t *testing.T) {
		reset()

		response, err := postRequest(url.Values{"email": {"nobody@example.com"}}, nil, app, "/recover")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		if smtpMock.CalledSend() {
			t.Error("Expected no email to be sent for an unknown address")
		}
	})

	t.Run("A malformed address is rejected", func(t *testing.T) {
		reset()

		response, err := postRequest(url.Values{"email": {"not-an-email"}}, nil, app, "/recover")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusUnprocessableEntity, t)
	})

	t.Run("A recovery token lets the user choose a new password", func(t *testing.T) {
		reset()

		signedToken := requestRecovery("admin@example.com")

		data := url.Values{
			"token":    {signedToken},
			"password": {"a new password"},
		}
		response, err := postRequest(data, nil, app, "/reset-password")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		if _, err := login(app, "admin@example.com", "admin"); err == nil {
			t.Error("Expected the old password to stop working")
		}
		if _, err := login(app, "admin@example.com", "a new password"); err != nil {
			t.Errorf("Expected the new password to work: %v", err.Error())
		}
	})

	t.Run("A recovery token cannot be used twice", func(t *testing.T) {
		reset()

		signedToken := requestRecovery("admin@example.com")

		data := url.Values{
			"token":    {signedToken},
			"password": {"a new password"},
		}
		response, err := postRequest(data, nil, app, "/reset-password")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		data.Set("password", "yet another password")
		response, err = postRequest(data, nil, app, "/reset-password")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusUnauthorized, t)

		if _, err := login(app, "admin@example.com", "a new password"); err != nil {
			t.Errorf("Expected the first reset to still be in effect: %v", err.Error())
		}
	})

	t.Run("A weak password does not burn the recovery token", func(t *testing.T) {
		reset()

		signedToken := requestRecovery("admin@example.com")

		data := url.Values{
			"token":    {signedToken},
			"password": {"short"},
		}
		response, err := postRequest(data, nil, app, "/reset-password")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusUnprocessableEntity, t)

		data.Set("password", "long enough now")
		response, err = postRequest(data, nil, app, "/reset-password")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err.Error())
		}
		mustReturnStatus(response, fiber.StatusOK, t)

		if _, err := login(app, "admin@example.com", "long enough now"); err != nil {
			t.Errorf("Expected the retried reset to work: %v", err.Error())
		}
	})

	t.Run("Recovery is unavailable when no email service is configured", func(t *testing.T) {
		db = infrastructure.Connect(":memory:")
		app = bootstrapApp(db, &infrastructure.NoEmail{}, infrastructure.NoRepoHost{}, afero.NewMemMapFs())

		for _, route := range []string{"/recover", "/reset-password"} {
			response, err := postRequest(url.Values{"email": {"admin@example.com"}}, nil, app, route)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}
			mustReturnStatus(response, fiber.StatusNotFound, t)
		}
	})
}
