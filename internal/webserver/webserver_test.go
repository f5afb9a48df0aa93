package webserver_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ruizdev/challenger/internal/webserver"
	"github.com/ruizdev/challenger/internal/webserver/infrastructure"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

var jwtSecret = []byte("importantsecret")

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Server returns unauthorized if the user tries to list users without logging in", "/users", http.StatusUnauthorized},
		{"Server returns unauthorized if the user tries to access a submission without logging in", "/submissions", http.StatusUnauthorized},
		{"Server returns not found if the user tries to access a non-existent URL", "/xx", http.StatusNotFound},
	}

	db := infrastructure.Connect(":memory:")
	app := bootstrapApp(db, &infrastructure.NoEmail{}, infrastructure.NoRepoHost{}, afero.NewMemMapFs())

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tcase.url, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Errorf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}
}

func bootstrapApp(db *gorm.DB, sender webserver.Sender, repoHost webserver.RepoHost, appFs afero.Fs) *fiber.App {
	webserverConfig := webserver.Config{
		JwtSecret:         jwtSecret,
		FQDN:              "http://localhost:3000",
		MinPasswordLength: 8,
		SessionTimeout:    24 * time.Hour,
		InvitationTimeout: 72 * time.Hour,
		RecoveryTimeout:   2 * time.Hour,
		ChallengeDuration: 168 * time.Hour,
		TemplatesPath:     "templates",
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender, repoHost, appFs)
	return webserver.New(webserverConfig, controllers)
}

func login(app *fiber.App, email, password string) (*http.Cookie, error) {
	data := url.Values{
		"email":    {email},
		"password": {password},
	}

	req, err := http.NewRequest(http.MethodPost, "/sessions", strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(req)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login returned status %d", response.StatusCode)
	}

	if len(response.Cookies()) == 0 {
		return nil, fmt.Errorf("cookie not set up")
	}
	return response.Cookies()[0], nil
}

func postRequest(data url.Values, cookie *http.Cookie, app *fiber.App, route string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, route, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return app.Test(req)
}

func getRequest(cookie *http.Cookie, app *fiber.App, route string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, route, nil)
	if err != nil {
		return nil, err
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return app.Test(req)
}

func mustReturnStatus(response *http.Response, expectedStatus int, t *testing.T) {
	t.Helper()

	if response.StatusCode != expectedStatus {
		t.Errorf("Wrong status code received, expected %d, got %d", expectedStatus, response.StatusCode)
	}
}

func decodeJSON(response *http.Response, target interface{}) error {
	defer response.Body.Close()
	return json.NewDecoder(response.Body).Decode(target)
}

var tokenPattern = regexp.MustCompile(`token=([A-Za-z0-9._-]+)`)

// emailedToken extracts the signed token from an invitation or recovery
// email body.
func emailedToken(body string) string {
	matches := tokenPattern.FindStringSubmatch(body)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}

// invite sends an invitation as admin and returns the token emailed to
// the address.
func invite(app *fiber.App, smtpMock *infrastructure.SMTPMock, adminCookie *http.Cookie, email string, isAdmin bool, t *testing.T) string {
	t.Helper()

	data := url.Values{"email": {email}}
	if isAdmin {
		data.Set("admin", "true")
	}

	smtpMock.Wg.Add(1)
	response, err := postRequest(data, adminCookie, app, "/users")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	smtpMock.Wg.Wait()
	mustReturnStatus(response, fiber.StatusCreated, t)

	signedToken := emailedToken(smtpMock.LastBody())
	if signedToken == "" {
		t.Fatal("No token found in the invitation email")
	}
	return signedToken
}

// register completes a registration with the given token and returns the
// session cookie established for the new account.
func register(app *fiber.App, signedToken, password string, t *testing.T) *http.Cookie {
	t.Helper()

	data := url.Values{
		"token":    {signedToken},
		"password": {password},
	}
	response, err := postRequest(data, nil, app, "/register")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnStatus(response, fiber.StatusOK, t)

	if len(response.Cookies()) == 0 {
		t.Fatal("No session cookie set after registration")
	}
	return response.Cookies()[0]
}

// addProject creates a project as admin so invitations have something to
// assign.
func addProject(app *fiber.App, adminCookie *http.Cookie, name, templatePath string, t *testing.T) {
	t.Helper()

	data := url.Values{
		"name":          {name},
		"template_path": {templatePath},
	}
	response, err := postRequest(data, adminCookie, app, "/projects")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err.Error())
	}
	mustReturnStatus(response, fiber.StatusCreated, t)
}
