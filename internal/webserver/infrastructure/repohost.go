package infrastructure

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// GitHost talks to the remote repository-hosting API. The wire format is
// plain JSON over HTTP with a bearer token; every operation reports
// success or failure and nothing else.
type GitHost struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewGitHost(baseURL, token string) *GitHost {
	return &GitHost{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GitHost) CreateRepository(name string) error {
	payload, _ := json.Marshal(map[string]string{"name": name})
	return g.do(http.MethodPost, fmt.Sprintf("%s/repos", g.baseURL), payload, http.StatusCreated)
}

func (g *GitHost) PushFile(repository, path string, content []byte) error {
	payload, _ := json.Marshal(map[string]string{
		"content": base64.StdEncoding.EncodeToString(content),
	})
	return g.do(http.MethodPut, fmt.Sprintf("%s/repos/%s/contents/%s", g.baseURL, repository, path), payload, http.StatusCreated)
}

func (g *GitHost) GetRepository(name string) (bool, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/repos/%s", g.baseURL, name), nil)
	if err != nil {
		return false, err
	}
	response, err := g.send(req)
	if err != nil {
		return false, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if response.StatusCode != http.StatusOK {
		return false, fmt.Errorf("repository host returned status %d", response.StatusCode)
	}
	return true, nil
}

func (g *GitHost) DeleteRepository(name string) error {
	return g.do(http.MethodDelete, fmt.Sprintf("%s/repos/%s", g.baseURL, name), nil, http.StatusNoContent)
}

func (g *GitHost) TriggerWorkflow(repository, workflow string) error {
	return g.do(http.MethodPost, fmt.Sprintf("%s/repos/%s/workflows/%s/dispatches", g.baseURL, repository, workflow), nil, http.StatusNoContent)
}

func (g *GitHost) do(method, url string, payload []byte, expectedStatus int) error {
	req, err := http.NewRequest(method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	response, err := g.send(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != expectedStatus {
		log.Printf("repository host returned status %d for %s %s\n", response.StatusCode, method, url)
		return fmt.Errorf("repository host returned status %d", response.StatusCode)
	}
	return nil
}

func (g *GitHost) send(req *http.Request) (*http.Response, error) {
	if g.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.token))
	}
	return g.client.Do(req)
}

// NoRepoHost is used when no repository host is configured. Submissions
// can still be assigned and reviewed, there just is no remote repository.
type NoRepoHost struct {
}

func (n NoRepoHost) CreateRepository(name string) error {
	return nil
}

func (n NoRepoHost) PushFile(repository, path string, content []byte) error {
	return nil
}

func (n NoRepoHost) GetRepository(name string) (bool, error) {
	return true, nil
}

func (n NoRepoHost) DeleteRepository(name string) error {
	return nil
}

func (n NoRepoHost) TriggerWorkflow(repository, workflow string) error {
	return nil
}
