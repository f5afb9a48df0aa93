package infrastructure

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// RepoHostCalls records the requests a mocked repository host received.
type RepoHostCalls struct {
	mu        sync.Mutex
	created   []string
	pushed    map[string][]string
	triggered []string
	deleted   []string
}

func (r *RepoHostCalls) Created() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.created...)
}

func (r *RepoHostCalls) Pushed(repository string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.pushed[repository]...)
}

func (r *RepoHostCalls) Triggered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.triggered...)
}

func (r *RepoHostCalls) Deleted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.deleted...)
}

// NewRepoHostMockServer spins up an HTTP server mimicking the repository
// host, recording every call it receives.
func NewRepoHostMockServer() (*httptest.Server, *RepoHostCalls) {
	calls := &RepoHostCalls{pushed: map[string][]string{}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

		calls.mu.Lock()
		defer calls.mu.Unlock()

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/repos":
			name := repositoryName(r)
			calls.created = append(calls.created, name)
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPut && len(parts) >= 4 && parts[2] == "contents":
			repository := parts[1]
			calls.pushed[repository] = append(calls.pushed[repository], strings.Join(parts[3:], "/"))
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodPost && len(parts) == 5 && parts[2] == "workflows" && parts[4] == "dispatches":
			calls.triggered = append(calls.triggered, fmt.Sprintf("%s/%s", parts[1], parts[3]))
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && len(parts) == 2 && parts[0] == "repos":
			for _, name := range calls.created {
				if name == parts[1] {
					w.WriteHeader(http.StatusOK)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodDelete && len(parts) == 2 && parts[0] == "repos":
			calls.deleted = append(calls.deleted, parts[1])
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	return server, calls
}

func repositoryName(r *http.Request) string {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Name
}
