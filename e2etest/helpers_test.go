package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// coinsPayload mirrors the /api/v1/coins response
type coinsPayload struct {
	Tab           string `json:"tab"`
	Query         string `json:"query"`
	SortField     string `json:"sort_field"`
	SortAscending bool   `json:"sort_ascending"`
	Page          int    `json:"page"`
	Loading       bool   `json:"loading"`
	Error         string `json:"error"`
	Coins         []struct {
		ID string `json:"id"`
	} `json:"coins"`
}

func (p coinsPayload) IDs() []string {
	ids := make([]string, len(p.Coins))
	for i, coin := range p.Coins {
		ids[i] = coin.ID
	}
	return ids
}

// getBody performs a GET and returns status and body
func (env *TestEnv) getBody(t *testing.T, path string) (int, string) {
	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// getJSON decodes a GET response into out and returns the status
func (env *TestEnv) getJSON(t *testing.T, path string, out interface{}) int {
	resp, err := http.Get(env.ServerBaseURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// post submits a form action and follows the redirect back to the page
func (env *TestEnv) post(t *testing.T, path string, form url.Values) *http.Response {
	resp, err := http.PostForm(env.ServerBaseURL+path, form)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func (env *TestEnv) coins(t *testing.T) coinsPayload {
	var payload coinsPayload
	require.Equal(t, http.StatusOK, env.getJSON(t, "/api/v1/coins", &payload))
	return payload
}
