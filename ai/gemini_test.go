package ai

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWithoutAPIKey(t *testing.T) {
	c := &Client{log: zerolog.Nop()}

	assert.Equal(t, "API Key not configured.", c.GenerateConcept("dragão nas costas"))
	assert.Equal(t, "API Key not configured.", c.GenerateMessage(KindReminder, "Alice", ""))
}

func TestGenerateConceptFromUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		resp := generateResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content content `json:"content"`
		}{Content: content{Parts: []part{{Text: "Um corvo em blackwork no antebraço."}}}})
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := &Client{APIKey: "test-key", Model: "test-model", BaseURL: server.URL, log: zerolog.Nop()}
	assert.Equal(t, "Um corvo em blackwork no antebraço.", c.GenerateConcept("corvo"))
}

func TestGenerateConceptUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := &Client{APIKey: "test-key", Model: "test-model", BaseURL: server.URL, log: zerolog.Nop()}
	assert.Equal(t, "Error generating concept. Please check your connection.", c.GenerateConcept("corvo"))
}

func TestGenerateConceptEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer server.Close()

	c := &Client{APIKey: "test-key", Model: "test-model", BaseURL: server.URL, log: zerolog.Nop()}
	assert.Equal(t, "No concept generated.", c.GenerateConcept("corvo"))
}

func TestGenerateMessageUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := &Client{APIKey: "test-key", Model: "test-model", BaseURL: server.URL, log: zerolog.Nop()}
	assert.Equal(t, "Error generating message.", c.GenerateMessage(KindPromo, "Bruno", "flash day sábado"))
}

func TestParseMessageKind(t *testing.T) {
	kind, err := ParseMessageKind("care")
	require.NoError(t, err)
	assert.Equal(t, KindCare, kind)
	assert.True(t, kind.IsValid())

	_, err = ParseMessageKind("spam")
	assert.Error(t, err)
}
