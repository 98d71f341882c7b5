package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper intercepts the calls discordgo makes to Discord
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a fake forge API and a Discord session whose HTTP calls
// are captured instead of sent
type TestContext struct {
	Server    *httptest.Server
	Mux       *http.ServeMux
	APIClient *APIClient
	Session   *discordgo.Session

	mu    sync.Mutex
	edits []discordgo.WebhookEdit
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	tc := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	session.Client = &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.Method == http.MethodPatch {
				var body discordgo.WebhookEdit
				if err := json.NewDecoder(req.Body).Decode(&body); err == nil {
					tc.mu.Lock()
					tc.edits = append(tc.edits, body)
					tc.mu.Unlock()
				}
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}}

	return tc
}

// LastEdit returns the final edit of the deferred response
func (tc *TestContext) LastEdit(t *testing.T) discordgo.WebhookEdit {
	t.Helper()
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if len(tc.edits) == 0 {
		t.Fatal("no interaction response edit captured")
	}
	return tc.edits[len(tc.edits)-1]
}

// LastEmbed returns the first embed of the final edit
func (tc *TestContext) LastEmbed(t *testing.T) *discordgo.MessageEmbed {
	t.Helper()
	edit := tc.LastEdit(t)
	if edit.Embeds == nil || len(*edit.Embeds) == 0 {
		t.Fatal("final edit has no embeds")
	}
	return (*edit.Embeds)[0]
}

// LastContent returns the text content of the final edit
func (tc *TestContext) LastContent(t *testing.T) string {
	t.Helper()
	edit := tc.LastEdit(t)
	if edit.Content == nil {
		t.Fatal("final edit has no content")
	}
	return *edit.Content
}

// WriteJSON writes data as a JSON body with the given status
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// createTestInteraction builds a guild slash command interaction
func createTestInteraction(commandName string, options []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    commandName,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "123", Username: "Tester"},
			},
		},
	}
}
