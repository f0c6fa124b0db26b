package chat

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type testEnvelope struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

func dialSession(t *testing.T) *websocket.Conn {
	t.Helper()

	r, _ := setupRouter()
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	created := createSession(t, r)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/chat/ws/" + created.Session.ID

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial err: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if got := readEnvelope(t, conn); got.Data["type"] != "connected" {
		t.Fatalf("expected connected event, got %+v", got)
	}
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msgType string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal err: %v", err)
	}
	if err := conn.WriteJSON(map[string]any{"type": msgType, "data": json.RawMessage(payload)}); err != nil {
		t.Fatalf("WriteJSON err: %v", err)
	}
}

func readEnvelope(t *testing.T, conn *websocket.Conn) testEnvelope {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var env testEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("ReadJSON err: %v", err)
	}
	return env
}

func expectEvent(t *testing.T, conn *websocket.Conn, eventType string) testEnvelope {
	t.Helper()

	env := readEnvelope(t, conn)
	if env.Type != "result" || env.Data["type"] != eventType {
		t.Fatalf("expected %s event, got %+v", eventType, env)
	}
	return env
}

func TestWebSocketTextExchange(t *testing.T) {
	conn := dialSession(t)

	send(t, conn, "text", map[string]string{"text": "foobar"})
	env := expectEvent(t, conn, "messages")

	messages, ok := env.Data["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %+v", env.Data["messages"])
	}
	bot := messages[1].(map[string]any)
	if !strings.HasPrefix(bot["text"].(string), "I'm sorry") {
		t.Fatalf("expected fallback answer, got %v", bot["text"])
	}
}

func TestWebSocketDraftSuggestions(t *testing.T) {
	conn := dialSession(t)

	send(t, conn, "draft", map[string]string{"draft": "family"})
	env := expectEvent(t, conn, "suggestions")

	suggestions := env.Data["suggestions"].(map[string]any)
	if suggestions["mode"] != "autocomplete" {
		t.Fatalf("unexpected suggestions: %+v", suggestions)
	}
}

func TestWebSocketSpeakWaitsForVoices(t *testing.T) {
	conn := dialSession(t)

	send(t, conn, "text", map[string]string{"text": "When is the official launch?"})
	expectEvent(t, conn, "messages")

	send(t, conn, "speak", map[string]int64{"messageId": 3})
	expectEvent(t, conn, "cancel_speech")

	send(t, conn, "voices", map[string]any{"voices": []map[string]string{
		{"name": "Alex", "lang": "en-US"},
		{"name": "Samantha Female", "lang": "en-US"},
	}})
	expectEvent(t, conn, "cancel_speech")
	env := expectEvent(t, conn, "speak")

	utterance := env.Data["utterance"].(map[string]any)
	voice := utterance["voice"].(map[string]any)
	if voice["name"] != "Samantha Female" || utterance["lang"] != "en-US" {
		t.Fatalf("unexpected utterance: %+v", utterance)
	}
	if !strings.Contains(utterance["text"].(string), "major reveal") {
		t.Fatalf("unexpected utterance text: %v", utterance["text"])
	}
}

func TestWebSocketUnsupportedSynthesisNotifiesOnce(t *testing.T) {
	conn := dialSession(t)

	send(t, conn, "capability", map[string]any{"capability": "speech_synthesis", "supported": false})
	send(t, conn, "speak", map[string]int64{"messageId": 1})
	env := expectEvent(t, conn, "notice")
	if env.Data["capability"] != "speech_synthesis" {
		t.Fatalf("unexpected notice: %+v", env.Data)
	}

	send(t, conn, "speak", map[string]int64{"messageId": 1})
	send(t, conn, "draft", map[string]string{"draft": ""})
	expectEvent(t, conn, "suggestions")
}

func TestWebSocketListenRoundTrip(t *testing.T) {
	conn := dialSession(t)

	send(t, conn, "listen", map[string]any{})
	env := expectEvent(t, conn, "listen")
	if env.Data["locale"] != "en-US" {
		t.Fatalf("unexpected locale: %v", env.Data["locale"])
	}

	send(t, conn, "transcript", map[string]string{"text": "official launch"})
	env = expectEvent(t, conn, "messages")

	messages := env.Data["messages"].([]any)
	user := messages[0].(map[string]any)
	if user["text"] != "When is the official launch?" {
		t.Fatalf("unexpected spoken question: %v", user["text"])
	}
}

func TestWebSocketSpeakRejectsUserMessage(t *testing.T) {
	conn := dialSession(t)

	send(t, conn, "text", map[string]string{"text": "foobar"})
	expectEvent(t, conn, "messages")

	send(t, conn, "speak", map[string]int64{"messageId": 2})
	env := readEnvelope(t, conn)
	if env.Type != "error" {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	r, _ := setupRouter()
	server := httptest.NewServer(r)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/chat/ws/missing"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial failure")
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %+v", resp)
	}
}
