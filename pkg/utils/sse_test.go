package utils

import (
	"net/http/httptest"
	"testing"
)

func TestSendSSEEventFormat(t *testing.T) {
	rr := httptest.NewRecorder()
	SetupSSEHeaders(rr)

	if err := SendSSEEvent(rr, rr, "tick", map[string]int{"seconds": 5}); err != nil {
		t.Fatalf("SendSSEEvent err: %v", err)
	}

	if got := rr.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("unexpected content type: %s", got)
	}
	want := "event: tick\ndata: {\"seconds\":5}\n\n"
	if rr.Body.String() != want {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
	if !rr.Flushed {
		t.Fatal("expected flush")
	}
}
