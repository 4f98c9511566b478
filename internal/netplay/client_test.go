package netplay

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"mannchess/internal/game"
)

// testServer upgrades one connection and hands it to the test.
func testServer(t *testing.T, handle func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		handle(conn)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func nextEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case ev := <-c.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestDialSendsJoinAndDeliversEvents(t *testing.T) {
	got := make(chan envelope, 1)
	srv := testServer(t, func(conn *websocket.Conn) {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Errorf("read join: %v", err)
			return
		}
		got <- env

		conn.WriteJSON(envelope{Type: "role", Payload: mustMarshal(t, rolePayload{Color: "white"})})
		conn.WriteJSON(envelope{Type: "state", Payload: mustMarshal(t, statePayload{
			CurrentTurn: "white",
			GameStatus:  "playing",
		})})
		conn.WriteJSON(envelope{Type: "error", Payload: mustMarshal(t, errorPayload{Message: "room full"})})

		// Hold the connection open until the client hangs up.
		conn.ReadMessage()
	})

	c, err := Dial(wsURL(srv), "Alice")
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer c.Close()

	env := <-got
	if env.Type != "join" {
		t.Fatalf("first frame type = %q, want join", env.Type)
	}
	var join joinPayload
	if err := json.Unmarshal(env.Payload, &join); err != nil {
		t.Fatalf("join payload: %v", err)
	}
	if join.Name != "Alice" || join.SessionID != c.Session() {
		t.Errorf("join payload wrong: %+v (session %s)", join, c.Session())
	}

	if ev := nextEvent(t, c); ev != (RoleEvent{Role: game.RoleWhite}) {
		t.Errorf("expected role event, got %#v", ev)
	}
	state, ok := nextEvent(t, c).(StateEvent)
	if !ok || state.Snapshot.GameStatus != "playing" {
		t.Errorf("expected playing state event, got %#v", state)
	}
	if ev := nextEvent(t, c); ev != (ErrorEvent{Message: "room full"}) {
		t.Errorf("expected verbatim error event, got %#v", ev)
	}
}

func TestSenderWritesIntentFrames(t *testing.T) {
	frames := make(chan envelope, 8)
	srv := testServer(t, func(conn *websocket.Conn) {
		for {
			var env envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			frames <- env
		}
	})

	c, err := Dial(wsURL(srv), "Bob")
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer c.Close()

	c.SendSelect(6, 4)
	c.SendMove(6, 4, 4, 4)
	c.SendDeselect()
	c.SendRestart()

	wantTypes := []string{"join", "select", "move", "deselect", "restart"}
	for _, want := range wantTypes {
		select {
		case env := <-frames:
			if env.Type != want {
				t.Fatalf("frame type = %q, want %q", env.Type, want)
			}
			if want == "move" {
				var p movePayload
				if err := json.Unmarshal(env.Payload, &p); err != nil {
					t.Fatalf("move payload: %v", err)
				}
				if p != (movePayload{FromRow: 6, FromCol: 4, ToRow: 4, ToCol: 4}) {
					t.Errorf("move payload wrong: %+v", p)
				}
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q frame", want)
		}
	}
}

func TestDisconnectDeliversFinalEvent(t *testing.T) {
	srv := testServer(t, func(conn *websocket.Conn) {
		// Drop the connection immediately after the join frame.
		conn.ReadMessage()
	})

	c, err := Dial(wsURL(srv), "Carol")
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer c.Close()

	if _, ok := nextEvent(t, c).(DisconnectedEvent); !ok {
		t.Error("expected DisconnectedEvent after server hangup")
	}
	if _, open := <-c.Events(); open {
		t.Error("events channel should close after disconnect")
	}
}

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}
