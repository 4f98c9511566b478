package netplay

import (
	"encoding/json"
	"testing"

	"mannchess/internal/game"
)

func TestDecodeStateEvent(t *testing.T) {
	frame := `{
		"type": "state",
		"payload": {
			"pieces": [
				{"type": "pawn", "color": "white", "row": 6, "col": 4, "has_moved": false},
				{"type": "mann", "color": "black", "row": 1, "col": 8, "has_moved": true}
			],
			"current_turn": "black",
			"game_status": "playing",
			"selecting_session": "abc",
			"selected_row": 6,
			"selected_col": 4
		}
	}`

	ev, err := decodeEvent([]byte(frame))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	state, ok := ev.(StateEvent)
	if !ok {
		t.Fatalf("expected StateEvent, got %T", ev)
	}

	snap := state.Snapshot
	if len(snap.Pieces) != 2 {
		t.Fatalf("expected 2 pieces, got %d", len(snap.Pieces))
	}
	if snap.Pieces[1].Type != "mann" || !snap.Pieces[1].HasMoved {
		t.Errorf("second piece decoded wrong: %+v", snap.Pieces[1])
	}
	if snap.CurrentTurn != "black" || snap.GameStatus != "playing" {
		t.Errorf("turn/status decoded wrong: %+v", snap)
	}
	if snap.SelectingSession != "abc" || snap.SelectedRow != 6 || snap.SelectedCol != 4 {
		t.Errorf("selection decoded wrong: %+v", snap)
	}
}

func TestDecodeDiscreteEvents(t *testing.T) {
	cases := []struct {
		frame string
		want  Event
	}{
		{`{"type":"role","payload":{"color":"black"}}`, RoleEvent{Role: game.RoleBlack}},
		{`{"type":"role","payload":{"color":"spectate"}}`, RoleEvent{Role: game.RoleObserver}},
		{`{"type":"opponent_select","payload":{"row":2,"col":9}}`, OpponentSelectEvent{Row: 2, Col: 9}},
		{`{"type":"opponent_deselect"}`, OpponentDeselectEvent{}},
		{`{"type":"error","payload":{"message":"not your turn"}}`, ErrorEvent{Message: "not your turn"}},
		{`{"type":"restart"}`, RestartEvent{}},
	}
	for _, tc := range cases {
		ev, err := decodeEvent([]byte(tc.frame))
		if err != nil {
			t.Errorf("decode %s: %v", tc.frame, err)
			continue
		}
		if ev != tc.want {
			t.Errorf("decode %s = %#v, want %#v", tc.frame, ev, tc.want)
		}
	}
}

func TestDecodeUnknownTypeIgnored(t *testing.T) {
	ev, err := decodeEvent([]byte(`{"type":"clock_tick","payload":{"remaining":30}}`))
	if err != nil {
		t.Fatalf("unknown type should not error: %v", err)
	}
	if ev != nil {
		t.Fatalf("unknown type should yield no event, got %#v", ev)
	}
}

func TestDecodeMalformedFrame(t *testing.T) {
	if _, err := decodeEvent([]byte(`{not json`)); err == nil {
		t.Error("malformed frame should error")
	}
	if _, err := decodeEvent([]byte(`{"type":"state","payload":"nope"}`)); err == nil {
		t.Error("wrong payload shape should error")
	}
}

func TestEncodeIntentPayloads(t *testing.T) {
	data, err := encodeIntent("move", movePayload{FromRow: 6, FromCol: 4, ToRow: 4, ToCol: 4})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if env.Type != "move" {
		t.Errorf("type = %q, want move", env.Type)
	}
	var p movePayload
	if err := json.Unmarshal(env.Payload, &p); err != nil {
		t.Fatalf("payload re-parse failed: %v", err)
	}
	if p != (movePayload{FromRow: 6, FromCol: 4, ToRow: 4, ToCol: 4}) {
		t.Errorf("payload round trip wrong: %+v", p)
	}
}

func TestEncodeIntentWithoutPayload(t *testing.T) {
	data, err := encodeIntent("deselect", nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	if env.Type != "deselect" || len(env.Payload) != 0 {
		t.Errorf("bare intent encoded wrong: %s", data)
	}
}
