package netplay

import (
	"encoding/json"
	"fmt"

	"mannchess/internal/board"
	"mannchess/internal/game"
)

// Every frame on the wire is an envelope: a type tag plus a type-specific
// payload. The server speaks the same shape in both directions.
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client -> server payloads.
type joinPayload struct {
	Name      string `json:"name"`
	SessionID string `json:"session_id"`
}

type selectPayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type movePayload struct {
	FromRow int `json:"from_row"`
	FromCol int `json:"from_col"`
	ToRow   int `json:"to_row"`
	ToCol   int `json:"to_col"`
}

// Server -> client payloads.
type rolePayload struct {
	Color string `json:"color"`
}

type statePayload struct {
	Pieces           []board.PieceState `json:"pieces"`
	CurrentTurn      string             `json:"current_turn"`
	GameStatus       string             `json:"game_status"`
	SelectingSession string             `json:"selecting_session"`
	SelectedRow      int                `json:"selected_row"`
	SelectedCol      int                `json:"selected_col"`
}

type squarePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// Event is an inbound notification delivered to the UI's event loop.
type Event interface{ event() }

// RoleEvent is the once-per-session role assignment.
type RoleEvent struct{ Role game.Role }

// StateEvent carries an authoritative snapshot.
type StateEvent struct{ Snapshot game.Snapshot }

// OpponentSelectEvent is another session's advisory selection.
type OpponentSelectEvent struct{ Row, Col int }

// OpponentDeselectEvent clears the advisory selection.
type OpponentDeselectEvent struct{}

// ErrorEvent is a server-relayed error, passed through verbatim.
type ErrorEvent struct{ Message string }

// RestartEvent tells presentation to clear transient highlights.
type RestartEvent struct{}

// DisconnectedEvent reports the end of the session. No reconnection is
// attempted; the controller simply stops receiving snapshots.
type DisconnectedEvent struct{ Err error }

func (RoleEvent) event()             {}
func (StateEvent) event()            {}
func (OpponentSelectEvent) event()   {}
func (OpponentDeselectEvent) event() {}
func (ErrorEvent) event()            {}
func (RestartEvent) event()          {}
func (DisconnectedEvent) event()     {}

// decodeEvent parses one inbound frame. Unknown message types return a nil
// event without error so newer servers don't break older clients.
func decodeEvent(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("bad envelope: %w", err)
	}

	switch env.Type {
	case "role":
		var p rolePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("bad role payload: %w", err)
		}
		return RoleEvent{Role: game.ParseRole(p.Color)}, nil

	case "state":
		var p statePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("bad state payload: %w", err)
		}
		return StateEvent{Snapshot: game.Snapshot{
			Pieces:           p.Pieces,
			CurrentTurn:      p.CurrentTurn,
			GameStatus:       p.GameStatus,
			SelectingSession: p.SelectingSession,
			SelectedRow:      p.SelectedRow,
			SelectedCol:      p.SelectedCol,
		}}, nil

	case "opponent_select":
		var p squarePayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("bad opponent_select payload: %w", err)
		}
		return OpponentSelectEvent{Row: p.Row, Col: p.Col}, nil

	case "opponent_deselect":
		return OpponentDeselectEvent{}, nil

	case "error":
		var p errorPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("bad error payload: %w", err)
		}
		return ErrorEvent{Message: p.Message}, nil

	case "restart":
		return RestartEvent{}, nil

	default:
		return nil, nil
	}
}

// encodeIntent builds one outbound frame. A nil payload produces an
// envelope with the type tag only.
func encodeIntent(msgType string, payload any) ([]byte, error) {
	env := envelope{Type: msgType}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Payload = data
	}
	return json.Marshal(env)
}
