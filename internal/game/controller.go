// Package game implements the client-side game controller: it merges locally
// initiated intent (select, move, deselect) with the authoritative state the
// server pushes, and is the only writer of board, turn, status and selection.
package game

import "mannchess/internal/board"

// StatusPlaying is the single status token under which acting is allowed.
// All other tokens ("waiting", server-declared endings) are stored and
// displayed verbatim but gate every intent off.
const StatusPlaying = "playing"

// Role is what the server assigned this session: one of the two playing
// sides, or a spectator who may never act.
type Role uint8

const (
	RoleWhite Role = iota
	RoleBlack
	RoleObserver
)

// String returns the wire name of the role.
func (r Role) String() string {
	switch r {
	case RoleWhite:
		return "white"
	case RoleBlack:
		return "black"
	default:
		return "observer"
	}
}

// ParseRole converts a wire role string. Unknown strings map to observer,
// the role that can do the least harm.
func ParseRole(s string) Role {
	switch s {
	case "white":
		return RoleWhite
	case "black":
		return RoleBlack
	default:
		return RoleObserver
	}
}

// color returns the playing color for a side role.
func (r Role) color() (board.Color, bool) {
	switch r {
	case RoleWhite:
		return board.White, true
	case RoleBlack:
		return board.Black, true
	default:
		return 0, false
	}
}

// Snapshot is a complete authoritative description of the game, pushed by
// the server. Applying one fully replaces prior client state.
type Snapshot struct {
	Pieces           []board.PieceState
	CurrentTurn      string
	GameStatus       string
	SelectingSession string
	SelectedRow      int
	SelectedCol      int
}

// Sender carries outbound intents to the server. Calls are fire-and-forget:
// nothing is awaited, acceptance shows up later as a snapshot. Tests
// substitute a recording fake.
type Sender interface {
	SendSelect(row, col int)
	SendDeselect()
	SendMove(fromRow, fromCol, toRow, toCol int)
	SendRestart()
}

// Controller owns the mirrored game state for one connected session.
// It is driven from a single cooperative event loop and needs no locking.
type Controller struct {
	session string
	out     Sender

	role   Role
	board  *board.Board
	turn   board.Color
	status string

	selected    board.Pos
	hasSelected bool

	// Advisory highlight for a selection made by another session. Never
	// written into the primary selection state.
	oppSelected    board.Pos
	hasOppSelected bool
}

// NewController creates a controller for the given session identity. The
// role stays observer until the server assigns one.
func NewController(session string, out Sender) *Controller {
	return &Controller{
		session: session,
		out:     out,
		role:    RoleObserver,
		board:   board.New(),
		status:  "waiting",
	}
}

// SetRole records the server's role assignment for this session.
func (c *Controller) SetRole(r Role) {
	c.role = r
}

// Reconcile applies an authoritative snapshot. This is the only path by
// which board, turn, status or the local selection change. The local
// selection is derived: it is set only when the server attributes the
// current selection to this session, and a stale coordinate pointing at an
// empty square degrades to no selection.
func (c *Controller) Reconcile(s Snapshot) {
	c.board.ApplySnapshot(s.Pieces)
	if turn, ok := board.ParseColor(s.CurrentTurn); ok {
		c.turn = turn
	}
	c.status = s.GameStatus

	c.hasSelected = false
	if s.SelectingSession != "" && s.SelectingSession == c.session {
		pos := board.Pos{Row: s.SelectedRow, Col: s.SelectedCol}
		if c.board.PieceAt(pos) != nil {
			c.selected = pos
			c.hasSelected = true
		}
	}
}

// CanAct reports whether this session may select or move right now: it must
// be a playing side, on the move, in an active game.
func (c *Controller) CanAct() bool {
	color, ok := c.role.color()
	return ok && color == c.turn && c.status == StatusPlaying
}

// Select emits a selection intent for the piece at (row, col). It fails
// silently when acting is gated off, the square is empty, or the piece is
// not ours. On success nothing changes locally: the selection becomes
// visible only once the server confirms it in the next snapshot.
func (c *Controller) Select(row, col int) bool {
	if !c.CanAct() || c.out == nil {
		return false
	}
	piece := c.board.PieceAt(board.Pos{Row: row, Col: col})
	if piece == nil {
		return false
	}
	if color, _ := c.role.color(); piece.Color != color {
		return false
	}
	c.out.SendSelect(row, col)
	return true
}

// Deselect emits a deselection intent. It is always permitted to attempt
// while a session exists, regardless of turn or status.
func (c *Controller) Deselect() bool {
	if c.out == nil {
		return false
	}
	c.out.SendDeselect()
	return true
}

// LegalDestinations returns the geometric candidate squares for the current
// selection, or nil without one. The server may still refuse any of them.
func (c *Controller) LegalDestinations() []board.Pos {
	if !c.hasSelected {
		return nil
	}
	piece := c.board.PieceAt(c.selected)
	if piece == nil {
		return nil
	}
	return board.Moves(piece, c.board)
}

// AttemptMove emits a move intent from the current selection to (row, col).
// It fails silently without a selection, for observers, or when the target
// is not among the geometric destinations. The board is not touched locally;
// the visible position changes only via the next snapshot.
func (c *Controller) AttemptMove(row, col int) bool {
	if !c.hasSelected || c.role == RoleObserver || c.out == nil {
		return false
	}
	target := board.Pos{Row: row, Col: col}
	legal := false
	for _, d := range c.LegalDestinations() {
		if d == target {
			legal = true
			break
		}
	}
	if !legal {
		return false
	}
	c.out.SendMove(c.selected.Row, c.selected.Col, row, col)
	return true
}

// Restart emits a restart intent. Observers may not restart the game.
func (c *Controller) Restart() bool {
	if c.role == RoleObserver || c.out == nil {
		return false
	}
	c.out.SendRestart()
	return true
}

// OpponentSelect records another session's selection for transient display.
func (c *Controller) OpponentSelect(row, col int) {
	pos := board.Pos{Row: row, Col: col}
	if !pos.InBounds() {
		return
	}
	c.oppSelected = pos
	c.hasOppSelected = true
}

// OpponentDeselect clears the transient opponent highlight.
func (c *Controller) OpponentDeselect() {
	c.hasOppSelected = false
}

// HandleRestartNotice clears transient highlights after a server restart
// notification. Board truth still arrives only with the next snapshot.
func (c *Controller) HandleRestartNotice() {
	c.hasOppSelected = false
}

// Session returns this client's session identity.
func (c *Controller) Session() string { return c.session }

// Role returns the server-assigned role.
func (c *Controller) Role() Role { return c.role }

// Board returns the mirrored board for read-only presentation use.
func (c *Controller) Board() *board.Board { return c.board }

// Turn returns the side to move per the latest snapshot.
func (c *Controller) Turn() board.Color { return c.turn }

// Status returns the latest server-declared status token.
func (c *Controller) Status() string { return c.status }

// Selection returns the confirmed local selection, if any.
func (c *Controller) Selection() (board.Pos, bool) {
	return c.selected, c.hasSelected
}

// SelectedPiece returns the piece under the confirmed selection, if any.
func (c *Controller) SelectedPiece() *board.Piece {
	if !c.hasSelected {
		return nil
	}
	return c.board.PieceAt(c.selected)
}

// OpponentSelection returns the advisory opponent highlight, if any.
func (c *Controller) OpponentSelection() (board.Pos, bool) {
	return c.oppSelected, c.hasOppSelected
}
