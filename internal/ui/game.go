package ui

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"mannchess/internal/board"
	"mannchess/internal/game"
	"mannchess/internal/netplay"
	"mannchess/internal/storage"
)

// Layout constants (logical pixels)
const (
	SquareSize   = 64
	BoardWidth   = SquareSize * board.Cols
	BoardHeight  = SquareSize * board.Rows
	PanelWidth   = 280
	ScreenWidth  = BoardWidth + PanelWidth
	ScreenHeight = BoardHeight
)

type appMode int

const (
	modeConnect appMode = iota
	modePlay
)

type dialResult struct {
	client *netplay.Client
	err    error
}

// App is the top level ebiten game. It owns the connection, drains network
// events once per frame, and routes input to the board and panel.
type App struct {
	mode appMode

	ctrl   *game.Controller
	client *netplay.Client

	store *storage.Storage
	prefs *storage.Preferences
	stats *storage.MatchStats

	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager
	connect  *ConnectScreen
	settings *SettingsModal

	dialCh chan dialResult

	lastStatus string
	recorded   bool
}

// NewApp creates the application and loads persisted preferences and stats.
func NewApp() *App {
	app := &App{
		renderer: NewRenderer(SquareSize),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(),
		dialCh:   make(chan dialResult, 1),
	}

	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("[APP] storage unavailable: %v", err)
	}
	app.store = store

	app.prefs = storage.DefaultPreferences()
	app.stats = storage.NewMatchStats()
	if store != nil {
		if prefs, err := store.LoadPreferences(); err == nil {
			app.prefs = prefs
		}
		if stats, err := store.LoadStats(); err == nil {
			app.stats = stats
		}
	}
	app.feedback.Audio().SetEnabled(app.prefs.SoundEnabled)

	app.connect = NewConnectScreen(app.prefs, app.startJoin)
	app.settings = NewSettingsModal(app.applySettings)
	app.panel = NewPanel(BoardWidth, PanelWidth, app.onRestartClicked, app.onDeselectClicked, app.onSettingsClicked)
	app.panel.SetStats(app.stats)

	return app
}

// startJoin dials the server off the frame loop and reports back through
// dialCh so the connect screen stays responsive.
func (a *App) startJoin(name, serverURL string) {
	a.prefs.PlayerName = name
	a.prefs.ServerURL = serverURL
	if a.store != nil {
		if err := a.store.SavePreferences(a.prefs); err != nil {
			log.Printf("[APP] save preferences: %v", err)
		}
	}

	go func() {
		client, err := netplay.Dial(serverURL, name)
		a.dialCh <- dialResult{client: client, err: err}
	}()
}

func (a *App) applySettings(prefs storage.Preferences) {
	a.prefs.PlayerName = prefs.PlayerName
	a.prefs.ServerURL = prefs.ServerURL
	a.prefs.SoundEnabled = prefs.SoundEnabled
	a.feedback.Audio().SetEnabled(prefs.SoundEnabled)
	if a.store != nil {
		if err := a.store.SavePreferences(a.prefs); err != nil {
			log.Printf("[APP] save preferences: %v", err)
		}
	}
}

func (a *App) onRestartClicked() {
	if a.ctrl != nil {
		a.ctrl.Restart()
	}
}

func (a *App) onDeselectClicked() {
	if a.ctrl != nil {
		a.ctrl.Deselect()
	}
}

func (a *App) onSettingsClicked() {
	a.settings.Show(a.prefs)
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.input.Update()
	a.feedback.Update()

	select {
	case res := <-a.dialCh:
		if res.err != nil {
			log.Printf("[APP] connect failed: %v", res.err)
			a.connect.SetStatus("Connection failed: "+res.err.Error(), true)
		} else {
			a.client = res.client
			a.ctrl = game.NewController(res.client.Session(), res.client)
			a.mode = modePlay
			a.lastStatus = ""
			a.recorded = false
			a.panel.SetConnection(true, a.prefs.ServerURL, a.prefs.PlayerName)
		}
	default:
	}

	switch a.mode {
	case modeConnect:
		a.connect.Update(a.input)
	case modePlay:
		a.drainEvents()
		a.updatePlay()
	}
	return nil
}

// drainEvents applies every pending network event before input is handled,
// so the frame always acts on the freshest server state.
func (a *App) drainEvents() {
	if a.client == nil {
		return
	}
	for {
		select {
		case ev, ok := <-a.client.Events():
			if !ok {
				a.handleDisconnect(nil)
				return
			}
			a.handleEvent(ev)
		default:
			return
		}
	}
}

func (a *App) handleEvent(ev netplay.Event) {
	switch e := ev.(type) {
	case netplay.RoleEvent:
		a.ctrl.SetRole(e.Role)
		a.feedback.OnRoleAssigned(e.Role)

	case netplay.StateEvent:
		prevPieces := len(a.ctrl.Board().Pieces())
		prevTurn := a.ctrl.Turn()
		_, hadSelection := a.ctrl.Selection()

		a.ctrl.Reconcile(e.Snapshot)

		turnChanged := a.ctrl.Turn() != prevTurn
		captured := turnChanged && len(a.ctrl.Board().Pieces()) < prevPieces
		a.feedback.OnSnapshotApplied(turnChanged, captured)
		if _, has := a.ctrl.Selection(); has && !hadSelection {
			a.feedback.OnSelectionConfirmed()
		}
		a.trackStatus(a.ctrl.Status())

	case netplay.OpponentSelectEvent:
		a.ctrl.OpponentSelect(e.Row, e.Col)
		a.feedback.OnOpponentSelect(board.Pos{Row: e.Row, Col: e.Col})

	case netplay.OpponentDeselectEvent:
		a.ctrl.OpponentDeselect()

	case netplay.ErrorEvent:
		a.feedback.OnServerError(e.Message)

	case netplay.RestartEvent:
		a.ctrl.HandleRestartNotice()
		a.feedback.OnRestart()
		a.recorded = false

	case netplay.DisconnectedEvent:
		a.handleDisconnect(e.Err)
	}
}

// trackStatus records match results once per finished game and surfaces
// status transitions to the feedback layer.
func (a *App) trackStatus(status string) {
	if status == a.lastStatus {
		return
	}
	a.lastStatus = status
	a.feedback.OnStatusChanged(status)

	if status == game.StatusPlaying || status == "waiting" {
		a.recorded = false
		return
	}
	if a.recorded || a.ctrl.Role() == game.RoleObserver {
		return
	}
	a.recorded = true

	result := storage.MatchResult{Role: a.ctrl.Role().String()}
	switch {
	case status == "draw":
		result.Draw = true
	case status == a.ctrl.Role().String()+"-won":
		result.Won = true
	case strings.HasSuffix(status, "-won"):
		// loss, zero-value result covers it
	default:
		return
	}
	if a.store != nil {
		if err := a.store.RecordMatch(result); err != nil {
			log.Printf("[APP] record match: %v", err)
		}
		if stats, err := a.store.LoadStats(); err == nil {
			a.stats = stats
			a.panel.SetStats(stats)
		}
	}
}

func (a *App) handleDisconnect(err error) {
	if err != nil {
		log.Printf("[APP] disconnected: %v", err)
	}
	if a.client != nil {
		a.client.Close()
		a.client = nil
	}
	a.ctrl = nil
	a.mode = modeConnect
	a.panel.SetConnection(false, a.prefs.ServerURL, a.prefs.PlayerName)
	a.feedback.OnDisconnected()
	a.connect.Reset("Connection lost")
}

func (a *App) updatePlay() {
	if a.settings.IsVisible() {
		a.settings.Update(a.input)
		return
	}
	if a.ctrl == nil {
		return
	}

	a.panel.HandleInput(a.input, a.ctrl)

	if IsKeyJustPressed(ebiten.KeyEscape) {
		a.ctrl.Deselect()
	}

	if a.input.IsLeftJustPressed() && !a.panel.AnyButtonHovered() {
		mx, my := a.input.MousePosition()
		if pos, ok := a.renderer.ScreenToPos(mx, my); ok {
			a.handleBoardClick(pos)
		}
	}
}

// handleBoardClick routes a board click to a move attempt, a selection
// intent, or a deselect, in that order. Every path is fire and forget;
// the board only changes when the next snapshot arrives.
func (a *App) handleBoardClick(pos board.Pos) {
	_, hasSel := a.ctrl.Selection()

	if hasSel {
		for _, dest := range a.ctrl.LegalDestinations() {
			if dest == pos {
				if from, ok := a.ctrl.Selection(); ok && !a.ctrl.AttemptMove(pos.Row, pos.Col) {
					a.feedback.OnRejectedMove(from)
				}
				return
			}
		}
	}

	if a.ctrl.Select(pos.Row, pos.Col) {
		return
	}

	if hasSel {
		a.ctrl.Deselect()
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	if a.mode == modeConnect {
		a.connect.Draw(screen)
		a.feedback.Draw(screen, a.renderer)
		return
	}

	a.renderer.DrawBoard(screen)

	sel, hasSel := a.ctrl.Selection()
	var dests []board.Pos
	if hasSel {
		dests = a.ctrl.LegalDestinations()
	}
	opp, hasOpp := a.ctrl.OpponentSelection()
	a.renderer.DrawHighlights(screen, sel, hasSel, dests, opp, hasOpp)
	a.renderer.DrawPieces(screen, a.ctrl.Board(), a.feedback.Animations())

	a.panel.Draw(screen, a.ctrl)
	a.feedback.Draw(screen, a.renderer)
	a.settings.Draw(screen)
}

// Layout implements ebiten.Game. The whole UI works in logical pixels and
// ebiten scales the result to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close releases held resources.
func (a *App) Close() {
	if a.client != nil {
		a.client.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			log.Printf("[APP] close storage: %v", err)
		}
	}
}
