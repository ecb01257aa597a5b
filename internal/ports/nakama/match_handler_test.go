package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/sjcbulldog/birdgame-sub000/internal/app"
	"github.com/sjcbulldog/birdgame-sub000/internal/bot"
	"github.com/sjcbulldog/birdgame-sub000/internal/config"
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
	lastLabel      string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

// fakePresence satisfies runtime.Presence for seat bookkeeping.
type fakePresence struct {
	userID   string
	username string
}

func (p fakePresence) GetUserId() string                 { return p.userID }
func (p fakePresence) GetSessionId() string              { return "session-" + p.userID }
func (p fakePresence) GetNodeId() string                 { return "node" }
func (p fakePresence) GetHidden() bool                   { return false }
func (p fakePresence) GetPersistence() bool              { return false }
func (p fakePresence) GetUsername() string               { return p.username }
func (p fakePresence) GetStatus() string                 { return "" }
func (p fakePresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonUnknown }

// fakeMatchData is a client message as delivered to MatchLoop.
type fakeMatchData struct {
	fakePresence
	opCode int64
	data   []byte
}

func (m fakeMatchData) GetOpCode() int64      { return m.opCode }
func (m fakeMatchData) GetData() []byte       { return m.data }
func (m fakeMatchData) GetReliable() bool     { return true }
func (m fakeMatchData) GetReceiveTime() int64 { return 0 }

func init() {
	if err := bot.LoadIdentities("test_bot_identities.json"); err != nil {
		panic("failed to load bot identities for tests: " + err.Error())
	}
}

func newTestState(seed int64) *MatchState {
	return &MatchState{
		OwnerSeat:        -1,
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(rand.New(rand.NewSource(seed))),
		Bots:             make(map[string]*bot.Agent),
		BotMinDelayTicks: 1,
		BotMaxDelayTicks: 1,
		AutoFillTicks:    2,
		rng:              rand.New(rand.NewSource(seed)),
	}
}

func TestTuningFromConfigOverlaysDefaults(t *testing.T) {
	tune := tuningFromConfig(config.BotTuning{BidBase: 140, DuckTrickLimit: 4})
	if tune.BidBase != 140 || tune.DuckTrickLimit != 4 {
		t.Fatalf("overrides not applied: %+v", tune)
	}
	if tune.MaxBidNoRedOne != bot.DefaultTuning.MaxBidNoRedOne || tune.OpeningMargin != bot.DefaultTuning.OpeningMargin {
		t.Fatalf("unset fields should keep defaults: %+v", tune)
	}
}

func TestSeatRotationHelpers(t *testing.T) {
	for i, seat := range domain.SeatOrder {
		if seatAt(i) != seat {
			t.Fatalf("seatAt(%d) = %s, want %s", i, seatAt(i), seat)
		}
		if seatIndex(seat) != i {
			t.Fatalf("seatIndex(%s) = %d, want %d", seat, seatIndex(seat), i)
		}
	}
	if seatIndex(domain.SeatNone) != -1 {
		t.Fatalf("seatIndex(SeatNone) = %d, want -1", seatIndex(domain.SeatNone))
	}
}

func TestMatchInitCreatesLobbyLabel(t *testing.T) {
	handler := &matchHandler{}
	stateRaw, tickrate, labelStr := handler.MatchInit(context.Background(), noopLogger{}, nil, nil, nil)

	state, ok := stateRaw.(*MatchState)
	if !ok || state == nil {
		t.Fatalf("MatchInit returned state of type %T", stateRaw)
	}
	if tickrate != tickRate {
		t.Fatalf("tick rate = %d, want %d", tickrate, tickRate)
	}

	var label matchLabel
	if err := json.Unmarshal([]byte(labelStr), &label); err != nil {
		t.Fatalf("label unmarshal failed: %v", err)
	}
	if label.Game != "birdgame" || label.Phase != "lobby" || label.Open != 4 {
		t.Fatalf("label unexpected: %+v", label)
	}
}

func TestMatchJoinAssignsSeatsAndOwner(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(1)

	joined := handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state,
		[]runtime.Presence{
			fakePresence{userID: "user-1", username: "alice"},
			fakePresence{userID: "user-2", username: "bob"},
		})

	state = joined.(*MatchState)
	if state.Seats[0] != "user-1" || state.Seats[1] != "user-2" {
		t.Fatalf("seats = %v", state.Seats)
	}
	if state.OwnerSeat != 0 {
		t.Fatalf("owner seat = %d, want 0", state.OwnerSeat)
	}
	if dispatcher.labelUpdates == 0 || dispatcher.broadcastCount == 0 {
		t.Fatalf("expected label update and snapshot broadcast after join")
	}

	var label matchLabel
	if err := json.Unmarshal([]byte(dispatcher.lastLabel), &label); err != nil {
		t.Fatalf("label unmarshal failed: %v", err)
	}
	if label.Open != 2 {
		t.Fatalf("label open = %d, want 2", label.Open)
	}
}

func TestMatchJoinAttemptFullAndReconnect(t *testing.T) {
	handler := &matchHandler{}
	state := newTestState(1)
	for i := range state.Seats {
		uid := "user-" + string(rune('1'+i))
		state.Seats[i] = uid
		state.Presences[uid] = fakePresence{userID: uid}
	}

	_, allowed, _ := handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, nil, 1, state,
		fakePresence{userID: "user-5"}, nil)
	if allowed {
		t.Fatalf("expected full table to refuse a new user")
	}

	_, allowed, _ = handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, nil, 1, state,
		fakePresence{userID: "user-2"}, nil)
	if !allowed {
		t.Fatalf("expected seated user to be allowed to reconnect")
	}
}

func TestMatchLeaveDuringHandSeatsBot(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(2)
	for i := range state.Seats {
		uid := "user-" + string(rune('1'+i))
		state.Seats[i] = uid
		state.Presences[uid] = fakePresence{userID: uid}
	}
	state.OwnerSeat = 0

	game, _ := state.App.NewGame(500)
	if _, err := state.App.DealHand(game); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	state.Game = game

	left := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state,
		[]runtime.Presence{fakePresence{userID: "user-2"}})
	state = left.(*MatchState)

	replacement := state.Seats[1]
	if replacement == "" || replacement == "user-2" {
		t.Fatalf("expected a bot in seat 1, got %q", replacement)
	}
	if _, ok := state.Bots[replacement]; !ok {
		t.Fatalf("replacement %q has no agent", replacement)
	}
	if agent := state.Bots[replacement]; agent.Seat != domain.SeatWest {
		t.Fatalf("replacement agent seat = %s, want %s", agent.Seat, domain.SeatWest)
	}
}

func TestMatchLeaveLastHumanTerminates(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(3)
	state.Seats[0] = "user-1"
	state.Presences["user-1"] = fakePresence{userID: "user-1"}
	state.OwnerSeat = 0

	left := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 5, state,
		[]runtime.Presence{fakePresence{userID: "user-1"}})
	if left != nil {
		t.Fatalf("expected match termination with no humans, got %T", left)
	}
}

func TestProcessBotsAutoFillsSoloHuman(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(4)
	state.Seats[0] = "user-1"
	state.Presences["user-1"] = fakePresence{userID: "user-1"}
	state.OwnerSeat = 0
	state.SoloHumanSince = 1
	state.Tick = 10

	handler.processBots(state, dispatcher, noopLogger{})

	if state.openSeats() != 0 {
		t.Fatalf("expected a full table after auto-fill, open = %d", state.openSeats())
	}
	if len(state.Bots) != 3 {
		t.Fatalf("expected 3 bot agents, got %d", len(state.Bots))
	}
	if state.SoloHumanSince != 0 {
		t.Fatalf("expected auto-fill timer reset, got %d", state.SoloHumanSince)
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("expected snapshot broadcast and label update after auto-fill")
	}
}

func TestStartHandFillsOpenSeatsWithBots(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(5)
	state.Seats[0] = "user-1"
	state.Presences["user-1"] = fakePresence{userID: "user-1"}
	state.OwnerSeat = 0

	msg := fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpStartHand}
	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.MatchData{msg})

	if state.openSeats() != 0 {
		t.Fatalf("expected the open seats handed to bots, open = %d", state.openSeats())
	}
	if len(state.Bots) != 3 {
		t.Fatalf("expected 3 bot agents, got %d", len(state.Bots))
	}
	if state.Game == nil || state.Game.Phase != domain.PhaseBidding {
		t.Fatalf("expected the hand dealt into bidding, game = %+v", state.Game)
	}
}

func TestOutOfTurnBidSendsError(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(6)
	state.Seats[0] = "user-1"
	state.Presences["user-1"] = fakePresence{userID: "user-1"}
	state.OwnerSeat = 0
	for i := 1; i < len(state.Seats); i++ {
		handler.seatBot(state, i, noopLogger{})
	}

	game, _ := state.App.NewGame(500)
	if _, err := state.App.DealHand(game); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	state.Game = game

	// The dealer sits south, so west opens the auction, not the human.
	body, _ := json.Marshal(placeBidRequest{Action: domain.BidActionBid, Value: 60})
	msg := fakeMatchData{fakePresence: fakePresence{userID: "user-1"}, opCode: OpPlaceBid, data: body}
	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.MatchData{msg})

	if dispatcher.lastOpCode != OpGameError {
		t.Fatalf("last opcode = %d, want %d", dispatcher.lastOpCode, OpGameError)
	}
}

func TestIdleHumanTimesOutIntoAutoPlay(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(7)
	state.TurnTimeoutTicks = 2
	for i := range state.Seats {
		uid := "user-" + string(rune('1'+i))
		state.Seats[i] = uid
		state.Presences[uid] = fakePresence{userID: uid}
	}
	state.OwnerSeat = 0

	game, _ := state.App.NewGame(500)
	if _, err := state.App.DealHand(game); err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	state.Game = game

	for tick := int64(1); tick <= 10; tick++ {
		next := handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, tick, state, nil)
		state = next.(*MatchState)
		if len(state.Game.Auction.Entries) > 0 {
			break
		}
	}

	if len(state.Game.Auction.Entries) == 0 {
		t.Fatalf("expected an auto-played bid action for the idle opener")
	}
	if state.Game.Auction.Entries[0].Seat != domain.SeatWest {
		t.Fatalf("auto-play acted for %s, want %s", state.Game.Auction.Entries[0].Seat, domain.SeatWest)
	}
}

// TestBotTableScoresAHand runs an all-bot table through the tick loop until
// the first hand is settled on the scoreboard.
func TestBotTableScoresAHand(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState(42)
	for i := range state.Seats {
		handler.seatBot(state, i, noopLogger{})
	}

	game, _ := state.App.NewGame(500)
	state.Game = game

	scored := false
	for tick := int64(1); tick <= 4000; tick++ {
		next := handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, tick, state, nil)
		if next == nil {
			t.Fatalf("match terminated unexpectedly at tick %d", tick)
		}
		state = next.(*MatchState)
		if state.Game == nil {
			// The game ran all the way out; the scoreboard was settled.
			scored = true
			break
		}
		for _, pts := range state.Game.Scores {
			if pts != 0 {
				scored = true
			}
		}
		if scored {
			break
		}
	}

	if !scored {
		t.Fatalf("no hand was scored within the tick limit")
	}
	if dispatcher.broadcastCount == 0 {
		t.Fatalf("expected events to be dispatched during play")
	}
}
