package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/sjcbulldog/birdgame-sub000/internal/app"
	"github.com/sjcbulldog/birdgame-sub000/internal/bot"
	"github.com/sjcbulldog/birdgame-sub000/internal/config"
	"github.com/sjcbulldog/birdgame-sub000/internal/domain"
)

const tickRate = 4 // ticks per second

// showScoreDelayTicks is the pause between the hand score display and the
// next automatic deal.
const showScoreDelayTicks = 3 * tickRate

// matchLabel is the JSON label queried by the quick-match RPC.
type matchLabel struct {
	Game  string `json:"game"`
	Phase string `json:"phase"`
	Open  int    `json:"open"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler. Seat index i corresponds to domain.SeatOrder[i].
type MatchState struct {
	Seats     [4]string
	OwnerSeat int
	Tick      int64
	Presences map[string]runtime.Presence
	App       *app.Service
	Game      *domain.Game
	Bots      map[string]*bot.Agent

	BotMinDelayTicks int64
	BotMaxDelayTicks int64
	AutoFillTicks    int64
	TurnTimeoutTicks int64
	BotWaitUntil     int64
	TurnDeadline     int64
	SoloHumanSince   int64
	NextDealTick     int64

	rng      *rand.Rand
	fallback bot.Brain
}

func seatAt(i int) domain.Seat { return domain.SeatOrder[i%len(domain.SeatOrder)] }

func seatIndex(s domain.Seat) int {
	for i, seat := range domain.SeatOrder {
		if seat == s {
			return i
		}
	}
	return -1
}

func (ms *MatchState) openSeats() int {
	n := 0
	for _, uid := range ms.Seats {
		if uid == "" {
			n++
		}
	}
	return n
}

func (ms *MatchState) isBotUser(userID string) bool {
	if userID == "" {
		return false
	}
	if _, ok := ms.Bots[userID]; ok {
		return true
	}
	return bot.IsBot(userID)
}

func (ms *MatchState) humanCount() int {
	n := 0
	for _, uid := range ms.Seats {
		if uid != "" && !ms.isBotUser(uid) {
			n++
		}
	}
	return n
}

func (ms *MatchState) firstHumanSeat() int {
	for i, uid := range ms.Seats {
		if uid != "" && !ms.isBotUser(uid) {
			return i
		}
	}
	return -1
}

func (ms *MatchState) seatOf(userID string) int {
	for i, uid := range ms.Seats {
		if uid == userID {
			return i
		}
	}
	return -1
}

func millisToTicks(ms int) int64 {
	t := int64(ms) * tickRate / 1000
	if t < 1 {
		t = 1
	}
	return t
}

// tuningFromConfig overlays configured weights on the defaults. Zero
// fields keep their built-in values.
func tuningFromConfig(bt config.BotTuning) bot.Tuning {
	tune := bot.DefaultTuning
	if bt.BidBase > 0 {
		tune.BidBase = bt.BidBase
	}
	if bt.NoRedOnePenalty > 0 {
		tune.NoRedOnePenalty = bt.NoRedOnePenalty
	}
	if bt.NoBirdPenalty > 0 {
		tune.NoBirdPenalty = bt.NoBirdPenalty
	}
	if bt.ShortSuitPenalty > 0 {
		tune.ShortSuitPenalty = bt.ShortSuitPenalty
	}
	if bt.OffSuitFourteenBonus > 0 {
		tune.OffSuitFourteenBonus = bt.OffSuitFourteenBonus
	}
	if bt.MaxBidNoRedOne > 0 {
		tune.MaxBidNoRedOne = bt.MaxBidNoRedOne
	}
	if bt.MaxBidNoBird > 0 {
		tune.MaxBidNoBird = bt.MaxBidNoBird
	}
	if bt.OpeningMargin > 0 {
		tune.OpeningMargin = bt.OpeningMargin
	}
	if bt.SignalTrickLimit > 0 {
		tune.SignalTrickLimit = bt.SignalTrickLimit
	}
	if bt.FeedTrickLimit > 0 {
		tune.FeedTrickLimit = bt.FeedTrickLimit
	}
	if bt.DuckTrickLimit > 0 {
		tune.DuckTrickLimit = bt.DuckTrickLimit
	}
	return tune
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	state := &MatchState{
		OwnerSeat:        -1,
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		Bots:             make(map[string]*bot.Agent),
		BotMinDelayTicks: millisToTicks(cfg.BotMinThinkMillis),
		BotMaxDelayTicks: millisToTicks(cfg.BotMaxThinkMillis),
		AutoFillTicks:    int64(cfg.BotAutoFillDelaySeconds) * tickRate,
		TurnTimeoutTicks: int64(cfg.TurnDurationSeconds) * tickRate,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	label, err := json.Marshal(matchLabel{Game: "birdgame", Phase: "lobby", Open: state.openSeats()})
	if err != nil {
		logger.Error("MatchInit: failed to marshal label: %v", err)
		return nil, 0, ""
	}
	return state, tickRate, string(label)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Reconnects to an occupied seat are always allowed.
	if matchState.seatOf(presence.GetUserId()) >= 0 {
		return state, true, ""
	}
	if matchState.openSeats() > 0 {
		return state, true, ""
	}
	// A bot seat can be reclaimed while no game is running.
	if matchState.Game == nil {
		for _, uid := range matchState.Seats {
			if matchState.isBotUser(uid) {
				return state, true, ""
			}
		}
	}
	return state, false, "match full"
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		if matchState.seatOf(p.GetUserId()) >= 0 {
			continue // reconnect, seat retained
		}

		assigned := false
		for i, uid := range matchState.Seats {
			if uid == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && matchState.Game == nil {
			for i, uid := range matchState.Seats {
				if matchState.isBotUser(uid) {
					logger.Info("MatchJoin: replacing bot %s with %s in seat %d", uid, p.GetUserId(), i)
					delete(matchState.Bots, uid)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: user %s joined but no seat was available", p.GetUserId())
		}
	}

	if matchState.OwnerSeat < 0 || matchState.isBotUser(matchState.Seats[matchState.OwnerSeat]) ||
		matchState.Seats[matchState.OwnerSeat] == "" {
		matchState.OwnerSeat = matchState.firstHumanSeat()
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.sendSnapshots(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave frees lobby seats; during a hand the leaver's seat is handed
// to a bot so the table can finish the game.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		i := matchState.seatOf(p.GetUserId())
		if i < 0 {
			continue
		}
		if matchState.Game == nil || matchState.Game.Phase == domain.PhaseComplete {
			matchState.Seats[i] = ""
		} else {
			mh.seatBot(matchState, i, logger)
		}
	}

	matchState.OwnerSeat = matchState.firstHumanSeat()
	if matchState.humanCount() == 0 {
		logger.Info("MatchLeave: terminating match with no humans")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.sendSnapshots(matchState, dispatcher, logger)
	return matchState
}

// seatBot installs a bot agent in the given seat, picking an identity not
// already at the table.
func (mh *matchHandler) seatBot(state *MatchState, seat int, logger runtime.Logger) {
	var identity bot.BotIdentity
	for offset := 0; offset < 2*len(state.Seats); offset++ {
		identity = bot.GetBotIdentity(seat + offset)
		if identity.UserID != "" && state.seatOf(identity.UserID) < 0 {
			break
		}
	}
	if identity.UserID == "" || state.seatOf(identity.UserID) >= 0 {
		// Unprovisioned pool; fall back to a local-only id.
		identity.UserID = fmt.Sprintf("bot-seat-%d", seat)
		if identity.DisplayName == "" {
			identity.DisplayName = fmt.Sprintf("AI Player %d", seat+1)
		}
	}

	tune := tuningFromConfig(config.GetGameConfig().BotTuning)
	brain, err := bot.NewBrainWithTuning(bot.LevelFromDifficulty(identity.Difficulty), tune)
	if err != nil {
		logger.Error("seatBot: %v", err)
		return
	}
	state.Seats[seat] = identity.UserID
	state.Bots[identity.UserID] = &bot.Agent{
		ID:       identity.UserID,
		Name:     identity.DisplayName,
		Seat:     seatAt(seat),
		Strategy: brain,
	}
	logger.Info("seatBot: bot %s occupies seat %d", identity.UserID, seat)
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartHand:
			mh.handleStartHand(matchState, dispatcher, logger, msg)
		case OpPlaceBid:
			mh.handlePlaceBid(matchState, dispatcher, logger, msg)
		case OpSelectCards:
			mh.handleSelectCards(matchState, dispatcher, logger, msg)
		case OpDeclareTrump:
			mh.handleDeclareTrump(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		case OpClaimRest:
			mh.handleClaimRest(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: unknown opcode %d", msg.GetOpCode())
		}
	}

	mh.processBots(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Fill a solo human's table after a grace period.
	if state.Game == nil && state.humanCount() == 1 && state.openSeats() > 0 {
		if state.SoloHumanSince == 0 {
			state.SoloHumanSince = state.Tick
		}
		if state.Tick-state.SoloHumanSince >= state.AutoFillTicks {
			for i, uid := range state.Seats {
				if uid == "" {
					mh.seatBot(state, i, logger)
				}
			}
			state.SoloHumanSince = 0
			mh.updateLabel(state, dispatcher, logger)
			mh.sendSnapshots(state, dispatcher, logger)
		}
	} else {
		state.SoloHumanSince = 0
	}

	if state.Game == nil {
		return
	}

	// Deal the next hand after the score display, or immediately after a
	// torn-up auction.
	switch state.Game.Phase {
	case domain.PhaseShowScore, domain.PhaseNew:
		if state.NextDealTick == 0 {
			delay := int64(showScoreDelayTicks)
			if state.Game.Phase == domain.PhaseNew {
				delay = tickRate
			}
			state.NextDealTick = state.Tick + delay
		}
		if state.Tick >= state.NextDealTick {
			state.NextDealTick = 0
			events, err := state.App.DealHand(state.Game)
			if err != nil {
				logger.Error("processBots: redeal failed: %v", err)
				return
			}
			mh.dispatchEvents(state, dispatcher, logger, events)
		}
		return
	case domain.PhaseBidding, domain.PhaseSelecting, domain.PhaseDeclaring, domain.PhasePlaying:
		// fall through to turn handling
	default:
		return
	}

	turn := state.Game.TurnSeat()
	if turn == domain.SeatNone {
		return
	}
	uid := state.Seats[seatIndex(turn)]
	agent, isBot := state.Bots[uid]
	if !isBot {
		state.BotWaitUntil = 0
		mh.enforceTurnTimeout(state, dispatcher, logger, turn)
		return
	}
	state.TurnDeadline = 0

	if state.BotWaitUntil == 0 {
		window := state.BotMaxDelayTicks - state.BotMinDelayTicks + 1
		state.BotWaitUntil = state.Tick + state.BotMinDelayTicks + state.rng.Int63n(window)
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	act, ok := agent.Act(state.Game)
	if !ok {
		return
	}
	events, err := mh.applyAction(state, turn, act)
	if err != nil {
		logger.Error("processBots: bot %s action %s rejected: %v", uid, act.Type, err)
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

// enforceTurnTimeout plays for a human seat that has sat on its decision
// past the configured limit, using the baseline strategy so the move is
// always legal.
func (mh *matchHandler) enforceTurnTimeout(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, turn domain.Seat) {
	if state.TurnTimeoutTicks <= 0 {
		return
	}
	if state.TurnDeadline == 0 {
		state.TurnDeadline = state.Tick + state.TurnTimeoutTicks
		return
	}
	if state.Tick < state.TurnDeadline {
		return
	}
	state.TurnDeadline = 0

	if state.fallback == nil {
		brain, err := bot.NewBrain(bot.BotLevelBasic)
		if err != nil {
			logger.Error("enforceTurnTimeout: %v", err)
			return
		}
		state.fallback = brain
	}
	stand := &bot.Agent{Seat: turn, Strategy: state.fallback}
	act, ok := stand.Act(state.Game)
	if !ok {
		return
	}
	logger.Info("enforceTurnTimeout: playing %s for idle seat %s", act.Type, turn)
	events, err := mh.applyAction(state, turn, act)
	if err != nil {
		logger.Error("enforceTurnTimeout: %v", err)
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) applyAction(state *MatchState, seat domain.Seat, act bot.Action) ([]app.Event, error) {
	switch act.Type {
	case bot.ActionBid:
		return state.App.PlaceBid(state.Game, seat, act.Bid, act.Value)
	case bot.ActionSelect:
		return state.App.SelectNine(state.Game, seat, act.CardIDs)
	case bot.ActionDeclare:
		return state.App.DeclareTrump(state.Game, seat, act.Trump)
	case bot.ActionPlay:
		return state.App.PlayCard(state.Game, seat, act.CardID)
	case bot.ActionClaim:
		return state.App.ClaimRest(state.Game, seat)
	}
	return nil, nil
}

// Client request payloads.

type placeBidRequest struct {
	Action domain.BidAction `json:"action"`
	Value  int              `json:"value"`
}

type selectCardsRequest struct {
	CardIDs []int `json:"card_ids"`
}

type declareTrumpRequest struct {
	Trump domain.Suit `json:"trump"`
}

type playCardRequest struct {
	CardID int `json:"card_id"`
}

// senderSeat resolves the seat of a message sender, or -1.
func (mh *matchHandler) senderSeat(state *MatchState, msg runtime.MatchData) int {
	return state.seatOf(msg.GetUserId())
}

func (mh *matchHandler) handleStartHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := mh.senderSeat(state, msg)
	if seat < 0 || seat != state.OwnerSeat {
		logger.Warn("handleStartHand: %s is not the owner", msg.GetUserId())
		return
	}
	// Any seats still open when the owner starts are handed to bots, so a
	// partial lobby can play without waiting for the auto-fill timer.
	for i, uid := range state.Seats {
		if uid == "" {
			mh.seatBot(state, i, logger)
		}
	}

	var events []app.Event
	if state.Game == nil {
		game, created := state.App.NewGame(config.GetGameConfig().WinScore)
		state.Game = game
		events = append(events, created...)
	}

	dealt, err := state.App.DealHand(state.Game)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	events = append(events, dealt...)

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlaceBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := mh.senderSeat(state, msg)
	if seat < 0 || state.Game == nil {
		return
	}
	var req placeBidRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed bid request")
		return
	}
	events, err := state.App.PlaceBid(state.Game, seatAt(seat), req.Action, req.Value)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleSelectCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := mh.senderSeat(state, msg)
	if seat < 0 || state.Game == nil {
		return
	}
	var req selectCardsRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed selection request")
		return
	}
	events, err := state.App.SelectNine(state.Game, seatAt(seat), req.CardIDs)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleDeclareTrump(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := mh.senderSeat(state, msg)
	if seat < 0 || state.Game == nil {
		return
	}
	var req declareTrumpRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed trump request")
		return
	}
	events, err := state.App.DeclareTrump(state.Game, seatAt(seat), req.Trump)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := mh.senderSeat(state, msg)
	if seat < 0 || state.Game == nil {
		return
	}
	var req playCardRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "malformed play request")
		return
	}
	events, err := state.App.PlayCard(state.Game, seatAt(seat), req.CardID)
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleClaimRest(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	seat := mh.senderSeat(state, msg)
	if seat < 0 || state.Game == nil {
		return
	}
	events, err := state.App.ClaimRest(state.Game, seatAt(seat))
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

// eventOpCodes maps app events to wire opcodes.
var eventOpCodes = map[app.EventKind]int64{
	app.EventGameCreated:       OpMatchState,
	app.EventHandDealt:         OpHandDealt,
	app.EventBiddingStarted:    OpBiddingStarted,
	app.EventBidPlaced:         OpBidPlaced,
	app.EventHandTornUp:        OpHandTornUp,
	app.EventBiddingWon:        OpBiddingWon,
	app.EventCenterpileAwarded: OpCenterpileAwarded,
	app.EventCardsSelected:     OpCardsSelected,
	app.EventTrumpDeclared:     OpTrumpDeclared,
	app.EventCardPlayed:        OpCardPlayed,
	app.EventTrickWon:          OpTrickWon,
	app.EventRestClaimed:       OpRestClaimed,
	app.EventHandScored:        OpHandScored,
	app.EventGameEnded:         OpGameEnded,
}

// dispatchEvents converts app events to wire messages. Seat-targeted events
// reach only the presences in those seats; events aimed solely at bot
// seats are dropped rather than broadcast.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	// Any applied action restarts the idle clock for the next decision.
	state.TurnDeadline = 0
	for _, ev := range events {
		opCode, ok := eventOpCodes[ev.Kind]
		if !ok {
			logger.Warn("dispatchEvents: unknown event kind %q", ev.Kind)
			continue
		}
		data, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("dispatchEvents: marshal %s: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, seat := range ev.Recipients {
				if i := seatIndex(seat); i >= 0 {
					if p, ok := state.Presences[state.Seats[i]]; ok {
						recipients = append(recipients, p)
					}
				}
			}
			if len(recipients) == 0 {
				continue
			}
		}
		dispatcher.BroadcastMessage(opCode, data, recipients, nil, true)

		if ev.Kind == app.EventGameEnded {
			// Back to the lobby; seats and scores stay visible in the
			// closing snapshot.
			state.Game = nil
			mh.updateLabel(state, dispatcher, logger)
			mh.sendSnapshots(state, dispatcher, logger)
		}
	}
}

// sendSnapshots sends every connected presence a personalized match view.
func (mh *matchHandler) sendSnapshots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	seats := state.seatViews()
	for uid, p := range state.Presences {
		snap := MatchSnapshot{Seats: seats}
		if i := state.seatOf(uid); i >= 0 {
			snap.Game = gameViewFor(state.Game, seatAt(i))
		}
		data, err := json.Marshal(snap)
		if err != nil {
			logger.Error("sendSnapshots: %v", err)
			return
		}
		dispatcher.BroadcastMessage(OpMatchState, data, []runtime.Presence{p}, nil, true)
	}
}

func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: no presence for %s", userID)
		return
	}
	data, err := json.Marshal(map[string]interface{}{"code": code, "message": message})
	if err != nil {
		logger.Error("sendError: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpGameError, data, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}
	label, err := json.Marshal(matchLabel{Game: "birdgame", Phase: phase, Open: state.openSeats()})
	if err != nil {
		logger.Error("updateLabel: failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(label)); err != nil {
		logger.Error("updateLabel: failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
