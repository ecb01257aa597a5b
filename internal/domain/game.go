package domain

import (
	"sort"
	"time"
)

// HandPhase is the lifecycle stage of the current hand.
type HandPhase string

const (
	PhaseNew       HandPhase = "new"
	PhaseDealing   HandPhase = "dealing"
	PhaseBidding   HandPhase = "bidding"
	PhaseSelecting HandPhase = "selecting"
	PhaseDeclaring HandPhase = "declaring_trump"
	PhasePlaying   HandPhase = "playing"
	PhaseScoring   HandPhase = "scoring"
	PhaseShowScore HandPhase = "show_score"
	PhaseComplete  HandPhase = "complete"
)

// DefaultWinScore is the cumulative team score that ends the game.
const DefaultWinScore = 500

// Game is the authoritative record for one table, reused hand after hand
// until a team reaches the winning score. It is pure state plus rules;
// persistence and broadcast belong to the caller, which must also serialize
// access per game.
type Game struct {
	ID     string    `json:"id"`
	Phase  HandPhase `json:"phase"`
	Dealer Seat      `json:"dealer"`

	Hands    map[Seat][]Card `json:"hands"`
	FaceDown []Card          `json:"face_down"`
	FaceUp   *Card           `json:"face_up"` // stays visible after the award
	Awarded  bool            `json:"awarded"` // centerpile moved to the high bidder

	Auction    *Auction `json:"auction"`
	HighBid    int      `json:"high_bid"`
	HighBidder Seat     `json:"high_bidder"`

	Trump   Suit   `json:"trump"`
	Discard []Card `json:"discard"` // the high bidder's six set-aside cards

	CurrentTrick    *Trick           `json:"current_trick"`
	CompletedTricks []CompletedTrick `json:"completed_tricks"`

	Scores      map[Team]int `json:"scores"`
	WinScore    int          `json:"win_score"`
	WinningTeam Team         `json:"winning_team"`
}

// NewGame creates a fresh game record awaiting its first deal.
func NewGame(id string, dealer Seat, winScore int) *Game {
	if winScore <= 0 {
		winScore = DefaultWinScore
	}
	return &Game{
		ID:       id,
		Phase:    PhaseNew,
		Dealer:   dealer,
		Scores:   map[Team]int{TeamNorthSouth: 0, TeamEastWest: 0},
		WinScore: winScore,
	}
}

func (g *Game) resetHand() {
	g.Hands = nil
	g.FaceDown = nil
	g.FaceUp = nil
	g.Awarded = false
	g.Auction = nil
	g.HighBid = 0
	g.HighBidder = SeatNone
	g.Trump = SuitNone
	g.Discard = nil
	g.CurrentTrick = nil
	g.CompletedTricks = nil
}

// DealHand starts a new hand from a pre-shuffled 42-card deck. From
// ShowScore the deal rotates to the next dealer; after an all-pass redeal
// the same dealer deals again.
func (g *Game) DealHand(deck []Card) error {
	switch g.Phase {
	case PhaseNew:
		// First hand, or a torn-up all-pass hand: dealer unchanged.
	case PhaseShowScore:
		g.Dealer = g.Dealer.Next()
	default:
		return ruleErrorf(ErrInvalidPhase, "cannot deal during %s", g.Phase)
	}
	if len(deck) != DeckSize {
		return ruleErrorf(ErrIllegalCard, "deck has %d cards, want %d", len(deck), DeckSize)
	}
	seen := make(map[int]bool, DeckSize)
	for _, c := range deck {
		if seen[c.ID] {
			return ruleErrorf(ErrIllegalCard, "duplicate card id %d in deck", c.ID)
		}
		seen[c.ID] = true
	}

	g.resetHand()
	res := DealCards(deck, g.Dealer)
	g.Hands = res.Hands
	g.FaceDown = res.FaceDown
	faceUp := res.FaceUp
	g.FaceUp = &faceUp
	g.Phase = PhaseDealing
	return nil
}

// StartBidding opens the auction once the caller's dealing handshake is
// done.
func (g *Game) StartBidding() error {
	if g.Phase != PhaseDealing {
		return ruleErrorf(ErrInvalidPhase, "cannot start bidding during %s", g.Phase)
	}
	g.Auction = NewAuction(g.Dealer)
	g.Phase = PhaseBidding
	return nil
}

// PlaceBid records a bid, pass, or check. On completion the centerpile is
// awarded to the high bidder; if every seat passes the hand is torn up and
// must be redealt.
func (g *Game) PlaceBid(seat Seat, action BidAction, value int, at time.Time) error {
	if g.Phase != PhaseBidding {
		return ruleErrorf(ErrInvalidPhase, "cannot bid during %s", g.Phase)
	}
	if err := g.Auction.Place(seat, action, value, at); err != nil {
		return err
	}

	if g.Auction.AllPassed() {
		auction := g.Auction
		g.resetHand()
		g.Auction = auction // keep the history visible until the redeal
		g.Phase = PhaseNew
		return nil
	}
	if g.Auction.Complete() {
		g.HighBid = g.Auction.HighBid
		g.HighBidder = g.Auction.HighBidder
		g.awardCenterpile()
		g.Phase = PhaseSelecting
	}
	return nil
}

func (g *Game) awardCenterpile() {
	hand := g.Hands[g.HighBidder]
	hand = append(hand, g.FaceDown...)
	hand = append(hand, *g.FaceUp)
	g.Hands[g.HighBidder] = hand
	g.FaceDown = nil
	g.Awarded = true
}

// SelectNine keeps the given nine cards in the high bidder's hand and sets
// the other six aside as the discard.
func (g *Game) SelectNine(seat Seat, cardIDs []int) error {
	if g.Phase != PhaseSelecting {
		return ruleErrorf(ErrInvalidPhase, "cannot select cards during %s", g.Phase)
	}
	if seat != g.HighBidder {
		return ruleErrorf(ErrInvalidTurn, "only the high bidder selects cards")
	}
	if len(cardIDs) != HandSize {
		return ruleErrorf(ErrIllegalCard, "must keep exactly %d cards, got %d", HandSize, len(cardIDs))
	}

	hand := g.Hands[seat]
	kept := make([]Card, 0, HandSize)
	keep := make(map[int]bool, HandSize)
	for _, id := range cardIDs {
		if keep[id] {
			return ruleErrorf(ErrIllegalCard, "duplicate card id %d in selection", id)
		}
		i := FindCard(hand, id)
		if i < 0 {
			return ruleErrorf(ErrIllegalCard, "card %d is not in hand", id)
		}
		keep[id] = true
		kept = append(kept, hand[i])
	}

	discard := make([]Card, 0, len(hand)-HandSize)
	for _, c := range hand {
		if !keep[c.ID] {
			discard = append(discard, c)
		}
	}
	g.Hands[seat] = kept
	g.Discard = discard
	g.Phase = PhaseDeclaring
	return nil
}

// DeclareTrump sets the trump color and opens play with the high bidder on
// lead.
func (g *Game) DeclareTrump(seat Seat, trump Suit) error {
	if g.Phase != PhaseDeclaring {
		return ruleErrorf(ErrInvalidPhase, "cannot declare trump during %s", g.Phase)
	}
	if seat != g.HighBidder {
		return ruleErrorf(ErrInvalidTurn, "only the high bidder declares trump")
	}
	valid := false
	for _, s := range Suits {
		if s == trump {
			valid = true
			break
		}
	}
	if !valid {
		return ruleErrorf(ErrIllegalCard, "%q is not a trump color", trump)
	}
	g.Trump = trump
	g.CurrentTrick = &Trick{Lead: g.HighBidder}
	g.Phase = PhasePlaying
	return nil
}

// PlayCard plays a card from the seat's hand into the current trick,
// resolving the trick when it completes.
func (g *Game) PlayCard(seat Seat, cardID int) error {
	if g.Phase != PhasePlaying {
		return ruleErrorf(ErrInvalidPhase, "cannot play a card during %s", g.Phase)
	}
	if turn := g.CurrentTrick.NextSeat(); seat != turn {
		return ruleErrorf(ErrInvalidTurn, "it is %s's turn to play, not %s's", turn, seat)
	}
	hand := g.Hands[seat]
	i := FindCard(hand, cardID)
	if i < 0 {
		return ruleErrorf(ErrIllegalCard, "card %d is not in hand", cardID)
	}
	card := hand[i]
	legal := LegalPlays(hand, g.CurrentTrick, g.Trump)
	if FindCard(legal, cardID) < 0 {
		return ruleErrorf(ErrIllegalCard, "%s violates the follow rule", card)
	}

	g.applyPlay(seat, card)
	return nil
}

func (g *Game) applyPlay(seat Seat, card Card) {
	g.Hands[seat] = RemoveCard(g.Hands[seat], card.ID)
	g.CurrentTrick.Plays = append(g.CurrentTrick.Plays, Play{Seat: seat, Card: card})
	if !g.CurrentTrick.IsComplete() {
		return
	}

	done := g.CurrentTrick.Resolve(g.Trump)
	g.CompletedTricks = append(g.CompletedTricks, done)
	if len(g.CompletedTricks) == TricksPerHand {
		g.CurrentTrick = nil
		g.Phase = PhaseScoring
		return
	}
	g.CurrentTrick = &Trick{Lead: done.Winner}
}

// claimAutoKey orders cards for the claim's lowest-card auto-play.
func claimAutoKey(c Card, trump Suit) int {
	switch {
	case c.IsRedOne():
		return 300
	case c.IsBird():
		return 200
	case c.Suit == trump:
		return 100 + c.Rank
	default:
		return c.Rank
	}
}

// ClaimRest lets the high bidder, on lead, end the hand early once no
// opponent can take another trick: the opponents hold no trump-class card
// and every non-trump card in the claimant's hand out-ranks anything the
// opponents still hold in its color. The remaining tricks run through the
// normal resolution loop with every seat playing its lowest legal card.
func (g *Game) ClaimRest(seat Seat) error {
	if g.Phase != PhasePlaying {
		return ruleErrorf(ErrInvalidPhase, "cannot claim during %s", g.Phase)
	}
	if seat != g.HighBidder {
		return ruleErrorf(ErrIllegalClaim, "only the high bidder may claim")
	}
	if len(g.CurrentTrick.Plays) != 0 || g.CurrentTrick.Lead != seat {
		return ruleErrorf(ErrIllegalClaim, "claimant must be on lead with an empty trick")
	}

	opposing := seat.Team().Opposing()
	highestOpp := map[Suit]int{}
	for _, s := range SeatOrder {
		if s.Team() != opposing {
			continue
		}
		for _, c := range g.Hands[s] {
			if c.IsTrumpClass(g.Trump) {
				return ruleErrorf(ErrIllegalClaim, "an opponent still holds trump")
			}
			if c.Rank > highestOpp[c.Suit] {
				highestOpp[c.Suit] = c.Rank
			}
		}
	}
	for _, c := range g.Hands[seat] {
		if c.IsTrumpClass(g.Trump) {
			continue
		}
		if highestOpp[c.Suit] > c.Rank {
			return ruleErrorf(ErrIllegalClaim, "an opponent can still beat %s", c)
		}
	}

	for g.Phase == PhasePlaying {
		turn := g.CurrentTrick.NextSeat()
		legal := LegalPlays(g.Hands[turn], g.CurrentTrick, g.Trump)
		sort.SliceStable(legal, func(i, j int) bool {
			return claimAutoKey(legal[i], g.Trump) < claimAutoKey(legal[j], g.Trump)
		})
		g.applyPlay(turn, legal[0])
	}
	return nil
}

// ScoreHand applies the hand's result to the team scores. The bidding team
// banks its points only if they cover the bid; otherwise it is set back by
// the full bid while the defenders still bank theirs.
func (g *Game) ScoreHand() error {
	if g.Phase != PhaseScoring {
		return ruleErrorf(ErrInvalidPhase, "cannot score during %s", g.Phase)
	}

	points := map[Team]int{TeamNorthSouth: 0, TeamEastWest: 0}
	for _, ct := range g.CompletedTricks {
		points[ct.Winner.Team()] += ct.Points
	}
	// The discard rides with the final trick.
	last := g.CompletedTricks[len(g.CompletedTricks)-1]
	points[last.Winner.Team()] += CardPoints(g.Discard)

	bidTeam := g.HighBidder.Team()
	defTeam := bidTeam.Opposing()
	if points[bidTeam] >= g.HighBid {
		g.Scores[bidTeam] += points[bidTeam]
	} else {
		g.Scores[bidTeam] -= g.HighBid
	}
	g.Scores[defTeam] += points[defTeam]

	if winner, done := g.winner(); done {
		g.WinningTeam = winner
		g.Phase = PhaseComplete
		return nil
	}
	g.Phase = PhaseShowScore
	return nil
}

// winner reports the game-ending team, if any. A tie at or above the
// winning score keeps the game going for another hand.
func (g *Game) winner() (Team, bool) {
	ns, ew := g.Scores[TeamNorthSouth], g.Scores[TeamEastWest]
	if ns < g.WinScore && ew < g.WinScore {
		return TeamNone, false
	}
	if ns == ew {
		return TeamNone, false
	}
	if ns > ew {
		return TeamNorthSouth, true
	}
	return TeamEastWest, true
}

// HandPoints returns the per-team trick points for the current hand,
// including the discard attribution once nine tricks are in.
func (g *Game) HandPoints() map[Team]int {
	points := map[Team]int{TeamNorthSouth: 0, TeamEastWest: 0}
	for _, ct := range g.CompletedTricks {
		points[ct.Winner.Team()] += ct.Points
	}
	if len(g.CompletedTricks) == TricksPerHand {
		last := g.CompletedTricks[len(g.CompletedTricks)-1]
		points[last.Winner.Team()] += CardPoints(g.Discard)
	}
	return points
}

// TurnSeat returns the seat expected to act in the current phase, or the
// zero seat when no single seat is on turn.
func (g *Game) TurnSeat() Seat {
	switch g.Phase {
	case PhaseBidding:
		return g.Auction.Turn
	case PhaseSelecting, PhaseDeclaring:
		return g.HighBidder
	case PhasePlaying:
		return g.CurrentTrick.NextSeat()
	}
	return SeatNone
}
