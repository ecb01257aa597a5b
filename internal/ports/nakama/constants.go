package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a
	// lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameBirdGame is the authoritative match handler name registered
	// with Nakama.
	MatchNameBirdGame = "birdgame_match"
)

// Op codes for client messages and server events. Payloads are JSON.
const (
	// Client -> Server
	OpStartHand    int64 = 1
	OpPlaceBid     int64 = 2
	OpSelectCards  int64 = 3
	OpDeclareTrump int64 = 4
	OpPlayCard     int64 = 5
	OpClaimRest    int64 = 6

	// Server -> Client events
	OpMatchState        int64 = 100
	OpHandDealt         int64 = 101 // sent privately per seat
	OpBiddingStarted    int64 = 102
	OpBidPlaced         int64 = 103
	OpHandTornUp        int64 = 104
	OpBiddingWon        int64 = 105
	OpCenterpileAwarded int64 = 106 // sent privately to the high bidder
	OpCardsSelected     int64 = 107
	OpTrumpDeclared     int64 = 108
	OpCardPlayed        int64 = 109
	OpTrickWon          int64 = 110
	OpRestClaimed       int64 = 111
	OpHandScored        int64 = 112
	OpGameEnded         int64 = 113
	OpGameError         int64 = 120
)
