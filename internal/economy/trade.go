package economy

import (
	"context"

	"github.com/google/uuid"
)

// CreateTradeOffer escrows the offered amount from the player immediately.
// Fails (false) when the player cannot cover the offer.
func (s *Store) CreateTradeOffer(ctx context.Context, offerCur Currency, offerAmount int, askingCur Currency, askingAmount int) (TradeOffer, bool) {
	_ = ctx
	if offerAmount <= 0 || askingAmount <= 0 {
		return TradeOffer{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.spendLocked(offerCur, offerAmount, "trade offer created") {
		return TradeOffer{}, false
	}

	offer := &TradeOffer{
		ID:             uuid.NewString(),
		SellerID:       PlayerID,
		SellerName:     "You",
		OfferCurrency:  offerCur,
		OfferAmount:    offerAmount,
		AskingCurrency: askingCur,
		AskingAmount:   askingAmount,
		Status:         TradeOpen,
		CreatedAt:      s.now(),
	}
	s.trades[offer.ID] = offer
	s.tradeOrder = append([]string{offer.ID}, s.tradeOrder...)
	return *offer, true
}

// SeedTradeOffer inserts an offer from another party (no escrow against the
// local treasury).
func (s *Store) SeedTradeOffer(ctx context.Context, offer TradeOffer) TradeOffer {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}
	if offer.Status == "" {
		offer.Status = TradeOpen
	}
	o := offer
	s.trades[o.ID] = &o
	s.tradeOrder = append([]string{o.ID}, s.tradeOrder...)
	return o
}

// AcceptTrade pays the asking price and credits the offered currency. Only
// open offers from another party can be accepted, and only once.
func (s *Store) AcceptTrade(ctx context.Context, tradeID string) bool {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.trades[tradeID]
	if !ok || offer.Status != TradeOpen {
		return false
	}
	if offer.SellerID == PlayerID {
		return false
	}

	if !s.spendLocked(offer.AskingCurrency, offer.AskingAmount, "trade with "+offer.SellerName) {
		return false
	}
	s.earnLocked(offer.OfferCurrency, offer.OfferAmount, "trade with "+offer.SellerName)

	offer.Status = TradeCompleted
	return true
}

// CancelTrade refunds the escrowed amount. Only the player's own open
// offers can be cancelled.
func (s *Store) CancelTrade(ctx context.Context, tradeID string) bool {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.trades[tradeID]
	if !ok || offer.Status != TradeOpen || offer.SellerID != PlayerID {
		return false
	}

	s.earnLocked(offer.OfferCurrency, offer.OfferAmount, "trade cancelled - refund")
	offer.Status = TradeCancelled
	return true
}

// TradeOffers returns all offers, newest first.
func (s *Store) TradeOffers(ctx context.Context) []TradeOffer {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TradeOffer, 0, len(s.tradeOrder))
	for _, id := range s.tradeOrder {
		out = append(out, *s.trades[id])
	}
	return out
}

// OpenTrades returns only offers still open, newest first.
func (s *Store) OpenTrades(ctx context.Context) []TradeOffer {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TradeOffer, 0)
	for _, id := range s.tradeOrder {
		if o := s.trades[id]; o.Status == TradeOpen {
			out = append(out, *o)
		}
	}
	return out
}
