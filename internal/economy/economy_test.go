package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kytol/skeleton-crew/internal/config"
)

func newStoreForTest() *Store {
	return NewStore(config.Default())
}

func TestStartingFundsGoThroughLedger(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	assert.Equal(t, 5000, s.GetBalance(ctx, CurrencyGold))
	assert.Equal(t, 50, s.GetBalance(ctx, CurrencyGems))
	assert.Equal(t, 10, s.GetBalance(ctx, CurrencySouls))

	txs := s.Transactions(ctx, 0)
	require.Len(t, txs, 3)
	for _, tx := range txs {
		assert.Equal(t, KindEarn, tx.Kind)
	}
}

func TestEarnClampsAtCap(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	// 5000 starting, cap 100000.
	assert.True(t, s.Earn(ctx, CurrencyGold, 99999999, "jackpot"))
	assert.Equal(t, 100000, s.GetBalance(ctx, CurrencyGold))

	tx := s.Transactions(ctx, 1)[0]
	assert.Equal(t, 95000, tx.Amount, "ledger records the credited delta, not the request")
	assert.Equal(t, 100000, tx.BalanceAfter)

	// At cap: zero-credit no-op.
	before := len(s.Transactions(ctx, 0))
	assert.False(t, s.Earn(ctx, CurrencyGold, 1, "overflow"))
	assert.Equal(t, before, len(s.Transactions(ctx, 0)), "no ledger entry at cap")
}

func TestSpendInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	assert.False(t, s.Spend(ctx, CurrencyGold, 5001, "too much"))
	assert.Equal(t, 5000, s.GetBalance(ctx, CurrencyGold))

	assert.True(t, s.Spend(ctx, CurrencyGold, 5000, "all in"))
	assert.Equal(t, 0, s.GetBalance(ctx, CurrencyGold))
}

func TestEarnRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	assert.False(t, s.Earn(ctx, CurrencyGold, 0, "nothing"))
	assert.False(t, s.Earn(ctx, CurrencyGold, -5, "negative"))
	assert.Equal(t, 5000, s.GetBalance(ctx, CurrencyGold))
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	s.Earn(ctx, CurrencyGold, 100, "work")
	s.Spend(ctx, CurrencyGold, 30, "snacks")

	earned, spent := s.Totals(ctx)
	assert.Equal(t, 5000+50+10+100, earned)
	assert.Equal(t, 30, spent)
}

func TestTradeCancelRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	before := s.GetBalance(ctx, CurrencyGold)
	offer, ok := s.CreateTradeOffer(ctx, CurrencyGold, 1000, CurrencyGems, 10)
	require.True(t, ok)
	assert.Equal(t, before-1000, s.GetBalance(ctx, CurrencyGold), "offer escrows immediately")

	assert.True(t, s.CancelTrade(ctx, offer.ID))
	assert.Equal(t, before, s.GetBalance(ctx, CurrencyGold), "cancel restores the exact pre-offer balance")

	assert.False(t, s.CancelTrade(ctx, offer.ID), "cancelled offer stays cancelled")
}

func TestTradeAcceptTransfers(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	offer := s.SeedTradeOffer(ctx, TradeOffer{
		SellerID: "npc-1", SellerName: "Grimble",
		OfferCurrency: CurrencyGems, OfferAmount: 25,
		AskingCurrency: CurrencyGold, AskingAmount: 2000,
	})

	goldBefore := s.GetBalance(ctx, CurrencyGold)
	gemsBefore := s.GetBalance(ctx, CurrencyGems)

	require.True(t, s.AcceptTrade(ctx, offer.ID))
	assert.Equal(t, goldBefore-2000, s.GetBalance(ctx, CurrencyGold))
	assert.Equal(t, gemsBefore+25, s.GetBalance(ctx, CurrencyGems))

	assert.False(t, s.AcceptTrade(ctx, offer.ID), "an offer can only be accepted once")
}

func TestCannotAcceptOwnOffer(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	offer, ok := s.CreateTradeOffer(ctx, CurrencyGold, 100, CurrencyGems, 1)
	require.True(t, ok)
	assert.False(t, s.AcceptTrade(ctx, offer.ID))
}

func TestAcceptFailsWithoutFundsLeavesOfferOpen(t *testing.T) {
	ctx := context.Background()
	s := newStoreForTest()

	offer := s.SeedTradeOffer(ctx, TradeOffer{
		SellerID: "npc-1", SellerName: "Grimble",
		OfferCurrency: CurrencyGems, OfferAmount: 5,
		AskingCurrency: CurrencyGold, AskingAmount: 99999,
	})

	assert.False(t, s.AcceptTrade(ctx, offer.ID))
	open := s.OpenTrades(ctx)
	require.Len(t, open, 1)
	assert.Equal(t, TradeOpen, open[0].Status)
}
