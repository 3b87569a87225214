package economy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kytol/skeleton-crew/internal/config"
)

// PlayerID identifies the local player in trade offers.
const PlayerID = "player"

// Store is the treasury: multi-currency balances with hard caps and an
// append-only transaction ledger.
type Store struct {
	mu           sync.RWMutex
	balances     map[Currency]*Balance
	transactions []Transaction
	trades       map[string]*TradeOffer
	tradeOrder   []string
	totalEarned  int
	totalSpent   int
	now          func() time.Time
}

func NewStore(balance config.Balance) *Store {
	s := &Store{
		balances: map[Currency]*Balance{
			CurrencyGold:  {Currency: CurrencyGold, Amount: 0, Cap: balance.GoldCap},
			CurrencyGems:  {Currency: CurrencyGems, Amount: 0, Cap: balance.GemsCap},
			CurrencySouls: {Currency: CurrencySouls, Amount: 0, Cap: balance.SoulsCap},
		},
		trades: map[string]*TradeOffer{},
		now:    time.Now,
	}

	// Starting funds go through Earn so the ledger opens with them.
	_ = s.Earn(context.Background(), CurrencyGold, balance.StartingGold, "starting funds")
	_ = s.Earn(context.Background(), CurrencyGems, balance.StartingGems, "starting funds")
	_ = s.Earn(context.Background(), CurrencySouls, balance.StartingSouls, "starting funds")
	return s
}

// SetNowFunc overrides the clock for tests.
func (s *Store) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Store) GetBalance(ctx context.Context, c Currency) int {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.balances[c]; ok {
		return b.Amount
	}
	return 0
}

func (s *Store) CanAfford(ctx context.Context, c Currency, amount int) bool {
	return s.GetBalance(ctx, c) >= amount
}

// Balances returns a snapshot of all currency balances.
func (s *Store) Balances(ctx context.Context) []Balance {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Balance, 0, len(Currencies))
	for _, c := range Currencies {
		out = append(out, *s.balances[c])
	}
	return out
}

// Earn credits a currency, clamping at the cap. The ledger records the
// delta actually credited. At cap this is a zero-credit no-op and returns
// false; it is never an error.
func (s *Store) Earn(ctx context.Context, c Currency, amount int, description string) bool {
	_ = ctx
	if amount <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.balances[c]
	if !ok {
		return false
	}
	credited := amount
	if b.Amount+credited > b.Cap {
		credited = b.Cap - b.Amount
	}
	if credited <= 0 {
		return false
	}

	b.Amount += credited
	s.totalEarned += credited
	s.record(KindEarn, c, credited, description, b.Amount)
	return true
}

// Spend debits a currency. Insufficient balance fails without mutation.
func (s *Store) Spend(ctx context.Context, c Currency, amount int, description string) bool {
	_ = ctx
	if amount <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spendLocked(c, amount, description)
}

func (s *Store) spendLocked(c Currency, amount int, description string) bool {
	b, ok := s.balances[c]
	if !ok || b.Amount < amount {
		return false
	}
	b.Amount -= amount
	s.totalSpent += amount
	s.record(KindSpend, c, -amount, description, b.Amount)
	return true
}

func (s *Store) earnLocked(c Currency, amount int, description string) int {
	b, ok := s.balances[c]
	if !ok || amount <= 0 {
		return 0
	}
	credited := amount
	if b.Amount+credited > b.Cap {
		credited = b.Cap - b.Amount
	}
	if credited <= 0 {
		return 0
	}
	b.Amount += credited
	s.totalEarned += credited
	s.record(KindEarn, c, credited, description, b.Amount)
	return credited
}

func (s *Store) record(kind TransactionKind, c Currency, amount int, description string, after int) {
	tx := Transaction{
		ID:           uuid.NewString(),
		Kind:         kind,
		Currency:     c,
		Amount:       amount,
		Description:  description,
		Timestamp:    s.now(),
		BalanceAfter: after,
	}
	// newest first
	s.transactions = append([]Transaction{tx}, s.transactions...)
}

// Transactions returns the ledger, newest first. limit <= 0 means all.
func (s *Store) Transactions(ctx context.Context, limit int) []Transaction {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.transactions)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Transaction, n)
	copy(out, s.transactions[:n])
	return out
}

// Totals returns lifetime earned and spent aggregates.
func (s *Store) Totals(ctx context.Context) (earned, spent int) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalEarned, s.totalSpent
}
