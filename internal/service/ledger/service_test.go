package ledger

import (
	"casino_settlement/internal/model"
	"casino_settlement/internal/repository"
	"casino_settlement/internal/repository/memory_repo"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *memory_repo.Store
	players repository.PlayerRepository
	txs     repository.TransactionRepository
	ledger  *serv
}

func newFixture(t *testing.T, balances map[int64]string) *fixture {
	t.Helper()
	store := memory_repo.NewStore()
	f := &fixture{
		store:   store,
		players: memory_repo.NewPlayerRepository(store),
		txs:     memory_repo.NewTransactionRepository(store),
	}
	f.ledger = NewLedgerService(store, f.players, f.txs, memory_repo.NewIdempotencyRepository(store)).(*serv)

	for id, balance := range balances {
		require.NoError(t, f.players.CreatePlayer(context.Background(), &model.Player{
			ID: id, Balance: decimal.RequireFromString(balance), Currency: model.DefaultCurrency,
		}))
	}
	return f
}

func (f *fixture) balance(t *testing.T, id int64) decimal.Decimal {
	t.Helper()
	p, err := f.players.GetPlayer(context.Background(), id)
	require.NoError(t, err)
	return p.Balance
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDebitCredit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[int64]string{1: "100"})

	tx, err := f.ledger.Debit(ctx, model.LedgerEntry{PlayerID: 1, Type: model.TransactionBet, Amount: dec("10"),
		Metadata: map[string]any{"round_id": "r-1"}})
	require.NoError(t, err)
	assert.Equal(t, "100", tx.BalanceBefore.String())
	assert.Equal(t, "90", tx.BalanceAfter.String())
	assert.Equal(t, model.DefaultCurrency, tx.Currency)
	assert.Equal(t, model.TransactionCompleted, tx.Status)
	assert.Equal(t, "r-1", tx.Metadata["round_id"])
	assert.True(t, tx.Consistent())

	tx, err = f.ledger.Credit(ctx, model.LedgerEntry{PlayerID: 1, Type: model.TransactionWin, Amount: dec("25.5")})
	require.NoError(t, err)
	assert.Equal(t, "115.5", tx.BalanceAfter.String())
	assert.True(t, f.balance(t, 1).Equal(dec("115.5")))

	list, err := f.ledger.Transactions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// сумма журнала сходится с балансом
	sum := decimal.RequireFromString("100")
	for _, tx := range list {
		sum = sum.Add(tx.Signed())
	}
	assert.True(t, sum.Equal(f.balance(t, 1)))
}

func TestDebit_InsufficientFundsNoMutation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[int64]string{1: "5"})

	_, err := f.ledger.Debit(ctx, model.LedgerEntry{PlayerID: 1, Type: model.TransactionBet, Amount: dec("10")})
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Equal(t, model.KindInsufficientFunds, model.KindOf(err))

	assert.True(t, f.balance(t, 1).Equal(dec("5")))
	list, err := f.ledger.Transactions(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApply_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[int64]string{1: "5"})

	tests := []struct {
		name  string
		entry model.LedgerEntry
		debit bool
	}{
		{"zero amount", model.LedgerEntry{PlayerID: 1, Type: model.TransactionBet, Amount: decimal.Zero}, true},
		{"negative amount", model.LedgerEntry{PlayerID: 1, Type: model.TransactionWin, Amount: dec("-1")}, false},
		{"rounds to zero", model.LedgerEntry{PlayerID: 1, Type: model.TransactionWin, Amount: dec("0.001")}, false},
		{"credit as debit", model.LedgerEntry{PlayerID: 1, Type: model.TransactionWin, Amount: dec("1")}, true},
		{"debit as credit", model.LedgerEntry{PlayerID: 1, Type: model.TransactionBet, Amount: dec("1")}, false},
		{"unknown type", model.LedgerEntry{PlayerID: 1, Type: "REFUND", Amount: dec("1")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.debit {
				_, err = f.ledger.Debit(ctx, tt.entry)
			} else {
				_, err = f.ledger.Credit(ctx, tt.entry)
			}
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}
	assert.True(t, f.balance(t, 1).Equal(dec("5")))
}

func TestApply_UnknownPlayer(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.ledger.Credit(context.Background(), model.LedgerEntry{PlayerID: 9, Type: model.TransactionWin, Amount: dec("1")})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = f.ledger.Balance(context.Background(), 9)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDebit_ConcurrentNeverOverdraws(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[int64]string{1: "100"})

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.ledger.Debit(ctx, model.LedgerEntry{PlayerID: 1, Type: model.TransactionBet, Amount: dec("10")})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, model.ErrInsufficientFunds):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	assert.Equal(t, int32(15), rejected.Load())
	assert.True(t, f.balance(t, 1).IsZero())
}

func TestApply_JoinsOuterTransaction(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[int64]string{1: "50"})

	err := f.store.Do(ctx, func(txCtx context.Context) error {
		if _, err := f.ledger.Debit(txCtx, model.LedgerEntry{PlayerID: 1, Type: model.TransactionBet, Amount: dec("20")}); err != nil {
			return err
		}
		return errors.New("record round failed")
	})
	require.Error(t, err)

	assert.True(t, f.balance(t, 1).Equal(dec("50")))
	list, _ := f.ledger.Transactions(ctx, 1)
	assert.Empty(t, list)
}

type brokenTransactions struct {
	repository.TransactionRepository
}

func (brokenTransactions) CreateTransaction(context.Context, *model.Transaction) error {
	return errors.New("connection reset")
}

func TestApply_StorageFailureIsUpstream(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, map[int64]string{1: "50"})
	broken := NewLedgerService(f.store, f.players, brokenTransactions{f.txs}, memory_repo.NewIdempotencyRepository(f.store))

	_, err := broken.Debit(ctx, model.LedgerEntry{PlayerID: 1, Type: model.TransactionBet, Amount: dec("20")})
	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
	assert.True(t, f.balance(t, 1).Equal(dec("50")), "balance must roll back with the journal")
}

func TestCreditExternalDeposit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	meta := model.DepositMeta{PaymentID: "pay-1", Currency: "NEON", Method: "card"}

	first, err := f.ledger.CreditExternalDeposit(ctx, 42, dec("500"), meta)
	require.NoError(t, err)
	assert.Equal(t, model.TransactionDeposit, first.Type)
	assert.Equal(t, "pay-1", first.Metadata["payment_id"])

	// повтор того же платежа
	again, err := f.ledger.CreditExternalDeposit(ctx, 42, dec("500"), meta)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, f.balance(t, 42).Equal(dec("500")))

	list, err := f.ledger.Transactions(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.ledger.CreditExternalDeposit(ctx, 43, dec("500"), meta)
	assert.ErrorIs(t, err, model.ErrConflict)

	_, err = f.ledger.CreditExternalDeposit(ctx, 42, dec("500"), model.DepositMeta{})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = f.ledger.CreditExternalDeposit(ctx, 42, dec("-5"), model.DepositMeta{PaymentID: "pay-2"})
	assert.ErrorIs(t, err, model.ErrValidation)
	_, err = f.ledger.CreditExternalDeposit(ctx, 42, dec("5"), model.DepositMeta{PaymentID: "pay-2"})
	require.NoError(t, err, "rejected payment must not burn its id")
}
