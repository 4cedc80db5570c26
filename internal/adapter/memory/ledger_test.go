package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpc-billing/internal/core/domain"
	"cpc-billing/internal/core/port"
)

func TestLedger_FindEligibleCampaignOrdering(t *testing.T) {
	l := NewLedger()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	for _, id := range []uuid.UUID{b, a} {
		l.PutCampaign(domain.Campaign{ID: id, ProductID: "p", Status: domain.CampaignActive, IsApproved: true, CreatedAt: created})
	}
	l.PutCampaign(domain.Campaign{ID: uuid.New(), ProductID: "p", Status: domain.CampaignPaused, IsApproved: true, CreatedAt: created.Add(-time.Hour)})

	c, err := l.FindEligibleCampaign(context.Background(), "p", nil)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, a, c.ID)

	c, err = l.FindEligibleCampaign(context.Background(), "other", nil)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestLedger_InTxRollsBack(t *testing.T) {
	l := NewLedger()
	advID := uuid.New()
	l.PutAdvertiser(domain.Advertiser{ID: advID, Balance: decimal.NewFromInt(10), IsActive: true})

	errAbort := errors.New("abort")
	err := l.InTx(context.Background(), func(ctx context.Context, tx port.LedgerTx) error {
		balance, ok, err := tx.DebitBalance(ctx, advID, decimal.NewFromInt(4))
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, decimal.NewFromInt(6).Equal(balance))
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	a, err := l.GetAdvertiser(context.Background(), advID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(a.Balance))
}

func TestLedger_DebitRefusesOverdraft(t *testing.T) {
	l := NewLedger()
	advID := uuid.New()
	l.PutAdvertiser(domain.Advertiser{ID: advID, Balance: decimal.NewFromInt(3), IsActive: true})

	err := l.InTx(context.Background(), func(ctx context.Context, tx port.LedgerTx) error {
		balance, ok, err := tx.DebitBalance(ctx, advID, decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, decimal.NewFromInt(3).Equal(balance))
		return nil
	})
	require.NoError(t, err)
}

func TestLedger_InTxHonoursCancelledContext(t *testing.T) {
	l := NewLedger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.InTx(ctx, func(context.Context, port.LedgerTx) error {
		t.Fatal("fn must not run")
		return nil
	})
	assert.ErrorIs(t, err, port.ErrTransientStore)
}

func TestLedger_PurgeIdempotencyKeys(t *testing.T) {
	l := NewLedger()
	require.NoError(t, l.InTx(context.Background(), func(ctx context.Context, tx port.LedgerTx) error {
		_, err := tx.ReserveIdempotencyKey(ctx, "k", "h")
		return err
	}))

	n, err := l.PurgeIdempotencyKeys(context.Background(), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = l.PurgeIdempotencyKeys(context.Background(), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
