package earnings_test

import (
	"testing"
	"time"

	"mainbridge/internal/core/domain/model/earnings"
	"mainbridge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T) *earnings.Record {
	t.Helper()
	value, err := kernel.MoneyFromString("105.00")
	require.NoError(t, err)

	r, err := earnings.NewRecord(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		value, time.Date(2024, 3, 5, 16, 45, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return r
}

func TestNewRecord(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		r := newTestRecord(t)
		assert.Equal(t, earnings.PaymentPending, r.Status())
		assert.Equal(t, "105.00", r.Value().String())
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		_, err := earnings.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.ZeroMoney(), time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("invalid_courier_id_is_rejected", func(t *testing.T) {
		value, _ := kernel.MoneyFromString("105.00")
		_, err := earnings.NewRecord(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			value, time.Now(),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRecord_MarkPaid(t *testing.T) {
	t.Run("pending_record_can_be_paid", func(t *testing.T) {
		r := newTestRecord(t)
		require.NoError(t, r.MarkPaid())
		assert.Equal(t, earnings.PaymentPaid, r.Status())
	})

	t.Run("paid_record_cannot_be_paid_again", func(t *testing.T) {
		r := newTestRecord(t)
		require.NoError(t, r.MarkPaid())
		require.Error(t, r.MarkPaid())
	})
}

func TestRestoreRecord(t *testing.T) {
	value, _ := kernel.MoneyFromString("24.50")
	createdAt := time.Now()

	r, err := earnings.RestoreRecord(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		value, earnings.PaymentPaid, createdAt,
	)
	require.NoError(t, err)
	assert.Equal(t, earnings.PaymentPaid, r.Status())

	_, err = earnings.RestoreRecord(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		value, earnings.PaymentUnknown, createdAt,
	)
	require.Error(t, err)
}

func TestRecord_Validate(t *testing.T) {
	var r *earnings.Record
	require.ErrorIs(t, r.Validate(), earnings.ErrRecordIsNotConstructed)
}
