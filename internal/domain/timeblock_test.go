package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagecrest/charter-booking-service/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewTimeBlock_Validation(t *testing.T) {
	start := date(2025, time.April, 1)
	end := date(2025, time.April, 3)

	block, err := NewTimeBlock("blk-1", start, end, BlockReasonMaintenance, "admin-7", nil, ptr.Ptr("Y1"), nil)
	require.NoError(t, err)
	assert.Equal(t, "blk-1", block.ID)
	assert.Equal(t, BlockReasonMaintenance, block.Reason)
	assert.False(t, block.CreatedAt.IsZero())
	assert.False(t, block.IsGlobal())

	_, err = NewTimeBlock("blk-2", end, start, BlockReasonWeather, "admin-7", nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidBlockRange)

	_, err = NewTimeBlock("blk-3", start, end, BlockReason("refit"), "admin-7", nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidBlockReason)
}

func TestNewTimeBlock_SameDayRangeAllowed(t *testing.T) {
	day := date(2025, time.April, 1)

	block, err := NewTimeBlock("blk-1", day, day, BlockReasonHoliday, "admin-7", nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, block.IsGlobal())
}

func TestParseBlockReason(t *testing.T) {
	for _, valid := range []string{"maintenance", "weather", "holiday", "reserved", "other"} {
		reason, err := ParseBlockReason(valid)
		require.NoError(t, err)
		assert.Equal(t, BlockReason(valid), reason)
	}

	_, err := ParseBlockReason("refit")
	assert.ErrorIs(t, err, ErrInvalidBlockReason)
}

func TestTimeBlock_ContainsDate(t *testing.T) {
	block, err := NewTimeBlock("blk-1",
		date(2025, time.April, 1), date(2025, time.April, 3),
		BlockReasonMaintenance, "admin-7", nil, nil, nil)
	require.NoError(t, err)

	assert.True(t, block.containsDate(date(2025, time.April, 1)))
	assert.True(t, block.containsDate(date(2025, time.April, 2)))
	assert.True(t, block.containsDate(date(2025, time.April, 3)))
	// end extends to end of day, so a late timestamp on the last day matches
	assert.True(t, block.containsDate(time.Date(2025, time.April, 3, 23, 30, 0, 0, time.UTC)))
	assert.False(t, block.containsDate(date(2025, time.March, 31)))
	assert.False(t, block.containsDate(date(2025, time.April, 4)))
}

func TestTimeBlock_Scope(t *testing.T) {
	global, err := NewTimeBlock("blk-g",
		date(2025, time.April, 1), date(2025, time.April, 1),
		BlockReasonHoliday, "admin-7", nil, nil, nil)
	require.NoError(t, err)

	yachtScoped, err := NewTimeBlock("blk-y",
		date(2025, time.April, 1), date(2025, time.April, 1),
		BlockReasonMaintenance, "admin-7", nil, ptr.Ptr("Y1"), nil)
	require.NoError(t, err)

	packageScoped, err := NewTimeBlock("blk-p",
		date(2025, time.April, 1), date(2025, time.April, 1),
		BlockReasonReserved, "admin-7", ptr.Ptr("P1"), nil, nil)
	require.NoError(t, err)

	assert.True(t, global.appliesTo("P1", nil))
	assert.True(t, global.appliesTo("P2", ptr.Ptr("Y9")))

	assert.True(t, yachtScoped.appliesTo("P1", ptr.Ptr("Y1")))
	assert.False(t, yachtScoped.appliesTo("P1", ptr.Ptr("Y2")))
	assert.False(t, yachtScoped.appliesTo("P1", nil))

	assert.True(t, packageScoped.appliesTo("P1", nil))
	assert.False(t, packageScoped.appliesTo("P2", nil))
}
