package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartattend/attendance-backend-go/internal/domain/shift"
)

func TestUpsertKeepsAtMostOneRecordPerUserAndDate(t *testing.T) {
	in := "09:15"
	records := []Record{
		{ID: "r1", UserID: "1", Date: "2026-01-05", CheckIn: &in, Status: StatusPresent},
		{ID: "r2", UserID: "2", Date: "2026-01-05", Status: StatusAbsent},
	}

	out := "17:05"
	replacement := Record{ID: "r1", UserID: "1", Date: "2026-01-05", CheckIn: &in, CheckOut: &out, Status: StatusPresent}
	records = Upsert(records, replacement)

	require.Len(t, records, 2)
	rec, ok := Find(records, "1", "2026-01-05")
	require.True(t, ok)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "17:05", *rec.CheckOut)
}

func TestUpsertAppendsNewRecord(t *testing.T) {
	records := []Record{
		{ID: "r1", UserID: "1", Date: "2026-01-05", Shift: shift.TypeGeneral},
	}

	records = Upsert(records, Record{ID: "r2", UserID: "1", Date: "2026-01-06", Shift: shift.TypeGeneral})

	assert.Len(t, records, 2)
	_, ok := Find(records, "1", "2026-01-06")
	assert.True(t, ok)
}

func TestFindMissesOtherDates(t *testing.T) {
	records := []Record{
		{ID: "r1", UserID: "1", Date: "2026-01-05"},
	}

	_, ok := Find(records, "1", "2026-01-06")
	assert.False(t, ok)
	_, ok = Find(records, "2", "2026-01-05")
	assert.False(t, ok)
}
