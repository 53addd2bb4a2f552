package synth

import (
	"fmt"
	"time"
)

// ItemRecord is one synthetic inventory-style record.
type ItemRecord struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Value     int     `json:"value"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	Score     float64 `json:"score"`
}

// RecordCount is the number of item records a run produces.
const RecordCount = 10

// CreatedAtLayout is the timestamp format of ItemRecord.CreatedAt.
const CreatedAtLayout = "2006-01-02 15:04:05"

// maxCreatedAtAge bounds how far in the past created_at may fall.
const maxCreatedAtAge = 30 * 24 * time.Hour

var statuses = []string{"active", "inactive", "pending"}

// GenerateItemRecords produces RecordCount records with ids 1..RecordCount
// in order. created_at is now minus a random offset of at most 30 days.
func GenerateItemRecords(src *Source, now time.Time) []ItemRecord {
	records := make([]ItemRecord, 0, RecordCount)
	for id := 1; id <= RecordCount; id++ {
		createdAt := now.Add(-src.Offset(maxCreatedAtAge))
		records = append(records, ItemRecord{
			ID:        id,
			Name:      fmt.Sprintf("item_%d", id),
			Value:     src.IntRange(10, 1000),
			Status:    src.Pick(statuses),
			CreatedAt: createdAt.Format(CreatedAtLayout),
			Score:     Round2(src.FloatRange(0.0, 100.0)),
		})
	}
	return records
}
