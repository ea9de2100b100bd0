package history

import (
	"math"

	"github.com/KirkDiggler/deuce/internal/models"
)

// recordStats snapshots the live counters into the persisted shape
func recordStats(stats *models.MatchStats) models.RecordStats {
	if stats == nil {
		return models.RecordStats{}
	}
	return models.RecordStats{
		Player1: models.PlayerRecordStats{
			Aces:         stats.Player1.Aces,
			DoubleFaults: stats.Player1.DoubleFaults,
			Winners:      stats.Player1.Winners,
		},
		Player2: models.PlayerRecordStats{
			Aces:         stats.Player2.Aces,
			DoubleFaults: stats.Player2.DoubleFaults,
			Winners:      stats.Player2.Winners,
		},
	}
}

// enhance recomputes the derived fields of a record in place. It runs on
// every save and every read so stored percentages never go stale.
func enhance(record *models.MatchRecord) {
	p1 := &record.Stats.Player1
	p2 := &record.Stats.Player2
	clampCounters(p1)
	clampCounters(p2)

	total := p1.Aces + p1.DoubleFaults + p1.Winners + p2.Aces + p2.DoubleFaults + p2.Winners
	p1.WinningPercentage = percentage(p1.Winners, total)
	p2.WinningPercentage = percentage(p2.Winners, total)
}

// percentage returns part/total*100 rounded half up, 0 when total is 0
func percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(part)/float64(total)*100 + 0.5))
}

// clampCounters zeroes negative counters from malformed input
func clampCounters(stats *models.PlayerRecordStats) {
	stats.Aces = max(stats.Aces, 0)
	stats.DoubleFaults = max(stats.DoubleFaults, 0)
	stats.Winners = max(stats.Winners, 0)
}
