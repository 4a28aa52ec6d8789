package types

import "time"

// CycleResult represents one completed mining cycle
type CycleResult struct {
	Cycle        int           `json:"cycle"`
	Hash         string        `json:"hash"` // winning digest, hex
	Nonce        uint64        `json:"nonce"`
	LeadingZeros int           `json:"leading_zeros"`
	Attempts     int64         `json:"attempts"`
	Duration     time.Duration `json:"duration"`
}

// ElapsedSeconds returns the cycle duration in seconds
func (r *CycleResult) ElapsedSeconds() float64 {
	return r.Duration.Seconds()
}

// Summary aggregates every cycle of one simulation run
type Summary struct {
	Algorithm     string         `json:"algorithm"`
	Difficulty    int            `json:"difficulty"`
	Started       time.Time      `json:"started"`
	Cycles        []*CycleResult `json:"cycles"`
	AverageSecs   float64        `json:"average_seconds"`
	TotalAttempts int64          `json:"total_attempts"`
}

// AverageSeconds returns the mean cycle duration in seconds
func (s *Summary) AverageSeconds() float64 {
	return s.AverageSecs
}

// Average returns the mean cycle duration
func (s *Summary) Average() time.Duration {
	return time.Duration(s.AverageSecs * float64(time.Second))
}

// HashRate returns attempts per second across the whole run
func (s *Summary) HashRate() float64 {
	var total time.Duration
	for _, c := range s.Cycles {
		total += c.Duration
	}
	if total.Seconds() <= 0 {
		return 0
	}
	return float64(s.TotalAttempts) / total.Seconds()
}

// Progress is the best digest seen so far in a cycle that has not finished
type Progress struct {
	Hash         string
	Nonce        uint64
	LeadingZeros int
	Attempts     int64
	Duration     time.Duration
}
