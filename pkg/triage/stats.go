package triage

// Stats summarizes the severity labels across a waiting-line snapshot.
type Stats struct {
	Count       int
	AvgSeverity float64
	MinSeverity int
	MaxSeverity int
}

// Summarize computes severity statistics over a snapshot of the line.
// Returns (zero, false) when the snapshot is empty. The snapshot is read
// only; the line itself is never touched.
func Summarize(patients []Patient) (Stats, bool) {
	if len(patients) == 0 {
		return Stats{}, false
	}

	s := Stats{
		Count:       len(patients),
		MinSeverity: patients[0].Severity,
		MaxSeverity: patients[0].Severity,
	}
	total := 0
	for _, p := range patients {
		total += p.Severity
		if p.Severity < s.MinSeverity {
			s.MinSeverity = p.Severity
		}
		if p.Severity > s.MaxSeverity {
			s.MaxSeverity = p.Severity
		}
	}
	s.AvgSeverity = float64(total) / float64(s.Count)
	return s, true
}
