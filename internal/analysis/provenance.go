package analysis

// ScoreName identifies one of the seven core scores
type ScoreName string

const (
	ScoreMetabolicRate  ScoreName = "metabolic_rate"
	ScoreFatBurning     ScoreName = "fat_burning"
	ScoreLungUtil       ScoreName = "lung_util"
	ScoreHRV            ScoreName = "hrv"
	ScoreSympParasym    ScoreName = "symp_parasym"
	ScoreVentilationEff ScoreName = "ventilation_eff"
	ScoreBreathingCoord ScoreName = "breathing_coord"
)

// ScoreNames lists every score in report order
var ScoreNames = []ScoreName{
	ScoreMetabolicRate,
	ScoreFatBurning,
	ScoreLungUtil,
	ScoreHRV,
	ScoreSympParasym,
	ScoreVentilationEff,
	ScoreBreathingCoord,
}

// Tier says where the input behind a score came from
type Tier string

const (
	TierMeasured   Tier = "measured"   // trusted extracted value
	TierCalculated Tier = "calculated" // derived from a correlate or chart reading
	TierEstimated  Tier = "estimated"  // demographic estimate
	TierTypical    Tier = "typical"    // hardcoded typical value
)

// Source records the tier and a human-readable calculation detail
type Source struct {
	Tier   Tier   `json:"tier"`
	Detail string `json:"detail"`
}

// Provenance is the advisory per-score audit trail of a scoring run
type Provenance struct {
	Sources map[ScoreName]Source `json:"sources"`
	Notes   []string             `json:"notes,omitempty"` // rejected inputs
}

func newProvenance() Provenance {
	return Provenance{Sources: make(map[ScoreName]Source, len(ScoreNames))}
}

// Source returns the source of a score
func (p Provenance) Source(name ScoreName) Source {
	return p.Sources[name]
}

// Count returns how many scores came from the given tier
func (p Provenance) Count(tier Tier) int {
	n := 0
	for _, s := range p.Sources {
		if s.Tier == tier {
			n++
		}
	}
	return n
}

// Data quality flags shown next to the scores
const (
	QualityMeasured  = "Measured"
	QualityPartial   = "Partially estimated"
	QualityEstimated = "Estimated"
)

// DataQuality summarizes provenance into the flag end users see
func (p Provenance) DataQuality() string {
	fromData := p.Count(TierMeasured) + p.Count(TierCalculated)
	switch {
	case len(p.Sources) > 0 && fromData == len(p.Sources):
		return QualityMeasured
	case fromData == 0:
		return QualityEstimated
	default:
		return QualityPartial
	}
}
