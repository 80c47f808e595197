package challenge

import (
	"math"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// Tier names how hard the rolled challenge is
type Tier string

const (
	TierSpared   Tier = "spared"
	TierTested   Tier = "tested"
	TierPunished Tier = "punished"
	TierSuffer   Tier = "suffer"
)

var tierMessages = map[Tier]string{
	TierSpared:   "The challenge gods spare you.",
	TierTested:   "The challenge gods are testing you.",
	TierPunished: "The challenge gods are punishing you.",
	TierSuffer:   "The challenge gods want to see you suffer.",
}

// Message returns the display line for the tier
func (t Tier) Message() string {
	return tierMessages[t]
}

// TierFor maps an aggregate severity onto its tier
func TierFor(severity float64) Tier {
	switch {
	case severity < 0.4:
		return TierSpared
	case severity < 0.7:
		return TierTested
	case severity < 0.9:
		return TierPunished
	default:
		return TierSuffer
	}
}

// Score is the aggregate severity of a roll
type Score struct {
	Severity float64 `json:"severity"`
	Tier     Tier    `json:"tier"`
	Percent  int     `json:"percent"`
}

// Severity multiplies weight/100 across the components of a pick
func Severity(pick Pick, weights WeightTable) (float64, error) {
	severity := 1.0
	for _, mod := range pick.Components() {
		weight, err := weights.Lookup(mod)
		if err != nil {
			return 0, err
		}
		severity *= float64(weight) / 100
	}
	return severity, nil
}

// Evaluate averages the severity of all picks.
// An empty roll has no severity and returns a not applicable error.
func Evaluate(picks []Pick, weights WeightTable) (*Score, error) {
	if len(picks) == 0 {
		return nil, cberr.NotApplicable("cannot score an empty roll")
	}

	total := 0.0
	for _, pick := range picks {
		severity, err := Severity(pick, weights)
		if err != nil {
			return nil, cberr.Wrapf(err, "failed to score %s", pick.Game)
		}
		total += severity
	}

	severity := total / float64(len(picks))

	return &Score{
		Severity: severity,
		Tier:     TierFor(severity),
		Percent:  int(math.Floor(severity * 100)),
	}, nil
}
