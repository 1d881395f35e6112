package music

// Params maps a mood onto Spotify recommendation constraints. Pointer
// fields are only applied when set.
type Params struct {
	Genres        []string
	MinEnergy     *float64
	MaxEnergy     *float64
	TargetEnergy  *float64
	MinValence    *float64
	MaxValence    *float64
	TargetValence *float64
	MaxTempo      *float64
}

var moodParams = map[string]Params{
	"joyful":    {Genres: []string{"bollywood", "pop", "edm"}, MinEnergy: f(0.8), MinValence: f(0.8)},
	"happy":     {Genres: []string{"bollywood", "pop", "indie"}, MinEnergy: f(0.6), MinValence: f(0.6)},
	"calm":      {Genres: []string{"indian classical", "ambient", "chill"}, MaxEnergy: f(0.4), MinValence: f(0.5)},
	"relaxed":   {Genres: []string{"acoustic", "chill", "instrumental"}, MaxEnergy: f(0.5), MinValence: f(0.4)},
	"neutral":   {Genres: []string{"indie", "folk", "world"}, TargetEnergy: f(0.5), TargetValence: f(0.5)},
	"anxious":   {Genres: []string{"classical", "ambient", "indian classical"}, MaxEnergy: f(0.4), MaxTempo: f(80)},
	"stressed":  {Genres: []string{"meditation", "ambient", "indian classical"}, MaxEnergy: f(0.3), MaxTempo: f(70)},
	"sad":       {Genres: []string{"acoustic", "indie", "bollywood"}, MaxEnergy: f(0.5), MaxValence: f(0.4)},
	"depressed": {Genres: []string{"chill", "ambient", "acoustic"}, MaxEnergy: f(0.4), MaxValence: f(0.3)},
}

// ParamsFor returns the constraint set for a mood, defaulting to neutral.
func ParamsFor(mood string) Params {
	if p, ok := moodParams[mood]; ok {
		return p
	}
	return moodParams["neutral"]
}

// targetEnergy derives the energy value used as the cluster-selection
// target: the explicit target if set, otherwise the middle of the allowed
// band.
func (p Params) targetEnergy() float64 {
	switch {
	case p.TargetEnergy != nil:
		return *p.TargetEnergy
	case p.MinEnergy != nil:
		return (*p.MinEnergy + 1) / 2
	case p.MaxEnergy != nil:
		return *p.MaxEnergy / 2
	default:
		return 0.5
	}
}

// targetValence derives the valence cluster-selection target.
func (p Params) targetValence() float64 {
	switch {
	case p.TargetValence != nil:
		return *p.TargetValence
	case p.MinValence != nil:
		return (*p.MinValence + 1) / 2
	case p.MaxValence != nil:
		return *p.MaxValence / 2
	default:
		return 0.5
	}
}

func f(v float64) *float64 {
	return &v
}
