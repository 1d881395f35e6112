package recommend

// Recommendation is a single wellness suggestion surfaced to the user.
type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"` // activity, meditation, breathing, journaling, affirmation, music, video
	Tags        []string `json:"tags"`
	Duration    string   `json:"duration"`
	Link        string   `json:"link,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ForMoods    []string `json:"forMoods,omitempty"`
}

// moodOrder lists moods from lowest to highest so adjacent-mood backfill can
// walk outward from the current one.
var moodOrder = []string{
	"depressed", "sad", "stressed", "anxious", "neutral",
	"relaxed", "calm", "happy", "joyful",
}

// builtinCatalog holds the curated per-mood suggestions used when no
// database catalog is configured, and as the seed when one is.
var builtinCatalog = map[string][]Recommendation{
	"joyful": {
		{
			ID:          "j1",
			Title:       "Fast-paced Bollywood Dance Workout",
			Description: "Channel your joyful energy with this upbeat Bollywood dance workout.",
			Type:        "activity",
			Tags:        []string{"dance", "exercise", "bollywood", "energetic"},
			Duration:    "15 min",
		},
		{
			ID:          "j2",
			Title:       "Gratitude Journaling",
			Description: "Write down 5 things that made you feel grateful today.",
			Type:        "journaling",
			Tags:        []string{"gratitude", "reflection", "positive"},
			Duration:    "10 min",
		},
		{
			ID:          "j3",
			Title:       "Joy Meditation",
			Description: "A guided meditation to amplify your feelings of joy and happiness.",
			Type:        "meditation",
			Tags:        []string{"mindfulness", "guided", "joy"},
			Duration:    "8 min",
		},
	},
	"happy": {
		{
			ID:          "h1",
			Title:       "Positive Affirmations in Hindi & English",
			Description: "Listen and repeat these uplifting affirmations to maintain your positive state.",
			Type:        "affirmation",
			Tags:        []string{"positive", "bilingual", "mantras"},
			Duration:    "5 min",
		},
		{
			ID:          "h2",
			Title:       "Nature Walk Mindfulness",
			Description: "Take a mindful walk, focusing on the natural beauty around you.",
			Type:        "activity",
			Tags:        []string{"outdoors", "mindfulness", "nature"},
			Duration:    "20 min",
		},
	},
	"calm": {
		{
			ID:          "c1",
			Title:       "Indian Classical Music for Relaxation",
			Description: "Calming ragas specially selected to maintain your peaceful state.",
			Type:        "music",
			Tags:        []string{"classical", "indian", "instrumental"},
			Duration:    "15 min",
		},
		{
			ID:          "c2",
			Title:       "Gentle Yoga Flow",
			Description: "A series of gentle yoga poses to maintain calm and balance.",
			Type:        "activity",
			Tags:        []string{"yoga", "gentle", "stretching"},
			Duration:    "12 min",
		},
	},
	"relaxed": {
		{
			ID:          "r1",
			Title:       "Progressive Muscle Relaxation",
			Description: "A guided exercise to release tension from your body.",
			Type:        "breathing",
			Tags:        []string{"relaxation", "body-scan", "tension-release"},
			Duration:    "10 min",
		},
		{
			ID:          "r2",
			Title:       "Evening Tea Ritual",
			Description: "Prepare a cup of calming tea (suggestions: tulsi, chamomile) and sip mindfully.",
			Type:        "activity",
			Tags:        []string{"mindfulness", "ritual", "ayurveda"},
			Duration:    "15 min",
		},
	},
	"neutral": {
		{
			ID:          "n1",
			Title:       "Balanced Breathing Practice",
			Description: "A simple box breathing technique to center yourself.",
			Type:        "breathing",
			Tags:        []string{"balance", "focus", "centering"},
			Duration:    "5 min",
		},
		{
			ID:          "n2",
			Title:       "Mindful Observation",
			Description: "Choose an object and observe it with complete attention for 5 minutes.",
			Type:        "meditation",
			Tags:        []string{"focus", "mindfulness", "attention"},
			Duration:    "5 min",
		},
	},
	"anxious": {
		{
			ID:          "a1",
			Title:       "4-7-8 Breathing Technique",
			Description: "A breathing pattern that helps reduce anxiety and induces relaxation.",
			Type:        "breathing",
			Tags:        []string{"anxiety", "calming", "immediate-relief"},
			Duration:    "5 min",
		},
		{
			ID:          "a2",
			Title:       "Guided Anxiety Relief Meditation",
			Description: "A meditation specifically designed to calm anxiety.",
			Type:        "meditation",
			Tags:        []string{"anxiety", "guided", "relief"},
			Duration:    "10 min",
		},
		{
			ID:          "a3",
			Title:       "Worry List Journaling",
			Description: "Write down your worries, then note what's in your control and what's not.",
			Type:        "journaling",
			Tags:        []string{"anxiety", "reflection", "problem-solving"},
			Duration:    "15 min",
		},
	},
	"stressed": {
		{
			ID:          "s1",
			Title:       "Guided Body Scan",
			Description: "A progressive relaxation technique focusing on each part of your body.",
			Type:        "meditation",
			Tags:        []string{"stress-relief", "body", "relaxation"},
			Duration:    "10 min",
		},
		{
			ID:          "s2",
			Title:       "Stress Relief Pressure Points",
			Description: "Apply gentle pressure to specific points on your body to relieve stress.",
			Type:        "activity",
			Tags:        []string{"acupressure", "immediate-relief", "traditional"},
			Duration:    "5 min",
		},
		{
			ID:          "s3",
			Title:       "Calming Pranayama",
			Description: "Traditional Indian breathing exercises to reduce stress.",
			Type:        "breathing",
			Tags:        []string{"yoga", "pranayama", "traditional"},
			Duration:    "7 min",
		},
	},
	"sad": {
		{
			ID:          "sd1",
			Title:       "Self-Compassion Practice",
			Description: "A guided meditation focusing on being kind to yourself during difficult times.",
			Type:        "meditation",
			Tags:        []string{"self-care", "compassion", "kindness"},
			Duration:    "10 min",
		},
		{
			ID:          "sd2",
			Title:       "Mood-Lifting Light Exercise",
			Description: "Simple physical movements to help lift your mood through endorphin release.",
			Type:        "activity",
			Tags:        []string{"movement", "gentle", "mood-boost"},
			Duration:    "10 min",
		},
		{
			ID:          "sd3",
			Title:       "Emotional Release Journaling",
			Description: "Write freely about your feelings without judgment.",
			Type:        "journaling",
			Tags:        []string{"emotional", "expression", "processing"},
			Duration:    "15 min",
		},
	},
	"depressed": {
		{
			ID:          "d1",
			Title:       "Tiny Task Accomplishment",
			Description: "Complete one very small task and acknowledge your achievement.",
			Type:        "activity",
			Tags:        []string{"small-wins", "achievement", "motivation"},
			Duration:    "5 min",
		},
		{
			ID:          "d2",
			Title:       "Grounding Exercise",
			Description: "A simple 5-4-3-2-1 sensory grounding technique.",
			Type:        "breathing",
			Tags:        []string{"grounding", "presence", "immediate-help"},
			Duration:    "5 min",
		},
		{
			ID:          "d3",
			Title:       "Supportive Self-Talk",
			Description: "Practice replacing negative thoughts with supportive statements.",
			Type:        "affirmation",
			Tags:        []string{"cognitive", "positive", "reframing"},
			Duration:    "8 min",
		},
	},
}

// Builtin returns the full curated catalog, e.g. for seeding a database
// store.
func Builtin() []Recommendation {
	var all []Recommendation
	for _, mood := range moodOrder {
		for _, rec := range builtinCatalog[mood] {
			rec.ForMoods = []string{mood}
			all = append(all, rec)
		}
	}
	return all
}

// builtinFor returns the curated suggestions for one mood.
func builtinFor(mood string) []Recommendation {
	return builtinCatalog[mood]
}
