// Package content holds the compiled-in content catalog: mental-health topic
// categories and the motivational quote pool. The catalog is read-only and
// versioned with the binary.
package content

import "github.com/healncure/healncure-backend/internal/models"

var categories = []models.Category{
	{
		ID:          1,
		Slug:        "depression",
		Title:       "Depression",
		Description: "A mood disorder causing a persistent feeling of sadness and loss of interest.",
		Details: models.CategoryDetails{
			Causes:   []string{"Genetics", "Brain chemistry", "Life events", "Medical conditions"},
			Symptoms: []string{"Persistent sadness", "Loss of interest in activities", "Changes in sleep or appetite", "Fatigue"},
			Effects:  []string{"Impaired social functioning", "Work or school problems", "Increased risk of suicide", "Physical health problems"},
		},
	},
	{
		ID:          2,
		Slug:        "anxiety",
		Title:       "Anxiety",
		Description: "Intense, excessive, and persistent worry and fear about everyday situations.",
		Details: models.CategoryDetails{
			Causes:   []string{"Genetics", "Brain chemistry", "Stressful life events", "Personality factors"},
			Symptoms: []string{"Feeling nervous, restless or tense", "Increased heart rate", "Rapid breathing", "Sweating"},
			Effects:  []string{"Avoidance of situations", "Impaired quality of life", "Panic attacks", "Increased risk of depression"},
		},
	},
	{
		ID:          3,
		Slug:        "stress",
		Title:       "Stress",
		Description: "A feeling of emotional or physical tension from any event or thought that makes you feel frustrated, angry, or nervous.",
		Details: models.CategoryDetails{
			Causes:   []string{"Work or school pressure", "Financial problems", "Relationship issues", "Major life changes"},
			Symptoms: []string{"Headaches", "Upset stomach", "Muscle tension", "Difficulty sleeping"},
			Effects:  []string{"High blood pressure", "Heart disease", "Weakened immune system", "Mental health disorders"},
		},
	},
	{
		ID:          4,
		Slug:        "overthinking",
		Title:       "Overthinking",
		Description: "The habit of repeatedly thinking about the same thoughts, which are often worrisome or negative.",
		Details: models.CategoryDetails{
			Causes:   []string{"Anxiety", "Perfectionism", "Past trauma", "Uncertainty"},
			Symptoms: []string{"Inability to stop worrying", "Reliving past mistakes", "Second-guessing decisions", "Analysis paralysis"},
			Effects:  []string{"Mental exhaustion", "Increased stress and anxiety", "Difficulty making decisions", "Sleep problems"},
		},
	},
	{
		ID:          5,
		Slug:        "insomnia",
		Title:       "Insomnia",
		Description: "A common sleep disorder that can make it hard to fall asleep, hard to stay asleep, or cause you to wake up too early.",
		Details: models.CategoryDetails{
			Causes:   []string{"Stress", "Poor sleep habits", "Mental health disorders", "Medical conditions"},
			Symptoms: []string{"Difficulty falling asleep at night", "Waking up during the night", "Feeling tired upon waking", "Daytime fatigue"},
			Effects:  []string{"Lower performance at work or school", "Slowed reaction time", "Increased risk of accidents", "Health problems"},
		},
	},
	{
		ID:          6,
		Slug:        "grief",
		Title:       "Grief",
		Description: "A natural response to loss. It’s the emotional suffering you feel when something or someone you love is taken away.",
		Details: models.CategoryDetails{
			Causes:   []string{"Death of a loved one", "Loss of a job", "End of a relationship", "Serious illness"},
			Symptoms: []string{"Sadness", "Anger", "Guilt", "Shock and disbelief"},
			Effects:  []string{"Depression", "Anxiety", "Physical symptoms like fatigue", "Difficulty concentrating"},
		},
	},
	{
		ID:          7,
		Slug:        "burnout",
		Title:       "Burnout",
		Description: "A state of emotional, physical, and mental exhaustion caused by excessive and prolonged stress.",
		Details: models.CategoryDetails{
			Causes:   []string{"Excessive workload", "Lack of control", "Unclear job expectations", "Lack of social support"},
			Symptoms: []string{"Feeling tired and drained most of the time", "Feeling cynical about your job", "Sense of ineffectiveness", "Detachment"},
			Effects:  []string{"Reduced productivity", "Increased errors", "Health problems", "Negative impact on personal life"},
		},
	},
	{
		ID:          8,
		Slug:        "self-esteem",
		Title:       "Self-Esteem",
		Description: "Your overall opinion of yourself — how you feel about your abilities and limitations.",
		Details: models.CategoryDetails{
			Causes:   []string{"Childhood experiences", "Life events", "Peer groups", "Media influence"},
			Symptoms: []string{"Negative self-talk", "Comparing oneself to others", "Fear of failure", "Difficulty accepting compliments"},
			Effects:  []string{"Relationship problems", "Anxiety and depression", "Poor academic or work performance", "Lack of resilience"},
		},
	},
	{
		ID:          9,
		Slug:        "loneliness",
		Title:       "Loneliness",
		Description: "An unpleasant emotional response to perceived social isolation.",
		Details: models.CategoryDetails{
			Causes:   []string{"Social isolation", "Life transitions", "Mental health issues", "Poor social skills"},
			Symptoms: []string{"Feeling empty", "Feeling left out", "Craving social contact", "Low self-worth"},
			Effects:  []string{"Increased risk of depression", "Sleep problems", "Weakened immune system", "Poor cardiovascular health"},
		},
	},
	{
		ID:          10,
		Slug:        "anger-management",
		Title:       "Anger Management",
		Description: "The process of learning to recognize signs that you're becoming angry, and taking action to calm down and deal with the situation in a positive way.",
		Details: models.CategoryDetails{
			Causes:   []string{"Stress", "Frustration", "Injustice", "Personal problems"},
			Symptoms: []string{"Increased heart rate", "Tense muscles", "Yelling or shouting", "Irritability"},
			Effects:  []string{"Damaged relationships", "Workplace issues", "Health problems", "Legal trouble"},
		},
	},
}

// Categories returns the full catalog in display order.
func Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryBySlug looks up one category by its URL slug.
func CategoryBySlug(slug string) (models.Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}
