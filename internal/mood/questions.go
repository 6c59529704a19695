package mood

// Polarity classifies a questionnaire answer option.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNeutral  Polarity = "neutral"
	PolarityNegative Polarity = "negative"
)

// Option is one selectable answer, pre-tagged with its polarity.
type Option struct {
	ID    string   `json:"id"`
	Text  string   `json:"text"`
	Value Polarity `json:"value"`
}

// Question is one questionnaire item with its three options.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// QuestionCount is the fixed questionnaire length. Classification requires an
// answer for every question.
const QuestionCount = 7

// Questions is the fixed daily questionnaire. Answers are submitted as option
// IDs, positionally: answers[i] must name an option of Questions[i].
var Questions = []Question{
	{
		ID:   1,
		Text: "How do you feel waking up this morning?",
		Options: []Option{
			{ID: "q1o1", Text: "Energetic and enthusiastic", Value: PolarityPositive},
			{ID: "q1o2", Text: "Normal, neither good nor bad", Value: PolarityNeutral},
			{ID: "q1o3", Text: "Tired and unmotivated", Value: PolarityNegative},
		},
	},
	{
		ID:   2,
		Text: "How would you describe your energy level right now?",
		Options: []Option{
			{ID: "q2o1", Text: "Full of energy", Value: PolarityPositive},
			{ID: "q2o2", Text: "Stable", Value: PolarityNeutral},
			{ID: "q2o3", Text: "Low, hard to concentrate", Value: PolarityNegative},
		},
	},
	{
		ID:   3,
		Text: "How do you feel about today's challenges?",
		Options: []Option{
			{ID: "q3o1", Text: "Confident and ready to take them on", Value: PolarityPositive},
			{ID: "q3o2", Text: "I think I can handle them", Value: PolarityNeutral},
			{ID: "q3o3", Text: "Worried and overwhelmed", Value: PolarityNegative},
		},
	},
	{
		ID:   4,
		Text: "How was your sleep last night?",
		Options: []Option{
			{ID: "q4o1", Text: "Restful and sufficient", Value: PolarityPositive},
			{ID: "q4o2", Text: "Okay but not great", Value: PolarityNeutral},
			{ID: "q4o3", Text: "Disturbed or insufficient", Value: PolarityNegative},
		},
	},
	{
		ID:   5,
		Text: "How do you feel in your relationships with others today?",
		Options: []Option{
			{ID: "q5o1", Text: "Connected and sociable", Value: PolarityPositive},
			{ID: "q5o2", Text: "Normal, neither very social nor withdrawn", Value: PolarityNeutral},
			{ID: "q5o3", Text: "Distant or irritable", Value: PolarityNegative},
		},
	},
	{
		ID:   6,
		Text: "What is your anxiety level today?",
		Options: []Option{
			{ID: "q6o1", Text: "Calm and relaxed", Value: PolarityPositive},
			{ID: "q6o2", Text: "Slightly concerned", Value: PolarityNeutral},
			{ID: "q6o3", Text: "Anxious and worried", Value: PolarityNegative},
		},
	},
	{
		ID:   7,
		Text: "How do you feel about the activities planned for today?",
		Options: []Option{
			{ID: "q7o1", Text: "Excited and looking forward to them", Value: PolarityPositive},
			{ID: "q7o2", Text: "Neutral", Value: PolarityNeutral},
			{ID: "q7o3", Text: "I would rather avoid them", Value: PolarityNegative},
		},
	},
}
