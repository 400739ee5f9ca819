package plan

import "focus-writer/internal/model"

// TotalDays is the length of the first-draft program.
const TotalDays = 30

type template struct {
	Title string
	Kind  string
}

// curriculum is the fixed 30-entry task sequence: four weekly phases
// (foundation, deepening, turning points, climax/resolution) plus two
// buffer days.
var curriculum = []template{
	// Week 1: foundation and momentum building
	{"Establish your writing space and ritual", model.KindPlanning},
	{"Write your opening hook/first page", model.KindWriting},
	{"Introduce your main character or premise", model.KindWriting},
	{"Set the stakes early", model.KindWriting},
	{"Build the world/context", model.KindWriting},
	{"End the first scene with a question", model.KindWriting},
	{"Quick review: Does the opening grab?", model.KindReview},

	// Week 2: deepening
	{"Introduce the first conflict or obstacle", model.KindWriting},
	{"Deepen character motivation", model.KindWriting},
	{"Add sensory details to a key scene", model.KindWriting},
	{"Write a pivotal conversation", model.KindWriting},
	{"Raise the stakes", model.KindWriting},
	{"Plant a seed for later", model.KindWriting},
	{"Mid-point check: Is the story moving?", model.KindReview},

	// Week 3: tension and turning points
	{"Introduce a twist or reveal", model.KindWriting},
	{"Deepen the central conflict", model.KindWriting},
	{"Write a moment of doubt or failure", model.KindWriting},
	{"Show character growth or change", model.KindWriting},
	{"Add a subplot beat", model.KindWriting},
	{"Build toward the climax", model.KindWriting},
	{"Pacing check: Too fast or too slow?", model.KindReview},

	// Week 4: climax and resolution
	{"Set up the final confrontation", model.KindWriting},
	{"Write the climax - part 1", model.KindWriting},
	{"Write the climax - part 2", model.KindWriting},
	{"Show the aftermath", model.KindWriting},
	{"Tie up loose ends", model.KindWriting},
	{"Write the final scene/ending", model.KindWriting},
	{"Draft complete! Quick celebration review", model.KindReview},

	// Days 29-30: buffer and polish
	{"Fill any gaps or weak spots", model.KindWriting},
	{"Read through and note big fixes for revision", model.KindReview},
}

// ClarityQuestion is one of the three pre-session prompts.
type ClarityQuestion struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
}

// ClarityQuestions are shown, in order, during the 60-second clarity step.
var ClarityQuestions = []ClarityQuestion{
	{
		ID:          "intention",
		Question:    "What's the ONE thing you want to accomplish in this session?",
		Placeholder: "e.g., Write the opening scene, finish chapter 2...",
	},
	{
		ID:          "blocker",
		Question:    "What might get in your way right now?",
		Placeholder: "e.g., Distracted, unclear on plot, tired...",
	},
	{
		ID:          "nextAction",
		Question:    "What's your very first action when you start?",
		Placeholder: "e.g., Open document, re-read last paragraph...",
	},
}
