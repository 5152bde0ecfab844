package quiz

// State is the phase of a quiz session.
type State int

const (
	// StateMenu shows the welcome prompt with Start and Exit.
	StateMenu State = iota
	// StateQuiz shows a question from the store.
	StateQuiz
	// StateExiting is terminal; the event loop stops when it sees it.
	StateExiting
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateQuiz:
		return "quiz"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Input is a discrete event fed into the session by the event loop.
type Input int

const (
	// InputOther is any key the session does not react to.
	InputOther Input = iota
	InputMoveUp
	InputMoveDown
	// InputConfirm submits the highlighted choice.
	InputConfirm
	// InputCancel exits the program from any state.
	InputCancel
)

// String returns the lowercase input name.
func (i Input) String() string {
	switch i {
	case InputMoveUp:
		return "up"
	case InputMoveDown:
		return "down"
	case InputConfirm:
		return "confirm"
	case InputCancel:
		return "cancel"
	default:
		return "other"
	}
}

// Menu prompt and choices shown before a quiz starts.
const (
	WelcomePrompt = "Welcome to Encard"
	ChoiceStart   = "Start"
	ChoiceExit    = "Exit"

	menuStart = 0
	menuExit  = 1
)

// NoQuestionsNotice is shown when Start is chosen with an empty store.
const NoQuestionsNotice = "No questions available. Add one with: encard add --prompt <text> --choice <a> --choice <b> --answer <index>"

// Feedback describes the outcome of the previous submission.
type Feedback struct {
	Correct bool
	Prompt  string
	Chosen  string
	Answer  string
}
