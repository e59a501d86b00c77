package game

// Kind enumerates the triggers of the game.
type Kind int

const (
	KindStartCase Kind = iota + 1
	KindViewClues
	KindQuestionSuspects
	KindAccuse
	KindSaveNotes
	KindExit
)

// Kinds lists the triggers in the order they are presented.
var Kinds = []Kind{KindStartCase, KindViewClues, KindQuestionSuspects, KindAccuse, KindSaveNotes, KindExit}

var kindNames = map[Kind]string{
	KindStartCase:        "start-case",
	KindViewClues:        "view-clues",
	KindQuestionSuspects: "question-suspects",
	KindAccuse:           "accuse",
	KindSaveNotes:        "save-notes",
	KindExit:             "exit",
}

var kindLabels = map[Kind]string{
	KindStartCase:        "Start Case",
	KindViewClues:        "View Clues",
	KindQuestionSuspects: "Question Suspects",
	KindAccuse:           "Make Accusation",
	KindSaveNotes:        "Save Notes",
	KindExit:             "Exit",
}

// String is the URL-safe name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Label is the button caption.
func (k Kind) Label() string {
	return kindLabels[k]
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Action is a trigger with the answer of its prompt, if any.
type Action struct {
	Kind Kind
	// SuspectID is the accused suspect. Empty means the accusation prompt was cancelled.
	SuspectID string
	// Destination receives the notes. Nil means the destination prompt was cancelled.
	Destination Destination
}

func StartCase() Action { return Action{Kind: KindStartCase} }

func ViewClues() Action { return Action{Kind: KindViewClues} }

func QuestionSuspects() Action { return Action{Kind: KindQuestionSuspects} }

func Accuse(suspectID string) Action { return Action{Kind: KindAccuse, SuspectID: suspectID} }

// CancelAccusation is the answer to a dismissed accusation prompt.
func CancelAccusation() Action { return Action{Kind: KindAccuse} }

func SaveNotes(destination Destination) Action {
	return Action{Kind: KindSaveNotes, Destination: destination}
}

func Exit() Action { return Action{Kind: KindExit} }
