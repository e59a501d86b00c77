package models

// Case is the static content of one mystery: the crime scene, the clues, the suspects, and every message shown to
// the detective. The {detective}, {destination}, and {error} placeholders are filled in when the text is displayed.
type Case struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	CulpritID string `db:"culprit_id"`
	Messages
	Clues    []Clue
	Suspects []Suspect
}

// Messages are the user-visible texts of a case.
type Messages struct {
	Welcome          string `db:"welcome"`
	Intro            string `db:"intro"`
	CluesHeading     string `db:"clues_heading"`
	SuspectsHeading  string `db:"suspects_heading"`
	AccusePrompt     string `db:"accuse_prompt"`
	CorrectDisplay   string `db:"correct_display"`
	CorrectNotice    string `db:"correct_notice"`
	IncorrectDisplay string `db:"incorrect_display"`
	IncorrectNotice  string `db:"incorrect_notice"`
	NotesSaved       string `db:"notes_saved"`
	NotesFailed      string `db:"notes_failed"`
	Farewell         string `db:"farewell"`
	MissingName      string `db:"missing_name"`
}

// Clue is a single observation from the crime scene.
type Clue struct {
	Position    int64  `db:"position"`
	Description string `db:"description"`
}

// Suspect is a person of interest with their dossier.
type Suspect struct {
	ID       string `db:"id"`
	Position int64  `db:"position"`
	Name     string `db:"name"`
	Role     string `db:"role"`
	Dossier  string `db:"dossier"`
}
