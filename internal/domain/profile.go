package domain

// MentorProfile is the signed-in mentor's account data. Edits through the
// account-settings form live only for the current session.
type MentorProfile struct {
	Name  string
	Email string
	Role  string
}

// Course is an entry in the recommendable course library.
type Course struct {
	ID    string
	Title string
}

// Review is a learner review shown on the ratings card.
type Review struct {
	Quote  string
	Author string
}

// IntakeAnswer is one question/answer pair from a mentee's intake assessment.
type IntakeAnswer struct {
	Question string
	Answer   string
}
