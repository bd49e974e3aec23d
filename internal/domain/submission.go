package domain

// Submission is one entry in the review queue. Mentee is the owner's display
// name, not a foreign key; the seed dataset is denormalized and stays that
// way until a real persistence layer exists.
type Submission struct {
	ID     string
	Mentee string
	Title  string
	Type   string
	Status SubmissionStatus
}

// IsReviewed reports whether the submission has left the pending state.
func (s *Submission) IsReviewed() bool {
	return s.Status == SubmissionApproved || s.Status == SubmissionReturned
}
