package testutil

import (
	"github.com/google/uuid"

	"github.com/helenrobert/mentordesk/internal/domain"
)

// Mentee options
type MenteeOption func(*domain.Mentee)

func WithProgress(p int) MenteeOption {
	return func(m *domain.Mentee) {
		m.Progress = p
	}
}

func WithStage(s string) MenteeOption {
	return func(m *domain.Mentee) {
		m.Stage = s
	}
}

func WithLastLogin(s string) MenteeOption {
	return func(m *domain.Mentee) {
		m.LastLogin = s
	}
}

func NewTestMentee(name string, opts ...MenteeOption) *domain.Mentee {
	m := &domain.Mentee{
		ID:        uuid.New().String(),
		Name:      name,
		Progress:  50,
		LastLogin: "1 day ago",
		Stage:     "Module 1",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Submission options
type SubmissionOption func(*domain.Submission)

func WithSubmissionStatus(s domain.SubmissionStatus) SubmissionOption {
	return func(sub *domain.Submission) {
		sub.Status = s
	}
}

func WithSubmissionType(t string) SubmissionOption {
	return func(sub *domain.Submission) {
		sub.Type = t
	}
}

func NewTestSubmission(mentee, title string, opts ...SubmissionOption) *domain.Submission {
	s := &domain.Submission{
		ID:     uuid.New().String(),
		Mentee: mentee,
		Title:  title,
		Type:   "Assignment",
		Status: domain.SubmissionPending,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notification options
type NotificationOption func(*domain.Notification)

func WithSeverity(sev domain.Severity) NotificationOption {
	return func(n *domain.Notification) {
		n.Severity = sev
	}
}

func WithDetails(d string) NotificationOption {
	return func(n *domain.Notification) {
		n.Details = d
	}
}

func NewTestNotification(message, date string, opts ...NotificationOption) *domain.Notification {
	n := &domain.Notification{
		ID:       uuid.New().String(),
		Message:  message,
		Date:     date,
		Severity: domain.SeverityInfo,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}
