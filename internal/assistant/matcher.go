package assistant

import (
	"fmt"
	"strings"
)

// Trigger terms per intent, in match priority order. Emergency terms are
// checked before everything else; within a list the first term that
// occurs in the message wins.
var (
	emergencyTerms = []string{
		"chest pain",
		"difficulty breathing",
		"shortness of breath",
		"severe bleeding",
		"unconscious",
		"not breathing",
		"loss of consciousness",
	}
	greetingTerms    = []string{"hi", "hello", "hey", "good morning", "good afternoon"}
	feverTerms       = []string{"fever", "temperature"}
	coldTerms        = []string{"cough", "sore throat", "runny nose", "congestion"}
	headacheTerms    = []string{"headache"}
	medicationTerms  = []string{"medication", "dose", "taking"}
	appointmentTerms = []string{"appointment", "see a doctor", "visit"}
)

// rule pairs an intent's trigger terms with its canned reply.
type rule struct {
	terms []string
	reply string
}

// Matcher maps messages to canned triage replies via ordered substring
// rules. Matching is case-insensitive and pure; a Matcher is immutable
// after construction and safe for concurrent use.
type Matcher struct {
	rules []rule
}

// NewMatcher builds the pattern table for an assistant with the given
// display name.
func NewMatcher(name string) *Matcher {
	return &Matcher{
		rules: []rule{
			{terms: greetingTerms, reply: fmt.Sprintf(greetingReplyFormat, name)},
			{terms: feverTerms, reply: feverReply},
			{terms: coldTerms, reply: coldReply},
			{terms: headacheTerms, reply: headacheReply},
			{terms: medicationTerms, reply: medicationReply},
			{terms: appointmentTerms, reply: appointmentReply},
		},
	}
}

// Reply classifies message and returns the canned reply for the first
// matching rule. Empty input gets a retry prompt without touching the
// table; emergency terms dominate every other rule; no rule matching at
// all yields the general fallback reply.
func (m *Matcher) Reply(message string) string {
	if message == "" {
		return emptyReply
	}
	text := strings.ToLower(strings.TrimSpace(message))

	// Emergencies short-circuit the table. The matched term is echoed
	// back so the caller sees what tripped the escalation.
	for _, term := range emergencyTerms {
		if strings.Contains(text, term) {
			return fmt.Sprintf(emergencyReplyFormat, term)
		}
	}

	for _, r := range m.rules {
		for _, term := range r.terms {
			if strings.Contains(text, term) {
				return r.reply
			}
		}
	}
	return defaultReply
}
