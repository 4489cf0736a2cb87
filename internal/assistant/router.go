package assistant

import (
	"context"
	"strings"
)

// Persona sent with every model call so free-form answers stay on topic.
const Persona = "You are CivicBot, the assistant of a civic issue reporting service. " +
	"Citizens use the service to report problems like potholes, broken streetlights " +
	"and garbage, and to track their reports by ticket ID. Answer briefly and helpfully."

// NoReplyText is returned when the model answers without a usable text part.
const NoReplyText = "Sorry, I did not receive a reply. Please try again."

const (
	GreetingReply  = "Hello! How can I help you today? You can report a civic issue or ask about an existing ticket."
	StatusReply    = "You can track your report with the ticket ID you received (for example TC-10042) under My Reports."
	GratitudeReply = "You're welcome! Glad I could help."
	EmergencyReply = "If this is an emergency, please call your local emergency services or the police right away. This platform only handles non-urgent civic issues."
)

// Rule is one canned-response entry: if any keyword occurs in the folded
// message, the fixed reply is returned and the model is never contacted.
type Rule struct {
	Name     string
	Keywords []string
	Reply    string
}

func (r Rule) Matches(folded string) bool {
	for _, keyword := range r.Keywords {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}

// DefaultRules is evaluated top to bottom, first match wins. The order is
// part of the contract: a greeting that also mentions an emergency gets the
// greeting reply.
var DefaultRules = []Rule{
	{Name: "greeting", Keywords: []string{"hello", "hi", "hey"}, Reply: GreetingReply},
	{Name: "status", Keywords: []string{"status", "track"}, Reply: StatusReply},
	{Name: "gratitude", Keywords: []string{"thank you", "thanks"}, Reply: GratitudeReply},
	{Name: "emergency", Keywords: []string{"emergency", "police"}, Reply: EmergencyReply},
}

// Generator is the external model capability the router falls back to.
type Generator interface {
	Generate(ctx context.Context, instruction, message string) (string, error)
}

type Router struct {
	rules []Rule
	model Generator
}

func NewRouter(rules []Rule, model Generator) *Router {
	return &Router{rules: rules, model: model}
}

// Reply classifies the message against the rule chain and falls back to the
// model when nothing matches. Errors from the model call are returned
// unwrapped so the handler can distinguish vendor errors from transport
// failures.
func (r *Router) Reply(ctx context.Context, message string) (string, error) {
	folded := strings.ToLower(message)
	for _, rule := range r.rules {
		if rule.Matches(folded) {
			return rule.Reply, nil
		}
	}

	text, err := r.model.Generate(ctx, Persona, message)
	if err != nil {
		return "", err
	}
	if text == "" {
		return NoReplyText, nil
	}
	return text, nil
}
