package assistant

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/BALAJIISWAROOP/Snap-Shots/models"
)

// Generator is the external language-model call: one grounded prompt in, one
// text answer out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenericErrorMessage is the only failure text shown to the viewer. The
// underlying cause goes to the log.
const GenericErrorMessage = "Sorry, something went wrong. Please try again."

type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

type Message struct {
	Author Author `json:"author"`
	Text   string `json:"text"`
}

type State int

const (
	StateIdle State = iota
	StateSending
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSending:
		return "sending"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Session is a multi-turn conversation scoped to one series. At most one
// model call is in flight at a time: a submission while Sending is rejected,
// not queued. A failed turn records GenericErrorMessage and leaves the
// session ready for the next submission.
//
// The session lives only as long as its series view; Close abandons any
// in-flight call and causes its late response to be discarded.
type Session struct {
	series models.Series
	gen    Generator

	mu       sync.Mutex
	state    State
	messages []Message
	lastErr  string
	closed   bool
}

func NewSession(series models.Series, gen Generator) *Session {
	return &Session{series: series, gen: gen}
}

// Submit sends one question through the model. It reports whether the
// submission was accepted: empty/whitespace questions and submissions while
// a call is pending are no-ops. The user message is appended before the call
// is made and is kept even when the call fails.
func (s *Session) Submit(ctx context.Context, question string) bool {
	question = strings.TrimSpace(question)

	s.mu.Lock()
	if question == "" || s.state == StateSending || s.closed {
		s.mu.Unlock()
		return false
	}
	s.messages = append(s.messages, Message{Author: AuthorUser, Text: question})
	s.state = StateSending
	s.lastErr = ""
	s.mu.Unlock()

	// Each call is a fresh single-shot prompt re-grounded in the series
	// context plus only this question; earlier turns are not re-sent.
	answer, err := s.gen.Generate(ctx, BuildPrompt(s.series, question))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// View was torn down while the call was in flight.
		return true
	}
	if err != nil {
		log.Printf("Error fetching assistant response for series %d: %v", s.series.ID, err)
		s.state = StateFailed
		s.lastErr = GenericErrorMessage
		return true
	}
	s.messages = append(s.messages, Message{Author: AuthorAssistant, Text: answer})
	s.state = StateIdle
	return true
}

// State returns the current turn state. StateFailed still accepts the next
// submission; only StateSending blocks.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the user-facing message from the most recent failed turn,
// or "".
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Messages returns a copy of the conversation so far, in submission order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close marks the session torn down. There is no cancellation: an in-flight
// call runs to completion and its response is discarded.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Snapshot is the wire representation of a session.
type Snapshot struct {
	State    string    `json:"state"`
	Messages []Message `json:"messages"`
	Error    string    `json:"error,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return Snapshot{
		State:    s.state.String(),
		Messages: messages,
		Error:    s.lastErr,
	}
}
