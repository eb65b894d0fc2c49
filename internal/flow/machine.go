// Package flow models the patient/psychologist navigation as an
// explicit state machine: one named step per screen, one handler per
// step, and guarded transitions for the registration funnel.
package flow

import (
	"errors"
	"fmt"

	"encontrapsi/internal/domain/entity"
)

// Step is one named navigation state.
type Step string

const (
	StepHome                     Step = "home"
	StepQuiz                     Step = "quiz"
	StepResult                   Step = "result"
	StepList                     Step = "list"
	StepProfile                  Step = "profile"
	StepTherapyDetail            Step = "therapy-detail"
	StepPsychologistIntro        Step = "psychologist-intro"
	StepPsychologistRegister     Step = "psychologist-register"
	StepPsychologistSubscription Step = "psychologist-subscription"
	StepPsychologistDashboard    Step = "psychologist-dashboard"
)

// EventType is a user action driving a transition.
type EventType string

const (
	EventGoHome             EventType = "go_home"
	EventStartQuiz          EventType = "start_quiz"
	EventAnswer             EventType = "answer"
	EventViewList           EventType = "view_list"
	EventViewProfile        EventType = "view_profile"
	EventViewTherapy        EventType = "view_therapy"
	EventPsychologistSignup EventType = "psychologist_signup"
	EventAcceptTerms        EventType = "accept_terms"
	EventSubmitRegistration EventType = "submit_registration"
	EventPaymentApproved    EventType = "payment_approved"
)

var (
	// ErrInvalidTransition is returned when the event is not accepted
	// in the current step.
	ErrInvalidTransition = errors.New("transition not allowed from current step")

	// ErrTermsNotAccepted guards the exit from the intro screen.
	ErrTermsNotAccepted = errors.New("terms must be accepted to continue")
)

// ValidationError reports a blocked registration submission. The state
// stays on the form and every missing field is named; there is no
// partial submit.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing mandatory fields: %v", e.MissingFields)
}

// Event carries a user action and its payload.
type Event struct {
	Type          EventType
	TermsAccepted bool
	Registration  *entity.PsychologistRegistration
}

// State is the per-session navigation state.
type State struct {
	Step          Step `json:"step"`
	QuestionIndex int  `json:"question_index"`
	QuestionTotal int  `json:"question_total"`
	TermsAccepted bool `json:"terms_accepted"`
}

// NewState returns the initial state. Navigation always begins at home.
func NewState(questionTotal int) State {
	return State{
		Step:          StepHome,
		QuestionTotal: questionTotal,
	}
}

type handlerFunc func(state State, event Event) (State, error)

// Machine applies events to states. There is no terminal step:
// navigation is cyclic and home is reachable from everywhere.
type Machine struct {
	handlers map[Step]handlerFunc
}

func NewMachine() *Machine {
	m := &Machine{}
	m.handlers = map[Step]handlerFunc{
		StepHome:                     m.handleHome,
		StepQuiz:                     m.handleQuiz,
		StepResult:                   m.handleResult,
		StepList:                     m.handleList,
		StepProfile:                  m.handleBrowse,
		StepTherapyDetail:            m.handleBrowse,
		StepPsychologistIntro:        m.handleIntro,
		StepPsychologistRegister:     m.handleRegister,
		StepPsychologistSubscription: m.handleSubscription,
		StepPsychologistDashboard:    m.handleDashboard,
	}
	return m
}

// Apply runs one transition. On any error the returned state equals the
// input state: a rejected event never moves the session.
func (m *Machine) Apply(state State, event Event) (State, error) {
	// The home action is accepted everywhere and discards transient
	// progress.
	if event.Type == EventGoHome {
		next := NewState(state.QuestionTotal)
		return next, nil
	}

	handler, ok := m.handlers[state.Step]
	if !ok {
		return state, fmt.Errorf("%w: unknown step %q", ErrInvalidTransition, state.Step)
	}
	return handler(state, event)
}

func (m *Machine) handleHome(state State, event Event) (State, error) {
	switch event.Type {
	case EventStartQuiz:
		state.Step = StepQuiz
		state.QuestionIndex = 0
		return state, nil
	case EventViewList:
		state.Step = StepList
		return state, nil
	case EventViewTherapy:
		state.Step = StepTherapyDetail
		return state, nil
	case EventPsychologistSignup:
		state.Step = StepPsychologistIntro
		state.TermsAccepted = false
		return state, nil
	}
	return state, ErrInvalidTransition
}

func (m *Machine) handleQuiz(state State, event Event) (State, error) {
	if event.Type != EventAnswer {
		return state, ErrInvalidTransition
	}
	state.QuestionIndex++
	if state.QuestionIndex >= state.QuestionTotal {
		state.Step = StepResult
	}
	return state, nil
}

func (m *Machine) handleResult(state State, event Event) (State, error) {
	if event.Type == EventViewList {
		state.Step = StepList
		return state, nil
	}
	return state, ErrInvalidTransition
}

func (m *Machine) handleList(state State, event Event) (State, error) {
	switch event.Type {
	case EventViewProfile:
		state.Step = StepProfile
		return state, nil
	case EventViewTherapy:
		state.Step = StepTherapyDetail
		return state, nil
	}
	return state, ErrInvalidTransition
}

// handleBrowse covers the detail screens, which only navigate back to
// the list.
func (m *Machine) handleBrowse(state State, event Event) (State, error) {
	if event.Type == EventViewList {
		state.Step = StepList
		return state, nil
	}
	return state, ErrInvalidTransition
}

func (m *Machine) handleIntro(state State, event Event) (State, error) {
	if event.Type != EventAcceptTerms {
		return state, ErrInvalidTransition
	}
	if !event.TermsAccepted {
		return state, ErrTermsNotAccepted
	}
	state.TermsAccepted = true
	state.Step = StepPsychologistRegister
	return state, nil
}

func (m *Machine) handleRegister(state State, event Event) (State, error) {
	if event.Type != EventSubmitRegistration {
		return state, ErrInvalidTransition
	}
	if event.Registration == nil {
		return state, &ValidationError{MissingFields: (&entity.PsychologistRegistration{}).MissingFields()}
	}
	if missing := event.Registration.MissingFields(); len(missing) > 0 {
		return state, &ValidationError{MissingFields: missing}
	}
	state.Step = StepPsychologistSubscription
	return state, nil
}

func (m *Machine) handleSubscription(state State, event Event) (State, error) {
	if event.Type == EventPaymentApproved {
		state.Step = StepPsychologistDashboard
		return state, nil
	}
	return state, ErrInvalidTransition
}

func (m *Machine) handleDashboard(state State, event Event) (State, error) {
	return state, ErrInvalidTransition
}
