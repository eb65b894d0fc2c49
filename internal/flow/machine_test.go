package flow

import (
	"errors"
	"testing"

	"encontrapsi/internal/domain/entity"
)

func completeRegistration() *entity.PsychologistRegistration {
	return &entity.PsychologistRegistration{
		FullName:   "Dra. Ana Carolina Mendes",
		CRP:        "06/12345",
		Email:      "ana@example.com",
		Phone:      "(11) 99999-0001",
		Approaches: []entity.TherapyApproach{entity.ApproachPsicanalise},
		City:       "São Paulo",
		State:      "SP",
		Modalities: []entity.Modality{entity.ModalityOnline},
		PriceRange: "R$ 150-200",
		Bio:        "Atendimento clínico de adultos.",
	}
}

func TestGoHomeFromEveryStep(t *testing.T) {
	m := NewMachine()

	steps := []Step{
		StepHome, StepQuiz, StepResult, StepList, StepProfile,
		StepTherapyDetail, StepPsychologistIntro, StepPsychologistRegister,
		StepPsychologistSubscription, StepPsychologistDashboard,
	}

	for _, step := range steps {
		t.Run(string(step), func(t *testing.T) {
			state := State{Step: step, QuestionIndex: 3, QuestionTotal: 7, TermsAccepted: true}

			next, err := m.Apply(state, Event{Type: EventGoHome})
			if err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}

			want := NewState(7)
			if next != want {
				t.Errorf("state = %+v, want %+v", next, want)
			}
		})
	}
}

func TestHomeTransitions(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		event EventType
		want  Step
	}{
		{EventStartQuiz, StepQuiz},
		{EventViewList, StepList},
		{EventViewTherapy, StepTherapyDetail},
		{EventPsychologistSignup, StepPsychologistIntro},
	}

	for _, tc := range tests {
		t.Run(string(tc.event), func(t *testing.T) {
			next, err := m.Apply(NewState(7), Event{Type: tc.event})
			if err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}
			if next.Step != tc.want {
				t.Errorf("step = %q, want %q", next.Step, tc.want)
			}
		})
	}
}

func TestQuizAdvancesAndFinishes(t *testing.T) {
	m := NewMachine()

	state, err := m.Apply(NewState(3), Event{Type: EventStartQuiz})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	for i := 1; i <= 2; i++ {
		state, err = m.Apply(state, Event{Type: EventAnswer})
		if err != nil {
			t.Fatalf("answer %d returned error: %v", i, err)
		}
		if state.Step != StepQuiz {
			t.Fatalf("step after answer %d = %q, want %q", i, state.Step, StepQuiz)
		}
		if state.QuestionIndex != i {
			t.Fatalf("index after answer %d = %d", i, state.QuestionIndex)
		}
	}

	state, err = m.Apply(state, Event{Type: EventAnswer})
	if err != nil {
		t.Fatalf("final answer returned error: %v", err)
	}
	if state.Step != StepResult {
		t.Errorf("step after last answer = %q, want %q", state.Step, StepResult)
	}
}

func TestIntroRequiresAcceptedTerms(t *testing.T) {
	m := NewMachine()
	state := State{Step: StepPsychologistIntro, QuestionTotal: 7}

	next, err := m.Apply(state, Event{Type: EventAcceptTerms, TermsAccepted: false})
	if !errors.Is(err, ErrTermsNotAccepted) {
		t.Fatalf("error = %v, want ErrTermsNotAccepted", err)
	}
	if next != state {
		t.Errorf("rejected event moved the state: %+v", next)
	}

	next, err = m.Apply(state, Event{Type: EventAcceptTerms, TermsAccepted: true})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if next.Step != StepPsychologistRegister || !next.TermsAccepted {
		t.Errorf("state = %+v, want register step with terms accepted", next)
	}
}

func TestRegisterReportsAllMissingFields(t *testing.T) {
	m := NewMachine()
	state := State{Step: StepPsychologistRegister, TermsAccepted: true, QuestionTotal: 7}

	reg := completeRegistration()
	reg.CRP = ""
	reg.Bio = ""
	reg.Modalities = nil

	next, err := m.Apply(state, Event{Type: EventSubmitRegistration, Registration: reg})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if next != state {
		t.Errorf("blocked submission moved the state: %+v", next)
	}

	want := map[string]bool{"crp": true, "bio": true, "modalities": true}
	if len(vErr.MissingFields) != len(want) {
		t.Fatalf("MissingFields = %v, want %v", vErr.MissingFields, want)
	}
	for _, field := range vErr.MissingFields {
		if !want[field] {
			t.Errorf("unexpected missing field %q", field)
		}
	}
}

func TestRegisterWithoutPayload(t *testing.T) {
	m := NewMachine()
	state := State{Step: StepPsychologistRegister, TermsAccepted: true}

	_, err := m.Apply(state, Event{Type: EventSubmitRegistration})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if len(vErr.MissingFields) == 0 {
		t.Error("nil registration should report every mandatory field")
	}
}

func TestRegistrationFunnelHappyPath(t *testing.T) {
	m := NewMachine()

	state := NewState(7)
	path := []struct {
		event Event
		want  Step
	}{
		{Event{Type: EventPsychologistSignup}, StepPsychologistIntro},
		{Event{Type: EventAcceptTerms, TermsAccepted: true}, StepPsychologistRegister},
		{Event{Type: EventSubmitRegistration, Registration: completeRegistration()}, StepPsychologistSubscription},
		{Event{Type: EventPaymentApproved}, StepPsychologistDashboard},
	}

	var err error
	for _, hop := range path {
		state, err = m.Apply(state, hop.event)
		if err != nil {
			t.Fatalf("event %q returned error: %v", hop.event.Type, err)
		}
		if state.Step != hop.want {
			t.Fatalf("step = %q, want %q", state.Step, hop.want)
		}
	}
}

func TestInvalidTransitionsLeaveStateUnchanged(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		step  Step
		event EventType
	}{
		{StepHome, EventAnswer},
		{StepHome, EventPaymentApproved},
		{StepQuiz, EventStartQuiz},
		{StepResult, EventAnswer},
		{StepList, EventStartQuiz},
		{StepProfile, EventViewProfile},
		{StepPsychologistIntro, EventSubmitRegistration},
		{StepPsychologistRegister, EventAcceptTerms},
		{StepPsychologistSubscription, EventSubmitRegistration},
		{StepPsychologistDashboard, EventStartQuiz},
	}

	for _, tc := range tests {
		t.Run(string(tc.step)+"/"+string(tc.event), func(t *testing.T) {
			state := State{Step: tc.step, QuestionTotal: 7}

			next, err := m.Apply(state, Event{Type: tc.event})
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("error = %v, want ErrInvalidTransition", err)
			}
			if next != state {
				t.Errorf("rejected event moved the state: %+v", next)
			}
		})
	}
}
