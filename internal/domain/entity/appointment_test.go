package entity

import (
	"errors"
	"testing"
)

func TestAppointmentTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       AppointmentStatus
		transition func(*Appointment) error
		want       AppointmentStatus
		wantErr    bool
	}{
		{"confirm pending", AppointmentPending, (*Appointment).Confirm, AppointmentConfirmed, false},
		{"confirm confirmed", AppointmentConfirmed, (*Appointment).Confirm, AppointmentConfirmed, true},
		{"confirm cancelled", AppointmentCancelled, (*Appointment).Confirm, AppointmentCancelled, true},
		{"cancel pending", AppointmentPending, (*Appointment).Cancel, AppointmentCancelled, false},
		{"cancel confirmed", AppointmentConfirmed, (*Appointment).Cancel, AppointmentCancelled, false},
		{"cancel completed", AppointmentCompleted, (*Appointment).Cancel, AppointmentCompleted, true},
		{"cancel rejected", AppointmentRejected, (*Appointment).Cancel, AppointmentRejected, true},
		{"complete confirmed", AppointmentConfirmed, (*Appointment).Complete, AppointmentCompleted, false},
		{"complete pending", AppointmentPending, (*Appointment).Complete, AppointmentPending, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Appointment{Status: tc.from}
			err := tc.transition(a)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidStatusTransition) {
					t.Errorf("error = %v, want ErrInvalidStatusTransition", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if a.Status != tc.want {
				t.Errorf("status = %q, want %q", a.Status, tc.want)
			}
		})
	}
}

func TestRejectKeepsReason(t *testing.T) {
	a := &Appointment{Status: AppointmentPending}

	if err := a.Reject("agenda cheia neste horário"); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if a.Status != AppointmentRejected {
		t.Errorf("status = %q, want %q", a.Status, AppointmentRejected)
	}
	if a.Notes != "agenda cheia neste horário" {
		t.Errorf("notes = %q, want the rejection reason", a.Notes)
	}
}

func TestRejectWithoutReasonLeavesNotes(t *testing.T) {
	a := &Appointment{Status: AppointmentPending, Notes: "primeira consulta"}

	if err := a.Reject(""); err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if a.Notes != "primeira consulta" {
		t.Errorf("notes = %q, want existing notes preserved", a.Notes)
	}
}

func TestRejectNonPending(t *testing.T) {
	a := &Appointment{Status: AppointmentConfirmed}

	if err := a.Reject("motivo"); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("error = %v, want ErrInvalidStatusTransition", err)
	}
	if a.Notes != "" {
		t.Errorf("notes = %q, want unchanged on failed transition", a.Notes)
	}
}
