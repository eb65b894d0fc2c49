package service

import (
	"testing"

	"github.com/google/uuid"

	"encontrapsi/internal/domain/entity"
)

func testProfiles() []entity.PsychologistProfile {
	return []entity.PsychologistProfile{
		{
			UserID:             uuid.MustParse("a1b4c40e-5c8e-4f2a-9d3b-000000000001"),
			User:               entity.User{FullName: "Dra. Ana Carolina Mendes"},
			Bio:                "Atendimento focado em ansiedade e autoconhecimento.",
			Approaches:         entity.ApproachList{entity.ApproachPsicanalise},
			Specialties:        entity.StringList{"Ansiedade", "Depressão"},
			City:               "São Paulo",
			State:              "SP",
			Modalities:         entity.ModalityList{entity.ModalityOnline, entity.ModalityPresencial},
			SubscriptionStatus: entity.SubscriptionActive,
		},
		{
			UserID:             uuid.MustParse("a1b4c40e-5c8e-4f2a-9d3b-000000000002"),
			User:               entity.User{FullName: "Dr. Rafael Oliveira"},
			Bio:                "Terapia cognitivo-comportamental para adultos.",
			Approaches:         entity.ApproachList{entity.ApproachTCC},
			Specialties:        entity.StringList{"Fobias", "TOC"},
			City:               "Rio de Janeiro",
			State:              "RJ",
			Modalities:         entity.ModalityList{entity.ModalityOnline},
			SubscriptionStatus: entity.SubscriptionActive,
		},
		{
			UserID:             uuid.MustParse("a1b4c40e-5c8e-4f2a-9d3b-000000000003"),
			User:               entity.User{FullName: "Dra. Beatriz Santos"},
			Bio:                "Terapia sistêmica de casais e famílias.",
			Approaches:         entity.ApproachList{entity.ApproachSistemica, entity.ApproachGrupo},
			Specialties:        entity.StringList{"Conflitos familiares"},
			City:               "São Paulo",
			State:              "SP",
			Modalities:         entity.ModalityList{entity.ModalityPresencial},
			SubscriptionStatus: entity.SubscriptionActive,
		},
		{
			UserID:             uuid.MustParse("a1b4c40e-5c8e-4f2a-9d3b-000000000004"),
			User:               entity.User{FullName: "Dr. Carlos Pereira"},
			Bio:                "Psicanálise clínica.",
			Approaches:         entity.ApproachList{entity.ApproachPsicanalise},
			Specialties:        entity.StringList{"Ansiedade"},
			City:               "São Paulo",
			State:              "SP",
			Modalities:         entity.ModalityList{entity.ModalityOnline},
			SubscriptionStatus: entity.SubscriptionPending,
		},
		{
			UserID:             uuid.MustParse("a1b4c40e-5c8e-4f2a-9d3b-000000000005"),
			User:               entity.User{FullName: "Dra. Fernanda Lima"},
			Bio:                "Gestalt-terapia.",
			Approaches:         entity.ApproachList{entity.ApproachGestalt},
			Specialties:        entity.StringList{"Luto"},
			City:               "Belo Horizonte",
			State:              "MG",
			Modalities:         entity.ModalityList{entity.ModalityOnline},
			SubscriptionStatus: entity.SubscriptionExpired,
		},
	}
}

func filteredNames(records []entity.PsychologistProfile) []string {
	names := make([]string, len(records))
	for i, rec := range records {
		names[i] = rec.User.FullName
	}
	return names
}

func assertNames(t *testing.T, got []entity.PsychologistProfile, want ...string) {
	t.Helper()
	names := filteredNames(got)
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestFilterOnlyActiveProfiles(t *testing.T) {
	s := NewDirectoryService()

	// Empty filter still hides pending and expired subscriptions.
	got := s.Filter(testProfiles(), entity.DirectoryFilter{})

	assertNames(t, got,
		"Dra. Ana Carolina Mendes",
		"Dr. Rafael Oliveira",
		"Dra. Beatriz Santos",
	)
}

func TestFilterNeverSurfacesInactiveEvenWhenMatched(t *testing.T) {
	s := NewDirectoryService()

	// Carlos Pereira matches every criterion but his subscription is
	// pending, so he must not appear.
	got := s.Filter(testProfiles(), entity.DirectoryFilter{
		Term:     "Carlos",
		Approach: entity.ApproachPsicanalise,
		State:    "SP",
	})

	if len(got) != 0 {
		t.Errorf("pending profile surfaced: %v", filteredNames(got))
	}
}

func TestFilterTermCaseInsensitive(t *testing.T) {
	s := NewDirectoryService()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"name match", "RAFAEL", []string{"Dr. Rafael Oliveira"}},
		{"bio match", "casais", []string{"Dra. Beatriz Santos"}},
		{"specialty match", "fobias", []string{"Dr. Rafael Oliveira"}},
		{"no match", "equoterapia", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Filter(testProfiles(), entity.DirectoryFilter{Term: tc.term})
			assertNames(t, got, tc.want...)
		})
	}
}

func TestFilterByApproach(t *testing.T) {
	s := NewDirectoryService()

	got := s.Filter(testProfiles(), entity.DirectoryFilter{Approach: entity.ApproachGrupo})

	assertNames(t, got, "Dra. Beatriz Santos")
}

func TestFilterByStateAndCity(t *testing.T) {
	s := NewDirectoryService()

	got := s.Filter(testProfiles(), entity.DirectoryFilter{State: "SP", City: "São Paulo"})

	assertNames(t, got, "Dra. Ana Carolina Mendes", "Dra. Beatriz Santos")
}

func TestFilterCityWithoutStateIsIgnored(t *testing.T) {
	s := NewDirectoryService()

	// A city on its own is meaningless; the filter falls back to all
	// active profiles instead of matching nothing.
	got := s.Filter(testProfiles(), entity.DirectoryFilter{City: "São Paulo"})

	assertNames(t, got,
		"Dra. Ana Carolina Mendes",
		"Dr. Rafael Oliveira",
		"Dra. Beatriz Santos",
	)
}

func TestFilterCityAbsentFromStateIsCleared(t *testing.T) {
	s := NewDirectoryService()

	// São Paulo is not a city in RJ among these records, so only the
	// state criterion remains.
	got := s.Filter(testProfiles(), entity.DirectoryFilter{State: "RJ", City: "São Paulo"})

	assertNames(t, got, "Dr. Rafael Oliveira")
}

func TestFilterModalityOrSemantics(t *testing.T) {
	s := NewDirectoryService()

	// Requesting both modalities matches records offering either one.
	got := s.Filter(testProfiles(), entity.DirectoryFilter{
		Modalities: []entity.Modality{entity.ModalityOnline, entity.ModalityPresencial},
	})
	assertNames(t, got,
		"Dra. Ana Carolina Mendes",
		"Dr. Rafael Oliveira",
		"Dra. Beatriz Santos",
	)

	got = s.Filter(testProfiles(), entity.DirectoryFilter{
		Modalities: []entity.Modality{entity.ModalityPresencial},
	})
	assertNames(t, got, "Dra. Ana Carolina Mendes", "Dra. Beatriz Santos")
}

func TestFilterIsIdempotent(t *testing.T) {
	s := NewDirectoryService()

	filter := entity.DirectoryFilter{State: "SP"}
	once := s.Filter(testProfiles(), filter)
	twice := s.Filter(once, filter)

	assertNames(t, twice, filteredNames(once)...)
}

func TestMatchByResult(t *testing.T) {
	s := NewDirectoryService()

	result := &entity.QuizResult{
		Approaches: []entity.TherapyApproach{entity.ApproachTCC, entity.ApproachSistemica},
	}

	// A record matching either winning approach is included; inactive
	// records are not, even when their approaches match.
	got := s.MatchByResult(testProfiles(), result)

	assertNames(t, got, "Dr. Rafael Oliveira", "Dra. Beatriz Santos")
}

func TestMatchByResultNoWinners(t *testing.T) {
	s := NewDirectoryService()

	got := s.MatchByResult(testProfiles(), &entity.QuizResult{})

	if len(got) != 0 {
		t.Errorf("empty result matched %v", filteredNames(got))
	}
}
