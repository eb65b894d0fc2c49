package entity

// TherapyApproach identifies one of the therapeutic approaches used to
// tag quiz options and psychologist practice areas.
type TherapyApproach string

const (
	ApproachPsicanalise TherapyApproach = "psicanalise"
	ApproachSistemica   TherapyApproach = "sistemica"
	ApproachGestalt     TherapyApproach = "gestalt"
	ApproachHumanista   TherapyApproach = "humanista"
	ApproachTCC         TherapyApproach = "tcc"
	ApproachGrupo       TherapyApproach = "grupo"
)

// AllApproaches is the fixed declaration order of the approaches.
// Scoring tie-breaks and winner ordering depend on this order.
var AllApproaches = []TherapyApproach{
	ApproachPsicanalise,
	ApproachSistemica,
	ApproachGestalt,
	ApproachHumanista,
	ApproachTCC,
	ApproachGrupo,
}

// IsValid reports whether a is one of the declared approaches.
func (a TherapyApproach) IsValid() bool {
	for _, known := range AllApproaches {
		if a == known {
			return true
		}
	}
	return false
}

// TherapyInfo describes an approach for the public catalog.
type TherapyInfo struct {
	ID                  TherapyApproach `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	DetailedDescription string          `json:"detailed_description"`
}

// TherapyCatalog maps each approach to its display information.
var TherapyCatalog = map[TherapyApproach]TherapyInfo{
	ApproachPsicanalise: {
		ID:          ApproachPsicanalise,
		Name:        "Psicanálise",
		Description: "Explora o inconsciente e a história de vida para compreender traumas e padrões profundos.",
		DetailedDescription: "A Psicanálise é uma abordagem terapêutica criada por Sigmund Freud que investiga o inconsciente humano. " +
			"Esta técnica busca compreender como experiências passadas, especialmente da infância, influenciam nossos comportamentos, pensamentos e emoções atuais. " +
			"O processo psicanalítico utiliza técnicas como a livre associação, onde o paciente é encorajado a falar livremente sobre seus pensamentos, sonhos e memórias.",
	},
	ApproachSistemica: {
		ID:          ApproachSistemica,
		Name:        "Terapia Sistêmica",
		Description: "Foca nas relações e padrões familiares, entendendo o indivíduo dentro de seus sistemas.",
		DetailedDescription: "A Terapia Sistêmica compreende o indivíduo como parte de sistemas relacionais (família, trabalho, amigos). " +
			"Esta abordagem analisa como os padrões de comunicação e interação afetam o bem-estar individual e coletivo. " +
			"O foco está em identificar e modificar padrões disfuncionais que perpetuam problemas.",
	},
	ApproachGestalt: {
		ID:          ApproachGestalt,
		Name:        "Gestalt-Terapia",
		Description: "Trabalha o aqui e agora, focando na consciência presente e na experiência imediata.",
		DetailedDescription: "A Gestalt-Terapia é uma abordagem humanista que enfatiza a consciência do momento presente. " +
			"Desenvolvida por Fritz Perls, esta técnica valoriza a experiência direta e a responsabilidade pessoal. " +
			"O foco está no aqui e agora, não apenas em falar sobre problemas, mas em vivenciá-los na sessão.",
	},
	ApproachHumanista: {
		ID:          ApproachHumanista,
		Name:        "Abordagem Humanista",
		Description: "Oferece acolhimento profundo e valoriza a experiência pessoal única de cada indivíduo.",
		DetailedDescription: "A Abordagem Humanista, desenvolvida por Carl Rogers, centra-se na pessoa e em seu potencial de crescimento. " +
			"O terapeuta humanista oferece um ambiente de aceitação incondicional, empatia e autenticidade, " +
			"facilitando o autoconhecimento e o crescimento pessoal.",
	},
	ApproachTCC: {
		ID:          ApproachTCC,
		Name:        "TCC",
		Description: "Terapia Cognitivo-Comportamental: trabalha com metas, pensamentos e mudança de comportamentos.",
		DetailedDescription: "A Terapia Cognitivo-Comportamental (TCC) é uma abordagem estruturada e focada em objetivos que trabalha a relação entre pensamentos, emoções e comportamentos. " +
			"Desenvolvida por Aaron Beck, é uma das abordagens mais pesquisadas e com eficácia comprovada cientificamente. " +
			"Através de técnicas práticas e exercícios, busca-se modificar padrões disfuncionais de pensamento e ação.",
	},
	ApproachGrupo: {
		ID:          ApproachGrupo,
		Name:        "Terapia em Grupo",
		Description: "Promove trocas e reflexão coletiva, aprendendo através das experiências compartilhadas.",
		DetailedDescription: "A Terapia em Grupo é uma modalidade terapêutica onde um grupo de pessoas se reúne regularmente com um ou mais terapeutas para trabalhar questões pessoais e interpessoais. " +
			"Os participantes compartilham suas experiências em um ambiente seguro e confidencial, " +
			"criando um senso de pertencimento e apoio mútuo.",
	},
}
