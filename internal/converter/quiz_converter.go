package converter

import (
	"encontrapsi/internal/delivery/dto"
	"encontrapsi/internal/domain/entity"
)

// QuestionToResponse converts a Question to its DTO. The approach tag
// on each option stays server-side so answers cannot be gamed.
func QuestionToResponse(question *entity.Question) *dto.QuestionResponse {
	if question == nil {
		return nil
	}

	options := make([]dto.QuestionOptionResponse, len(question.Options))
	for i, opt := range question.Options {
		options[i] = dto.QuestionOptionResponse{
			ID:     opt.ID,
			Label:  opt.Label,
			Prompt: opt.Prompt,
		}
	}

	return &dto.QuestionResponse{
		ID:      question.ID,
		Prompt:  question.Prompt,
		Options: options,
	}
}

// QuizResultToResponse converts a QuizResult to its DTO, expanding the
// winning approaches with catalog display data.
func QuizResultToResponse(result *entity.QuizResult) *dto.QuizResultResponse {
	if result == nil {
		return nil
	}

	scores := make(map[string]int, len(result.Scores))
	for approach, score := range result.Scores {
		scores[string(approach)] = score
	}

	approaches := make([]dto.TherapyResponse, len(result.Approaches))
	for i, approach := range result.Approaches {
		info := entity.TherapyCatalog[approach]
		approaches[i] = dto.TherapyResponse{
			ID:          string(info.ID),
			Name:        info.Name,
			Description: info.Description,
		}
	}

	return &dto.QuizResultResponse{
		Scores:     scores,
		Approaches: approaches,
	}
}

// TherapyToResponse converts catalog info to the list DTO.
func TherapyToResponse(info entity.TherapyInfo) dto.TherapyResponse {
	return dto.TherapyResponse{
		ID:          string(info.ID),
		Name:        info.Name,
		Description: info.Description,
	}
}

// TherapyToDetailResponse converts catalog info to the detail DTO.
func TherapyToDetailResponse(info entity.TherapyInfo) *dto.TherapyDetailResponse {
	return &dto.TherapyDetailResponse{
		ID:                  string(info.ID),
		Name:                info.Name,
		Description:         info.Description,
		DetailedDescription: info.DetailedDescription,
	}
}
