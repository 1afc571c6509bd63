package http

import (
	"reminder-nlp-service/internal/model"
	"reminder-nlp-service/internal/reminder"
	"reminder-nlp-service/pkg/response"
)

// --- Request DTOs ---

// parseReq is the parse request body. Text is bound without a required
// rule: empty text is defined input and still yields a complete record.
type parseReq struct {
	Text   string `json:"text"`
	UserID string `json:"user_id" binding:"required"`
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() reminder.ParseInput {
	return reminder.ParseInput{
		Text: r.Text,
	}
}

// --- Response DTOs ---

type entityResp struct {
	Word        string  `json:"word"`
	EntityGroup string  `json:"entity_group"`
	Score       float64 `json:"score"`
}

type parseResp struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Category        string            `json:"category"`
	ScheduledTime   response.DateTime `json:"scheduled_time"`
	Priority        string            `json:"priority"`
	MedicationNames []string          `json:"medication_names"`
	Entities        []entityResp      `json:"entities"`
	ParserUsed      string            `json:"parser_used"`
}

func newParseResp(r model.Reminder) parseResp {
	names := r.MedicationNames
	if names == nil {
		names = []string{}
	}

	entities := make([]entityResp, 0, len(r.Entities))
	for _, e := range r.Entities {
		entities = append(entities, entityResp{
			Word:        e.Word,
			EntityGroup: e.Group,
			Score:       e.Score,
		})
	}

	return parseResp{
		Title:           r.Title,
		Description:     r.Description,
		Category:        string(r.Category),
		ScheduledTime:   response.DateTime(r.ScheduledTime),
		Priority:        string(r.Priority),
		MedicationNames: names,
		Entities:        entities,
		ParserUsed:      string(r.ParserUsed),
	}
}
