package serviceImp

import (
	"errors"
	"fmt"
	"strings"

	"lavoura/entities"
	"lavoura/pkg/ai"
	"lavoura/pkg/assistant/repository"
	croprepo "lavoura/pkg/crop/repository"
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.ArticleChunk, error)
}

type AssistantSvc struct {
	msgs  repository.MessageRepository
	crops croprepo.CropRepository
	llm   ai.Client
	kb    kbSearcher // optional
}

func New(msgs repository.MessageRepository, crops croprepo.CropRepository, llm ai.Client, kb kbSearcher) *AssistantSvc {
	return &AssistantSvc{msgs: msgs, crops: crops, llm: llm, kb: kb}
}

// History returns the crop's conversation, seeding the greeting on first use.
func (s *AssistantSvc) History(cropID, uid string) ([]entities.ChatMessage, error) {
	crop, err := s.crops.FindByID(cropID, uid)
	if err != nil {
		return nil, errors.New("crop not found")
	}
	msgs, err := s.msgs.ListByCrop(cropID)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		greet := &entities.ChatMessage{
			CropID: cropID,
			Role:   entities.RoleAssistant,
			Text:   fmt.Sprintf("Olá! Sou o assistente agronômico da lavoura %s. Como posso ajudar?", crop.Name),
		}
		if err := s.msgs.Append(greet); err != nil {
			return nil, err
		}
		msgs = append(msgs, *greet)
	}
	return msgs, nil
}

// Ask appends the user question, calls the model and appends the reply.
// A degraded outcome appends the fixed apology instead of leaving the
// exchange silently incomplete.
func (s *AssistantSvc) Ask(cropID, uid, question string) ([]entities.ChatMessage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New("question is required")
	}
	crop, err := s.crops.FindByID(cropID, uid)
	if err != nil {
		return nil, errors.New("crop not found")
	}
	// seed the greeting for first-time conversations
	if _, err := s.History(cropID, uid); err != nil {
		return nil, err
	}

	userMsg := &entities.ChatMessage{CropID: cropID, Role: entities.RoleUser, Text: question}
	if err := s.msgs.Append(userMsg); err != nil {
		return nil, err
	}

	outcome := s.llm.Chat(question, s.cropContext(crop, question))
	reply := &entities.ChatMessage{CropID: cropID, Role: entities.RoleAssistant, Text: outcome.Text}
	if err := s.msgs.Append(reply); err != nil {
		return nil, err
	}
	return s.msgs.ListByCrop(cropID)
}

// cropContext builds a short descriptor plus knowledge-base snippets.
func (s *AssistantSvc) cropContext(crop *entities.Crop, question string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Lavoura %s: cultura %s, %.2f ha, solo %s, meta %s.",
		crop.Name, crop.CropType, crop.AreaHa, crop.SoilType, crop.ProductivityGoal)

	if s.kb != nil {
		snips, _ := s.kb.Search(string(crop.CropType)+" "+question, 4) // errors degrade to no context
		for _, ch := range snips {
			if sb.Len() > 6000 {
				break
			}
			sb.WriteString("\n---\n")
			sb.WriteString(ch.Text)
		}
	}
	return sb.String()
}
