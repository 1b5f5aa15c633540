package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"lavoura/entities"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) chatCompletion(system, user string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty content")
	}
	return content, nil
}

// llm-side plan payload; ids are assigned locally after parsing.
type llmMaterial struct {
	Name              string  `json:"name"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	UnitPriceEstimate float64 `json:"unit_price_estimate"`
	Category          string  `json:"category"`
}

type llmStage struct {
	Title      string   `json:"title"`
	TargetDate string   `json:"target_date"`
	Tasks      []string `json:"tasks"`
}

type llmPlan struct {
	EstimatedCost        float64       `json:"estimated_cost"`
	EstimatedHarvestDate string        `json:"estimated_harvest_date"`
	Materials            []llmMaterial `json:"materials"`
	Timeline             []llmStage    `json:"timeline"`
	Advice               string        `json:"advice"`
}

func (c *openAI) GeneratePlan(req PlanRequest) (PlanOutcome, error) {
	content, err := c.chatCompletion(
		"You are a Brazilian agronomist. Reply ONLY valid JSON.",
		renderPlanPrompt(req),
	)
	if err != nil {
		return PlanOutcome{Plan: FallbackPlan(req), Degraded: true, Reason: err.Error()}, nil
	}

	var p llmPlan
	if err := json.Unmarshal([]byte(stripFences(content)), &p); err != nil {
		return PlanOutcome{Plan: FallbackPlan(req), Degraded: true, Reason: "parse plan: " + err.Error()}, nil
	}

	res := PlanResult{
		EstimatedCost: p.EstimatedCost,
		Advice:        strings.TrimSpace(p.Advice),
	}
	if d, err := time.Parse("2006-01-02", p.EstimatedHarvestDate); err == nil {
		res.EstimatedHarvestDate = d
	} else {
		res.EstimatedHarvestDate = time.Now().AddDate(0, 0, FallbackCycleDays)
	}
	res.Materials = make([]entities.Material, 0, len(p.Materials))
	for _, m := range p.Materials {
		cat := entities.MaterialCategory(strings.ToLower(strings.TrimSpace(m.Category)))
		switch cat {
		case entities.MatFertilizer, entities.MatSeed, entities.MatPesticide, entities.MatSoilAmendment:
		default:
			cat = entities.MatOther
		}
		res.Materials = append(res.Materials, entities.Material{
			Name:              strings.TrimSpace(m.Name),
			Quantity:          m.Quantity,
			Unit:              strings.TrimSpace(m.Unit),
			UnitPriceEstimate: m.UnitPriceEstimate,
			Category:          cat,
		})
	}
	res.Timeline = make([]entities.TimelineStage, 0, len(p.Timeline))
	for _, st := range p.Timeline {
		stage := entities.TimelineStage{
			StageID:    uuid.NewString(),
			Title:      strings.TrimSpace(st.Title),
			TargetDate: strings.TrimSpace(st.TargetDate),
			Status:     entities.StagePending,
		}
		for _, label := range st.Tasks {
			stage.Tasks = append(stage.Tasks, entities.Task{
				TaskID: uuid.NewString(),
				Label:  strings.TrimSpace(label),
			})
		}
		res.Timeline = append(res.Timeline, stage)
	}
	if res.Advice == "" {
		res.Advice = FallbackAdvice
	}
	return PlanOutcome{Plan: res}, nil
}

func (c *openAI) Chat(question, cropContext string) ChatOutcome {
	content, err := c.chatCompletion(
		"Você é um assistente agronômico. Responda em português, de forma curta e prática.",
		renderChatPrompt(question, cropContext),
	)
	if err != nil {
		return ChatOutcome{Text: ApologyMessage, Degraded: true, Reason: err.Error()}
	}
	return ChatOutcome{Text: content}
}

func renderPlanPrompt(req PlanRequest) string {
	return fmt.Sprintf(`Monte um plano de cultivo para a lavoura abaixo e responda SOMENTE com JSON neste formato:
{"estimated_cost": 12345.0, "estimated_harvest_date": "YYYY-MM-DD",
 "materials": [{"name":"...","quantity":10,"unit":"sc","unit_price_estimate":350.0,"category":"fertilizer|seed|pesticide|soil_amendment|other"}],
 "timeline": [{"title":"...","target_date":"YYYY-MM-DD","tasks":["..."]}],
 "advice": "texto curto e prático"}

LAVOURA:
- nome: %s
- cultura: %s
- área: %.2f ha
- solo: %s
- meta de produtividade: %s
- espaçamento: %s
`, req.Name, req.CropType, req.AreaHa, req.SoilType, req.ProductivityGoal, req.Spacing)
}

func renderChatPrompt(question, cropContext string) string {
	if strings.TrimSpace(cropContext) == "" {
		return question
	}
	return fmt.Sprintf("CONTEXTO DA LAVOURA:\n%s\n\nPERGUNTA:\n%s", cropContext, question)
}

// stripFences tolerates models that wrap JSON in markdown code fences.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
