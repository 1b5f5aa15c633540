package ai

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lavoura/entities"
)

type mockClient struct{}

// NewMock returns a deterministic client used when no LLM endpoint is
// configured, and in tests.
func NewMock() Client { return &mockClient{} }

// per-culture baselines for the mock plan
var mockCycleDays = map[entities.CropType]int{
	entities.CropSoy:       125,
	entities.CropCorn:      150,
	entities.CropCotton:    180,
	entities.CropSugarcane: 365,
	entities.CropCoffee:    300,
	entities.CropBean:      90,
}

var mockCostPerHa = map[entities.CropType]float64{
	entities.CropSoy:       4200,
	entities.CropCorn:      4800,
	entities.CropCotton:    9500,
	entities.CropSugarcane: 7200,
	entities.CropCoffee:    11000,
	entities.CropBean:      3800,
}

func (m *mockClient) GeneratePlan(req PlanRequest) (PlanOutcome, error) {
	cycle := mockCycleDays[req.CropType]
	if cycle == 0 {
		cycle = FallbackCycleDays
	}
	costHa := mockCostPerHa[req.CropType]
	if costHa == 0 {
		costHa = FallbackCostPerHa
	}

	seedQty := 1.2 * req.AreaHa
	fertQty := 8.0 * req.AreaHa
	plant := time.Now()
	stage := func(title string, offsetDays int, tasks ...string) entities.TimelineStage {
		st := entities.TimelineStage{
			StageID:    uuid.NewString(),
			Title:      title,
			TargetDate: plant.AddDate(0, 0, offsetDays).Format("2006-01-02"),
			Status:     entities.StagePending,
		}
		for _, label := range tasks {
			st.Tasks = append(st.Tasks, entities.Task{TaskID: uuid.NewString(), Label: label})
		}
		return st
	}

	res := PlanResult{
		EstimatedCost:        costHa * req.AreaHa,
		EstimatedHarvestDate: plant.AddDate(0, 0, cycle),
		Materials: []entities.Material{
			{Name: "Sementes " + string(req.CropType), Quantity: seedQty, Unit: "sc", UnitPriceEstimate: 420, Category: entities.MatSeed},
			{Name: "NPK 04-14-08", Quantity: fertQty, Unit: "sc 50kg", UnitPriceEstimate: 160, Category: entities.MatFertilizer},
			{Name: "Calcário dolomítico", Quantity: 2 * req.AreaHa, Unit: "t", UnitPriceEstimate: 130, Category: entities.MatSoilAmendment},
		},
		Timeline: []entities.TimelineStage{
			stage("Preparo do solo", 0, "Análise de solo", "Calagem", "Gradagem"),
			stage("Plantio", 15, "Regulagem da plantadeira", "Semeadura"),
			stage("Manejo", cycle/2, "Adubação de cobertura", "Monitorar pragas"),
			stage("Colheita", cycle, "Regulagem da colhedora", "Transporte e armazenagem"),
		},
		Advice: fmt.Sprintf(
			"Para %s em solo %s, mantenha o monitoramento semanal de pragas e ajuste a adubação conforme a análise de solo. Meta informada: %s.",
			req.CropType, req.SoilType, req.ProductivityGoal),
	}
	return PlanOutcome{Plan: res}, nil
}

func (m *mockClient) Chat(question, cropContext string) ChatOutcome {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "praga") || strings.Contains(q, "inseto"):
		return ChatOutcome{Text: "Faça amostragem em pelo menos 5 pontos do talhão antes de decidir aplicar defensivo."}
	case strings.Contains(q, "aduba") || strings.Contains(q, "fertiliz"):
		return ChatOutcome{Text: "Baseie a adubação na análise de solo mais recente; parcele o nitrogênio em cobertura."}
	case strings.Contains(q, "chuva") || strings.Contains(q, "clima"):
		return ChatOutcome{Text: "Acompanhe a previsão dos próximos 7 dias e evite aplicações com vento acima de 10 km/h."}
	}
	return ChatOutcome{Text: "Recomendo acompanhar a lavoura de perto esta semana e registrar qualquer anomalia nas anotações."}
}

// errClient fails plan generation on purpose; tests use it to verify the
// wizard leaves the store untouched on hard failure.
type errClient struct{ err error }

func NewFailing(err error) Client { return &errClient{err: err} }

func (e *errClient) GeneratePlan(PlanRequest) (PlanOutcome, error) { return PlanOutcome{}, e.err }
func (e *errClient) Chat(string, string) ChatOutcome {
	return ChatOutcome{Text: ApologyMessage, Degraded: true, Reason: e.err.Error()}
}
