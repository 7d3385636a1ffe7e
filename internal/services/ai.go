package services

import (
	"context"

	"glucomate/internal/gemini"
	"glucomate/internal/models"
)

type RiskResult struct {
	Risk        string `json:"risk"`
	Explanation string `json:"explanation"`
	Tips        string `json:"tips"`
}

type NutritionResult struct {
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Sugar    float64 `json:"sugar"`
	Fiber    float64 `json:"fiber"`
	Impact   string  `json:"impact"`
	Notes    string  `json:"notes"`
}

// AIService runs the three AI-backed features against the completion
// client: build prompt, one synchronous call, normalize the reply.
// No retries anywhere; failures surface to the controller.
type AIService struct {
	client gemini.Client
}

func NewAIService(client gemini.Client) *AIService {
	return &AIService{client: client}
}

func (s *AIService) PredictRisk(ctx context.Context, assessment *models.HealthAssessment) (*RiskResult, error) {
	raw, err := s.client.Complete(ctx, BuildRiskPrompt(assessment))
	if err != nil {
		return nil, err
	}

	var result RiskResult
	if err := gemini.ExtractJSONObject(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *AIService) AnalyzeMeal(ctx context.Context, mealType, mealText, imageBase64 string) (*NutritionResult, error) {
	prompt := BuildMealPrompt(mealType, mealText)

	var raw string
	var err error
	if imageBase64 != "" {
		raw, err = s.client.Complete(ctx, prompt, ParseMealImage(imageBase64))
	} else {
		raw, err = s.client.Complete(ctx, prompt)
	}
	if err != nil {
		return nil, err
	}

	var result NutritionResult
	if err := gemini.ExtractJSONObject(raw, &result); err != nil {
		return nil, err
	}

	normalizeNutrition(&result)
	return &result, nil
}

func (s *AIService) Chat(ctx context.Context, question string, userContext *UserContext) (string, error) {
	raw, err := s.client.Complete(ctx, BuildChatPrompt(question, userContext))
	if err != nil {
		return "", err
	}
	return gemini.CleanAnswer(raw), nil
}

// normalizeNutrition bounds what the model returned: nutrition values
// are never negative and impact is always one of the three levels.
func normalizeNutrition(result *NutritionResult) {
	clamp := func(value *float64) {
		if *value < 0 {
			*value = 0
		}
	}
	clamp(&result.Calories)
	clamp(&result.Carbs)
	clamp(&result.Protein)
	clamp(&result.Fat)
	clamp(&result.Sugar)
	clamp(&result.Fiber)

	switch result.Impact {
	case models.ImpactLow, models.ImpactModerate, models.ImpactHigh:
	default:
		result.Impact = models.ImpactModerate
	}
}
