package services

import (
	"fmt"
	"regexp"
	"strings"

	"glucomate/internal/gemini"
	"glucomate/internal/models"
)

const answerPreviewLimit = 150

var imageHeaderPattern = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,`)

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}

func joinSymptoms(symptoms []string) string {
	if len(symptoms) == 0 {
		return "None"
	}
	return strings.Join(symptoms, ", ")
}

// BuildRiskPrompt renders the questionnaire into the risk-estimation
// template. Deterministic: equal assessments produce equal prompts.
func BuildRiskPrompt(assessment *models.HealthAssessment) string {
	return fmt.Sprintf(`You are a health assessment AI assistant. Analyze the following health data and assess diabetes risk.
DO NOT provide medical diagnosis. This is for educational purposes only.

Health Data:
- Age: %d
- Gender: %s
- Height: %g cm
- Weight: %g kg
- Family History: %s
- Activity Level: %s
- Smoking: %s
- Alcohol: %s
- Diet: %s
- Sleep: %d hours
- Symptoms: %s

Return ONLY a valid JSON object with this exact structure:
{
  "risk": "Low|Moderate|High",
  "explanation": "Brief explanation of the risk assessment",
  "tips": "Short lifestyle advice and recommendations"
}

Do not include any markdown formatting, just the raw JSON.`,
		assessment.Age,
		assessment.Gender,
		assessment.Height,
		assessment.Weight,
		yesNo(assessment.FamilyHistory),
		assessment.Activity,
		yesNo(assessment.Smoking),
		assessment.Alcohol,
		assessment.Diet,
		assessment.Sleep,
		joinSymptoms(assessment.SymptomList()),
	)
}

// BuildMealPrompt renders the nutrition-estimation template for a
// meal description.
func BuildMealPrompt(mealType, mealText string) string {
	return fmt.Sprintf(`You are a nutrition analysis AI assistant. Analyze the following meal description and estimate nutritional values.

Meal Type: %s
Meal Description: %s

Return ONLY a valid JSON object with this exact structure:
{
  "calories": number (float),
  "carbs": number (float, in grams),
  "protein": number (float, in grams),
  "fat": number (float, in grams),
  "sugar": number (float, in grams),
  "fiber": number (float, in grams),
  "impact": "Low|Moderate|High",
  "notes": "Short recommendation about this meal for diabetes management"
}

Provide realistic estimates. If the meal description is vague, provide reasonable estimates based on typical servings.
Do not include any markdown formatting, just the raw JSON.`, mealType, mealText)
}

// ParseMealImage turns a client-supplied base64 image (optionally
// carrying a data URL header) into an inline attachment. The MIME type
// comes from the header when present, image/jpeg otherwise.
func ParseMealImage(imageBase64 string) gemini.InlineData {
	mimeType := "image/jpeg"
	data := imageBase64

	if match := imageHeaderPattern.FindStringSubmatch(imageBase64); match != nil {
		mimeType = match[1]
		data = imageHeaderPattern.ReplaceAllString(imageBase64, "")
	}

	return gemini.InlineData{MIMEType: mimeType, Data: data}
}

func renderContextSection(userContext *UserContext) string {
	var section strings.Builder

	section.WriteString("\n\n=== PATIENT HEALTH CONTEXT ===\n")

	if profile := userContext.HealthProfile; profile != nil {
		section.WriteString(fmt.Sprintf(`Health Profile:
- Age: %d, Gender: %s
- Height: %g cm, Weight: %g kg, BMI: %s
- Diabetes Risk Level: %s
- Activity Level: %s
- Diet Type: %s
- Family History: %s
- Symptoms: %s
`,
			profile.Age, profile.Gender,
			profile.Height, profile.Weight, profile.BMI,
			profile.RiskLevel,
			profile.Activity,
			profile.Diet,
			yesNo(profile.FamilyHistory),
			joinSymptoms(profile.Symptoms)))
	} else {
		section.WriteString("Health Profile: No assessment completed yet.\n")
	}

	today := userContext.TodayNutrition
	section.WriteString(fmt.Sprintf(`
Today's Nutrition Intake:
- Total Calories: %.0f
- Total Sugar: %.1fg
- Total Carbs: %.1fg
- Protein: %.1fg
- Fat: %.1fg
- Fiber: %.1fg
- Meals Logged: %d
`,
		today.Calories, today.Sugar, today.Carbs,
		today.Protein, today.Fat, today.Fiber, today.MealCount))

	if len(userContext.RecentMeals) > 0 {
		section.WriteString("\nRecent Meal Patterns (Last 10 meals):\n")

		shown := userContext.RecentMeals
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for i, meal := range shown {
			section.WriteString(fmt.Sprintf("%d. %s: %.0f cal, %.1fg sugar (%s impact)\n",
				i+1, meal.MealType, meal.Calories, meal.Sugar, meal.Impact))
		}

		// Averaged over the full retrieved set, not just the meals shown.
		var totalSugar float64
		for _, meal := range userContext.RecentMeals {
			totalSugar += meal.Sugar
		}
		avgSugar := totalSugar / float64(len(userContext.RecentMeals))
		section.WriteString(fmt.Sprintf("Average sugar per meal: %.1fg\n", avgSugar))
	} else {
		section.WriteString("\nRecent Meals: No meals logged yet.\n")
	}

	if len(userContext.ChatHistory) > 0 {
		section.WriteString("\n=== PREVIOUS CONVERSATION HISTORY ===\n")
		section.WriteString("These are the recent conversations with this patient. Reference them naturally when relevant:\n\n")
		for i, turn := range userContext.ChatHistory {
			answer := turn.Answer
			ellipsis := ""
			if runes := []rune(answer); len(runes) > answerPreviewLimit {
				answer = string(runes[:answerPreviewLimit])
				ellipsis = "..."
			}
			section.WriteString(fmt.Sprintf("Conversation %d (%s):\n", i+1, turn.Date))
			section.WriteString(fmt.Sprintf("Patient: %q\n", turn.Question))
			section.WriteString(fmt.Sprintf("Assistant: \"%s%s\"\n\n", answer, ellipsis))
		}
		section.WriteString("=== END CHAT HISTORY ===\n")
	} else {
		section.WriteString("\nChat History: This is the first conversation.\n")
	}

	section.WriteString("\n=== END CONTEXT ===\n")

	return section.String()
}

// BuildChatPrompt assembles the assistant prompt: persona and
// guardrails, the rendered context snapshot, the new question, and the
// closing reply instructions.
func BuildChatPrompt(question string, userContext *UserContext) string {
	return fmt.Sprintf(`You are a friendly and helpful diabetes lifestyle assistant. Your role is to provide personalized lifestyle guidance and nutritional advice based on the patient's health data and previous conversations.

IMPORTANT GUIDELINES:
- DO NOT provide medical diagnosis or prescribe medications
- DO NOT replace professional medical advice
- Keep responses SHORT, SIMPLE, and in HUMAN LANGUAGE (like talking to a friend)
- Use the patient's health and nutrition data to give PERSONALIZED advice
- Be supportive, encouraging, and easy to understand
- Focus on practical tips and actionable suggestions
- Reference specific data from their profile when relevant
- Remember and reference previous conversations naturally
- Show continuity in your responses (e.g., "As we discussed earlier..." or "Remember when you asked about...")
- Always suggest consulting healthcare professionals for serious concerns

%s

User Question: %q

Instructions:
- Answer in 2-4 short sentences maximum
- Use simple, everyday language (avoid medical jargon)
- Reference their specific health data when relevant
- Reference previous conversations naturally if relevant (e.g., "Like we talked about yesterday..." or "Building on your previous question about...")
- Be conversational and warm, like talking to a friend who remembers past chats
- Give practical, actionable advice they can implement today
- If the question relates to something discussed before, acknowledge it naturally
- Use examples from their actual data (risk level, sugar intake, meal patterns)
- If this question was asked before, provide a slightly different angle or updated information

Provide your response in a natural, conversational way:`,
		renderContextSection(userContext), question)
}
