package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"app/analytics"
	"app/config"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleBusinessAdvisor runs the forecast and reorder analysis, then asks
// Gemini for a short actionable narrative over the numbers.
// POST /api/v1/merchant/automation/advisor
func HandleBusinessAdvisor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	var req models.AdvisorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	ctx := context.Background()
	engine := automationEngine()

	forecast, fErr := engine.PredictSales(ctx, userID, 7)
	if fErr != nil {
		log.Printf("Advisor forecast degraded for user %s: %v", userID, fErr)
	}
	suggestions, sErr := engine.ReorderSuggestions(ctx, userID)
	if sErr != nil {
		log.Printf("Advisor reorder suggestions degraded for user %s: %v", userID, sErr)
	}

	prompt := buildAdvisorPrompt(forecast, suggestions, req.Question)

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to initialize AI client"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error generating advisor content: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate advice"})
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Empty response from AI model"})
	}
	advice := strings.TrimSpace(fmt.Sprint(resp.Candidates[0].Content.Parts[0]))

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"advice":      advice,
			"forecast":    forecast,
			"suggestions": suggestions,
		},
	})
}

// buildAdvisorPrompt renders the engine outputs into a compact prompt.
func buildAdvisorPrompt(forecast analytics.ForecastResult, suggestions []analytics.ReorderSuggestion, question string) string {
	var b strings.Builder

	b.WriteString("You are a business advisor for a small Indonesian retail business (warung/UMKM). ")
	b.WriteString("Based on the following analytics, give 3 short, concrete recommendations in Bahasa Indonesia.\n\n")

	fmt.Fprintf(&b, "Sales forecast (next 7 days): Rp %d, trend %s, confidence %s.\n",
		forecast.Prediction, forecast.Trend, forecast.Confidence)

	if len(suggestions) == 0 {
		b.WriteString("No products currently need restocking.\n")
	} else {
		fmt.Fprintf(&b, "%d products need restocking:\n", len(suggestions))
		for _, s := range suggestions {
			fmt.Fprintf(&b, "- %s: %d units left, suggest ordering %d units (estimated cost Rp %.0f)\n",
				s.Product, s.CurrentStock, s.SuggestedOrder, s.EstimatedCost)
		}
	}

	if question != "" {
		fmt.Fprintf(&b, "\nThe owner asks: %q\n", question)
	}

	return b.String()
}
