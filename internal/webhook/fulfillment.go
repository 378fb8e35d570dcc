package webhook

import "github.com/gofiber/fiber/v2"

// Dialogflow fulfillment envelope, the subset this service reads.

type FulfillmentIntent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type FulfillmentText struct {
	Text []string `json:"text"`
}

type FulfillmentMessage struct {
	Text *FulfillmentText `json:"text"`
}

type FulfillmentQueryResult struct {
	QueryText                 string               `json:"queryText"`
	Parameters                map[string]any       `json:"parameters"`
	FulfillmentText           string               `json:"fulfillmentText"`
	Intent                    FulfillmentIntent    `json:"intent"`
	FulfillmentMessages       []FulfillmentMessage `json:"fulfillmentMessages"`
	IntentDetectionConfidence float64              `json:"intentDetectionConfidence"`
	LanguageCode              string               `json:"languageCode"`
}

type FulfillmentRequest struct {
	ResponseID  string                 `json:"responseId"`
	Session     string                 `json:"session"`
	QueryResult FulfillmentQueryResult `json:"queryResult"`
}

type FulfillmentResponse struct {
	FulfillmentMessages []FulfillmentMessage `json:"fulfillmentMessages"`
}

// Fulfillment is the callback Dialogflow invokes for intents with webhook
// fulfillment enabled. It hands the conversation over to a human operator.
func (h *Handler) Fulfillment(c *fiber.Ctx) error {
	req := &FulfillmentRequest{}
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	h.log.Info("fulfillment request",
		"intent", req.QueryResult.Intent.DisplayName,
		"query_text", req.QueryResult.QueryText,
	)

	msg := "Оператор скоро подключится к диалогу"
	if topic, ok := req.QueryResult.Parameters["topic"].(string); ok && topic != "" {
		msg = "Передаю вопрос по теме «" + topic + "» оператору"
	}

	resp := &FulfillmentResponse{
		FulfillmentMessages: []FulfillmentMessage{
			{Text: &FulfillmentText{Text: []string{msg}}},
		},
	}

	return c.JSON(resp)
}
