package webhook

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/twilio/twilio-go/twiml"
)

type Handler struct {
	responder       Responder
	defaultLanguage string
	log             *slog.Logger
}

func NewHandler(responder Responder, defaultLanguage string, log *slog.Logger) *Handler {
	return &Handler{
		responder:       responder,
		defaultLanguage: defaultLanguage,
		log:             log,
	}
}

type chatRequest struct {
	SessionID    string `json:"session_id"`
	Text         string `json:"text"`
	LanguageCode string `json:"language_code"`
}

// Chat answers a single utterance. A request without a session id starts a
// fresh session; the generated id is echoed back so the client can continue
// the conversation.
func (h *Handler) Chat(c *fiber.Ctx) error {
	req := &chatRequest{}
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	if req.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "text is required")
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	if req.LanguageCode == "" {
		req.LanguageCode = h.defaultLanguage
	}

	resp, err := h.responder.GetResponse(c.Context(), req.SessionID, req.Text, req.LanguageCode)
	if err != nil {
		h.log.Error("detect intent failed", "session_id", req.SessionID, "error", err)
		return fiber.ErrBadGateway
	}

	return c.JSON(fiber.Map{
		"session_id":  req.SessionID,
		"text":        resp.Text,
		"is_fallback": resp.IsFallback,
	})
}

// SMS handles a Twilio inbound-message webhook and replies with Messaging
// TwiML carrying the agent's answer.
func (h *Handler) SMS(c *fiber.Ctx) error {
	from := c.FormValue("From")
	body := c.FormValue("Body")
	if body == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Body is required")
	}

	// One Dialogflow session per sender, stable across messages.
	sessionID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(from)).String()

	resp, err := h.responder.GetResponse(c.Context(), sessionID, body, h.defaultLanguage)
	if err != nil {
		h.log.Error("detect intent failed", "session_id", sessionID, "error", err)
		return fiber.ErrBadGateway
	}

	return messagingResponse(c, &twiml.MessagingMessage{Body: resp.Text})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func messagingResponse(c *fiber.Ctx, verbs ...twiml.Element) error {
	c.Set("Content-type", "application/xml; charset=utf-8")

	xml, err := twiml.Messages(verbs)
	if err != nil {
		return fmt.Errorf("failed to create messaging response: %w", err)
	}

	return c.SendString(xml)
}
