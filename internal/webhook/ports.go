package webhook

import (
	"context"

	"github.com/aevtikheev/dvmn-support-bot/internal/dialogflow"
)

// Responder answers a single utterance within a conversational session.
type Responder interface {
	GetResponse(ctx context.Context, sessionID, text, languageCode string) (dialogflow.Response, error)
}
