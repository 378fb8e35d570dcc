package dialogflow

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"google.golang.org/api/option"

	"github.com/aevtikheev/dvmn-support-bot/internal/creds"
)

// Response is the simplified result of a detect-intent call.
type Response struct {
	Text       string `json:"text"`
	IsFallback bool   `json:"is_fallback"`
}

// Responder answers user utterances through the Dialogflow detect-intent API.
type Responder struct {
	credsFile   string
	log         *slog.Logger
	newSessions sessionsFactory
}

func NewResponder(credsFile string, log *slog.Logger) *Responder {
	return &Responder{
		credsFile:   credsFile,
		log:         log,
		newSessions: newSessionsClient,
	}
}

// GetResponse classifies text within the given session and returns the
// agent's fulfillment text. Exactly one remote call is made per invocation;
// remote failures are returned to the caller, there is no retry.
func (r *Responder) GetResponse(ctx context.Context, sessionID, text, languageCode string) (Response, error) {
	googleCreds, err := creds.Load(r.credsFile)
	if err != nil {
		return Response{}, err
	}

	client, err := r.newSessions(ctx, option.WithCredentialsFile(r.credsFile))
	if err != nil {
		return Response{}, fmt.Errorf("create sessions client: %w", err)
	}
	defer client.Close()

	session := fmt.Sprintf("projects/%s/agent/sessions/%s", googleCreds.ProjectID, sessionID)

	r.log.Info("dialogflow session opened",
		"session_id", sessionID,
		"language_code", languageCode,
	)

	resp, err := client.DetectIntent(ctx, &dialogflowpb.DetectIntentRequest{
		Session: session,
		QueryInput: &dialogflowpb.QueryInput{
			Input: &dialogflowpb.QueryInput_Text{
				Text: &dialogflowpb.TextInput{Text: text, LanguageCode: languageCode},
			},
		},
	})
	if err != nil {
		return Response{}, fmt.Errorf("detect intent: %w", err)
	}

	result := resp.GetQueryResult()
	r.log.Info("intent detected",
		"query_text", result.GetQueryText(),
		"intent", result.GetIntent().GetDisplayName(),
		"confidence", result.GetIntentDetectionConfidence(),
		"fulfillment_text", result.GetFulfillmentText(),
	)

	return Response{
		Text:       result.GetFulfillmentText(),
		IsFallback: result.GetIntent().GetIsFallback(),
	}, nil
}
