package dialogflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/option"

	"github.com/aevtikheev/dvmn-support-bot/internal/creds"
)

// Trainer uploads intent definitions to a Dialogflow agent and retrains it.
type Trainer struct {
	credsFile   string
	log         *slog.Logger
	stopOnError bool
	newIntents  intentsFactory
	newAgents   agentsFactory
}

type TrainerOption func(*Trainer)

// WithStopOnError makes per-intent failures abort the run instead of being
// logged and skipped.
func WithStopOnError() TrainerOption {
	return func(t *Trainer) { t.stopOnError = true }
}

func NewTrainer(credsFile string, log *slog.Logger, opts ...TrainerOption) *Trainer {
	t := &Trainer{
		credsFile:  credsFile,
		log:        log,
		newIntents: newIntentsClient,
		newAgents:  newAgentsClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TrainAgent creates every intent in order and retrains the agent after each
// successful creation. An intent that fails to upload is logged and skipped,
// and the loop moves on; the returned error covers only setup failures that
// happen before anything is submitted, or, with WithStopOnError, the first
// failed intent.
func (t *Trainer) TrainAgent(ctx context.Context, intents []IntentDefinition) error {
	googleCreds, err := creds.Load(t.credsFile)
	if err != nil {
		return err
	}

	intentsClient, err := t.newIntents(ctx, option.WithCredentialsFile(t.credsFile))
	if err != nil {
		return fmt.Errorf("create intents client: %w", err)
	}
	defer intentsClient.Close()

	agentsClient, err := t.newAgents(ctx, option.WithCredentialsFile(t.credsFile))
	if err != nil {
		return fmt.Errorf("create agents client: %w", err)
	}
	defer agentsClient.Close()

	agent := fmt.Sprintf("projects/%s/agent", googleCreds.ProjectID)
	project := fmt.Sprintf("projects/%s", googleCreds.ProjectID)

	for _, intent := range intents {
		if err := t.trainOne(ctx, intentsClient, agentsClient, agent, project, intent); err != nil {
			t.logFailure(intent.DisplayName, err)
			if t.stopOnError {
				return fmt.Errorf("intent %q: %w", intent.DisplayName, err)
			}
		}
	}

	return nil
}

func (t *Trainer) trainOne(ctx context.Context, intentsClient IntentsAPI, agentsClient AgentsAPI, agent, project string, intent IntentDefinition) error {
	_, err := intentsClient.CreateIntent(ctx, &dialogflowpb.CreateIntentRequest{
		Parent: agent,
		Intent: intent.proto(),
	})
	if err != nil {
		return fmt.Errorf("create intent: %w", err)
	}
	t.log.Info("intent created", "display_name", intent.DisplayName)

	// The returned operation is not awaited; training runs server-side.
	_, err = agentsClient.TrainAgent(ctx, &dialogflowpb.TrainAgentRequest{Parent: project})
	if err != nil {
		return fmt.Errorf("train agent: %w", err)
	}
	t.log.Info("agent training started", "display_name", intent.DisplayName)

	return nil
}

func (t *Trainer) logFailure(displayName string, err error) {
	attrs := []any{"display_name", displayName, "error", err}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, "grpc_code", apiErr.GRPCStatus().Code().String())
	}

	t.log.Error("intent was not created", attrs...)
}
