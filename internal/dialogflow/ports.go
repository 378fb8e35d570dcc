package dialogflow

import (
	"context"

	dfapi "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

// SessionsAPI is the slice of the generated sessions client the responder
// needs. *dfapi.SessionsClient satisfies it.
type SessionsAPI interface {
	DetectIntent(ctx context.Context, req *dialogflowpb.DetectIntentRequest, opts ...gax.CallOption) (*dialogflowpb.DetectIntentResponse, error)
	Close() error
}

// IntentsAPI is the slice of the generated intents client the trainer needs.
type IntentsAPI interface {
	CreateIntent(ctx context.Context, req *dialogflowpb.CreateIntentRequest, opts ...gax.CallOption) (*dialogflowpb.Intent, error)
	Close() error
}

// AgentsAPI is the slice of the generated agents client the trainer needs.
type AgentsAPI interface {
	TrainAgent(ctx context.Context, req *dialogflowpb.TrainAgentRequest, opts ...gax.CallOption) (*dfapi.TrainAgentOperation, error)
	Close() error
}

// Client factories, replaceable in tests.
type (
	sessionsFactory func(ctx context.Context, opts ...option.ClientOption) (SessionsAPI, error)
	intentsFactory  func(ctx context.Context, opts ...option.ClientOption) (IntentsAPI, error)
	agentsFactory   func(ctx context.Context, opts ...option.ClientOption) (AgentsAPI, error)
)

func newSessionsClient(ctx context.Context, opts ...option.ClientOption) (SessionsAPI, error) {
	client, err := dfapi.NewSessionsClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newIntentsClient(ctx context.Context, opts ...option.ClientOption) (IntentsAPI, error) {
	client, err := dfapi.NewIntentsClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newAgentsClient(ctx context.Context, opts ...option.ClientOption) (AgentsAPI, error) {
	client, err := dfapi.NewAgentsClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
