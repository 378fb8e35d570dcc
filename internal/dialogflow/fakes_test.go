package dialogflow

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	dfapi "cloud.google.com/go/dialogflow/apiv2"
	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testProject = "test-project"

const testKey = `{
	"type": "service_account",
	"project_id": "test-project",
	"private_key_id": "abc123",
	"private_key": "xxx",
	"client_email": "bot@test-project.iam.gserviceaccount.com",
	"client_id": "1234567890",
	"auth_uri": "https://accounts.google.com/o/oauth2/auth",
	"token_uri": "https://oauth2.googleapis.com/token",
	"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
	"client_x509_cert_url": "https://www.googleapis.com/robot/v1/metadata/x509/bot"
}`

func writeTestCreds(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte(testKey), 0o600); err != nil {
		t.Fatalf("write creds file: %v", err)
	}
	return path
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func apiFailure(code codes.Code) error {
	apiErr, _ := apierror.FromError(status.Error(code, "rejected by the API"))
	return apiErr
}

type sessionsFake struct {
	resp   *dialogflowpb.DetectIntentResponse
	err    error
	req    *dialogflowpb.DetectIntentRequest
	closed bool
}

func (f *sessionsFake) DetectIntent(_ context.Context, req *dialogflowpb.DetectIntentRequest, _ ...gax.CallOption) (*dialogflowpb.DetectIntentResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *sessionsFake) Close() error {
	f.closed = true
	return nil
}

type intentsFake struct {
	failOn   map[string]bool
	attempts []string
	created  []string
	parents  []string
	closed   bool
}

func (f *intentsFake) CreateIntent(_ context.Context, req *dialogflowpb.CreateIntentRequest, _ ...gax.CallOption) (*dialogflowpb.Intent, error) {
	name := req.GetIntent().GetDisplayName()
	f.attempts = append(f.attempts, name)
	f.parents = append(f.parents, req.GetParent())
	if f.failOn[name] {
		return nil, apiFailure(codes.AlreadyExists)
	}
	f.created = append(f.created, name)
	return req.GetIntent(), nil
}

func (f *intentsFake) Close() error {
	f.closed = true
	return nil
}

type agentsFake struct {
	parents []string
	closed  bool
}

func (f *agentsFake) TrainAgent(_ context.Context, req *dialogflowpb.TrainAgentRequest, _ ...gax.CallOption) (*dfapi.TrainAgentOperation, error) {
	f.parents = append(f.parents, req.GetParent())
	return nil, nil
}

func (f *agentsFake) Close() error {
	f.closed = true
	return nil
}
