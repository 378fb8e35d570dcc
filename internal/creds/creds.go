package creds

import (
	"encoding/json"
	"fmt"
	"os"
)

// GoogleCreds mirrors a Google service-account key file.
type GoogleCreds struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

var requiredFields = []string{
	"type",
	"project_id",
	"private_key_id",
	"private_key",
	"client_email",
	"client_id",
	"auth_uri",
	"token_uri",
	"auth_provider_x509_cert_url",
	"client_x509_cert_url",
}

// Load reads and parses the service-account key at path. The file is read
// fresh on every call; a key with any field missing is rejected.
func Load(path string) (GoogleCreds, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return GoogleCreds{}, fmt.Errorf("read credentials file: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return GoogleCreds{}, fmt.Errorf("parse credentials file: %w", err)
	}
	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return GoogleCreds{}, fmt.Errorf("parse credentials file: missing field %q", key)
		}
	}

	var googleCreds GoogleCreds
	if err := json.Unmarshal(raw, &googleCreds); err != nil {
		return GoogleCreds{}, fmt.Errorf("parse credentials file: %w", err)
	}

	return googleCreds, nil
}
