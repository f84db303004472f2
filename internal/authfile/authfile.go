// Package authfile implements authorization-file authentication: a JSON
// document holding service principal credentials plus a target subscription,
// as produced for function-app deployments. Loading validates the document
// shape before any field is trusted; exporting renders the document for a
// deployment from the current environment.
package authfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/xeipuuv/gojsonschema"

	"github.com/systmms/azwarden/internal/secure"
	"github.com/systmms/azwarden/internal/session"
)

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["credentials", "subscription"],
  "additionalProperties": false,
  "properties": {
    "credentials": {
      "type": "object",
      "required": ["client_id", "secret", "tenant"],
      "additionalProperties": false,
      "properties": {
        "client_id": {"type": "string", "minLength": 1},
        "secret": {"type": "string", "minLength": 1},
        "tenant": {"type": "string", "minLength": 1}
      }
    },
    "subscription": {"type": "string", "minLength": 1}
  }
}`

var schema = gojsonschema.NewStringLoader(schemaJSON)

// Document is a parsed authorization file. The client secret is stored in
// protected memory and wiped once a credential has been built from it.
type Document struct {
	ClientID     string
	Tenant       string
	Subscription string
	Secret       *secure.Buffer
}

type rawDocument struct {
	Credentials struct {
		ClientID string `json:"client_id"`
		Secret   string `json:"secret"`
		Tenant   string `json:"tenant"`
	} `json:"credentials"`
	Subscription string `json:"subscription"`
}

// Load reads and validates an authorization file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("authorization file: %w", err)
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("authorization file %s: %w", path, err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return nil, fmt.Errorf("authorization file %s is invalid: %s", path, strings.Join(problems, "; "))
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("authorization file %s: %w", path, err)
	}

	doc := &Document{
		ClientID:     raw.Credentials.ClientID,
		Tenant:       raw.Credentials.Tenant,
		Subscription: raw.Subscription,
		Secret:       secure.NewBuffer([]byte(raw.Credentials.Secret)),
	}
	return doc, nil
}

// Resolver resolves a service principal session from an authorization file,
// bypassing environment-driven mode selection.
type Resolver struct {
	Path string
}

func (r Resolver) Mode() session.AuthMode { return session.ModeServicePrincipal }

func (r Resolver) Resolve(ctx context.Context, cfg session.RawConfig) (*session.Session, error) {
	doc, err := Load(r.Path)
	if err != nil {
		return nil, err
	}
	defer doc.Secret.Destroy()

	var cred *azidentity.ClientSecretCredential
	err = doc.Secret.Reveal(func(b []byte) error {
		var err error
		cred, err = azidentity.NewClientSecretCredential(doc.Tenant, doc.ClientID, string(b), nil)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("authorization file credential: %w", err)
	}

	return session.New(session.ModeServicePrincipal, doc.Subscription, doc.Tenant, cred, cfg)
}

// Export renders the authorization JSON for deploying function apps.
// Dedicated AZURE_FUNCTION_* variables win over the session's own service
// principal variables; anything other than service principal authentication
// cannot be exported.
func Export(s *session.Session) (string, error) {
	cfg := s.Config()

	var raw rawDocument
	raw.Subscription = s.FunctionTargetSubscriptionID()

	switch {
	case cfg.IsSet(session.EnvFunctionTenantID) &&
		cfg.IsSet(session.EnvFunctionClientID) &&
		cfg.IsSet(session.EnvFunctionClientSecret):
		raw.Credentials.ClientID = cfg.Get(session.EnvFunctionClientID)
		raw.Credentials.Secret = cfg.Get(session.EnvFunctionClientSecret)
		raw.Credentials.Tenant = cfg.Get(session.EnvFunctionTenantID)

	case s.Mode() == session.ModeServicePrincipal:
		raw.Credentials.ClientID = cfg.Get(session.EnvClientID)
		raw.Credentials.Secret = cfg.Get(session.EnvClientSecret)
		raw.Credentials.Tenant = cfg.Get(session.EnvTenantID)

	default:
		return "", fmt.Errorf("authfile: service principal credentials are required to export an authorization document, session uses %s", s.Mode())
	}

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
