package session

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// azureAccount is the subset of `az account show` output the resolver needs.
type azureAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TenantID string `json:"tenantId"`
}

// CLIResolver delegates authentication to a logged-in Azure CLI session.
// Token acquisition goes through azidentity's CLI credential; the account's
// default subscription and tenant come from `az account show`. When
// AZURE_SUBSCRIPTION_ID is set it overrides the CLI's selected subscription.
type CLIResolver struct {
	// Exec runs the az binary. Defaults to the system executor.
	Exec CommandExecutor
}

func (r *CLIResolver) Mode() AuthMode { return ModeCLI }

func (r *CLIResolver) Resolve(ctx context.Context, cfg RawConfig) (*Session, error) {
	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, &AuthError{Reason: NoCliSession, Mode: ModeCLI, Err: err}
	}

	account, err := r.currentAccount(ctx)
	if err != nil {
		return nil, err
	}

	subscription := cfg.Get(EnvSubscriptionID)
	if subscription == "" {
		subscription = account.ID
	}
	return New(ModeCLI, subscription, account.TenantID, cred, cfg)
}

func (r *CLIResolver) currentAccount(ctx context.Context) (*azureAccount, error) {
	execer := r.Exec
	if execer == nil {
		execer = systemExecutor{}
	}

	stdout, stderr, err := execer.Execute(ctx, "az", "account", "show", "--output", "json")
	if err != nil {
		return nil, &AuthError{
			Reason: NoCliSession,
			Mode:   ModeCLI,
			Err:    cliError(err, stderr),
		}
	}

	var account azureAccount
	if err := json.Unmarshal(stdout, &account); err != nil {
		return nil, &AuthError{Reason: NoCliSession, Mode: ModeCLI, Err: err}
	}
	if account.ID == "" {
		return nil, &AuthError{Reason: NoCliSession, Mode: ModeCLI}
	}
	return &account, nil
}

// cliError prefers the CLI's own message ("Please run 'az login'...") over
// the raw exit status.
func cliError(err error, stderr []byte) error {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return err
	}
	return &cliMessageError{msg: msg, cause: err}
}

type cliMessageError struct {
	msg   string
	cause error
}

func (e *cliMessageError) Error() string { return e.msg }
func (e *cliMessageError) Unwrap() error { return e.cause }
