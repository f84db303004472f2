package clients

import (
	"fmt"
	"net/url"
	"strings"
)

// StorageTarget is a storage endpoint parsed from a blob or queue URI like
// https://account.blob.core.windows.net/container/some/prefix.
type StorageTarget struct {
	// ServiceURL is the account endpoint, scheme and host only.
	ServiceURL string

	// AccountName is the first label of the host.
	AccountName string

	// Name is the container or queue name.
	Name string

	// Prefix is the remaining path under the container, if any.
	Prefix string
}

// ParseStorageURI splits a storage URI into its target parts.
func ParseStorageURI(raw string) (*StorageTarget, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("storage uri %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("storage uri %q: missing scheme or host", raw)
	}

	account, _, _ := strings.Cut(u.Host, ".")
	name, prefix, _ := strings.Cut(strings.Trim(u.Path, "/"), "/")
	if name == "" {
		return nil, fmt.Errorf("storage uri %q: missing container or queue name", raw)
	}

	return &StorageTarget{
		ServiceURL:  u.Scheme + "://" + u.Host + "/",
		AccountName: account,
		Name:        name,
		Prefix:      prefix,
	}, nil
}
