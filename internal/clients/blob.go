package clients

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/systmms/azwarden/internal/session"
)

// NewBlobClient returns a blob service client for the account in blobURI,
// authenticated with the session credential, along with the parsed target.
func NewBlobClient(s *session.Session, blobURI string) (*azblob.Client, *StorageTarget, error) {
	if err := s.Allow(session.CapabilityBlobStorage); err != nil {
		return nil, nil, err
	}

	target, err := ParseStorageURI(blobURI)
	if err != nil {
		return nil, nil, err
	}

	client, err := azblob.NewClient(target.ServiceURL, s.Credential(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("blob client for %s: %w", target.AccountName, err)
	}
	return client, target, nil
}

// EnsureContainer creates the target container if it does not exist yet.
func EnsureContainer(ctx context.Context, client *azblob.Client, target *StorageTarget) error {
	_, err := client.CreateContainer(ctx, target.Name, nil)
	if bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil
	}
	return err
}
