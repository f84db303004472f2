package clients

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azqueue"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azqueue/queueerror"

	"github.com/systmms/azwarden/internal/session"
)

// NewQueueClient returns a queue client for the queue named in queueURI,
// authenticated with the session credential.
func NewQueueClient(s *session.Session, queueURI string) (*azqueue.QueueClient, *StorageTarget, error) {
	if err := s.Allow(session.CapabilityQueueStorage); err != nil {
		return nil, nil, err
	}

	target, err := ParseStorageURI(queueURI)
	if err != nil {
		return nil, nil, err
	}

	service, err := azqueue.NewServiceClient(target.ServiceURL, s.Credential(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("queue client for %s: %w", target.AccountName, err)
	}
	return service.NewQueueClient(target.Name), target, nil
}

// EnsureQueue creates the queue if it does not exist yet.
func EnsureQueue(ctx context.Context, queue *azqueue.QueueClient) error {
	_, err := queue.Create(ctx, nil)
	if queueerror.HasCode(err, queueerror.QueueAlreadyExists) {
		return nil
	}
	return err
}

// PutMessage enqueues content and returns the new message id.
func PutMessage(ctx context.Context, queue *azqueue.QueueClient, content string) (string, error) {
	resp, err := queue.EnqueueMessage(ctx, content, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Messages) == 0 || resp.Messages[0].MessageID == nil {
		return "", fmt.Errorf("queue: enqueue returned no message id")
	}
	return *resp.Messages[0].MessageID, nil
}

// GetMessages dequeues up to max messages. The default visibility timeout
// applies; process and delete within it.
func GetMessages(ctx context.Context, queue *azqueue.QueueClient, max int32) ([]*azqueue.DequeuedMessage, error) {
	resp, err := queue.DequeueMessages(ctx, &azqueue.DequeueMessagesOptions{
		NumberOfMessages: &max,
	})
	if err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// DeleteMessage removes a processed message.
func DeleteMessage(ctx context.Context, queue *azqueue.QueueClient, messageID, popReceipt string) error {
	_, err := queue.DeleteMessage(ctx, messageID, popReceipt, nil)
	return err
}
