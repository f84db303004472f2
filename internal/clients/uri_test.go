package clients_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/azwarden/internal/clients"
)

func TestParseStorageURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want clients.StorageTarget
	}{
		{
			name: "blob_container",
			uri:  "https://mystorage.blob.core.windows.net/logs",
			want: clients.StorageTarget{
				ServiceURL:  "https://mystorage.blob.core.windows.net/",
				AccountName: "mystorage",
				Name:        "logs",
			},
		},
		{
			name: "blob_with_prefix",
			uri:  "https://mystorage.blob.core.windows.net/logs/accounts/2026/08",
			want: clients.StorageTarget{
				ServiceURL:  "https://mystorage.blob.core.windows.net/",
				AccountName: "mystorage",
				Name:        "logs",
				Prefix:      "accounts/2026/08",
			},
		},
		{
			name: "queue",
			uri:  "https://mystorage.queue.core.windows.net/notifications",
			want: clients.StorageTarget{
				ServiceURL:  "https://mystorage.queue.core.windows.net/",
				AccountName: "mystorage",
				Name:        "notifications",
			},
		},
		{
			name: "trailing_slash",
			uri:  "https://mystorage.blob.core.windows.net/logs/",
			want: clients.StorageTarget{
				ServiceURL:  "https://mystorage.blob.core.windows.net/",
				AccountName: "mystorage",
				Name:        "logs",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := clients.ParseStorageURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseStorageURIRejectsMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
	}{
		{name: "no_scheme", uri: "mystorage.blob.core.windows.net/logs"},
		{name: "no_container", uri: "https://mystorage.blob.core.windows.net/"},
		{name: "empty", uri: ""},
		{name: "garbage", uri: "://///"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := clients.ParseStorageURI(tt.uri)
			assert.Error(t, err)
		})
	}
}
