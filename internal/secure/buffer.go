package secure

import (
	"errors"
	"sync"

	"github.com/awnumar/memguard"
)

// ErrDestroyed is returned by Reveal after the buffer has been destroyed.
var ErrDestroyed = errors.New("secure: buffer destroyed")

// Buffer holds a secret in an encrypted memguard enclave. The plaintext
// exists only inside Reveal, in a locked buffer that is wiped before Reveal
// returns.
type Buffer struct {
	mu        sync.RWMutex
	enclave   *memguard.Enclave
	destroyed bool
}

// NewBuffer copies data into a protected enclave. The caller keeps ownership
// of data and should zero it after the call.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{enclave: memguard.NewEnclave(data)}
}

// Reveal decrypts the secret and passes the plaintext to fn. The plaintext
// slice is only valid for the duration of the call; fn must not retain it.
func (b *Buffer) Reveal(fn func([]byte) error) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.destroyed {
		return ErrDestroyed
	}

	locked, err := b.enclave.Open()
	if err != nil {
		return err
	}
	defer locked.Destroy()

	return fn(locked.Bytes())
}

// Destroy marks the buffer unusable. Idempotent. The enclave's encrypted
// content needs no explicit wipe; memguard.Purge at process exit covers
// complete cleanup.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.enclave = nil
	b.destroyed = true
}
