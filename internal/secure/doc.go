// Package secure provides memory-safe handling of credential material.
//
// It wraps the memguard library so that secrets held between configuration
// read and credential construction (client secrets, raw access tokens) are:
//
//   - Encrypted at rest in memory (XSalsa20Poly1305)
//   - Protected from swapping via mlock, where available
//   - Guarded against buffer overflow via guard pages
//   - Wiped when no longer needed
//
// Typical usage:
//
//	buf := secure.NewBuffer([]byte(clientSecret))
//	defer buf.Destroy()
//
//	err := buf.Reveal(func(b []byte) error {
//	    cred, err = buildCredential(string(b))
//	    return err
//	})
//
// If mlock is unavailable (for example due to RLIMIT_MEMLOCK), memguard
// degrades to standard allocation; the encryption at rest still holds.
// For complete cleanup of all protected memory at process exit, call
// memguard.Purge from main.
package secure
