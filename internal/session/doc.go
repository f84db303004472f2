// Package session resolves Azure credentials for the plugin and hands them
// to downstream resource clients.
//
// Resolution is driven entirely by environment variables captured into an
// immutable RawConfig snapshot. Select picks exactly one authentication
// mode from an ordered rule table (raw access token, managed identity,
// service principal, Azure CLI fallback), the mode's Resolver performs the
// only external call, and the result is an immutable Session carrying the
// subscription, the azcore.TokenCredential and the mode's capability set.
//
// A Manager caches the resolved Session process-wide: Get resolves on first
// use and serves the cached handle afterwards, Refresh atomically replaces
// it. Client factories consult Session.Allow before constructing storage or
// queue clients; under raw-token authentication those capabilities are
// denied synchronously, before any network attempt.
package session
