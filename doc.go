// Package linkcache is a client for the cache-link service: a shared,
// associative cache backed by a distributed key-value store. The client
// presents a small operation surface (Get, GetMany, Set, Clear, ClearLater,
// TriggerClearNow) and internally picks the fastest correct path per call.
//
// Components:
//   - codec.Codec[V]: (de)serializes V <-> []byte, with optional explicit
//     charset normalization so payloads cross the wire as UTF-8.
//   - store.Store: read-only view of the backing key-value store, used for
//     latency-sensitive reads (optional, e.g. Redis).
//   - Doer: the HTTP transport collaborator (*http.Client works).
//
// Routing:
//
//	reads  -> direct store when configured (unless FromService), else service
//	writes -> always the service
//
// Direct-store keys:
//
//	<prefix>d:<key>  - cached values written by the service
//
// Mutations default to background completion: the service acknowledges
// receipt immediately and finishes asynchronously. Pass WithWait(true) to
// block until fully applied. Set stays local by default while Clear
// broadcasts to all datacenters; override either with WithBroadcast.
//
// Errors are typed so callers can pattern-match recovery: CodecError,
// StoreError, TransportError, ServiceError. Nothing is retried here; retry
// policy belongs to the transport collaborator.
package linkcache
