// Package auth provides password hashing for user accounts.
//
// Signup payloads may carry a plaintext password; it is hashed with Argon2id
// before the user document is stored and the hash is never serialized back to
// clients. No authentication is enforced on any route; the hash exists so
// credentials stored today remain verifiable when a login surface is added.
package auth
