// Package mongodb manages the MongoDB connection for the Estate API.
//
// It owns the client lifecycle (connect, ping, disconnect), hands out
// collection handles to the domain repositories, and creates the indexes the
// service depends on at startup. The wrapped client is pooled and safe for
// concurrent use; it is created once in main and injected into repositories.
package mongodb
