// Package user defines the user account document and its MongoDB repository.
package user
