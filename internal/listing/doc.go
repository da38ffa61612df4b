// Package listing defines the property listing document and its MongoDB repository.
package listing
