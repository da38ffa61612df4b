// Package gallery defines the image gallery document and its MongoDB repository.
package gallery
