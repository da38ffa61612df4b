// Package blog defines the blog post document and its MongoDB repository.
package blog
