// Package encryption processes files concurrently through the password-based
// crypto pipeline, writing each output atomically beside its input.
package encryption
