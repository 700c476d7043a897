// Package token generates the gateway bearer token written into the
// compose manifest.
//
// A token is 32 random bytes rendered as 64 lowercase hexadecimal
// characters. Generation walks a prioritized chain of entropy
// providers and uses the first one that succeeds; the resulting token
// records which provider produced it so callers can warn when only the
// non-cryptographic fallback was available.
package token
