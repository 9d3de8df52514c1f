// Package ai defines the provider-agnostic chat types and the Provider
// interface shared by every model backend and decorator in the toolkit.
package ai
