package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *ShellError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *ShellError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// DeepLinkPayloadMissing creates an error for a deep-link request that
// carries no encoded target URI.
func DeepLinkPayloadMissing() *ShellError {
	return New(ErrCodeDeepLinkPayloadMissing, "deep link request has no target intent URI extra")
}

// DeepLinkParseFailed wraps an intent URI syntax error from a deep-link payload.
func DeepLinkParseFailed(uri string, err error) *ShellError {
	return Wrap(err, ErrCodeDeepLinkParse, "failed to parse deep link intent URI").
		WithDetail("uri", uri)
}

// DeepLinkUnresolved creates an error for a target request that no
// registered destination component can serve.
func DeepLinkUnresolved(action string) *ShellError {
	return New(ErrCodeDeepLinkUnresolved,
		fmt.Sprintf("no valid target for deep link action '%s'", action)).
		WithDetail("action", action)
}

// URISyntax creates an intent URI syntax error at the given token.
func URISyntax(uri, token, reason string) *ShellError {
	return New(ErrCodeIntentURISyntax, fmt.Sprintf("malformed intent URI: %s", reason)).
		WithDetail("uri", uri).
		WithDetail("token", token)
}
