package intent

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/grovetools/homeshell/errors"
)

// The textual intent-URI grammar:
//
//	intent:[data]#Intent;action=...;component=pkg/Class;launchFlags=0x..;S.key=value;end
//
// The data part and all token values are percent-escaped. The fragment
// must open with "Intent;" and close with an "end" token.

const (
	uriScheme         = "intent:"
	fragmentMarker    = "#Intent;"
	terminatorToken   = "end"
	tokenAction       = "action"
	tokenComponent    = "component"
	tokenLaunchFlags  = "launchFlags"
	stringExtraPrefix = "S."
)

// ParseURI parses an encoded intent URI into a navigation request.
func ParseURI(s string) (*NavigationRequest, error) {
	head, frag, ok := strings.Cut(s, fragmentMarker)
	if !ok {
		return nil, errors.URISyntax(s, "", "missing #Intent fragment")
	}

	req := NewRequest("")

	if head != "" {
		if !strings.HasPrefix(head, uriScheme) {
			return nil, errors.URISyntax(s, head, "missing intent: scheme")
		}
		data, err := url.PathUnescape(strings.TrimPrefix(head, uriScheme))
		if err != nil {
			return nil, errors.URISyntax(s, head, "bad escaping in data part")
		}
		req.Data = data
	}

	tokens := strings.Split(frag, ";")
	terminated := false
	for i, token := range tokens {
		if token == "" {
			continue
		}
		if token == terminatorToken {
			if i != len(tokens)-1 && strings.Join(tokens[i+1:], "") != "" {
				return nil, errors.URISyntax(s, token, "content after end token")
			}
			terminated = true
			break
		}

		key, rawValue, ok := strings.Cut(token, "=")
		if !ok {
			return nil, errors.URISyntax(s, token, "token is not key=value")
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			return nil, errors.URISyntax(s, token, "bad escaping in value")
		}

		switch {
		case key == tokenAction:
			req.Action = value
		case key == tokenComponent:
			component, err := ParseComponentName(value)
			if err != nil {
				return nil, errors.URISyntax(s, token, "bad component name")
			}
			req.Component = component
		case key == tokenLaunchFlags:
			flags, err := parseFlags(value)
			if err != nil {
				return nil, errors.URISyntax(s, token, "bad launch flags")
			}
			req.Flags = flags
		case strings.HasPrefix(key, stringExtraPrefix):
			name := strings.TrimPrefix(key, stringExtraPrefix)
			if name == "" {
				return nil, errors.URISyntax(s, token, "empty extra key")
			}
			req.PutExtra(name, value)
		default:
			return nil, errors.URISyntax(s, token, "unknown token")
		}
	}

	if !terminated {
		return nil, errors.URISyntax(s, "", "missing end token")
	}

	return req, nil
}

// EncodeURI renders the request in the textual intent-URI grammar.
// Extras are emitted in sorted key order so encoding is deterministic.
func (r *NavigationRequest) EncodeURI() string {
	var b strings.Builder

	b.WriteString(uriScheme)
	if r.Data != "" {
		b.WriteString(url.PathEscape(r.Data))
	}
	b.WriteString(fragmentMarker)

	if r.Action != "" {
		fmt.Fprintf(&b, "%s=%s;", tokenAction, url.PathEscape(r.Action))
	}
	if !r.Component.IsZero() {
		fmt.Fprintf(&b, "%s=%s;", tokenComponent, url.PathEscape(r.Component.String()))
	}
	if r.Flags != 0 {
		fmt.Fprintf(&b, "%s=0x%x;", tokenLaunchFlags, uint32(r.Flags))
	}

	keys := make([]string, 0, len(r.Extras))
	for k := range r.Extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s%s=%s;", stringExtraPrefix, url.PathEscape(k), url.PathEscape(r.Extras[k]))
	}

	b.WriteString(terminatorToken)
	return b.String()
}

func parseFlags(s string) (Flags, error) {
	v := strings.TrimPrefix(s, "0x")
	if v == s {
		return 0, fmt.Errorf("launch flags must be hex: %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, err
	}
	return Flags(n), nil
}
