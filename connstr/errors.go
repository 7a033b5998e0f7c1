package connstr

import (
	"errors"
	"fmt"
)

// Parse failures fall into three kinds, matched with errors.Is. The
// first failure aborts the whole parse; callers never receive a
// partial result alongside an error.
var (
	// ErrInvalidURI reports a string that does not match the top-level
	// grammar: wrong scheme prefix or a malformed userinfo segment.
	ErrInvalidURI = errors.New("invalid connection URI")

	// ErrConfiguration reports a malformed component inside an
	// otherwise well-formed URI: a bad host or port token, an
	// unterminated IPv6 bracket, a malformed or unknown option, or an
	// option value that fails its type rule.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedOption reports an option name that is recognized
	// but not accepted at this layer. It also matches ErrConfiguration
	// so callers checking for the broader kind still catch it.
	ErrUnsupportedOption = fmt.Errorf("%w: unsupported option", ErrConfiguration)
)
