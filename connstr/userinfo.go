package connstr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rediwo/redi-connstr/utils"
)

// ParseUserinfo splits a "user:password" segment on its first ':' and
// percent-decodes both halves. Reserved characters inside either half
// must be percent-encoded by the caller: a bare '@', a missing ':', an
// empty half, or a second ':' in the password makes the split
// ambiguous and fails with ErrInvalidURI.
//
// Decoding follows query-string conventions: each %XX pair becomes one
// byte and a bare '+' becomes a space, so a literal '+' must be
// written as %2B.
func ParseUserinfo(userinfo string) (string, string, error) {
	if strings.Contains(userinfo, "@") {
		return "", "", fmt.Errorf("%w: '@' in userinfo must be percent-encoded", ErrInvalidURI)
	}

	user, sep, password := utils.Partition(userinfo, ":")
	if sep == "" {
		return "", "", fmt.Errorf("%w: userinfo must take the form user:password", ErrInvalidURI)
	}
	if user == "" || password == "" {
		return "", "", fmt.Errorf("%w: username and password cannot be empty", ErrInvalidURI)
	}
	if strings.Contains(password, ":") {
		return "", "", fmt.Errorf("%w: ':' in a password must be percent-encoded", ErrInvalidURI)
	}

	decodedUser, err := url.QueryUnescape(user)
	if err != nil {
		return "", "", fmt.Errorf("%w: malformed percent escape in username: %v", ErrInvalidURI, err)
	}
	decodedPassword, err := url.QueryUnescape(password)
	if err != nil {
		return "", "", fmt.Errorf("%w: malformed percent escape in password: %v", ErrInvalidURI, err)
	}

	return decodedUser, decodedPassword, nil
}
