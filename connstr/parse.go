// Package connstr parses MongoDB-style connection URIs into a typed,
// validated configuration. It performs no I/O: no DNS lookups, no
// sockets, no handshake. The network layer that consumes the parsed
// node list lives elsewhere.
//
// Supported format:
//
//	mongodb://[user:password@]host[:port][,host[:port]...][/[database[.collection]][?options]]
//
// The sub-parsers (ParseUserinfo, SplitHosts, SplitOptions) are
// exported and usable on their own.
package connstr

import (
	"fmt"
	"strings"

	"github.com/rediwo/redi-connstr/types"
	"github.com/rediwo/redi-connstr/utils"
)

// Scheme is the URI prefix this parser recognizes. Matching is
// case-insensitive.
const Scheme = "mongodb://"

// Parse parses a connection URI, assuming DefaultPort for hosts that
// do not specify a port.
func Parse(uri string) (types.ParsedURI, error) {
	return ParseWithDefaultPort(uri, DefaultPort)
}

// ParseWithDefaultPort parses a connection URI with a caller-supplied
// default port. The string is partitioned on the last '@' (userinfo),
// the first '/' (host list vs. path), the first '?' (path vs.
// options), and the first '.' (database vs. collection); each segment
// is delegated to its sub-parser and the first failure aborts the
// parse unchanged.
//
// Credentials containing a literal '@' or ':' must be
// percent-encoded; the last-'@' partition cannot recover them
// otherwise.
func ParseWithDefaultPort(uri string, defaultPort int) (types.ParsedURI, error) {
	if len(uri) < len(Scheme) || !strings.EqualFold(uri[:len(Scheme)], Scheme) {
		return types.ParsedURI{}, fmt.Errorf("%w: URI must begin with %q", ErrInvalidURI, Scheme)
	}
	rest := uri[len(Scheme):]

	parsed := types.ParsedURI{Options: map[string]types.Value{}}

	userinfo, at, hostAndPath := utils.RPartition(rest, "@")
	if at != "" {
		username, password, err := ParseUserinfo(userinfo)
		if err != nil {
			return types.ParsedURI{}, err
		}
		parsed.Username = username
		parsed.Password = password
	}

	hosts, slash, tail := utils.Partition(hostAndPath, "/")
	nodes, err := SplitHosts(hosts, defaultPort)
	if err != nil {
		return types.ParsedURI{}, err
	}
	parsed.Nodes = nodes

	if slash == "" || tail == "" {
		return parsed, nil
	}

	path, _, query := utils.Partition(tail, "?")
	if path != "" {
		database, dot, collection := utils.Partition(path, ".")
		if database == "" {
			return types.ParsedURI{}, fmt.Errorf("%w: empty database name in path %q", ErrConfiguration, path)
		}
		parsed.Database = database
		if dot != "" {
			parsed.Collection = collection
		}
	}
	if query != "" {
		options, err := SplitOptions(query)
		if err != nil {
			return types.ParsedURI{}, err
		}
		parsed.Options = options
	}

	return parsed, nil
}
