package connstr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rediwo/redi-connstr/types"
	"github.com/rediwo/redi-connstr/utils"
)

// DefaultPort is the port assumed for hosts that do not specify one.
const DefaultPort = 27017

// SplitHosts tokenizes a comma-separated host list into nodes,
// preserving input order and permitting duplicate hosts. Each token is
// host, host:port, [ipv6], or [ipv6]:port. Tokens without a port get
// defaultPort; a defaultPort <= 0 means DefaultPort.
//
// Empty tokens (leading, trailing, or doubled commas) fail with
// ErrConfiguration, as do unbracketed IPv6 literals: a bare token with
// more than one ':' is ambiguous with the port separator.
func SplitHosts(hosts string, defaultPort int) ([]types.Node, error) {
	if defaultPort <= 0 {
		defaultPort = DefaultPort
	}

	entities := strings.Split(hosts, ",")
	nodes := make([]types.Node, 0, len(entities))
	for _, entity := range entities {
		if entity == "" {
			return nil, fmt.Errorf("%w: empty host (check for an extra comma in the host list)", ErrConfiguration)
		}
		node, err := parseHost(entity, defaultPort)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// parseHost parses a single host-list token into a node.
func parseHost(entity string, defaultPort int) (types.Node, error) {
	host := entity
	portStr := ""
	hasPort := false

	switch {
	case strings.HasPrefix(entity, "["):
		end := strings.Index(entity, "]")
		if end < 0 {
			return types.Node{}, fmt.Errorf("%w: unterminated IPv6 literal %q", ErrConfiguration, entity)
		}
		host = entity[1:end]
		rest := entity[end+1:]
		if rest != "" {
			if !strings.HasPrefix(rest, ":") {
				return types.Node{}, fmt.Errorf("%w: unexpected %q after IPv6 literal in %q", ErrConfiguration, rest, entity)
			}
			portStr = rest[1:]
			hasPort = true
		}

	case strings.Count(entity, ":") > 1:
		return types.Node{}, fmt.Errorf("%w: %q is ambiguous, enclose IPv6 literals in '[' and ']'", ErrConfiguration, entity)

	default:
		if before, sep, after := utils.RPartition(entity, ":"); sep != "" {
			host = before
			portStr = after
			hasPort = true
		}
	}

	if host == "" {
		return types.Node{}, fmt.Errorf("%w: empty host in %q", ErrConfiguration, entity)
	}

	// A ':' separator without digits after it is malformed, not a
	// request for the default port.
	port := defaultPort
	if hasPort {
		p, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil || p == 0 {
			return types.Node{}, fmt.Errorf("%w: invalid port %q in %q", ErrConfiguration, portStr, entity)
		}
		port = int(p)
	}

	return types.Node{Host: host, Port: port}, nil
}
