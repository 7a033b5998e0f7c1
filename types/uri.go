package types

import (
	"fmt"
	"sort"
	"strings"
)

// Node is a single host:port endpoint from a connection URI.
type Node struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// String formats the node as host:port, bracketing IPv6 literals.
func (n Node) String() string {
	if strings.Contains(n.Host, ":") {
		return fmt.Sprintf("[%s]:%d", n.Host, n.Port)
	}
	return fmt.Sprintf("%s:%d", n.Host, n.Port)
}

// ParsedURI is the structured result of parsing a connection URI.
// It holds no reference back to the original string and has no
// mutation methods; the parser constructs it once and hands ownership
// to the caller.
//
// Username and Password are either both set or both empty: userinfo
// validation rejects empty halves, so an empty string reliably means
// the URI carried no credentials. The same convention applies to
// Database and Collection.
type ParsedURI struct {
	Nodes      []Node           `json:"nodes"`
	Username   string           `json:"username,omitempty"`
	Password   string           `json:"password,omitempty"`
	Database   string           `json:"database,omitempty"`
	Collection string           `json:"collection,omitempty"`
	Options    map[string]Value `json:"options"`
}

// HasCredentials reports whether the URI carried a userinfo segment.
func (p ParsedURI) HasCredentials() bool {
	return p.Username != ""
}

// Namespace returns "database.collection", or just the database name
// when no collection was given, or "" when neither was.
func (p ParsedURI) Namespace() string {
	if p.Collection == "" {
		return p.Database
	}
	return p.Database + "." + p.Collection
}

// String renders a diagnostic URI for the parsed result. The password
// is redacted and option values are shown in their stored form (so
// duration options appear in seconds, not the milliseconds they were
// written in).
func (p ParsedURI) String() string {
	var b strings.Builder
	b.WriteString("mongodb://")

	if p.HasCredentials() {
		b.WriteString(p.Username)
		b.WriteString(":****@")
	}

	for i, node := range p.Nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(node.String())
	}

	if p.Database != "" {
		b.WriteByte('/')
		b.WriteString(p.Namespace())
	}

	if len(p.Options) > 0 {
		if p.Database == "" {
			b.WriteByte('/')
		}
		b.WriteByte('?')

		keys := make([]string, 0, len(p.Options))
		for key := range p.Options {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for i, key := range keys {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(p.Options[key].String())
		}
	}

	return b.String()
}
