package connstr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rediwo/redi-connstr/types"
	"github.com/rediwo/redi-connstr/utils"
)

// optionRule coerces and validates the raw value of one option.
type optionRule func(key, value string) (types.Value, error)

// optionRules maps each recognized option name (lower-cased) to its
// coercion rule. The table is fixed at build time; nothing registers
// into it at runtime.
var optionRules = map[string]optionRule{
	"connecttimeoutms": millisecondRule,
	"sockettimeoutms":  millisecondRule,
	"slaveok":          booleanRule,
	"safe":             booleanRule,
	"fsync":            booleanRule,
	"journal":          booleanRule,
	"j":                booleanRule,
	"ssl":              booleanRule,
	"w":                intOrStringRule,
	"wtimeoutms":       integerRule,
	"replicaset":       stringRule,
}

// unsupportedOptions are names this layer recognizes but refuses:
// pool sizing belongs to the client, not the URI.
var unsupportedOptions = map[string]struct{}{
	"maxpoolsize":        {},
	"minpoolsize":        {},
	"waitqueuetimeoutms": {},
	"waitqueuemultiple":  {},
}

// SplitOptions parses the query segment of a connection URI into a
// mapping from lower-cased option name to typed value. Pairs are
// separated by '&' or ';' (mixed use allowed) and split on the first
// '='.
//
// A pair with no '=' or an empty key, an unknown or duplicate key, or
// a value that fails its type rule fails with ErrConfiguration.
// Recognized-but-disallowed keys fail with ErrUnsupportedOption.
func SplitOptions(opts string) (map[string]types.Value, error) {
	options := make(map[string]types.Value)
	for _, pair := range strings.Split(strings.ReplaceAll(opts, ";", "&"), "&") {
		key, sep, value := utils.Partition(pair, "=")
		if sep == "" || key == "" {
			return nil, fmt.Errorf("%w: malformed option %q, expected key=value", ErrConfiguration, pair)
		}
		key = strings.ToLower(key)

		if _, disallowed := unsupportedOptions[key]; disallowed {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedOption, key)
		}
		rule, known := optionRules[key]
		if !known {
			return nil, fmt.Errorf("%w: unknown option %q", ErrConfiguration, key)
		}
		if _, dup := options[key]; dup {
			return nil, fmt.Errorf("%w: duplicate option %q", ErrConfiguration, key)
		}

		parsed, err := rule(key, value)
		if err != nil {
			return nil, err
		}
		options[key] = parsed
	}
	return options, nil
}

// millisecondRule accepts a strictly positive, finite decimal number
// of milliseconds and stores it as seconds.
func millisecondRule(key, value string) (types.Value, error) {
	ms, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) || ms <= 0 {
		return types.Value{}, fmt.Errorf("%w: %s must be a positive number of milliseconds, got %q", ErrConfiguration, key, value)
	}
	return types.SecondsValue(ms / 1000.0), nil
}

func booleanRule(key, value string) (types.Value, error) {
	switch strings.ToLower(value) {
	case "true":
		return types.BoolValue(true), nil
	case "false":
		return types.BoolValue(false), nil
	}
	return types.Value{}, fmt.Errorf("%w: %s must be 'true' or 'false', got %q", ErrConfiguration, key, value)
}

func integerRule(key, value string) (types.Value, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return types.Value{}, fmt.Errorf("%w: %s must be an integer, got %q", ErrConfiguration, key, value)
	}
	return types.IntValue(n), nil
}

// intOrStringRule keeps integer values typed and passes anything else
// through untouched, covering values like "majority" and tag set
// names.
func intOrStringRule(key, value string) (types.Value, error) {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return types.IntValue(n), nil
	}
	return types.StringValue(value), nil
}

func stringRule(key, value string) (types.Value, error) {
	return types.StringValue(value), nil
}
