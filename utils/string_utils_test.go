package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		input  string
		sep    string
		before string
		found  string
		after  string
	}{
		{"foo:bar", ":", "foo", ":", "bar"},
		{"foobar", ":", "foobar", "", ""},
		{"fo:o:bar", ":", "fo", ":", "o:bar"},
		{":bar", ":", "", ":", "bar"},
		{"foo:", ":", "foo", ":", ""},
		{":", ":", "", ":", ""},
		{"", ":", "", "", ""},
		{"a=b=c", "=", "a", "=", "b=c"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			before, found, after := Partition(test.input, test.sep)
			assert.Equal(t, test.before, before)
			assert.Equal(t, test.found, found)
			assert.Equal(t, test.after, after)
		})
	}
}

func TestRPartition(t *testing.T) {
	tests := []struct {
		input  string
		sep    string
		before string
		found  string
		after  string
	}{
		{"fo:o::bar", ":", "fo:o:", ":", "bar"},
		{"foobar", ":", "", "", "foobar"},
		{"foo:bar", ":", "foo", ":", "bar"},
		{"foo:", ":", "foo", ":", ""},
		{":bar", ":", "", ":", "bar"},
		{"", ":", "", "", ""},
		{"a@b@c", "@", "a@b", "@", "c"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			before, found, after := RPartition(test.input, test.sep)
			assert.Equal(t, test.before, before)
			assert.Equal(t, test.found, found)
			assert.Equal(t, test.after, after)
		})
	}
}
