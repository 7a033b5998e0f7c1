package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		kind     ValueKind
		rendered string
	}{
		{"bool true", BoolValue(true), KindBool, "true"},
		{"bool false", BoolValue(false), KindBool, "false"},
		{"int", IntValue(5), KindInt, "5"},
		{"negative int", IntValue(-3), KindInt, "-3"},
		{"seconds", SecondsValue(0.3), KindSeconds, "0.3"},
		{"string", StringValue("majority"), KindString, "majority"},
		{"zero value", Value{}, KindString, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.kind, test.value.Kind())
			assert.Equal(t, test.rendered, test.value.String())
		})
	}
}

func TestValueAccessors(t *testing.T) {
	assert.True(t, BoolValue(true).Bool())
	assert.Equal(t, int64(5), IntValue(5).Int())
	assert.InDelta(t, 0.3, SecondsValue(0.3).Seconds(), 1e-12)
	assert.Equal(t, "majority", StringValue("majority").String())
}

func TestValueInterface(t *testing.T) {
	assert.Equal(t, true, BoolValue(true).Interface())
	assert.Equal(t, int64(5), IntValue(5).Interface())
	assert.Equal(t, 0.3, SecondsValue(0.3).Interface())
	assert.Equal(t, "majority", StringValue("majority").Interface())
}

func TestValueMarshalJSON(t *testing.T) {
	options := map[string]Value{
		"slaveok":         BoolValue(true),
		"w":               IntValue(5),
		"sockettimeoutms": SecondsValue(0.3),
		"replicaset":      StringValue("rs0"),
	}

	out, err := json.Marshal(options)
	require.NoError(t, err)
	assert.JSONEq(t, `{"slaveok":true,"w":5,"sockettimeoutms":0.3,"replicaset":"rs0"}`, string(out))
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "seconds", KindSeconds.String())
	assert.Equal(t, "string", KindString.String())
}
