package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		want    int
		wantErr bool
	}{
		{name: "float", args: []any{float64(3)}, want: 3},
		{name: "int", args: []any{2}, want: 2},
		{name: "json number", args: []any{json.Number("4")}, want: 4},
		{name: "string", args: []any{" 1 "}, want: 1},
		{name: "object", args: []any{map[string]any{"vote": float64(0)}}, want: 0},
		{name: "fraction", args: []any{1.5}, wantErr: true},
		{name: "missing", args: nil, wantErr: true},
		{name: "wrong key", args: []any{map[string]any{"bid": float64(1)}}, wantErr: true},
		{name: "bool", args: []any{true}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := intArg(tt.args, "vote")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringArg(t *testing.T) {
	got, err := stringArg([]any{"AH"}, "card")
	assert.NoError(t, err)
	assert.Equal(t, "AH", got)

	got, err = stringArg([]any{map[string]any{"card": "KD"}}, "card")
	assert.NoError(t, err)
	assert.Equal(t, "KD", got)

	_, err = stringArg([]any{"  "}, "card")
	assert.Error(t, err)
	_, err = stringArg([]any{12.0}, "card")
	assert.Error(t, err)
	_, err = stringArg(nil, "card")
	assert.Error(t, err)
}
