package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"validatorIndex", "validator_index"},
		{"id", "id"},
		{"totalType0Transactions", "total_type0_transactions"},
		{"sumMissedSyncCommitteeRewards", "sum_missed_sync_committee_rewards"},
		{"ValidatorIndex", "validator_index"},
		{"apr_type", "apr_type"},
		{"already_snakeCase", "already_snake_case"},
		{"dvtNetwork", "dvt_network"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Snake(tt.in))
		})
	}
}

func TestDecamelize(t *testing.T) {
	tags := []any{map[string]any{"tagName": "lst"}}
	in := map[string]any{
		"validatorIndex": 100,
		"pool":           nil,
		"operatorTags":   tags,
		"nestedObject":   map[string]any{"innerKey": 1},
	}

	out := Decamelize(in)

	assert.Len(t, out, len(in))
	for k, v := range in {
		assert.Equal(t, v, out[Snake(k)], "value of %s", k)
	}
	for k := range out {
		assert.Equal(t, strings.ToLower(k), k, "key %s keeps uppercase letters", k)
	}

	// nested structures keep their wire keys
	nested := out["nested_object"].(map[string]any)
	assert.Contains(t, nested, "innerKey")
	assert.Equal(t, "lst", out["operator_tags"].([]any)[0].(map[string]any)["tagName"])

	// input is not modified
	assert.Contains(t, in, "validatorIndex")
}
