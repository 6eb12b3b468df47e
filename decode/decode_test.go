package decode

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	ValidatorIndex   int64            `rated:"validator_index,required"`
	ValidatorPubkey  string           `rated:"validator_pubkey,required"`
	Pool             *string          `rated:"pool"`
	ExitEpoch        *int64           `rated:"exit_epoch"`
	Uptime           *float64         `rated:"uptime"`
	DepositAddresses []string         `rated:"deposit_addresses"`
	OperatorTags     []map[string]any `rated:"operator_tags"`
	Timestamp        *string          `rated:"block_timestamp"`
	internal         string
}

type allOptional struct {
	ValidatorIndex *int64 `rated:"validator_index"`
	SomeMissing    *int64 `rated:"some_missing_optional"`
}

func parse(t *testing.T, body string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestDecode(t *testing.T) {
	raw := parse(t, `{
		"validatorIndex": 100,
		"validatorPubkey": "0xb5bc",
		"pool": null,
		"exitEpoch": 0,
		"uptime": 1.0,
		"depositAddresses": ["0x7413"],
		"operatorTags": [{"tagName": "lst", "tagType": "poolType"}],
		"blockTimestamp": "2023-08-07T12:00:00Z",
		"serverAddedField": true
	}`)

	v, err := Decode[testValidator](raw)
	require.NoError(t, err)

	assert.Equal(t, int64(100), v.ValidatorIndex)
	assert.Equal(t, "0xb5bc", v.ValidatorPubkey)
	assert.Nil(t, v.Pool)
	require.NotNil(t, v.ExitEpoch, "zero is a value, not absence")
	assert.Equal(t, int64(0), *v.ExitEpoch)
	require.NotNil(t, v.Uptime)
	assert.Equal(t, 1.0, *v.Uptime)
	assert.Equal(t, []string{"0x7413"}, v.DepositAddresses)
	require.Len(t, v.OperatorTags, 1)
	assert.Equal(t, "lst", v.OperatorTags[0]["tagName"])
	require.NotNil(t, v.Timestamp)
	assert.Equal(t, "2023-08-07T12:00:00Z", *v.Timestamp)
}

func TestDecode_MissingOptionalFields(t *testing.T) {
	raw := parse(t, `{"validatorIndex": 100, "someMissingOptional": null}`)

	v, err := Decode[allOptional](raw)
	require.NoError(t, err)
	require.NotNil(t, v.ValidatorIndex)
	assert.Equal(t, int64(100), *v.ValidatorIndex)
	assert.Nil(t, v.SomeMissing)

	rec, err := Decode[testValidator](parse(t, `{"validatorIndex": 7, "validatorPubkey": "0x01"}`))
	require.NoError(t, err)
	assert.Nil(t, rec.Pool)
	assert.Nil(t, rec.ExitEpoch)
	assert.Nil(t, rec.DepositAddresses)
}

func TestDecode_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		raw   any
		field string
	}{
		{
			name:  "missing required field",
			raw:   parse(t, `{"validatorIndex": 100}`),
			field: "validator_pubkey",
		},
		{
			name:  "required field is null",
			raw:   parse(t, `{"validatorIndex": null, "validatorPubkey": "0x01"}`),
			field: "validator_index",
		},
		{
			name: "no matching field",
			raw:  parse(t, `{"somethingElse": 1}`),
		},
		{
			name: "not an object",
			raw:  parse(t, `[1, 2, 3]`),
		},
		{
			name: "fractional integer",
			raw:  parse(t, `{"validatorIndex": 1.5, "validatorPubkey": "0x01"}`),
		},
		{
			name: "integer above int64",
			raw:  parse(t, `{"validatorIndex": 18446744073709551615, "validatorPubkey": "0x01"}`),
		},
		{
			name: "exponent above int64",
			raw:  parse(t, `{"validatorIndex": 1, "validatorPubkey": "0x01", "exitEpoch": 1e19}`),
		},
		{
			name: "exponent below int64",
			raw:  parse(t, `{"validatorIndex": -1e19, "validatorPubkey": "0x01"}`),
		},
		{
			name: "number for string field",
			raw:  parse(t, `{"validatorIndex": 1, "validatorPubkey": 123}`),
		},
		{
			name: "wrong type",
			raw:  parse(t, `{"validatorIndex": 1, "validatorPubkey": "0x01", "depositAddresses": "0x7413"}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[testValidator](tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShapeMismatch))

			var sm *ShapeMismatchError
			require.ErrorAs(t, err, &sm)
			assert.Equal(t, "testValidator", sm.Record)
			assert.Equal(t, tt.field, sm.Field)
		})
	}
}

func TestDecode_IntegralDecimal(t *testing.T) {
	v, err := Decode[testValidator](parse(t, `{"validatorIndex": 226.0, "validatorPubkey": "0x01", "exitEpoch": 180675}`))
	require.NoError(t, err)
	assert.Equal(t, int64(226), v.ValidatorIndex)
	assert.Equal(t, int64(180675), *v.ExitEpoch)
}

func TestDecode_IntegerRange(t *testing.T) {
	type sized struct {
		Index  int64   `rated:"index,required"`
		Small  *int8   `rated:"small"`
		Amount *uint64 `rated:"amount"`
	}

	v, err := Decode[sized](parse(t, `{"index": 9223372036854775807, "small": -128, "amount": 18446744073709551615}`))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v.Index)
	assert.Equal(t, int8(-128), *v.Small)
	assert.Equal(t, uint64(math.MaxUint64), *v.Amount)

	for _, body := range []string{
		`{"index": 1, "small": 128}`,
		`{"index": 1, "amount": 18446744073709551616}`,
		`{"index": 1, "amount": 2e19}`,
		`{"index": 1, "amount": -1}`,
		`{"index": 9.3e18}`,
	} {
		_, err := Decode[sized](parse(t, body))
		assert.ErrorIs(t, err, ErrShapeMismatch, body)
	}
}

func TestRecord_PlainGoValues(t *testing.T) {
	v, err := Record[allOptional](map[string]any{"validator_index": 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), *v.ValidatorIndex)
}

func TestSchemaOf(t *testing.T) {
	s, err := SchemaOf[testValidator]()
	require.NoError(t, err)
	assert.Equal(t, "testValidator", s.Record)
	assert.Len(t, s.Fields, 8)

	f, ok := s.Field("validator_index")
	require.True(t, ok)
	assert.True(t, f.Required)
	assert.Equal(t, KindInt, f.Kind)

	f, ok = s.Field("operator_tags")
	require.True(t, ok)
	assert.False(t, f.Required)
	assert.Equal(t, KindBlob, f.Kind)

	f, ok = s.Field("deposit_addresses")
	require.True(t, ok)
	assert.Equal(t, KindList, f.Kind)

	_, ok = s.Field("internal")
	assert.False(t, ok)

	again, err := SchemaOf[testValidator]()
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestSchemaOf_Invalid(t *testing.T) {
	type optionalByValue struct {
		Pool string `rated:"pool"`
	}
	type requiredPointer struct {
		Index *int `rated:"index,required"`
	}
	type duplicate struct {
		A *int `rated:"a"`
		B *int `rated:"a"`
	}

	_, err := SchemaOf[optionalByValue]()
	assert.ErrorIs(t, err, ErrInvalidSchema)
	_, err = SchemaOf[requiredPointer]()
	assert.ErrorIs(t, err, ErrInvalidSchema)
	_, err = SchemaOf[duplicate]()
	assert.ErrorIs(t, err, ErrInvalidSchema)
	_, err = SchemaOf[int]()
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

func TestFields(t *testing.T) {
	pool := "Lido"
	v := testValidator{
		ValidatorIndex: 5,
		Pool:           &pool,
	}

	m, err := Fields(&v)
	require.NoError(t, err)
	assert.Equal(t, int64(5), m["validator_index"])
	assert.Equal(t, "", m["validator_pubkey"])
	assert.Equal(t, "Lido", m["pool"])
	assert.Nil(t, m["exit_epoch"])
	assert.Nil(t, m["deposit_addresses"])
	assert.NotContains(t, m, "internal")
}
