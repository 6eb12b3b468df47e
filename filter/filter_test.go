package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validator struct {
	ValidatorIndex int64    `rated:"validator_index,required"`
	Pool           *string  `rated:"pool"`
	NodeOperators  []string `rated:"node_operators"`
	Effectiveness  *float64 `rated:"validator_effectiveness"`
	Earnings       *int64   `rated:"earnings"`
	ExitEpoch      *int64   `rated:"exit_epoch"`
}

func ptr[T any](v T) *T { return &v }

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "field comparison",
			expression: `validator_effectiveness > 95`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `contains(pool, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "non boolean",
			expression: `1 + 2`,
			wantErr:    true,
		},
		{
			name:       "helpers",
			expression: `has("pool") and startsWith(pool, "li") and includes("node_operators", "kiln")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestFilter_Match(t *testing.T) {
	record := validator{
		ValidatorIndex: 560000,
		Pool:           ptr("Lido"),
		NodeOperators:  []string{"Kiln", "Figment"},
		Effectiveness:  ptr(96.5),
		Earnings:       ptr(int64(2_500_000_000)),
	}

	tests := []struct {
		expression string
		want       bool
	}{
		{`validator_index == 560000`, true},
		{`validator_effectiveness > 95`, true},
		{`validator_effectiveness > 97`, false},
		{`pool == "Lido"`, true},
		{`contains(pool, "lid")`, true},
		{`upper(pool) == "LIDO"`, true},
		{`has("exit_epoch")`, false},
		{`exit_epoch == nil`, true},
		{`has("pool") and not has("exit_epoch")`, true},
		{`includes("node_operators", "figment")`, true},
		{`includes("node_operators", "lido")`, false},
		{`eth(earnings) == 2.5`, true},
		{`eth(earnings) > 3`, false},
		{`unknown_field == nil`, true},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			got, err := f.Match(record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			got, err = f.Match(&record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "pointer records match like values")
		})
	}
}

func TestFilter_MatchRawFields(t *testing.T) {
	f, err := Compile(`includes("relays", "flashbots") and consensus_slot > 100`)
	require.NoError(t, err)

	got, err := f.Match(map[string]any{
		"relays":         []any{"Flashbots", "bloxroute"},
		"consensus_slot": int64(7000000),
	})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFilter_MatchErrors(t *testing.T) {
	f, err := Compile(`validator_effectiveness > 95`)
	require.NoError(t, err)

	// absent fields are nil and cannot be ordered
	_, err = f.Match(validator{ValidatorIndex: 1})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, `validator_effectiveness > 95`, evalErr.Expression)

	_, err = f.Match(42)
	require.ErrorAs(t, err, &evalErr)
	assert.Contains(t, evalErr.Reason, "no declared fields")
}

func TestCompile_Cached(t *testing.T) {
	const expression = `pool == "cached"`

	first, err := Compile(expression)
	require.NoError(t, err)
	second, err := Compile(expression)
	require.NoError(t, err)

	assert.Same(t, first.program, second.program)
}

func TestProgramCache_Evicts(t *testing.T) {
	c := newProgramCache(2)
	for _, expression := range []string{"a", "b"} {
		f, err := Compile(expression + ` == nil`)
		require.NoError(t, err)
		c.Put(expression, f.program)
	}

	_, ok := c.Get("a")
	require.True(t, ok)

	f, err := Compile(`c == nil`)
	require.NoError(t, err)
	c.Put("c", f.program)

	assert.Equal(t, 2, c.Len())
	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestRegistry(t *testing.T) {
	r, err := NewRegistry(map[string]string{
		"top":  `validator_effectiveness > 95`,
		"lido": `pool == "Lido"`,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"lido", "top"}, r.Names())

	f, err := r.Resolve("@top")
	require.NoError(t, err)
	assert.Equal(t, `validator_effectiveness > 95`, f.String())

	f, err = r.Resolve(`pool == "Kiln"`)
	require.NoError(t, err)
	assert.Equal(t, `pool == "Kiln"`, f.String())

	_, err = r.Resolve("@missing")
	var unknown *UnknownFilterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Name)

	_, err = NewRegistry(map[string]string{"broken": `pool ==`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
