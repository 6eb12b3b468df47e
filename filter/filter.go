// Package filter selects decoded records with expr expressions over their
// snake_case fields, e.g.
//
//	validator_effectiveness > 95 and uptime >= 0.99
//	pool == "Lido" and has("exit_epoch")
package filter

import (
	"fmt"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rated-network/rated-go/decode"
)

// Filter is a compiled record filter
type Filter struct {
	expression string
	program    *vm.Program
}

var programs = newProgramCache(128)

// Compile compiles expression into a Filter. Compiled programs are cached by
// expression.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if program, ok := programs.Get(expression); ok {
		return &Filter{expression: expression, program: program}, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers(nil)),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}
	programs.Put(expression, program)

	return &Filter{expression: expression, program: program}, nil
}

// Match reports whether record satisfies the filter. record is either a
// decoded record struct or a snake_case field mapping.
func (f *Filter) Match(record any) (bool, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		var err error
		fields, err = decode.Fields(record)
		if err != nil {
			return false, &EvaluationError{
				Expression: f.expression,
				Reason:     "record has no declared fields",
				Err:        err,
			}
		}
	}

	env := helpers(fields)
	maps.Copy(env, fields)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     fmt.Sprintf("expression returned %T, not bool", result),
		}
	}
	return matched, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}
