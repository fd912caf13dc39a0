package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Victor-armando18/service-fees/internal/interfaces"
	"github.com/diegoholiveira/jsonlogic/v3"
)

type JsonLogicExecutor struct {
	customOps map[string]func(args ...interface{}) interface{}
}

func NewJsonLogicExecutor() *JsonLogicExecutor {
	j := &JsonLogicExecutor{
		customOps: make(map[string]func(args ...interface{}) interface{}),
	}
	j.RegisterCustomOperator("between", CustomBetween)
	return j
}

func (j *JsonLogicExecutor) RegisterCustomOperator(name string, logic func(args ...interface{}) interface{}) {
	j.customOps[name] = logic
}

// Execute evaluates ruleData against contextVars. Registered operators may appear at any
// depth: they are evaluated first, against contextVars, and replaced by their results before
// the remaining rule is handed to jsonlogic.
func (j *JsonLogicExecutor) Execute(ctx context.Context, ruleData map[string]interface{}, contextVars map[string]interface{}) (interface{}, error) {
	// 1. Custom operators are evaluated by hand.
	expanded, err := j.expandCustomOps(ctx, ruleData, contextVars)
	if err != nil {
		return nil, err
	}
	rule, ok := expanded.(map[string]interface{})
	if !ok {
		return finalizeValue(expanded), nil
	}
	ruleData = rule

	// 2. Standard JsonLogic.
	ruleJSON, err := json.Marshal(ruleData)
	if err != nil {
		return nil, fmt.Errorf("%w: encode rule: %v", interfaces.ErrRuleExecutionFailed, err)
	}
	dataJSON, err := json.Marshal(contextVars)
	if err != nil {
		return nil, fmt.Errorf("%w: encode data: %v", interfaces.ErrRuleExecutionFailed, err)
	}

	var resultBuffer bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &resultBuffer); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrRuleExecutionFailed, err)
	}

	resultStr := strings.TrimSpace(resultBuffer.String())
	if resultStr == "" || resultStr == "null" {
		return nil, nil
	}

	var res interface{}
	decoder := json.NewDecoder(strings.NewReader(resultStr))
	decoder.UseNumber()
	if err := decoder.Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: decode result: %v", interfaces.ErrRuleExecutionFailed, err)
	}
	return finalizeValue(res), nil
}

func (j *JsonLogicExecutor) expandCustomOps(ctx context.Context, node interface{}, data map[string]interface{}) (interface{}, error) {
	switch n := node.(type) {
	case map[string]interface{}:
		if len(n) == 1 {
			for opName, args := range n {
				if fn, ok := j.customOps[opName]; ok {
					return j.handleManualEval(ctx, args, data, fn)
				}
			}
		}
		out := make(map[string]interface{}, len(n))
		for k, v := range n {
			e, err := j.expandCustomOps(ctx, v, data)
			if err != nil {
				return nil, err
			}
			out[k] = e
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(n))
		for i, v := range n {
			e, err := j.expandCustomOps(ctx, v, data)
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
		return out, nil
	default:
		return node, nil
	}
}

func (j *JsonLogicExecutor) handleManualEval(ctx context.Context, args interface{}, data map[string]interface{}, fn func(args ...interface{}) interface{}) (interface{}, error) {
	list, ok := args.([]interface{})
	if !ok {
		list = []interface{}{args}
	}
	params := make([]interface{}, 0, len(list))
	for _, item := range list {
		if v, isVar := resolveVar(item, data); isVar {
			params = append(params, v)
			continue
		}
		if subRule, isRule := item.(map[string]interface{}); isRule {
			res, err := j.Execute(ctx, subRule, data)
			if err != nil {
				return nil, err
			}
			params = append(params, res)
			continue
		}
		params = append(params, item)
	}
	return fn(params...), nil
}

// resolveVar reads {"var": "a.b.c"} paths out of nested maps.
func resolveVar(arg interface{}, data map[string]interface{}) (interface{}, bool) {
	m, ok := arg.(map[string]interface{})
	if !ok {
		return nil, false
	}
	path, ok := m["var"].(string)
	if !ok {
		return nil, false
	}
	var current interface{} = data
	for _, part := range strings.Split(path, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil, true
		}
		current = node[part]
	}
	return finalizeValue(current), true
}

func finalizeValue(val interface{}) interface{} {
	if n, ok := val.(json.Number); ok {
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return val
}

// CustomBetween reports whether args[0] lies within [args[1], args[2]].
func CustomBetween(args ...interface{}) interface{} {
	if len(args) < 3 {
		return false
	}
	v, ok1 := anyToFloat(args[0])
	lo, ok2 := anyToFloat(args[1])
	hi, ok3 := anyToFloat(args[2])
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return v >= lo && v <= hi
}

func anyToFloat(i interface{}) (float64, bool) {
	switch v := i.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
