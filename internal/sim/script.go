// Package sim runs JSONL operation scripts against a ledger.
package sim

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"stakeSwap/internal/model"
	"stakeSwap/internal/pool"
)

// Step is one scripted pool operation.
type Step struct {
	Op     string `json:"op"`
	Amount int64  `json:"amount"`
}

// ParseScript reads a JSONL operation script. Blank lines are skipped;
// a malformed line, an unknown op, or a negative amount fails the
// whole script.
func ParseScript(r io.Reader) ([]Step, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var steps []Step
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var step Step
		if err := json.Unmarshal(line, &step); err != nil {
			return nil, fmt.Errorf("line %d: parse step: %w", lineNo, err)
		}
		switch step.Op {
		case model.OpAddLiquidity, model.OpRemoveLiquidity, model.OpSwap:
		default:
			return nil, fmt.Errorf("line %d: unknown op %q", lineNo, step.Op)
		}
		if step.Amount < 0 {
			return nil, fmt.Errorf("line %d: amount %d: %w", lineNo, step.Amount, pool.ErrInvalidAmount)
		}

		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan script: %w", err)
	}

	return steps, nil
}
