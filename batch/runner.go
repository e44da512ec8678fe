package batch

import (
	"context"

	"github.com/IGLOU-EU/go-wildcard/v2"
	"github.com/erpc/adjcat/adjacent"
	"github.com/erpc/adjcat/common"
	"github.com/erpc/adjcat/telemetry"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	ResultPassed = "passed"
	ResultFailed = "failed"
)

type Options struct {
	// Only keeps the cases whose id matches this wildcard pattern ("*" and "?").
	Only string
}

type CaseResult struct {
	Id       string            `json:"id"`
	Mode     common.CaseMode   `json:"mode"`
	A        string            `json:"a"`
	B        string            `json:"b"`
	Joined   *string           `json:"joined,omitempty"`
	Start    int               `json:"start"`
	End      int               `json:"end"`
	Error    *common.BaseError `json:"error,omitempty"`
	Passed   bool              `json:"passed"`
	Mismatch string            `json:"mismatch,omitempty"`
}

type Report struct {
	Cases   []*CaseResult `json:"cases"`
	Passed  int           `json:"passed"`
	Failed  int           `json:"failed"`
	Skipped int           `json:"skipped"`
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// Run evaluates every case of cfg. cfg must have gone through SetDefaults and
// Validate. A cancelled ctx stops the run between cases and returns what was
// evaluated so far along with the context error.
func Run(ctx context.Context, logger *zerolog.Logger, fs afero.Fs, cfg *common.Config, opts *Options) (*Report, error) {
	lg := logger.With().Str("component", "batch").Logger()
	if opts == nil {
		opts = &Options{}
	}

	buffers, err := LoadBuffers(&lg, fs, cfg.Buffers, cfg.MaxBufferBytes())
	if err != nil {
		return nil, err
	}

	report := &Report{Cases: make([]*CaseResult, 0, len(cfg.Cases))}
	for _, cs := range cfg.Cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if opts.Only != "" && !wildcard.Match(opts.Only, cs.Id) {
			report.Skipped++
			continue
		}

		res := evaluate(cfg, buffers, cs)
		report.Cases = append(report.Cases, res)
		if res.Passed {
			report.Passed++
			telemetry.CounterHandle(telemetry.MetricCaseTotal, ResultPassed).Inc()
		} else {
			report.Failed++
			telemetry.CounterHandle(telemetry.MetricCaseTotal, ResultFailed).Inc()
			lg.Warn().Object("case", cs).Str("mismatch", res.Mismatch).Msg("case failed")
		}
		lg.Debug().Object("case", cs).Bool("passed", res.Passed).Msg("case evaluated")
	}

	lg.Info().
		Int("passed", report.Passed).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("batch finished")

	return report, nil
}

func evaluate(cfg *common.Config, buffers map[string]*adjacent.Buffer, cs *common.CaseConfig) *CaseResult {
	res := &CaseResult{Id: cs.Id, Mode: cs.Mode, A: cs.A, B: cs.B}

	v, err := concatCase(cfg, buffers, cs)
	if err == nil {
		joined := v.String()
		res.Joined = &joined
		res.Start, res.End = v.Start(), v.End()
		telemetry.RecordConcat(string(cs.Mode), telemetry.OutcomeJoined, v.Len())
	} else {
		res.Error = toBaseError(err)
		telemetry.RecordConcat(string(cs.Mode), outcomeOf(err), 0)
	}

	switch {
	case cs.ExpectError != "":
		res.Passed = common.HasErrorCode(err, cs.ExpectError)
		if !res.Passed {
			res.Mismatch = "expected error " + cs.ExpectError
		}
	case cs.Expect != nil:
		res.Passed = err == nil && *res.Joined == *cs.Expect
		if !res.Passed {
			res.Mismatch = "expected joined text " + *cs.Expect
		}
	default:
		res.Passed = err == nil || common.HasErrorCode(err, common.ErrCodeNotAdjacent)
		if !res.Passed {
			res.Mismatch = "operands could not be resolved"
		}
	}

	return res
}

func concatCase(cfg *common.Config, buffers map[string]*adjacent.Buffer, cs *common.CaseConfig) (adjacent.View, error) {
	a, err := resolve(cfg, buffers, cs.A)
	if err != nil {
		return adjacent.View{}, err
	}
	b, err := resolve(cfg, buffers, cs.B)
	if err != nil {
		return adjacent.View{}, err
	}

	if cs.Mode == common.CaseModeUnordered {
		return adjacent.ConcatUnordered(a, b)
	}
	return adjacent.Concat(a, b)
}

func resolve(cfg *common.Config, buffers map[string]*adjacent.Buffer, raw string) (adjacent.View, error) {
	op, err := common.ParseOperand(raw)
	if err != nil {
		return adjacent.View{}, common.NewErrInvalidConfig("invalid operand", err)
	}
	bc := cfg.GetBufferConfig(op.BufferId)
	if bc == nil {
		return adjacent.View{}, common.NewErrUnknownBuffer(op.BufferId)
	}
	buf, ok := buffers[bc.Id]
	if !ok {
		return adjacent.View{}, common.NewErrUnknownBuffer(bc.Id)
	}
	start, end := op.Resolve(buf.Len())
	return buf.CheckedSlice(start, end)
}

func outcomeOf(err error) string {
	if na, ok := err.(*common.ErrNotAdjacent); ok {
		return na.Reason()
	}
	if se, ok := err.(common.StandardError); ok {
		return se.Base().Code
	}
	return "error"
}

func toBaseError(err error) *common.BaseError {
	if se, ok := err.(common.StandardError); ok {
		return se.Base()
	}
	return &common.BaseError{Code: "ErrUnexpected", Message: err.Error()}
}
