package sqlgen

import (
	"context"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/pkg/logger"
	"warehouse-chat-be/internal/repository/contract"
	"warehouse-chat-be/pkg/chat/prompt"
	"warehouse-chat-be/pkg/chat/response"
	"warehouse-chat-be/pkg/llm"
)

// Result carries the synthesized answer plus the complete, untruncated rows
// the answer was derived from. Rows is nil on any failure path.
type Result struct {
	Text string
	Rows []map[string]interface{}
}

// Synthesizer runs the two-phase text-to-SQL flow: generate a SELECT from the
// question and live schema, execute it read-only, then narrate the results.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	generator   *response.Generator
	schemaRepo  contract.SchemaRepository
	queryRunner contract.QueryRunner
	rowCap      int
	byteCap     int
	logger      logger.ILogger
}

func NewSynthesizer(
	provider llm.LLMProvider,
	generator *response.Generator,
	schemaRepo contract.SchemaRepository,
	queryRunner contract.QueryRunner,
	rowCap, byteCap int,
	log logger.ILogger,
) *Synthesizer {
	return &Synthesizer{
		llmProvider: provider,
		generator:   generator,
		schemaRepo:  schemaRepo,
		queryRunner: queryRunner,
		rowCap:      rowCap,
		byteCap:     byteCap,
		logger:      log,
	}
}

// Answer resolves a question against the given table. Every failure collapses
// into user-facing text; the caller never sees an error.
func (s *Synthesizer) Answer(ctx context.Context, question, table string) *Result {
	columns, err := s.schemaRepo.Columns(ctx, table)
	if err != nil || len(columns) == 0 {
		s.logger.Error("sql_synthesizer", "schema lookup failed", map[string]interface{}{
			"table": table,
			"error": errString(err),
		})
		return &Result{Text: constant.MsgSQLClarification}
	}

	genPrompt := prompt.BuildSQLGenerationPrompt(question, table, columns)
	raw, err := s.llmProvider.Generate(ctx, genPrompt, llm.WithTemperature(0))
	if err != nil {
		s.logger.Error("sql_synthesizer", "sql generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &Result{Text: constant.MsgGenericApology}
	}

	stmt := SanitizeStatement(raw)
	if stmt == "" {
		return &Result{Text: constant.MsgSQLClarification}
	}
	if !IsReadOnlySelect(stmt) {
		s.logger.Warn("sql_synthesizer", "generated statement rejected by guard", map[string]interface{}{
			"statement": stmt,
		})
		return &Result{Text: constant.MsgSQLClarification}
	}

	colNames, rows, err := s.queryRunner.RunSelect(ctx, stmt)
	if err != nil {
		s.logger.Error("sql_synthesizer", "generated statement failed to execute", map[string]interface{}{
			"statement": stmt,
			"error":     err.Error(),
		})
		text := s.generator.Generate(ctx, prompt.BuildErrorExplanationPrompt(question))
		return &Result{Text: text}
	}

	records := ConvertRows(colNames, rows)
	serialized, truncated := SerializeForPrompt(records, colNames, s.rowCap, s.byteCap)
	if truncated {
		s.logger.Info("sql_synthesizer", "query results truncated for prompt", map[string]interface{}{
			"rowCount": len(records),
		})
	}

	text := s.generator.Generate(ctx, prompt.BuildSQLAnswerPrompt(question, stmt, serialized))
	return &Result{Text: text, Rows: records}
}

func errString(err error) string {
	if err == nil {
		return "no columns returned"
	}
	return err.Error()
}
