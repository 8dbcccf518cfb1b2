package prompt

import (
	"fmt"
	"strings"

	"warehouse-chat-be/internal/constant"
	"warehouse-chat-be/internal/repository/contract"
)

// BuildSQLGenerationPrompt asks the model for a single read-only SELECT over
// the given table. The column list pins the model to the real schema so it
// does not invent column names.
func BuildSQLGenerationPrompt(question, table string, columns []contract.ColumnInfo) string {
	var sb strings.Builder
	sb.WriteString("You are a PostgreSQL expert. Generate exactly one SQL SELECT statement that answers the user's question.\n\n")
	sb.WriteString(fmt.Sprintf("The only table you may query is %q. Its columns are:\n", table))
	for _, col := range columns {
		nullable := "NOT NULL"
		if col.Nullable {
			nullable = "NULL"
		}
		sb.WriteString(fmt.Sprintf("- %s (%s, %s)\n", col.Name, col.DataType, nullable))
	}
	sb.WriteString("\nRules:\n")
	sb.WriteString("- Output only the SQL statement, with no explanation and no markdown fences.\n")
	sb.WriteString("- The statement must be a single SELECT. Never write INSERT, UPDATE, DELETE, DROP or any other statement.\n")
	sb.WriteString("- Do not reference any table other than the one listed above.\n\n")
	sb.WriteString(fmt.Sprintf("Question: %s\nSQL:", question))
	return sb.String()
}

// BuildSQLAnswerPrompt turns executed query results into a natural language
// answer. serialized is the capped textual rendering of the result rows.
func BuildSQLAnswerPrompt(question, stmt, serialized string) string {
	var sb strings.Builder
	sb.WriteString("Answer the user's question in Spanish using only the query results below. Be concise and concrete.\n\n")
	sb.WriteString(fmt.Sprintf("Question: %s\n\n", question))
	sb.WriteString(fmt.Sprintf("SQL executed:\n%s\n\n", stmt))
	sb.WriteString(fmt.Sprintf("Results:\n%s\n", serialized))
	return sb.String()
}

// BuildErrorExplanationPrompt produces a user-facing apology when a generated
// statement failed to execute. The failed SQL and the driver error are
// intentionally left out: they leak schema details and confuse users.
func BuildErrorExplanationPrompt(question string) string {
	var sb strings.Builder
	sb.WriteString("The system could not retrieve data for the user's question. ")
	sb.WriteString("Write a short, polite reply in Spanish explaining that the information could not be obtained right now ")
	sb.WriteString("and inviting the user to rephrase the question. Do not mention SQL, databases or technical errors.\n\n")
	sb.WriteString(fmt.Sprintf("Question: %s", question))
	return sb.String()
}

// BuildRAGPrompt grounds the answer on retrieved passages. tableScope names
// the source table the retrieval was filtered to, or "" for open retrieval.
func BuildRAGPrompt(question, context, tableScope string) string {
	var sb strings.Builder
	sb.WriteString("You are a warehouse operations assistant. Answer the user's question in Spanish using ONLY the context passages below. ")
	sb.WriteString("If the context does not contain the answer, say so plainly instead of guessing.\n\n")
	if tableScope != "" {
		sb.WriteString(fmt.Sprintf("All passages come from the %q table.\n", tableScope))
	}
	if tableScope == constant.TableDataCardReport {
		sb.WriteString("Note: day1_value through day7_value are the daily values Monday through Sunday of the report week.\n")
	}
	sb.WriteString("\nContext:\n")
	sb.WriteString(context)
	sb.WriteString(fmt.Sprintf("\n\nQuestion: %s\nAnswer:", question))
	return sb.String()
}
