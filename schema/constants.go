package schema

// Custom string types for type safety.
type (
	// QuestionType partitions the metric registry. The core treats it as
	// an opaque map key; the built-in analyzers use the constants below.
	QuestionType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the results store.
	DatabaseBackend string
)

// Question types with built-in analyzers.
const (
	EssayQuestion                QuestionType = "essay_question"
	MultipleChoiceQuestion       QuestionType = "multiple_choice_question"
	ShortAnswerQuestion          QuestionType = "short_answer_question"
	FillInMultipleBlanksQuestion QuestionType = "fill_in_multiple_blanks_question"
	NumericalQuestion            QuestionType = "numerical_question"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// BuiltinQuestionTypes returns the question types with built-in analyzers,
// in a stable display order.
var BuiltinQuestionTypes = []QuestionType{
	EssayQuestion,
	MultipleChoiceQuestion,
	ShortAnswerQuestion,
	FillInMultipleBlanksQuestion,
	NumericalQuestion,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
