package domain

// ConversionRequest asks the engine to convert Value from one unit token to another.
// Scope restricts both lookups to a single category; empty or CategoryAll searches everything.
type ConversionRequest struct {
	Value float64
	From  string
	To    string
	Scope Category
}

// ConversionResult is what the engine hands back to presentation code.
type ConversionResult struct {
	Entry    HistoryEntry
	FromUnit Unit
	ToUnit   Unit
	// Warnings are user-visible notices that did not stop the conversion,
	// such as precision loss or a failed history write.
	Warnings []string
}
