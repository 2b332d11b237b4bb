package remote

const (
	// RemoteTemperature keeps the JSON output deterministic
	RemoteTemperature = 0.1

	// RemoteMaxTokens bounds the reply; a task record is small
	RemoteMaxTokens = 512

	// minResponseLen is the shortest reply worth parsing. Anything shorter
	// cannot hold a name and is treated as empty.
	minResponseLen = 5

	// Log prefixes
	LogPrefixExtract = "remote.ExtractTask"

	// Error messages (for logging)
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgEmptyResponse   = "empty or too short response"
	ErrMsgJSONParseFailed = "JSON parse failed, scraping plain text"
	ErrMsgValidation      = "extracted record failed validation"
)
