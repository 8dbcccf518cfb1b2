package dto

// ChatRequest is the inbound question payload. The asking user comes from
// the JWT, not the body.
type ChatRequest struct {
	Text string `json:"text" validate:"required"`
}

// ChatResponse pairs the natural language answer with the structured rows it
// was derived from. StructuredData serializes as null, never omitted, when
// the answer carries no rows: the frontend branches on it.
type ChatResponse struct {
	Text           string                   `json:"text"`
	StructuredData []map[string]interface{} `json:"structured_data"`
}

// IngestRequest triggers vectorization of one allow-listed source table
type IngestRequest struct {
	Table string `json:"table" validate:"required"`
}
