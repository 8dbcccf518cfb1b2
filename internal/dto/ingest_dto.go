package dto

// PublishEmbedDocumentMessage is the payload of one vectorization event
type PublishEmbedDocumentMessage struct {
	Document string                 `json:"document"`
	Metadata map[string]interface{} `json:"metadata"`
}
