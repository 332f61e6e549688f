package dto

type GenerateRequest struct {
	Niche    string `json:"niche" validate:"required"`
	Audience string `json:"audience"`
	Title    string `json:"title"`
	Outline  string `json:"outline"`
}

type GenerationUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type GenerateResponse struct {
	Success  bool            `json:"success"`
	Content  string          `json:"content"`
	Type     string          `json:"type"`
	Niche    string          `json:"niche"`
	Audience string          `json:"audience"`
	Title    string          `json:"title,omitempty"`
	// Only populated for full drafts, same as the word_count the editor shows.
	WordCount int             `json:"word_count,omitempty"`
	Usage     GenerationUsage `json:"usage"`
}
