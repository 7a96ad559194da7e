package models

// ErrorResponse is the JSON envelope for all API errors.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// TooltipResponse carries the detail block for one hovered cell. Content
// is empty when the cell resolves to no sample; the client shows no popup.
type TooltipResponse struct {
	Content string `json:"content"`
}

// SourceInfo is one displayed legend entry.
type SourceInfo struct {
	Value   int    `json:"value"`
	Name    string `json:"name"`
	Display string `json:"display"`
	Color   string `json:"color"`
	Desc    string `json:"desc"`
}
