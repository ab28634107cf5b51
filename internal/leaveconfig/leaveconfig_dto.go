package leaveconfig

import "encoding/json"

type CreateConfigRequest struct {
	Key   string          `json:"key" binding:"required,max=100"`
	Value json.RawMessage `json:"value" binding:"required"`
}

type UpsertConfigRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

type ConfigResponse struct {
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt string          `json:"updated_at"`
}
