package request

import "encoding/json"

type UpsertSettingRequest struct {
	Key   string          `json:"key" validate:"required,min=1,max=64"`
	Value json.RawMessage `json:"value" validate:"required"`
}
