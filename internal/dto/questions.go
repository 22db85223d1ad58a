package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexID is an id that arrives either as a JSON number or as a numeric
// string, which is what element dataset values look like in the browser.
type FlexID int64

func (id *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*id = 0
			return nil
		}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", string(data))
	}
	*id = FlexID(v)
	return nil
}

// Int64 converts the id for the service layer.
func (id FlexID) Int64() int64 {
	return int64(id)
}

// Int64s converts a list of ids.
func Int64s(ids []FlexID) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = id.Int64()
	}
	return out
}

// SuccessResponse is the body of every successful JSON mutation
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse is the body of every failed JSON request
// @Description Error information
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// ThemePositions is one theme bucket of a bulk reorder
type ThemePositions struct {
	ID    FlexID   `json:"id" swaggertype:"integer"`
	Order []FlexID `json:"order" swaggertype:"array,integer"`
}

// UpdatePositionsRequest carries the new question order of every bucket on the page
// @Description Request body for reordering and reparenting questions
type UpdatePositionsRequest struct {
	Themes   []ThemePositions `json:"themes"`
	Unthemed []FlexID         `json:"unthemed" swaggertype:"array,integer"`
}

// UpdateQuestionRequest edits a question in place
type UpdateQuestionRequest struct {
	Title  string `json:"title"`
	Answer string `json:"answer"`
}

// AddThemeRequest creates a theme
type AddThemeRequest struct {
	Name string `json:"name"`
}

// AddThemeResponse returns the created theme
type AddThemeResponse struct {
	Success bool   `json:"success" example:"true"`
	ID      int64  `json:"id"`
	Name    string `json:"name"`
}

// UpdateThemeOrderRequest lists theme ids in their new order
type UpdateThemeOrderRequest struct {
	Order []FlexID `json:"order" swaggertype:"array,integer"`
}

// UpdateThemeNameRequest renames a theme
type UpdateThemeNameRequest struct {
	ID   FlexID `json:"id" swaggertype:"integer"`
	Name string `json:"name"`
}
