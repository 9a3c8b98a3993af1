package dto

import (
	"encoding/json"
	"testing"
)

func TestNullableTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue bool
	}{
		{"absent key", `{}`, false, false},
		{"explicit null", `{"dueDate": null}`, true, false},
		{"value", `{"dueDate": "2025-12-15T00:00:00Z"}`, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateTaskRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.DueDate.Set != tt.wantSet {
				t.Errorf("Set = %v, want %v", req.DueDate.Set, tt.wantSet)
			}
			if (req.DueDate.Value != nil) != tt.wantValue {
				t.Errorf("Value = %v, want present %v", req.DueDate.Value, tt.wantValue)
			}
		})
	}
}

func TestUpdateTaskRequestDescriptionPresence(t *testing.T) {
	var absent UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if absent.Description != nil {
		t.Errorf("absent description = %q, want nil", *absent.Description)
	}

	var cleared UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"description": ""}`), &cleared); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cleared.Description == nil || *cleared.Description != "" {
		t.Errorf("description = %v, want present empty string", cleared.Description)
	}
}
