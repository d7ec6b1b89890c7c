package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() *CreateItemRequest {
	return &CreateItemRequest{
		Type:     "lost",
		Title:    "Blue backpack",
		Location: "Library, 2nd floor",
		Date:     "2026-08-20",
	}
}

func TestValidateCreateItem(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateItemRequest)
		wantErr string
	}{
		{"valid", func(r *CreateItemRequest) {}, ""},
		{"valid with contact", func(r *CreateItemRequest) { r.ContactNumber = "+880 1712-345678" }, ""},
		{"bad type", func(r *CreateItemRequest) { r.Type = "stolen" }, "Type must be either lost or found"},
		{"short title", func(r *CreateItemRequest) { r.Title = "ab" }, "Title must be at least 3 characters"},
		{"short location", func(r *CreateItemRequest) { r.Location = "x" }, "Location must be at least 2 characters"},
		{"bad date", func(r *CreateItemRequest) { r.Date = "20/08/2026" }, "Date must be in YYYY-MM-DD format"},
		{"bad contact", func(r *CreateItemRequest) { r.ContactNumber = "abc" }, "Please enter a valid contact number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			err := ValidateCreateItem(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}
