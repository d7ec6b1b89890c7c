package items

import (
	"errors"

	"github.com/campusfound/api/internal/pkg/validator"
)

func ValidateCreateItem(req *CreateItemRequest) error {
	if req.Type != "lost" && req.Type != "found" {
		return errors.New("Type must be either lost or found")
	}
	if len(req.Title) < 3 {
		return errors.New("Title must be at least 3 characters")
	}
	if len(req.Location) < 2 {
		return errors.New("Location must be at least 2 characters")
	}
	if !validator.IsValidDate(req.Date) {
		return errors.New("Date must be in YYYY-MM-DD format")
	}
	if req.ContactNumber != "" && !validator.IsValidPhone(req.ContactNumber) {
		return errors.New("Please enter a valid contact number")
	}
	return nil
}
