// Package projection decodes remote user objects and projects the subset
// of fields the fetcher emits.
package projection

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Error kinds for the fetch path. The emitted error record stays flat;
// these exist for logs and retry classification.
var (
	// ErrDecode marks a response body that is not the expected JSON shape.
	ErrDecode = errors.New("decode error")
	// ErrSchema marks a well-formed element missing a required field.
	ErrSchema = errors.New("schema error")
)

// DefaultLimit caps how many remote users a fetch projects.
const DefaultLimit = 5

// UserRecord is the projected output shape.
type UserRecord struct {
	UserID  int    `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Company string `json:"company"`
}

// remoteUser mirrors the source object. ID is a pointer so a missing id
// field is distinguishable from a literal zero.
type remoteUser struct {
	ID      *int   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address struct {
		City string `json:"city"`
	} `json:"address"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
}

// ProjectUsers decodes a JSON array of user objects and projects id, name,
// email, address.city and company.name into UserRecords, keeping at most
// the first limit elements. Short input passes through unchanged.
func ProjectUsers(data []byte, limit int) ([]UserRecord, error) {
	var users []remoteUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if limit < len(users) {
		users = users[:limit]
	}

	records := make([]UserRecord, 0, len(users))
	for i, u := range users {
		if u.ID == nil {
			return nil, fmt.Errorf("%w: user %d: missing id field", ErrSchema, i)
		}
		records = append(records, UserRecord{
			UserID:  *u.ID,
			Name:    u.Name,
			Email:   u.Email,
			City:    u.Address.City,
			Company: u.Company.Name,
		})
	}

	return records, nil
}
