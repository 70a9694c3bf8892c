package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ServiceAccountType is the only credential type accepted.
const ServiceAccountType = "service_account"

var (
	// ErrMissing is returned when the credential file does not exist.
	ErrMissing = errors.New("Google service account not found")
	// ErrMalformed is returned when the credential file is not a JSON object.
	ErrMalformed = errors.New("Google service account file is not valid JSON")
	// ErrInvalid is returned when required fields are missing or the type is wrong.
	ErrInvalid = errors.New("Google service account is invalid")
)

// Credential is a validated service account record. It is immutable once
// loaded.
type Credential struct {
	ProjectID   string
	ClientEmail string
	PrivateKey  string
	Type        string

	raw []byte
}

// JSON returns a copy of the raw key file, as the Google client libraries
// expect it.
func (c *Credential) JSON() []byte {
	out := make([]byte, len(c.raw))
	copy(out, c.raw)
	return out
}

var requiredFields = []string{"project_id", "client_email", "private_key", "type"}

// Load reads and validates the service account file at path
func Load(path string) (*Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: add a valid %s", ErrMissing, path)
		}
		return nil, fmt.Errorf("failed to read service account %s: %w", path, err)
	}

	return Parse(data)
}

// Parse validates a service account key given as raw JSON
func Parse(data []byte) (*Credential, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, ErrMalformed
	}

	values := make(map[string]string, len(requiredFields))
	var missing []string
	for _, name := range requiredFields {
		s, ok := fields[name].(string)
		if !ok || s == "" {
			missing = append(missing, name)
			continue
		}
		values[name] = s
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", ErrInvalid, strings.Join(missing, ", "))
	}

	if values["type"] != ServiceAccountType {
		return nil, fmt.Errorf("%w: must be of type %q", ErrInvalid, ServiceAccountType)
	}

	raw := make([]byte, len(data))
	copy(raw, data)

	return &Credential{
		ProjectID:   values["project_id"],
		ClientEmail: values["client_email"],
		PrivateKey:  values["private_key"],
		Type:        values["type"],
		raw:         raw,
	}, nil
}
