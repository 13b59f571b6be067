package common

import (
	"errors"
	"sort"
)

var NotFoundError error = errors.New("resource not found")

// Tags are image tags; keys are unique per image.
type Tags map[string]string

// WithProvenance returns a copy of the tags with key set to sourceID,
// replacing any existing value for that key.
func (t Tags) WithProvenance(key, sourceID string) Tags {
	result := make(Tags, len(t)+1)
	for k, v := range t {
		result[k] = v
	}
	result[key] = sourceID
	return result
}

// Keys returns the tag keys in lexical order.
func (t Tags) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Image is a machine image as read from the provider catalog.
type Image struct {
	ID           string
	Name         string
	CreationDate string
	Tags         Tags
}

// Result is the outcome of a single promotion.
type Result struct {
	Copied      bool   `json:"copied"`
	SourceID    string `json:"src_ami,omitempty"`
	Destination string `json:"dst_ami,omitempty"`
	Name        string `json:"name,omitempty"`
}

// AWSCredentials are optional static credentials; when absent the default
// credential chain is used.
type AWSCredentials struct {
	AccessKeyID     string `json:"access-key-id,omitempty"`     // AWS_ACCESS_KEY_ID
	SecretAccessKey string `json:"secret-access-key,omitempty"` // AWS_SECRET_ACCESS_KEY
	SessionToken    string `json:"session-token,omitempty"`     // AWS_SESSION_TOKEN
}

// Validate checks that both halves of the key pair are present.
func (c AWSCredentials) Validate() error {
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return errors.New("empty credentials")
	}
	return nil
}
