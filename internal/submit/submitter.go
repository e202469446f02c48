package submit

import (
	"context"
	"fmt"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// Via names the sink an order was handed to.
type Via string

const (
	ViaMail     Via = "mail"
	ViaGitHub   Via = "github"
	ViaDownload Via = "download"
)

// Outcome reports how a submission ended. Exactly one of the
// sink-specific fields is populated depending on Via.
type Outcome struct {
	OrderID string `json:"order_id"`
	Via     Via    `json:"submitted_via"`
	Message string `json:"message"`

	// MailtoURI is set for mail handoff; the client launches it.
	MailtoURI string `json:"mailto_uri,omitempty"`

	// Path is the repository path the order was written to.
	Path string `json:"path,omitempty"`

	// FileName and Content carry the local-download payload.
	FileName string `json:"file_name,omitempty"`
	Content  string `json:"content,omitempty"`

	// LocallyFinalized marks orders that never reached a remote sink
	// and must be uploaded manually.
	LocallyFinalized bool `json:"locally_finalized,omitempty"`
}

// Submitter sends one order record to an external sink. A call attempts
// exactly one strategy; fallback choices belong to the caller.
type Submitter interface {
	Submit(ctx context.Context, order *domain.OrderRecord) (*Outcome, error)
}

// ConfigurationError means the strategy is missing deployment
// configuration. Not recoverable by the user.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// RemoteError means the remote sink rejected the write.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote write rejected (%d): %s", e.Status, e.Message)
}

// TransportError means the remote sink could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("remote endpoint unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
