// Package clipboard puts the generated summary on the system clipboard so it
// can be pasted straight into a chat or an editor.
package clipboard

import "github.com/atotto/clipboard"

// Copier places summary text on the system clipboard.
type Copier interface {
	Copy(summaryText string) error
}

// Service is the atotto-backed Copier used by the command flow.
type Service struct{}

// NewService returns the system clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy replaces the clipboard contents with summaryText.
func (service *Service) Copy(summaryText string) error {
	return clipboard.WriteAll(summaryText)
}

var _ Copier = (*Service)(nil)
