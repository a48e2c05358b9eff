package generatedresumes

import "time"

// GeneratedResume is the index record of one generated PDF file.
type GeneratedResume struct {
	ID            string    `json:"id"`
	FileName      string    `json:"file_name"`
	StorageKey    string    `json:"-"`
	CandidateName string    `json:"candidate_name"`
	TemplateID    string    `json:"template"`
	Provider      string    `json:"provider,omitempty"`
	Renderer      string    `json:"renderer"`
	MimeType      string    `json:"mime_type"`
	SizeBytes     int64     `json:"size_bytes"`
	Pages         int       `json:"pages"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r GeneratedResume) validate() error {
	if r.ID == "" || r.FileName == "" || r.StorageKey == "" {
		return ErrInvalidInput
	}
	return nil
}
