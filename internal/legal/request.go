package legal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Mode string

const (
	ModeAdvice   Mode = "advice"
	ModeDocument Mode = "document"
)

func (m Mode) Valid() bool {
	return m == ModeAdvice || m == ModeDocument
}

// Request is a validated generate request. DocType is non-empty whenever
// Mode is ModeDocument.
type Request struct {
	Mode            Mode
	Country         string
	CaseDescription string
	DocType         string
}

// generateRequest is the wire shape of POST /api/generate. Pointers tell an
// absent field apart from an empty one.
type generateRequest struct {
	Mode            *string `json:"mode"`
	Country         *string `json:"country"`
	CaseDescription *string `json:"case_description"`
	DocType         *string `json:"doc_type"`
}

// DecodeRequest strictly decodes and validates a generate request body.
// Unknown fields, trailing data and missing required fields are rejected.
func DecodeRequest(r io.Reader) (Request, error) {
	var in generateRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return Request{}, NewError(ErrorInvalidInput, "invalid JSON body", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Request{}, NewError(ErrorInvalidInput, "invalid JSON body", errors.New("trailing data after JSON object"))
	}

	var missing []string
	if in.Mode == nil {
		missing = append(missing, "mode")
	}
	if in.Country == nil {
		missing = append(missing, "country")
	}
	if in.CaseDescription == nil {
		missing = append(missing, "case_description")
	}
	if len(missing) > 0 {
		return Request{}, NewError(ErrorInvalidInput, fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")), nil)
	}

	req := Request{
		Mode:            Mode(*in.Mode),
		Country:         *in.Country,
		CaseDescription: *in.CaseDescription,
	}
	if in.DocType != nil {
		req.DocType = *in.DocType
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// Validate enforces the mode and doc_type rules.
func (r Request) Validate() error {
	if !r.Mode.Valid() {
		return NewError(ErrorInvalidMode, `mode must be "advice" or "document"`, nil)
	}
	if r.Mode == ModeDocument && strings.TrimSpace(r.DocType) == "" {
		return NewError(ErrorInvalidInput, "doc_type is required for document mode", nil)
	}
	return nil
}
