package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"legalai-backend/internal/document"
	"legalai-backend/internal/legal"
	"legalai-backend/internal/types"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	cid := CorrelationID(r.Context())
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	req, err := legal.DecodeRequest(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeFailure(w, cid, err)
		return
	}

	messages, maxTokens, err := s.prompts.Build(req)
	if err != nil {
		s.writeFailure(w, cid, err)
		return
	}

	start := time.Now()
	text, err := s.completer.Complete(r.Context(), messages, maxTokens)
	if err != nil {
		s.writeFailure(w, cid, err)
		return
	}
	log.Printf("[generate] cid=%s mode=%s country=%q chars=%d took=%s", cid, req.Mode, req.Country, len(text), time.Since(start).Round(time.Millisecond))

	switch req.Mode {
	case legal.ModeAdvice:
		writeJSON(w, http.StatusOK, types.AdviceResponse{Type: string(legal.ModeAdvice), Text: text})
	case legal.ModeDocument:
		b, err := document.Assemble(req.DocType, text)
		if err != nil {
			s.writeFailure(w, cid, err)
			return
		}
		w.Header().Set("Content-Type", document.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+document.Filename(req.DocType))
		w.Header().Set("Content-Length", strconv.Itoa(len(b)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

// writeFailure maps a *legal.Error to its status and user-facing message.
// Anything else is logged and reported as a bare 500.
func (s *Server) writeFailure(w http.ResponseWriter, cid string, err error) {
	le, ok := legal.AsError(err)
	if !ok {
		log.Printf("[generate] cid=%s unhandled error: %v", cid, err)
		s.writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	log.Printf("[generate] cid=%s rejected: %v", cid, le)
	s.writeError(w, statusForCode(le.Code), le.Message)
}

func statusForCode(code legal.ErrorCode) int {
	switch code {
	case legal.ErrorInvalidInput, legal.ErrorInvalidMode:
		return http.StatusBadRequest
	case legal.ErrorAuthentication:
		return http.StatusUnauthorized
	case legal.ErrorNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
