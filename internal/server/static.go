package server

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"legalai-backend/internal/types"
)

const apiPrefix = "api/"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.serveIndex(w)
}

// handleSPA serves the entry file for any unmatched path so client-side
// routing can take over. Unmatched API paths stay 404.
func (s *Server) handleSPA(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(chi.URLParam(r, "*"), apiPrefix) {
		writeHTML(w, http.StatusNotFound, "Not Found")
		return
	}
	s.serveIndex(w)
}

func (s *Server) serveIndex(w http.ResponseWriter) {
	b, err := os.ReadFile(filepath.Join(s.cfg.FrontendDir, "index.html"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[static] read index: %v", err)
		}
		writeHTML(w, http.StatusNotFound, "Index file not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	f, info, ok := s.openImage(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, types.ErrorResponse{Error: "Image not found"})
		return
	}
	defer f.Close()
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// openImage opens a regular file directly inside the image directory.
// Names that could resolve elsewhere are reported as missing.
func (s *Server) openImage(name string) (*os.File, os.FileInfo, bool) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, nil, false
	}
	f, err := os.Open(filepath.Join(s.cfg.FrontendDir, "img", name))
	if err != nil {
		return nil, nil, false
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, false
	}
	return f, info, true
}

func writeHTML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
