package web

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopops/psbridge/internal/catalog"
	"github.com/shopops/psbridge/internal/csvio"
	"github.com/shopops/psbridge/internal/export"
	"github.com/shopops/psbridge/internal/logging"
	"github.com/shopops/psbridge/internal/pshop"
)

// handleIndex serves the upload page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "page unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleHealth reports process liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// exportInfo is the JSON shape of one export format on the upload page.
type exportInfo struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Columns int    `json:"columns"`
}

// handleListExports returns the registered export formats.
func (s *Server) handleListExports(w http.ResponseWriter, r *http.Request) {
	defs := export.All()
	out := make([]exportInfo, 0, len(defs))
	for _, d := range defs {
		out = append(out, exportInfo{Key: d.Key, Label: d.Label, Columns: len(d.Fields)})
	}
	writeJSON(w, out)
}

// handleConvert accepts a vendor XML export under the multipart field
// "file" and answers with a zip of one import CSV per item language.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	key := chi.URLParam(r, "exportKey")
	def, ok := export.Get(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("unknown export format: %s", key))
		return
	}

	file, err := s.formFile(w, r, "file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	defer file.Close()

	doc, err := pshop.ParseDocument(file)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	byLang, err := def.ByLanguage(doc)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	jobID := uuid.New().String()
	log.Info("conversion complete",
		"job_id", jobID,
		"export", def.Key,
		"languages", len(byLang),
	)

	header := def.Header()
	var names []string
	for lang := range byLang {
		names = append(names, lang)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, lang := range names {
		f, err := zw.Create(fmt.Sprintf("%s-%s.csv", def.FileBase, lang))
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "archive write failed")
			return
		}
		if err := csvio.WriteReport(f, header, byLang[lang]); err != nil {
			writeError(w, r, http.StatusInternalServerError, "archive write failed")
			return
		}
	}
	if err := zw.Close(); err != nil {
		writeError(w, r, http.StatusInternalServerError, "archive write failed")
		return
	}

	s.sendZip(w, jobID, fmt.Sprintf("%s.zip", def.FileBase), &buf)
}

// handleReconcile accepts the primary catalog CSV ("primary") and a vendor
// update XML ("updates"), merges duplicate update rows, diffs them against
// the primary catalog and answers with a zip holding the updated and
// unfound product reports.
func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	primaryFile, err := s.formFile(w, r, "primary")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	defer primaryFile.Close()

	updatesFile, err := s.formFile(w, r, "updates")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	defer updatesFile.Close()

	primary, err := pshop.ReadPrimaryCatalog(primaryFile)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updates, err := pshop.ReadSourceRecords(updatesFile)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	merged := catalog.Merge(updates)
	result := catalog.Classify(primary, merged)

	jobID := uuid.New().String()
	log.Info("reconciliation complete",
		"job_id", jobID,
		"primary_rows", len(primary),
		"update_rows", len(updates),
		"merged", len(merged),
		"updated", len(result.Updated),
		"unfound", len(result.Unfound),
	)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	reports := []struct {
		name string
		rows []catalog.PrimaryRecord
	}{
		{"updated_products.csv", result.Updated},
		{"unfound_products.csv", result.Unfound},
	}
	for _, rep := range reports {
		f, err := zw.Create(rep.name)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, "archive write failed")
			return
		}
		rows := make([][]string, 0, len(rep.rows))
		for _, rec := range rep.rows {
			rows = append(rows, rec.Row())
		}
		if err := csvio.WriteReport(f, catalog.PrimaryHeader, rows); err != nil {
			writeError(w, r, http.StatusInternalServerError, "archive write failed")
			return
		}
	}
	if err := zw.Close(); err != nil {
		writeError(w, r, http.StatusInternalServerError, "archive write failed")
		return
	}

	s.sendZip(w, jobID, "reconciliation.zip", &buf)
}

// formFile fetches a multipart upload field with the configured size cap.
func (s *Server) formFile(w http.ResponseWriter, r *http.Request, field string) (multipart.File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

	file, header, err := r.FormFile(field)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("upload exceeds %d byte limit", maxErr.Limit)
		}
		return nil, fmt.Errorf("missing upload field %q", field)
	}
	if header.Size == 0 {
		file.Close()
		return nil, fmt.Errorf("upload field %q is empty", field)
	}
	return file, nil
}

// sendZip writes the finished archive as an attachment download.
func (s *Server) sendZip(w http.ResponseWriter, jobID, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Conversion-Id", jobID)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buf.Len()))
	w.Write(buf.Bytes())
}
