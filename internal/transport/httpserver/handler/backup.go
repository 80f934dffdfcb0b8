package handler

import (
	"errors"
	"net/http"

	backupdomain "smata-ledger/internal/domain/backup"
)

func (h *Handlers) BackupExport(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Backup.Export(r.Context())
	if err != nil {
		h.log.InternalError("backup.export failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

func (h *Handlers) BackupImport(w http.ResponseWriter, r *http.Request) {
	var doc backupdomain.Document
	if err := decodeJSON(r, &doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	summary, err := h.Backup.Import(r.Context(), doc)
	if err != nil {
		if errors.Is(err, backupdomain.ErrInvalidSnapshot) {
			h.log.BusinessError("backup.import: invalid snapshot", err)
			writeError(w, http.StatusBadRequest, "invalid_snapshot", err.Error())
			return
		}
		h.log.InternalError("backup.import failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.Finance.Invalidate()
	writeJSON(w, http.StatusOK, summary)
}
