package handle

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"adcheck/api/internal/factcheck"
	"adcheck/api/internal/factcheck/types"
	"adcheck/api/internal/util"
)

const (
	invalidImageMsg  = "Invalid image. Send a data URL (base64) captured from camera or upload."
	internalErrorMsg = "Unexpected server error"
)

// Analyze turns one ad image into one validated fact-check result.
// Failures are terminal: 400 for a bad image, 422 when the model's JSON does
// not conform, 500 for everything else. Nothing is retried and no partial
// result ever leaves this handler.
func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req factcheck.AnalyzeInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
		return
	}

	if !util.IsImageDataURL(req.Image) {
		writeError(w, http.StatusBadRequest, invalidImageMsg)
		return
	}

	raw, err := h.engine.Analyze(r.Context(), req)
	if err != nil {
		log.Printf("analyze: engine %s: %v", h.engine.Name(), err)
		writeError(w, http.StatusInternalServerError, safeMessage(err))
		return
	}

	var candidate any
	if err := json.Unmarshal([]byte(util.StripCodeFences(raw)), &candidate); err != nil {
		log.Printf("analyze: unparseable model output: %v", err)
		writeError(w, http.StatusInternalServerError, internalErrorMsg)
		return
	}

	res, fieldErrs := types.ValidateResult(candidate)
	if len(fieldErrs) > 0 {
		writeError(w, http.StatusUnprocessableEntity, fieldErrs)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// safeMessage keeps engine errors user-visible only when they carry no
// payload echo; anything suspicious collapses to the generic message.
func safeMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" || len(msg) > 300 || strings.Contains(msg, "data:image/") {
		return internalErrorMsg
	}
	return msg
}
