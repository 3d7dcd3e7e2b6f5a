package telegram

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"adcheck/api/internal/factcheck"
	"adcheck/api/internal/factcheck/types"
	"adcheck/api/internal/util"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

// acceptPhoto fetches the photo bytes and hands the data URL to checkAd.
// Updates are dispatched on their own goroutines, so the per-chat guard in
// checkAd is what serializes repeat submissions.
func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID

	// Largest PhotoSize is last.
	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.sendError(cid, fmt.Errorf("get file: %w", err))
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	imgBytes, err := download(url)
	if err != nil {
		r.sendError(cid, fmt.Errorf("download photo: %w", err))
		return
	}

	mime := util.PickMIME("", imgBytes)
	dataURL := util.MakeDataURL(mime, base64.StdEncoding.EncodeToString(imgBytes))

	r.checkAd(cid, dataURL)
}

// checkAd runs at most one analysis per chat. A photo arriving while the
// previous one is still with the model gets a wait message, not a second
// engine call.
func (r *Router) checkAd(cid int64, dataURL string) {
	if _, busy := r.inFlight.LoadOrStore(cid, struct{}{}); busy {
		r.send(cid, stillCheckingText)
		return
	}
	defer r.inFlight.Delete(cid)

	r.send(cid, "Got the ad, checking the claims…")

	res, err := r.analyze(context.Background(), dataURL)
	if err != nil {
		r.sendError(cid, err)
		return
	}

	r.send(cid, formatResult(res))
}

const stillCheckingText = "Still checking your previous ad, one moment."

// analyze runs the same parse-then-validate path the HTTP route uses; the
// bot just renders the outcome instead of returning status codes.
func (r *Router) analyze(ctx context.Context, dataURL string) (types.FactCheckResult, error) {
	raw, err := r.Engine.Analyze(ctx, factcheck.AnalyzeInput{Image: dataURL})
	if err != nil {
		return types.FactCheckResult{}, fmt.Errorf("analyze: %w", err)
	}

	var candidate any
	if err := json.Unmarshal([]byte(util.StripCodeFences(raw)), &candidate); err != nil {
		return types.FactCheckResult{}, errors.New("the model returned something unreadable, try another photo")
	}

	res, fieldErrs := types.ValidateResult(candidate)
	if len(fieldErrs) > 0 {
		return types.FactCheckResult{}, fmt.Errorf("the model's answer was malformed (%s), try again", fieldErrs[0].Error())
	}
	return res, nil
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}
