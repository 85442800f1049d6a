package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"masteryengine/ml"
)

// Scorer 返回特征向量对应的正类概率
type Scorer interface {
	Score(ctx context.Context, fv ml.FeatureVector) (float64, error)
}

// InferRequest 推理请求，correct、time_ms、hint_count 均为必填数值，键名区分大小写
type InferRequest map[string]json.RawMessage

// InferResponse 推理响应
type InferResponse struct {
	Score float64 `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func RegisterHandlers(mux *http.ServeMux, scorer Scorer) {
	mux.Handle("POST /infer", &inferHandler{scorer: scorer})
}

type inferHandler struct {
	scorer Scorer
}

func (h *inferHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fv, err := decodeInferRequest(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	score, err := h.scorer.Score(r.Context(), fv)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, InferResponse{Score: score})
}

func decodeInferRequest(body io.Reader) (ml.FeatureVector, error) {
	var req InferRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return ml.FeatureVector{}, errors.New("request body is empty")
		}
		return ml.FeatureVector{}, fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ml.FeatureVector{}, errors.New("invalid request body: unexpected data after JSON object")
	}
	return req.FeatureVector()
}

// FeatureVector 校验必填字段并按模型输入顺序组装特征
func (req InferRequest) FeatureVector() (ml.FeatureVector, error) {
	var values [ml.NumFeatures]float64
	var missing []string
	for i, name := range ml.FeatureNames {
		raw, ok := req[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			missing = append(missing, name)
			continue
		}
		if err := json.Unmarshal(raw, &values[i]); err != nil {
			return ml.FeatureVector{}, fmt.Errorf("field %s must be a number", name)
		}
	}
	if len(missing) > 0 {
		return ml.FeatureVector{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return ml.FeatureVector{
		Correct:   values[0],
		TimeMs:    values[1],
		HintCount: values[2],
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
