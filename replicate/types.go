// types.go mirrors the subset of the predictions API contract this
// client consumes. The request/response shapes are the external
// service's contract, not ours.
package replicate

import "encoding/json"

// Prediction statuses reported by the API.
const (
	StatusStarting   = "starting"
	StatusProcessing = "processing"
	StatusSucceeded  = "succeeded"
	StatusFailed     = "failed"
	StatusCanceled   = "canceled"
)

// Prediction is a single prediction job as returned by the API.
type Prediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Error  string          `json:"error,omitempty"`
	Output json.RawMessage `json:"output,omitempty"`
	URLs   PredictionURLs  `json:"urls"`
}

// PredictionURLs holds the per-prediction endpoints the API hands back.
type PredictionURLs struct {
	Get    string `json:"get"`
	Cancel string `json:"cancel"`
}

// IsTerminal reports whether the prediction has reached a final status.
func (p *Prediction) IsTerminal() bool {
	switch p.Status {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// OutputURLs decodes the prediction output into a list of URLs.
// The API returns either a single URL string or a list of them
// depending on the model.
func (p *Prediction) OutputURLs() ([]string, error) {
	if len(p.Output) == 0 {
		return nil, ErrMalformedResponse
	}

	var list []string
	if err := json.Unmarshal(p.Output, &list); err == nil {
		return list, nil
	}

	var single string
	if err := json.Unmarshal(p.Output, &single); err == nil {
		return []string{single}, nil
	}

	return nil, ErrMalformedResponse
}

// apiErrorBody is the error envelope some non-2xx responses carry.
type apiErrorBody struct {
	Detail string `json:"detail"`
}
