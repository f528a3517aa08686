// internal/audit/recorder.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"broker-workers/internal/common/logger"
	"broker-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
)

// Record is one match run as written to the audit index. Underwriting
// outcomes have to stay reconstructable, so the whole ranked panel and the
// profile that produced it are captured, including runs where the catalog
// was unreadable and an empty panel was shown.
type Record struct {
	RunID         string                   `json:"runId"`
	ApplicationID string                   `json:"applicationId,omitempty"`
	RecordedAt    string                   `json:"recordedAt"`
	Profile       *models.ApplicantProfile `json:"profile,omitempty"`
	CatalogSize   int                      `json:"catalogSize"`
	CatalogFailed bool                     `json:"catalogFailed"`
	Matches       []models.MatchedLender   `json:"matches"`
	DurationMs    int64                    `json:"durationMs"`
}

// NewRecord stamps a fresh run id and timestamp onto the outcome.
func NewRecord(applicationID string, profile *models.ApplicantProfile, catalogSize int, catalogFailed bool, matches []models.MatchedLender, duration time.Duration) Record {
	return Record{
		RunID:         uuid.New().String(),
		ApplicationID: applicationID,
		RecordedAt:    time.Now().UTC().Format(time.RFC3339),
		Profile:       profile,
		CatalogSize:   catalogSize,
		CatalogFailed: catalogFailed,
		Matches:       matches,
		DurationMs:    duration.Milliseconds(),
	}
}

// Recorder indexes match runs into Elasticsearch. Audit writes never fail a
// match: an indexing error is logged and dropped.
type Recorder struct {
	es     *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewRecorder(es *elasticsearch.Client, index string, log logger.Logger) *Recorder {
	return &Recorder{
		es:     es,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"component": "match-audit"}),
	}
}

func (r *Recorder) Write(ctx context.Context, rec Record) {
	if r.es == nil {
		return
	}

	body, err := json.Marshal(rec)
	if err != nil {
		r.logger.Error("failed to encode audit record", map[string]interface{}{
			"runId": rec.RunID,
			"error": err,
		})
		return
	}

	res, err := r.es.Index(
		r.index,
		bytes.NewReader(body),
		r.es.Index.WithContext(ctx),
		r.es.Index.WithDocumentID(rec.RunID),
	)
	if err != nil {
		r.logger.Error("failed to index audit record", map[string]interface{}{
			"runId": rec.RunID,
			"error": err,
		})
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		r.logger.Error("audit index rejected record", map[string]interface{}{
			"runId":  rec.RunID,
			"status": res.Status(),
		})
	}
}
