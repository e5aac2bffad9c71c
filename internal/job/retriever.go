package job

import (
	"context"
	"fmt"
	"net/http"

	"github.com/diitoo/esclscan/internal/escl"
	"github.com/diitoo/esclscan/internal/logging"
	"github.com/diitoo/esclscan/internal/webclient"
)

// Image is the retrieved scan result.
type Image struct {
	Bytes       []byte
	ContentType string
}

// Retriever fetches the produced document from a completed job.
type Retriever struct {
	wc     webclient.WebClient
	logger logging.Logger
}

func NewRetriever(wc webclient.WebClient, logger logging.Logger) (*Retriever, error) {
	if wc == nil {
		return nil, fmt.Errorf("job: webclient is nil")
	}
	return &Retriever{
		wc:     wc,
		logger: logger.With(logging.Field{Key: "component", Value: "retriever"}),
	}, nil
}

// Retrieve reads the job's next document and verifies the declared content
// type against the negotiated format. The caller only invokes this for a
// job in state done.
func (r *Retriever) Retrieve(ctx context.Context, job *escl.ScanJob, format escl.Format) (*Image, error) {
	if job == nil {
		return nil, fmt.Errorf("job: nil job")
	}

	resultURL := escl.JoinLocation(job.Location, "NextDocument")

	r.logger.Debug("retrieving scan result",
		logging.Field{Key: "url", Value: resultURL})

	resp, err := r.wc.Get(ctx, resultURL)
	if err != nil {
		return nil, &escl.RetrievalError{Detail: "fetching " + resultURL, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &escl.RetrievalError{
			StatusCode: resp.StatusCode,
			Detail:     "document not available at " + resultURL,
		}
	}
	if len(resp.Body) == 0 {
		return nil, &escl.RetrievalError{Detail: "device returned an empty document"}
	}

	contentType := resp.ContentType()
	if contentType != "" && contentType != format.MIME() {
		return nil, &escl.RetrievalError{
			Detail: fmt.Sprintf("content type %s does not match requested %s", contentType, format.MIME()),
		}
	}

	r.logger.Info("scan result received",
		logging.Field{Key: "bytes", Value: len(resp.Body)},
		logging.Field{Key: "contentType", Value: contentType})

	return &Image{Bytes: resp.Body, ContentType: contentType}, nil
}
