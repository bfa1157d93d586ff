package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/synthlab-ai/persim/pkg/dataset"
)

func TestExportDatasetHandler_Validation(t *testing.T) {
	s := NewServer(Deps{Datasets: dataset.NewAssembler(nil, nil)})

	t.Run("missing analysis_id returns 400", func(t *testing.T) {
		w := doRequest(t, s, http.MethodPost, "/exports/persona-dataset", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "analysis_id is required")
	})

	t.Run("negative analysis_id returns 400", func(t *testing.T) {
		w := doRequest(t, s, http.MethodPost, "/exports/persona-dataset", `{"analysis_id": -3}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		w := doRequest(t, s, http.MethodPost, "/exports/persona-dataset", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing assembler returns 503", func(t *testing.T) {
		bare := NewServer(Deps{})
		w := doRequest(t, bare, http.MethodPost, "/exports/persona-dataset", `{"analysis_id": 7}`)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
