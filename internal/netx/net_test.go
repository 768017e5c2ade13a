package netx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploader_Put(t *testing.T) {
	file := []byte("photo bytes")

	t.Run("success", func(t *testing.T) {
		var gotBody []byte
		var gotCT, gotMethod string

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		err := NewUploader(ts.Client()).Put(context.Background(), ts.URL+"/photos/1?X-Amz-Signature=abc", "image/jpeg", file)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "image/jpeg", gotCT)
		assert.Equal(t, file, gotBody)
	})

	t.Run("default content type", func(t *testing.T) {
		var gotCT string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotCT = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		require.NoError(t, NewUploader(nil).Put(context.Background(), ts.URL, "", file))
		assert.Equal(t, DefaultContentType, gotCT)
	})

	t.Run("non-2xx", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("SignatureDoesNotMatch"))
		}))
		defer ts.Close()

		err := NewUploader(ts.Client()).Put(context.Background(), ts.URL, "image/png", file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upload failed: 403")
		assert.Contains(t, err.Error(), "SignatureDoesNotMatch")
	})

	t.Run("network error", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		err := NewUploader(nil).Put(context.Background(), url, "image/png", file)
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "upload failed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := NewUploader(ts.Client()).Put(ctx, ts.URL, "image/png", file)
		require.ErrorIs(t, err, context.Canceled)
	})
}
