package payload

import (
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

const maxFormBytes = 1 << 20

// DecodeForm parses an urlencoded or multipart POST body and returns the
// posted values. Repeated calls return the already parsed values.
func DecodeForm(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	if r.PostForm != nil {
		return r.PostForm, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	defer r.Body.Close()

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFormBytes); err != nil {
			return nil, fmt.Errorf("decoding multipart form payload: %w", err)
		}
		return r.PostForm, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("decoding form payload: %w", err)
	}

	return r.PostForm, nil
}
