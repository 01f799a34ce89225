package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"petbnb_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tiny but valid PNG header bytes, enough for an upload payload.
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestUploadStoresFileAndReturnsURL(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, user := helpers.CreateAndLoginOwner(t, ts)

	res, body := ts.SendMultipart(t, "/api/upload", token, "buddy.png", "image/png", pngBytes,
		map[string]string{"category": "pets"})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var uploaded struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &uploaded))
	assert.Equal(t, "buddy.png", uploaded.Filename)
	assert.Equal(t, int64(len(pngBytes)), uploaded.Size)
	assert.True(t, strings.HasPrefix(uploaded.URL, "/api/files/pets/"+user.ID+"/"), uploaded.URL)
	assert.True(t, strings.HasSuffix(uploaded.URL, ".png"), uploaded.URL)
}

func TestUploadDefaultsCategory(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginOwner(t, ts)

	res, body := ts.SendMultipart(t, "/api/upload", token, "buddy.png", "image/png", pngBytes, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var uploaded struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &uploaded))
	assert.True(t, strings.HasPrefix(uploaded.URL, "/api/files/uploads/"), uploaded.URL)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginOwner(t, ts)

	res, _ := ts.SendMultipart(t, "/api/upload", token, "notes.txt", "text/plain", []byte("hello"), nil)
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
}

func TestUploadRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	res, _ := ts.SendMultipart(t, "/api/upload", "", "buddy.png", "image/png", pngBytes, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestUploadRequiresFileField(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables()

	token, _ := helpers.CreateAndLoginOwner(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/upload", token, map[string]interface{}{
		"category": "pets",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
