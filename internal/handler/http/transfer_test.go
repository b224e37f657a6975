package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safepass/safepass/internal/importer"
	"github.com/safepass/safepass/internal/service"
	"github.com/safepass/safepass/models"
)

// multipartUpload builds a multipart body with a "file" part and an optional
// "passphrase" field, returning the body and its Content-Type header.
func multipartUpload(t *testing.T, filename, contents, passphrase string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)

	if passphrase != "" {
		require.NoError(t, form.WriteField("passphrase", passphrase))
	}
	require.NoError(t, form.Close())

	return body, form.FormDataContentType()
}

func TestImportCredentials_Success(t *testing.T) {
	transfer := &mockTransferService{
		importFn: func(_ context.Context, userID int64, data []byte, extension, passphrase string) (importer.Result, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "title,username\nGmail,alice\n", string(data))
			assert.Equal(t, ".csv", extension)
			assert.Equal(t, "master-pass", passphrase)
			return importer.Result{
				ImportedCount: 1,
				Warnings: []importer.Warning{
					{SubjectLabel: "Gmail", Reason: importer.PlaintextSecretAutoEncrypted},
				},
			}, nil
		},
	}
	router := newTestHandler(&service.Services{TransferService: transfer}).Init()

	body, contentType := multipartUpload(t, "export.csv", "title,username\nGmail,alice\n", "master-pass")
	request := httptest.NewRequest(http.MethodPost, "/api/credentials/import", body)
	request.Header.Set("Authorization", bearerToken(t, 42))
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.ImportResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, 1, response.Imported)
	require.Len(t, response.Warnings, 1)
	assert.Equal(t, "Plaintext password encrypted for: Gmail", response.Warnings[0])
}

func TestImportCredentials_UnsupportedFormat(t *testing.T) {
	transfer := &mockTransferService{
		importFn: func(_ context.Context, _ int64, _ []byte, _, _ string) (importer.Result, error) {
			return importer.Result{}, importer.ErrUnsupportedFormat
		},
	}
	router := newTestHandler(&service.Services{TransferService: transfer}).Init()

	body, contentType := multipartUpload(t, "export.pdf", "%PDF-1.4", "")
	request := httptest.NewRequest(http.MethodPost, "/api/credentials/import", body)
	request.Header.Set("Authorization", bearerToken(t, 42))
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnsupportedMediaType, recorder.Code)
}

func TestImportCredentials_MalformedFile(t *testing.T) {
	transfer := &mockTransferService{
		importFn: func(_ context.Context, _ int64, _ []byte, _, _ string) (importer.Result, error) {
			return importer.Result{}, importer.ErrMalformedInput
		},
	}
	router := newTestHandler(&service.Services{TransferService: transfer}).Init()

	body, contentType := multipartUpload(t, "export.csv", `"unterminated`, "")
	request := httptest.NewRequest(http.MethodPost, "/api/credentials/import", body)
	request.Header.Set("Authorization", bearerToken(t, 42))
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestImportCredentials_MissingFilePart(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("passphrase", "master-pass"))
	require.NoError(t, form.Close())

	request := httptest.NewRequest(http.MethodPost, "/api/credentials/import", body)
	request.Header.Set("Authorization", bearerToken(t, 42))
	request.Header.Set("Content-Type", form.FormDataContentType())
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestExportCredentials_CSV(t *testing.T) {
	transfer := &mockTransferService{
		exportFn: func(_ context.Context, userID int64, format string) ([]byte, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "csv", format)
			return []byte("title,email,username,encrypted_password,url,notes\n"), nil
		},
	}
	router := newTestHandler(&service.Services{TransferService: transfer}).Init()

	request := httptest.NewRequest(http.MethodGet, "/api/credentials/export", nil)
	request.Header.Set("Authorization", bearerToken(t, 42))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/csv", recorder.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="passwords.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(recorder.Body.String(), "title,email,username,"))
}

func TestExportCredentials_ExplicitFormat(t *testing.T) {
	transfer := &mockTransferService{
		exportFn: func(_ context.Context, _ int64, format string) ([]byte, error) {
			assert.Equal(t, "xlsx", format)
			return []byte{0x50, 0x4b}, nil
		},
	}
	router := newTestHandler(&service.Services{TransferService: transfer}).Init()

	request := httptest.NewRequest(http.MethodGet, "/api/credentials/export?format=xlsx", nil)
	request.Header.Set("Authorization", bearerToken(t, 42))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		recorder.Header().Get("Content-Type"))
}

func TestExportCredentials_UnsupportedFormat(t *testing.T) {
	transfer := &mockTransferService{
		exportFn: func(_ context.Context, _ int64, _ string) ([]byte, error) {
			return nil, importer.ErrUnsupportedFormat
		},
	}
	router := newTestHandler(&service.Services{TransferService: transfer}).Init()

	request := httptest.NewRequest(http.MethodGet, "/api/credentials/export?format=pdf", nil)
	request.Header.Set("Authorization", bearerToken(t, 42))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
