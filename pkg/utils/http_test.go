package utils_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/ride-dispatch/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	ID     string `json:"id"`
	Driver string `json:"driver"`
}

func TestDecodeBody(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		want        decodeTarget
		wantErr     bool
	}{
		{
			name:        "json",
			contentType: "application/json",
			body:        `{"id":"3","driver":"A"}`,
			want:        decodeTarget{ID: "3", Driver: "A"},
		},
		{
			name:        "form",
			contentType: "application/x-www-form-urlencoded; charset=UTF-8",
			body:        "id=3&driver=%E5%8F%B8%E6%A9%9FA&extra=1",
			want:        decodeTarget{ID: "3", Driver: "司機A"},
		},
		{
			name:        "broken json",
			contentType: "application/json",
			body:        `{"id":`,
			wantErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)

			var got decodeTarget
			err := utils.DecodeBody(req, &got)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeBody_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("id", "5"))
	require.NoError(t, mw.WriteField("driver", "司機B"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var got decodeTarget
	require.NoError(t, utils.DecodeBody(req, &got))
	assert.Equal(t, decodeTarget{ID: "5", Driver: "司機B"}, got)
}
