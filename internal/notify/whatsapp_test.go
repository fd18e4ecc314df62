package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bekmanvision/uniqer/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppSendTemplate(t *testing.T) {
	t.Parallel()

	var (
		gotPath string
		gotAuth string
		gotBody map[string]any
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewWhatsApp(config.WhatsApp{Token: "secret-token", PhoneID: "12345"})
	client.baseURL = srv.URL

	err := client.SendTemplate("+7 (700) 999-00-00", "new_application", []string{"Aigerim", "77001234567"})
	require.NoError(t, err)

	assert.Equal(t, "/12345/messages", gotPath)
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "whatsapp", gotBody["messaging_product"])
	assert.Equal(t, "77009990000", gotBody["to"], "phone must be normalized to bare digits")

	template, ok := gotBody["template"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "new_application", template["name"])
}

func TestWhatsAppNotConfigured(t *testing.T) {
	t.Parallel()

	client := NewWhatsApp(config.WhatsApp{})

	assert.False(t, client.Configured())
	assert.Error(t, client.SendTemplate("77001234567", "new_application", nil))
}

func TestWhatsAppAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewWhatsApp(config.WhatsApp{Token: "secret-token", PhoneID: "12345"})
	client.baseURL = srv.URL

	err := client.SendTemplate("77001234567", "new_application", nil)
	assert.ErrorContains(t, err, "status 400")
}
