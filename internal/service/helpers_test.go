package service

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// decodeOrder decodes a JSON object the way the webhook handler does
func decodeOrder(t *testing.T, raw string) map[string]interface{} {
	t.Helper()

	decoder := json.NewDecoder(bytes.NewReader([]byte(raw)))
	decoder.UseNumber()

	var body map[string]interface{}
	require.NoError(t, decoder.Decode(&body))
	return body
}

func loadOrder(t *testing.T, name string) map[string]interface{} {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return decodeOrder(t, string(raw))
}
