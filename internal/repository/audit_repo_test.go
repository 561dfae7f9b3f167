package repository

import (
	"bytes"
	"encoding/json"
	"testing"

	"arogya360-portal/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAuditRepo_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	repo := NewLogAuditRepo(zerolog.New(&buf))

	require.NoError(t, repo.CreateAuditLog(models.RoleAdmin, "hospital_delete", "Deleted hospital: h2"))

	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ADMIN", entry["role"])
	assert.Equal(t, "hospital_delete", entry["action"])
	assert.Equal(t, "Deleted hospital: h2", entry["details"])
	assert.Equal(t, "audit", entry["component"])
}
