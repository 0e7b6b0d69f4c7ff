package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_ReadDoc(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, paths, 13)
	assert.Contains(t, paths, "/cards/{cardID}")
	assert.Contains(t, paths, "/reports/months/{year}/{month}/dashboard")

	defs, ok := doc["definitions"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, defs, "dto.CardPurchaseResponse")
	assert.Contains(t, defs, "dto.SchedulePreviewRequest")
}
