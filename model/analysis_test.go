package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultUnmarshalKeepsEntityOrder(t *testing.T) {
	raw := `{
		"entities": {"PERSON": ["Alice", "Bob"], "ORG": [], "DATE": ["January 1, 2024"]}
	}`

	var result Result
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	require.Len(t, result.Entities, 3)
	assert.Equal(t, "PERSON", result.Entities[0].Label)
	assert.Equal(t, []string{"Alice", "Bob"}, result.Entities[0].Items)
	assert.Equal(t, "ORG", result.Entities[1].Label)
	assert.Empty(t, result.Entities[1].Items)
	assert.Equal(t, "DATE", result.Entities[2].Label)
}

func TestResultUnmarshalKeepsClauseOrder(t *testing.T) {
	raw := `{
		"key_clauses": {
			"the payment terms": {"text": "pay $5,000 annually", "confidence": 0.93},
			"the governing law": {"text": "California law", "confidence": 0.41}
		}
	}`

	var result Result
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	require.Len(t, result.KeyClauses, 2)
	assert.Equal(t, "the payment terms", result.KeyClauses[0].Label)
	assert.Equal(t, "pay $5,000 annually", result.KeyClauses[0].Clause.Text)
	assert.InDelta(t, 0.93, result.KeyClauses[0].Clause.Confidence, 1e-9)
	assert.Equal(t, "the governing law", result.KeyClauses[1].Label)
}

func TestResultUnmarshalAbsentKeysStayNil(t *testing.T) {
	var result Result
	require.NoError(t, json.Unmarshal([]byte(`{"summary": "short"}`), &result))

	assert.Nil(t, result.DocumentInfo)
	assert.Nil(t, result.Entities)
	assert.Nil(t, result.KeyClauses)
	require.NotNil(t, result.Summary)
	assert.Equal(t, "short", *result.Summary)
}

func TestResultUnmarshalEmptyObjectIsPresent(t *testing.T) {
	var result Result
	require.NoError(t, json.Unmarshal([]byte(`{"entities": {}}`), &result))

	// Present-but-empty must be distinguishable from absent.
	assert.NotNil(t, result.Entities)
	assert.Len(t, result.Entities, 0)
}

func TestEntityGroupsMarshalRoundTrip(t *testing.T) {
	groups := EntityGroups{
		{Label: "PERSON", Items: []string{"Alice"}},
		{Label: "ORG", Items: nil},
	}

	data, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.Equal(t, `{"PERSON":["Alice"],"ORG":[]}`, string(data))

	var decoded EntityGroups
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "PERSON", decoded[0].Label)
	assert.Equal(t, "ORG", decoded[1].Label)
}

func TestClauseGroupsMarshalKeepsOrder(t *testing.T) {
	groups := ClauseGroups{
		{Label: "b", Clause: Clause{Text: "second", Confidence: 0.2}},
		{Label: "a", Clause: Clause{Text: "first", Confidence: 0.1}},
	}

	data, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.Equal(t, `{"b":{"text":"second","confidence":0.2},"a":{"text":"first","confidence":0.1}}`, string(data))
}

func TestEntityGroupsUnmarshalRejectsNonObject(t *testing.T) {
	var groups EntityGroups
	assert.Error(t, json.Unmarshal([]byte(`["PERSON"]`), &groups))
}
