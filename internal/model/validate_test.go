package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestValidateResumeMap(t *testing.T) {
	assert.NoError(t, ValidateResumeMap(asMap(t, SampleResume())))

	// shape violations are rejected
	assert.Error(t, ValidateResumeMap(map[string]interface{}{
		"experience": "three years at Tech Corp",
	}))
	assert.Error(t, ValidateResumeMap(map[string]interface{}{
		"skills": []interface{}{map[string]interface{}{"name": "Go"}},
	}))
}

func TestValidateReportMap(t *testing.T) {
	assert.NoError(t, ValidateReportMap(map[string]interface{}{
		"score":  78.0,
		"rating": "Good",
		"sections": map[string]interface{}{
			"contact": map[string]interface{}{"score": 18.0, "maxScore": 20.0, "status": "passed"},
		},
	}))

	// score is the one required field
	assert.Error(t, ValidateReportMap(map[string]interface{}{"rating": "Good"}))
	assert.Error(t, ValidateReportMap(map[string]interface{}{"score": 140.0}))
	assert.Error(t, ValidateReportMap(map[string]interface{}{
		"score": 50.0,
		"sections": map[string]interface{}{
			"contact": map[string]interface{}{"status": "excellent"},
		},
	}))
}
