package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-builder/internal/model"
)

func TestNewRequiresSender(t *testing.T) {
	_, err := New(context.Background(), "us-east-1", "")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	body := RenderText(model.SampleResume())

	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, "Senior Software Engineer")
	assert.Contains(t, body, "EXPERIENCE")
	assert.Contains(t, body, "Senior Developer, Tech Corp")
	assert.Contains(t, body, "Present")
	assert.Contains(t, body, "EDUCATION")
	assert.Contains(t, body, "Stanford University")
	assert.Contains(t, body, "SKILLS")
	assert.Contains(t, body, "React, Node.js")
}

func TestRenderTextSkipsEmptySections(t *testing.T) {
	body := RenderText(model.NewEmptyResume())

	assert.NotContains(t, body, "EXPERIENCE")
	assert.NotContains(t, body, "EDUCATION")
	assert.NotContains(t, body, "SKILLS")
}
